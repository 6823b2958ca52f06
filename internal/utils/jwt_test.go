package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantshop_backend/internal/models"
	"plantshop_backend/internal/utils"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	u := models.User{
		ID:    primitive.NewObjectID(),
		Email: "khach@plantshop.vn",
		Role:  "user",
	}

	tokenStr, err := utils.GenerateJWT(u)
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		return []byte("test_secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token không hợp lệ: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims sai kiểu: %T", token.Claims)
	}
	if claims["user_id"] != u.ID.Hex() {
		t.Errorf("user_id = %v, muốn %v", claims["user_id"], u.ID.Hex())
	}
	if claims["email"] != u.Email {
		t.Errorf("email = %v, muốn %v", claims["email"], u.Email)
	}

	exp, _ := claims.GetExpirationTime()
	if exp == nil || !exp.After(time.Now()) {
		t.Error("token phải có hạn trong tương lai")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("matkhau123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "matkhau123" {
		t.Fatal("mật khẩu không được lưu trần")
	}

	if !utils.CheckPassword("matkhau123", hash) {
		t.Error("mật khẩu đúng phải khớp hash")
	}
	if utils.CheckPassword("matkhausai", hash) {
		t.Error("mật khẩu sai không được khớp hash")
	}
}
