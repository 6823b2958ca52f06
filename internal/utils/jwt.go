package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"plantshop_backend/internal/models"
)

// GenerateJWT phát token cho client cất cùng userId. Phía server không
// route nào kiểm tra token, request vẫn mang userId tường minh.
func GenerateJWT(user models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
