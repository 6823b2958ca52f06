package user

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantshop_backend/internal/database"
	"plantshop_backend/internal/models"
	"plantshop_backend/internal/utils"
)

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ!"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := database.Users()

	// Tài khoản đầu tiên là admin
	total, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}
	role := "user"
	if total == 0 {
		role = "admin"
	}

	var existing models.User
	err = users.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": input.Email}, {"phone": input.Phone}},
	}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email hoặc số điện thoại đã tồn tại!"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Role:     role,
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đăng ký thành công!", "role": role})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ!"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email không tồn tại!"})
		return
	}
	if !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mật khẩu sai!"})
		return
	}

	// Token chỉ phát ra cho client cất, không route nào phía server kiểm tra.
	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "Đăng nhập thành công!", "user": user, "token": token})
}

func GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Không trả về mật khẩu
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := database.Users().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func GetUserInfo(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User không tồn tại"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"name": 1, "email": 1})
	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User không tồn tại"})
		return
	}

	c.JSON(http.StatusOK, user)
}
