package product

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantshop_backend/internal/database"
	"plantshop_backend/internal/models"
)

// SearchFilter khớp chứa chuỗi trên tên sản phẩm, không phân biệt hoa
// thường. Từ khóa được escape để "lan" là chuỗi, không phải regex.
func SearchFilter(keyword string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}}
}

func SearchProducts(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu từ khóa tìm kiếm"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Products().Find(ctx, SearchFilter(keyword))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tìm kiếm sản phẩm"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tìm kiếm sản phẩm"})
		return
	}

	c.JSON(http.StatusOK, products)
}
