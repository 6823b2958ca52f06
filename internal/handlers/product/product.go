package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantshop_backend/internal/database"
	"plantshop_backend/internal/models"
)

func GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi server!"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi server!"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func AddProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ!"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()

	if _, err := database.Products().InsertOne(ctx, p); err != nil {
		log.Println("❌ Lỗi khi thêm sản phẩm:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi thêm sản phẩm!"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy sản phẩm"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy sản phẩm"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// CategoryFilter khớp chính xác category, thêm type khi có yêu cầu.
// Type phân biệt hoa thường: "Ưa sáng" chỉ khớp đúng "Ưa sáng".
func CategoryFilter(category, productType string) bson.M {
	filter := bson.M{"category": category}
	if productType != "" {
		filter["type"] = productType
	}
	return filter
}

func GetProductsByCategory(c *gin.Context) {
	filter := CategoryFilter(c.Param("category"), c.Query("type"))

	opts := options.Find()
	if sortBy := c.Query("sortBy"); sortBy != "" {
		order := 1
		if c.Query("order") == "desc" {
			order = -1
		}
		opts.SetSort(bson.D{{Key: sortBy, Value: order}})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Products().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải sản phẩm"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải sản phẩm"})
		return
	}

	c.JSON(http.StatusOK, products)
}
