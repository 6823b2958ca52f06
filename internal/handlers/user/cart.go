package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantshop_backend/internal/cart"
	"plantshop_backend/internal/database"
	"plantshop_backend/internal/models"
)

// cartItemInput nhận price dạng any vì client khi thì gửi số,
// khi thì gửi nguyên chuỗi hiển thị "200.000đ".
type cartItemInput struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     any    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// cartUpsert dựng lệnh upsert cho giỏ. _id chỉ nằm trong $setOnInsert:
// set _id trên document đã có sẽ bị Mongo từ chối.
func cartUpsert(doc models.Cart) bson.M {
	return bson.M{
		"$set": bson.M{
			"userId":     doc.UserID,
			"items":      doc.Items,
			"totalPrice": doc.TotalPrice,
			"updatedAt":  doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       doc.ID,
			"createdAt": doc.CreatedAt,
		},
	}
}

func AddToCart(c *gin.Context) {
	var input struct {
		UserID string          `json:"userId"`
		Items  []cartItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ!"})
		return
	}

	// Chuẩn hóa giá trước khi đụng tới document: một dòng giá hỏng
	// phải chặn cả request, không được ghi dở.
	incoming := make([]models.CartItem, 0, len(input.Items))
	for _, it := range input.Items {
		price, err := cart.ParsePrice(it.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Giá sản phẩm không hợp lệ!"})
			return
		}
		incoming = append(incoming, models.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	var doc models.Cart
	err := database.Carts().FindOne(ctx, bson.M{"userId": input.UserID}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		// Tạo giỏ hàng mới nếu chưa tồn tại, _id sinh sẵn để trả về đúng
		doc = models.Cart{ID: primitive.NewObjectID(), UserID: input.UserID, CreatedAt: now}
	case err != nil:
		// Lỗi đọc không phải "chưa có giỏ": upsert lúc này sẽ đè mất
		// giỏ đang có của user, phải dừng tại đây.
		log.Println("❌ Lỗi khi đọc giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	doc.Items = cart.Merge(doc.Items, incoming)
	doc.TotalPrice = cart.Total(doc.Items)
	doc.UpdatedAt = now

	_, err = database.Carts().UpdateOne(ctx, bson.M{"userId": input.UserID}, cartUpsert(doc),
		options.Update().SetUpsert(true))
	if err != nil {
		log.Println("❌ Lỗi khi lưu giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã thêm sản phẩm vào giỏ hàng!", "cart": doc})
}

func GetCart(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"userId": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{"userId": userID, "items": []models.CartItem{}, "totalPrice": 0})
			return
		}
		log.Println("❌ Lỗi khi đọc giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateQuantity trả về danh sách dòng mới nhưng không tính lại totalPrice,
// client tự cộng. Hành vi cũ, giữ nguyên cho khớp màn hình giỏ hàng.
func UpdateQuantity(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ!"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"userId": input.UserID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Giỏ hàng không tồn tại"})
			return
		}
		log.Println("❌ Lỗi khi đọc giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	items, ok := cart.SetQuantity(doc.Items, input.ProductID, input.Quantity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sản phẩm không tồn tại trong giỏ hàng"})
		return
	}

	_, err := database.Carts().UpdateOne(ctx, bson.M{"userId": input.UserID},
		bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now()}})
	if err != nil {
		log.Println("❌ Lỗi khi cập nhật giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật số lượng thành công", "items": items})
}

func RemoveFromCart(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ!"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"userId": input.UserID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Giỏ hàng không tồn tại"})
			return
		}
		log.Println("❌ Lỗi khi đọc giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	items := cart.Remove(doc.Items, input.ProductID)
	_, err := database.Carts().UpdateOne(ctx, bson.M{"userId": input.UserID},
		bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now()}})
	if err != nil {
		log.Println("❌ Lỗi khi xoá sản phẩm khỏi giỏ:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xoá sản phẩm khỏi giỏ hàng thành công"})
}
