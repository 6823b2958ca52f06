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
	"plantshop_backend/internal/utils"
)

func CreateOrder(c *gin.Context) {
	var input struct {
		UserID         string            `json:"userId"`
		PhoneNumber    string            `json:"phoneNumber"`
		Address        string            `json:"address"`
		ShippingMethod string            `json:"shippingMethod"`
		ShippingFee    float64           `json:"shippingFee"`
		PaymentMethod  string            `json:"paymentMethod"`
		Subtotal       float64           `json:"subtotal"`
		SelectedItems  []models.CartItem `json:"selectedItems"`
		TotalAmount    float64           `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Thiếu thông tin bắt buộc hoặc định dạng không đúng"})
		return
	}

	// Toàn bộ validate chạy trước mọi lần ghi.
	if input.UserID == "" || input.PhoneNumber == "" || input.Address == "" || len(input.SelectedItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Thiếu thông tin bắt buộc hoặc định dạng không đúng"})
		return
	}
	if input.ShippingMethod != models.ShippingFast && input.ShippingMethod != models.ShippingCOD {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phương thức giao hàng không hợp lệ"})
		return
	}
	if input.PaymentMethod != models.PaymentCard && input.PaymentMethod != models.PaymentATM {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phương thức thanh toán không hợp lệ"})
		return
	}
	for _, item := range input.SelectedItems {
		if item.ProductID == "" || item.Price == 0 || item.Quantity == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Sản phẩm thiếu thông tin bắt buộc: productId, price hoặc quantity"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var userCart models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"userId": input.UserID}).Decode(&userCart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Giỏ hàng không tồn tại"})
			return
		}
		log.Println("❌ Lỗi khi đọc giỏ hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server!"})
		return
	}

	items := make([]models.CartItem, 0, len(input.SelectedItems))
	for _, item := range input.SelectedItems {
		if item.Name == "" {
			item.Name = "Không có tên"
		}
		items = append(items, item)
	}

	order := models.Order{
		ID:             primitive.NewObjectID(),
		UserID:         input.UserID,
		PhoneNumber:    input.PhoneNumber,
		Address:        input.Address,
		ShippingMethod: input.ShippingMethod,
		ShippingFee:    input.ShippingFee,
		PaymentMethod:  input.PaymentMethod,
		Items:          items,
		Subtotal:       input.Subtotal,
		TotalAmount:    input.TotalAmount,
		Status:         "pending",
		OrderDate:      time.Now(),
	}
	if _, err := database.Orders().InsertOne(ctx, order); err != nil {
		log.Println("❌ Lỗi khi tạo đơn hàng:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi server khi đặt hàng"})
		return
	}

	// Kéo các dòng đã đặt ra khỏi giỏ. Hai lần ghi độc lập, không có
	// transaction: đơn đã lưu thì lỗi dọn giỏ chỉ ghi log.
	_, err := database.Carts().UpdateOne(ctx, bson.M{"userId": input.UserID},
		bson.M{"$pull": bson.M{"items": bson.M{"productId": bson.M{"$in": cart.IDs(items)}}}})
	if err != nil {
		log.Println("❌ Lỗi khi dọn giỏ hàng sau đặt hàng:", err)
	}

	go sendOrderMail(order)

	c.JSON(http.StatusCreated, gin.H{"message": "Đặt hàng thành công", "order": order})
}

// sendOrderMail gửi mail xác nhận chạy nền, lỗi không ảnh hưởng đơn hàng.
func sendOrderMail(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(order.UserID)
	if err != nil {
		return
	}
	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
		return
	}
	utils.SendOrderConfirmation(order, user.Email)
}

func GetUserOrders(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Sắp xếp mới nhất trước
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := database.Orders().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("❌ Lỗi MongoDB Find:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi khi lấy lịch sử đơn hàng"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi khi lấy lịch sử đơn hàng"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// orderDetail đè userId chuỗi bằng bản tra cứu name/email tại thời điểm đọc.
type orderDetail struct {
	models.Order
	UserID any `json:"userId"`
}

func GetOrderByID(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy đơn hàng"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy đơn hàng"})
		return
	}

	// userId chỉ là chuỗi rời, tra thêm thông tin user lúc đọc
	populated := any(order.UserID)
	if uid, err := primitive.ObjectIDFromHex(order.UserID); err == nil {
		opts := options.FindOne().SetProjection(bson.M{"name": 1, "email": 1})
		var user models.User
		if err := database.Users().FindOne(ctx, bson.M{"_id": uid}, opts).Decode(&user); err == nil {
			populated = gin.H{"_id": order.UserID, "name": user.Name, "email": user.Email}
		}
	}

	c.JSON(http.StatusOK, orderDetail{Order: order, UserID: populated})
}
