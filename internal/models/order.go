package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ShippingFast = "Giao hàng Nhanh"
	ShippingCOD  = "Giao hàng COD"

	PaymentCard = "VISA/MASTERCARD"
	PaymentATM  = "ATM"
)

// Order là bản chụp bất biến của các dòng giỏ đã chọn cộng lựa chọn
// giao hàng/thanh toán. Tạo một lần, không có endpoint đổi status.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID         string             `bson:"userId" json:"userId"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	Address        string             `bson:"address" json:"address"`
	ShippingMethod string             `bson:"shippingMethod" json:"shippingMethod"`
	ShippingFee    float64            `bson:"shippingFee" json:"shippingFee"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	Items          []CartItem         `bson:"items" json:"items"`
	Subtotal       float64            `bson:"subtotal" json:"subtotal"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	Status         string             `bson:"status" json:"status"`
	OrderDate      time.Time          `bson:"orderDate" json:"orderDate"`
}
