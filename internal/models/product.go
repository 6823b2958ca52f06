package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product giữ nguyên layout của collection cũ: price là chuỗi đã định dạng
// ("200.000đ"), chỉ được quy về số khi một dòng đi vào giỏ hàng.
// Trường Location viết hoa theo dữ liệu lịch sử.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type" json:"type"`
	Price       string             `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Size        string             `bson:"size" json:"size"`
	Location    string             `bson:"Location" json:"Location"`
	Stock       int                `bson:"stock" json:"stock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
