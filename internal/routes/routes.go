package routes

import (
	"github.com/gin-gonic/gin"

	"plantshop_backend/internal/handlers/product"
	"plantshop_backend/internal/handlers/user"
	"plantshop_backend/internal/middleware"
)

// RegisterRoutes giữ nguyên đường dẫn cũ của hệ thống, kể cả cách viết
// hoa lịch sử /AddProduct, /UserInfor và /Order.
func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.APIRateLimit())

	// Auth
	r.POST("/register", middleware.RegisterRateLimit(), user.Register)
	r.POST("/login", middleware.LoginRateLimit(), user.Login)
	r.GET("/users", user.GetUsers)
	r.GET("/UserInfor/:id", user.GetUserInfo)

	// Products
	r.GET("/products", product.GetProducts)
	r.POST("/AddProduct", product.AddProduct)
	r.GET("/products/search", product.SearchProducts)
	r.GET("/products/:id", product.GetProductByID)
	r.GET("/products/category/:category", product.GetProductsByCategory)

	// Cart
	r.POST("/cart/add", user.AddToCart)
	r.GET("/cart/:userId", user.GetCart)
	r.PUT("/cart/update-quantity", user.UpdateQuantity)
	r.DELETE("/cart/delete", user.RemoveFromCart)

	// Orders
	r.POST("/Order/create", user.CreateOrder)
	r.GET("/Order/user/:userId", user.GetUserOrders)
	r.GET("/Order/:orderId", user.GetOrderByID)
}
