package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"plantshop_backend/internal/config"
	"plantshop_backend/internal/database"
	"plantshop_backend/internal/routes"
)

func main() {
	config.Load()
	database.ConnectDatabases()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	routes.RegisterRoutes(r)

	port := config.Getenv("PORT", "3000")
	log.Println("🚀 Server đang chạy tại http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Không khởi động được server: %v", err)
	}
}
