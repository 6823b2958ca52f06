package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Không tìm thấy file .env, dùng biến môi trường hệ thống")
	} else {
		log.Println("✅ Đã nạp file .env")
	}
}

// Getenv trả về biến môi trường, rỗng thì dùng giá trị mặc định.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
