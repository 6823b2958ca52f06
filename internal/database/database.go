package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantshop_backend/internal/config"
)

var (
	Mongo *mongo.Database
	Redis *redis.Client
)

func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)
}

func connectMongo(ctx context.Context) {
	uri := config.Getenv("MONGO_URI", "mongodb://localhost:27017")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Lỗi kết nối MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ MongoDB không phản hồi: %v", err)
	}

	Mongo = client.Database(config.Getenv("MONGO_DB", "ASM_ReactNative2"))
	log.Println("✅ MongoDB Connected")
}

// Redis chỉ phục vụ rate limit, thiếu Redis server vẫn chạy được.
func connectRedis(ctx context.Context) {
	addr := config.Getenv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR chưa cấu hình, tắt rate limit")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Getenv("REDIS_PASSWORD", ""),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis không phản hồi (%v), tắt rate limit", err)
		return
	}

	Redis = client
	log.Println("✅ Redis Connected")
}

func Users() *mongo.Collection    { return Mongo.Collection("users") }
func Products() *mongo.Collection { return Mongo.Collection("products") }
func Carts() *mongo.Collection    { return Mongo.Collection("carts") }
func Orders() *mongo.Collection   { return Mongo.Collection("orders") }
