package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"plantshop_backend/internal/database"
)

const (
	loginMaxAttempts    = 5
	registerMaxAttempts = 3
	apiMaxRequests      = 100 // mỗi phút, cho mọi endpoint

	loginCooldown    = 15 * time.Minute
	registerCooldown = 30 * time.Minute
	apiWindow        = 1 * time.Minute
)

// LoginRateLimit chặn dò mật khẩu theo email. Login sai ở đây trả 400
// chứ không phải 401, đếm theo 400.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		// Đọc body mà không nuốt mất của handler phía sau
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "login_attempts:" + input.Email
		cooldownKey := "login_cooldown:" + input.Email

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Quá nhiều lần thử. Vui lòng đợi %d phút", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= loginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", loginCooldown)
			database.Redis.Del(ctx, key)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Quá nhiều lần thử. Tạm khóa %d phút", int(loginCooldown.Minutes())),
				"retry_after": int(loginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusBadRequest:
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, loginCooldown)
		case http.StatusOK:
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		}
	}
}

// RegisterRateLimit chặn tạo tài khoản hàng loạt theo IP.
func RegisterRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		ip := c.ClientIP()
		key := "register_attempts:" + ip
		cooldownKey := "register_cooldown:" + ip

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Quá nhiều lượt đăng ký. Vui lòng đợi %d phút", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= registerMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", registerCooldown)
			database.Redis.Del(ctx, key)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Quá nhiều lượt đăng ký. Vui lòng đợi %d phút", int(registerCooldown.Minutes())),
				"retry_after": int(registerCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Đăng ký thành công trả 200
		if c.Writer.Status() == http.StatusOK {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, registerCooldown)
		}
	}
}

// APIRateLimit giới hạn chung theo IP cho mọi endpoint.
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "api_requests:" + c.ClientIP()

		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= apiMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     "Quá nhiều yêu cầu. Vui lòng thử lại sau 1 phút",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, apiWindow)
		pipe.Exec(ctx)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", apiMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", apiMaxRequests-requests-1))

		c.Next()
	}
}
