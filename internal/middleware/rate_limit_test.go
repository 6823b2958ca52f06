package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"plantshop_backend/internal/middleware"
)

// Không có Redis thì mọi limiter phải cho request đi qua nguyên vẹn,
// kể cả body của request login.
func TestLimitersPassThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiters := map[string]gin.HandlerFunc{
		"login":    middleware.LoginRateLimit(),
		"register": middleware.RegisterRateLimit(),
		"api":      middleware.APIRateLimit(),
	}

	for name, limiter := range limiters {
		r := gin.New()
		var seenBody string
		r.POST("/x", limiter, func(c *gin.Context) {
			raw, _ := c.GetRawData()
			seenBody = string(raw)
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		body := `{"email":"a@b.vn","password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: muốn 200, nhận %d", name, w.Code)
		}
		if seenBody != body {
			t.Errorf("%s: body tới handler bị thay đổi: %q", name, seenBody)
		}
	}
}
