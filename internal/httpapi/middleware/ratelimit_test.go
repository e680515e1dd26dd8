package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit_BurstThenReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(1, 2))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_PerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(1, 1))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first, _ := http.NewRequest("GET", "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)

	// a different IP has its own bucket
	second, _ := http.NewRequest("GET", "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, second)

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
}
