package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := New(3, time.Minute)

	require.True(t, rl.Allow("1.2.3.4"))
	require.True(t, rl.Allow("1.2.3.4"))
	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	// a different key has its own budget
	require.True(t, rl.Allow("5.6.7.8"))
}

func TestRemainingAndReset(t *testing.T) {
	rl := New(2, time.Minute)

	require.Equal(t, 2, rl.Remaining("k"))
	rl.Allow("k")
	require.Equal(t, 1, rl.Remaining("k"))

	rl.Reset("k")
	require.Equal(t, 2, rl.Remaining("k"))
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 20*time.Millisecond)

	require.True(t, rl.Allow("k"))
	require.False(t, rl.Allow("k"))

	time.Sleep(30 * time.Millisecond)
	require.True(t, rl.Allow("k"))
}

func TestMiddlewareBlocksWhenExhausted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := New(1, time.Minute)
	r := gin.New()
	r.Use(Middleware(rl))
	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 429, w.Code)
	require.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
