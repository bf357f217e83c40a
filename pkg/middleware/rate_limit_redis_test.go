package middleware

import (
	"net/http"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_Basic(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 0, 1, 10*time.Second))
	r.GET("/section", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	require.Equal(t, http.StatusOK, serve(r, "/section"))
	require.Equal(t, http.StatusTooManyRequests, serve(r, "/section"))

	// the window key carries a TTL
	keys := m.Keys()
	require.Len(t, keys, 1)
	require.Greater(t, m.TTL(keys[0]), time.Duration(0))
}

func TestRedisRateLimitMiddleware_FailsOpen(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	m.Close()

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 1, 0, time.Second))
	r.GET("/section", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	require.Equal(t, http.StatusOK, serve(r, "/section"))
	require.Equal(t, http.StatusOK, serve(r, "/section"))
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(nil, 1, 1, time.Second))
	r.GET("/section", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	require.Equal(t, http.StatusOK, serve(r, "/section"))
	require.Equal(t, http.StatusTooManyRequests, serve(r, "/section"))
}
