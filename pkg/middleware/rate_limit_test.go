package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func serve(r http.Handler, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2))
	r.GET("/movies", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	require.Equal(t, http.StatusOK, serve(r, "/movies"))
	require.Equal(t, http.StatusOK, serve(r, "/movies"))

	require.Equal(t, before+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, 1))
	r.GET("/movies", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	require.Equal(t, http.StatusOK, serve(r, "/movies"))
	require.Equal(t, http.StatusTooManyRequests, serve(r, "/movies"))

	// one token is back after 0.5s
	time.Sleep(600 * time.Millisecond)
	require.Equal(t, http.StatusOK, serve(r, "/movies"))
}

func TestRateLimitMiddleware_ExemptsProbes(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.001, 1))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "healthy") })
	r.GET("/user", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	require.Equal(t, http.StatusOK, serve(r, "/user"))
	require.Equal(t, http.StatusTooManyRequests, serve(r, "/user"))
	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, serve(r, "/health"))
	}
}
