package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLevelsByStatus(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()
	Init("info")

	g := gin.New()
	g.Use(Middleware())
	g.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	g.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	g.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/missing", "/boom"} {
		g.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	out := buf.String()
	require.Contains(t, out, "[INFO] GET /ok -> 200")
	require.Contains(t, out, "[WARN] GET /missing -> 404")
	require.Contains(t, out, "[ERROR] GET /boom -> 500")
}
