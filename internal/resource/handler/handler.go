// Package handler exposes a resource service over HTTP with gin.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource/service"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/metrics"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/validation"
)

// Handler binds requests for one resource type to its service.
type Handler[T any] struct {
	svc     *service.Service[T]
	timeout time.Duration
}

// New returns a handler whose store calls are bounded by timeout (zero keeps
// only the request context).
func New[T any](svc *service.Service[T], timeout time.Duration) *Handler[T] {
	return &Handler[T]{svc: svc, timeout: timeout}
}

// Register mounts the CRUD routes under base, e.g. "/movies".
func (h *Handler[T]) Register(r gin.IRoutes, base string) {
	r.GET(base, h.List)
	r.POST(base, h.Create)
	r.GET(base+"/:id", h.Get)
	r.PUT(base+"/:id", h.Update)
	r.DELETE(base+"/:id", h.Delete)
}

func (h *Handler[T]) storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler[T]) observe(op string, c *gin.Context) {
	metrics.ResourceOperations.WithLabelValues(h.svc.Kind().Collection, op, strconv.Itoa(c.Writer.Status())).Inc()
}

func (h *Handler[T]) List(c *gin.Context) {
	defer h.observe("list", c)
	ctx, cancel := h.storeContext(c)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if n, err := h.svc.Count(ctx); err == nil {
		c.Header("X-Total-Count", strconv.FormatInt(n, 10))
	}
	if list == nil {
		list = []*T{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler[T]) Get(c *gin.Context) {
	defer h.observe("get", c)
	ctx, cancel := h.storeContext(c)
	defer cancel()

	out, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler[T]) Create(c *gin.Context) {
	defer h.observe("create", c)
	var in T
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}
	ctx, cancel := h.storeContext(c)
	defer cancel()

	out, err := h.svc.Create(ctx, &in)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler[T]) Update(c *gin.Context) {
	defer h.observe("update", c)
	var in T
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}
	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.svc.Update(ctx, c.Param("id"), &in); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler[T]) Delete(c *gin.Context) {
	defer h.observe("delete", c)
	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
