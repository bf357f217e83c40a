package catalog

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource/handler"
)

// Register mounts the CRUD routes, including the plural aliases older clients
// call, and the movie video endpoint.
func (c *Catalog) Register(r gin.IRoutes, timeout time.Duration) {
	handler.New(c.Movies, timeout).Register(r, "/movies")

	sections := handler.New(c.Sections, timeout)
	sections.Register(r, "/section")
	sections.Register(r, "/sections")

	users := handler.New(c.Users, timeout)
	users.Register(r, "/user")
	users.Register(r, "/users")

	r.GET("/movies/:id/video", func(gc *gin.Context) {
		ctx := gc.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		u, err := c.VideoURL(ctx, gc.Param("id"))
		if err != nil {
			handler.AbortWithError(gc, err)
			return
		}
		gc.JSON(http.StatusOK, gin.H{"url": u})
	})
}
