package catalog

import (
	"context"
	"fmt"

	"github.com/jazflix/jazflix-bo/backend/go-services/internal/models"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource/service"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/logger"
)

// DemoUsers, DemoSections and DemoMovies make up the demo catalog.
var (
	DemoUsers = []models.User{
		{ID: "demo-user-1", Name: "jdoe@foo.bar", Enabled: models.Bool(true)},
		{ID: "demo-user-2", Name: "jane@foo.bar", Enabled: models.Bool(true)},
		{ID: "demo-user-3", Name: "jack@foo.bar", Enabled: models.Bool(false)},
	}
	DemoSections = []models.Section{
		{ID: "demo-section-1", Icon: "icon-home", Title: "Home", To: "/", Order: 1},
		{ID: "demo-section-2", Icon: "icon-movies", Title: "Movies", To: "/movies", Order: 2},
		{ID: "demo-section-3", Icon: "icon-series", Title: "Series", To: "/series", Order: 3},
	}
	DemoMovies = []models.Movie{
		{ID: "demo-movie-1", Title: "Movie 1", Description: "first", Image: "1.png", Video: "1.mp4", Extra: "tag1"},
		{ID: "demo-movie-2", Title: "Movie 2", Description: "second", Image: "2.png", Video: "2.mp4", Extra: "tag1"},
		{ID: "demo-movie-3", Title: "Movie 3", Description: "third", Image: "3.png", Video: "3.mp4", Extra: "tag1"},
	}
)

// Seed writes the demo catalog under fixed ids, so running it again restores
// the demo records instead of duplicating them. With reset set every existing
// record is removed first.
func Seed(ctx context.Context, c *Catalog, reset bool) error {
	if reset {
		if err := purge(ctx, c.Users); err != nil {
			return err
		}
		if err := purge(ctx, c.Sections); err != nil {
			return err
		}
		if err := purge(ctx, c.Movies); err != nil {
			return err
		}
	}
	if err := insert(ctx, c.Users, DemoUsers); err != nil {
		return err
	}
	if err := insert(ctx, c.Sections, DemoSections); err != nil {
		return err
	}
	return insert(ctx, c.Movies, DemoMovies)
}

func purge[T any](ctx context.Context, svc *service.Service[T]) error {
	all, err := svc.List(ctx)
	if err != nil {
		return fmt.Errorf("list %s: %w", svc.Kind().Collection, err)
	}
	for _, doc := range all {
		if err := svc.Delete(ctx, svc.Kind().GetID(doc)); err != nil {
			return fmt.Errorf("clear %s: %w", svc.Kind().Collection, err)
		}
	}
	logger.Infof("cleared %d %s", len(all), svc.Kind().Collection)
	return nil
}

func insert[T any](ctx context.Context, svc *service.Service[T], docs []T) error {
	for i := range docs {
		doc := docs[i]
		if _, err := svc.Upsert(ctx, &doc); err != nil {
			return fmt.Errorf("seed %s: %w", svc.Kind().Collection, err)
		}
	}
	logger.Infof("seeded %d %s", len(docs), svc.Kind().Collection)
	return nil
}
