// Package catalog assembles the movie, section and user services over one
// storage backend and mounts them on a gin router.
package catalog

import (
	"context"
	"strings"

	"github.com/jazflix/jazflix-bo/backend/go-services/internal/models"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource/repository"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource/service"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Options struct {
	// StrictIDMatch rejects mismatching payload ids for movies as well.
	StrictIDMatch bool
	// Videos resolves movie video keys. Nil disables the video endpoint.
	Videos storage.VideoStore
}

type Catalog struct {
	Movies   *service.Service[models.Movie]
	Sections *service.Service[models.Section]
	Users    *service.Service[models.User]

	videos storage.VideoStore
	ping   func(context.Context) error
}

func movieKind(opts Options) resource.Kind[models.Movie] {
	if opts.StrictIDMatch {
		return models.MovieKind.WithPolicy(resource.RejectMismatch)
	}
	return models.MovieKind
}

// NewMemory keeps every record in process memory.
func NewMemory(opts Options) *Catalog {
	mk := movieKind(opts)
	return &Catalog{
		Movies:   service.New[models.Movie](mk, repository.NewMemoryRepo(mk)),
		Sections: service.New[models.Section](models.SectionKind, repository.NewMemoryRepo(models.SectionKind)),
		Users:    service.New[models.User](models.UserKind, repository.NewMemoryRepo(models.UserKind)),
		videos:   opts.Videos,
		ping:     func(context.Context) error { return nil },
	}
}

// NewMongo stores each resource in its own collection of db.
func NewMongo(db *mongo.Database, opts Options) *Catalog {
	mk := movieKind(opts)
	return &Catalog{
		Movies:   service.New[models.Movie](mk, repository.NewMongoRepo(mk, db.Collection(mk.Collection))),
		Sections: service.New[models.Section](models.SectionKind, repository.NewMongoRepo(models.SectionKind, db.Collection(models.SectionKind.Collection))),
		Users:    service.New[models.User](models.UserKind, repository.NewMongoRepo(models.UserKind, db.Collection(models.UserKind.Collection))),
		videos:   opts.Videos,
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
	}
}

// Ping reports whether the backing store answers.
func (c *Catalog) Ping(ctx context.Context) error { return c.ping(ctx) }

// VideoURL returns a playable URL for the movie's video. Videos that are
// already absolute URLs are returned unchanged.
func (c *Catalog) VideoURL(ctx context.Context, movieID string) (string, error) {
	m, err := c.Movies.Get(ctx, movieID)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(m.Video, "http://") || strings.HasPrefix(m.Video, "https://") {
		return m.Video, nil
	}
	if c.videos == nil {
		return "", resource.ErrNotImplemented
	}
	return c.videos.VideoURL(ctx, strings.TrimPrefix(m.Video, "/"))
}
