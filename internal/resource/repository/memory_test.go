package repository

import (
	"context"
	"testing"

	"github.com/jazflix/jazflix-bo/backend/go-services/internal/models"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo(models.MovieKind)

	created, err := r.Create(ctx, &models.Movie{Title: "Movie 1", Image: "1.png", Video: "1.mp4"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := r.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = r.Create(ctx, &models.Movie{Title: "Movie 2", Image: "2.png", Video: "2.mp4"})
	require.NoError(t, err)

	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Movie 1", list[0].Title)
	require.Equal(t, "Movie 2", list[1].Title)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	err = r.Replace(ctx, created.ID, &models.Movie{Title: "Movie 1b", Image: "1.png", Video: "1.mp4"})
	require.NoError(t, err)
	got, err = r.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Movie 1b", got.Title)
	require.Equal(t, created.ID, got.ID)

	require.NoError(t, r.DeleteByID(ctx, created.ID))
	_, err = r.FindByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, r.DeleteByID(ctx, created.ID), ErrNotFound)

	list, err = r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Movie 2", list[0].Title)
}

func TestMemoryRepoReplaceMissing(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo(models.SectionKind)

	err := r.Replace(ctx, "nope", &models.Section{Icon: "i", Title: "t", To: "/"})
	require.ErrorIs(t, err, ErrNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMemoryRepoCopiesRecords(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo(models.UserKind)

	in := &models.User{Name: "jdoe@foo.bar", Enabled: models.Bool(true)}
	created, err := r.Create(ctx, in)
	require.NoError(t, err)
	require.Empty(t, in.ID, "input must not be mutated")

	*created.Enabled = false
	created.Name = "changed@foo.bar"

	got, err := r.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "jdoe@foo.bar", got.Name)
	require.True(t, *got.Enabled)
}

func TestMemoryRepoSave(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo(models.SectionKind)

	s, err := r.Save(ctx, &models.Section{Icon: "icon-home", Title: "Home", To: "/", Order: 1})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	_, err = r.Save(ctx, &models.Section{ID: "fixed", Icon: "icon-movies", Title: "Movies", To: "/movies", Order: 2})
	require.NoError(t, err)
	_, err = r.Save(ctx, &models.Section{ID: "fixed", Icon: "icon-movies", Title: "Films", To: "/movies", Order: 2})
	require.NoError(t, err)

	got, err := r.FindByID(ctx, "fixed")
	require.NoError(t, err)
	require.Equal(t, "Films", got.Title)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestMemoryRepoHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewMemoryRepo(models.MovieKind)

	_, err := r.FindAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
