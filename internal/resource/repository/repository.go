// Package repository contains the document-store adapters used by the
// resource services. Every adapter stores whole records keyed by an opaque,
// store-generated string id.
package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repository is the document-store contract consumed by the services.
//
// Replace and DeleteByID are conditional: they report ErrNotFound when no
// record with the id exists at the moment of the write, so callers do not need
// a separate existence check.
type Repository[T any] interface {
	Create(ctx context.Context, doc *T) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	Save(ctx context.Context, doc *T) (*T, error)
	Replace(ctx context.Context, id string, doc *T) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
