// Package service implements the CRUD protocol shared by every catalog
// resource: identifiers are assigned by the store on create, updates follow the
// resource's id policy, and missing records surface as *resource.NotFoundError.
package service

import (
	"context"
	"errors"

	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource/repository"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/logger"
)

// Service defines the resource operations used by the handler layer.
type Service[T any] struct {
	kind resource.Kind[T]
	repo repository.Repository[T]
}

func New[T any](kind resource.Kind[T], repo repository.Repository[T]) *Service[T] {
	return &Service[T]{kind: kind, repo: repo}
}

// Kind returns the descriptor the service was built with.
func (s *Service[T]) Kind() resource.Kind[T] { return s.kind }

// Create discards any caller-supplied id and returns the stored record.
func (s *Service[T]) Create(ctx context.Context, in *T) (*T, error) {
	s.kind.SetID(in, "")
	out, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.Debugf("%s [%s] created", s.kind.Name, s.kind.GetID(out))
	return out, nil
}

func (s *Service[T]) List(ctx context.Context) ([]*T, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service[T]) Get(ctx context.Context, id string) (*T, error) {
	out, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(id, err)
	}
	return out, nil
}

func (s *Service[T]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Update overwrites the record stored under id with in. The existence check is
// part of the conditional store write, so a record deleted concurrently is
// reported as not found rather than recreated.
func (s *Service[T]) Update(ctx context.Context, id string, in *T) error {
	if s.kind.Policy == resource.RejectMismatch {
		if pid := s.kind.GetID(in); pid != "" && pid != id {
			return &resource.IDMismatchError{Resource: s.kind.Name, PathID: id, PayloadID: pid}
		}
	}
	s.kind.SetID(in, id)
	if err := s.repo.Replace(ctx, id, in); err != nil {
		return s.translate(id, err)
	}
	logger.Debugf("%s [%s] updated", s.kind.Name, id)
	return nil
}

// Upsert stores in under its own id, creating or overwriting the record. An
// empty id behaves like Create.
func (s *Service[T]) Upsert(ctx context.Context, in *T) (*T, error) {
	out, err := s.repo.Save(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.Debugf("%s [%s] saved", s.kind.Name, s.kind.GetID(out))
	return out, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return s.translate(id, err)
	}
	logger.Debugf("%s [%s] deleted", s.kind.Name, id)
	return nil
}

func (s *Service[T]) translate(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &resource.NotFoundError{Resource: s.kind.Name, ID: id}
	}
	return err
}
