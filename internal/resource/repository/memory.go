package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"
)

// MemoryRepo keeps records in process memory, in insertion order. It backs the
// service when no MongoDB is configured and is used throughout the tests.
// Records are copied on the way in and out so callers never share state with
// the store.
type MemoryRepo[T any] struct {
	kind  resource.Kind[T]
	mu    sync.RWMutex
	order []string
	store map[string]*T
}

func NewMemoryRepo[T any](kind resource.Kind[T]) *MemoryRepo[T] {
	return &MemoryRepo[T]{kind: kind, store: make(map[string]*T)}
}

func clone[T any](src *T) *T {
	b, err := json.Marshal(src)
	if err != nil {
		cp := *src
		return &cp
	}
	var dst T
	if err := json.Unmarshal(b, &dst); err != nil {
		cp := *src
		return &cp
	}
	return &dst
}

func (m *MemoryRepo[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := clone(doc)
	id := uuid.NewString()
	m.kind.SetID(stored, id)
	m.store[id] = stored
	m.order = append(m.order, id)
	return clone(stored), nil
}

func (m *MemoryRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return clone(d), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo[T]) FindAll(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, clone(m.store[id]))
	}
	return out, nil
}

// Save inserts or overwrites the record under its own id; a record without an
// id is created.
func (m *MemoryRepo[T]) Save(ctx context.Context, doc *T) (*T, error) {
	id := m.kind.GetID(doc)
	if id == "" {
		return m.Create(ctx, doc)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		m.order = append(m.order, id)
	}
	m.store[id] = clone(doc)
	return clone(doc), nil
}

func (m *MemoryRepo[T]) Replace(ctx context.Context, id string, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	stored := clone(doc)
	m.kind.SetID(stored, id)
	m.store[id] = stored
	return nil
}

func (m *MemoryRepo[T]) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepo[T]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}
