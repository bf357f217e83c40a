package resource

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrIDMismatch     = errors.New("id mismatch")
	ErrNotImplemented = errors.New("not implemented")
)

// NotFoundError reports a lookup by id that matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s [%s] not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IDMismatchError reports an update whose payload id differs from the path id.
type IDMismatchError struct {
	Resource  string
	PathID    string
	PayloadID string
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("Path and object %s IDs do not match", strings.ToLower(e.Resource))
}

func (e *IDMismatchError) Is(target error) bool { return target == ErrIDMismatch }
