package resource

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Resource: "User", ID: "aabbcc112233"})
	require.Equal(t, "User [aabbcc112233] not found", err.Error())
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrIDMismatch)

	wrapped := fmt.Errorf("update: %w", err)
	var nf *NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	require.Equal(t, "aabbcc112233", nf.ID)
}

func TestIDMismatchError(t *testing.T) {
	err := error(&IDMismatchError{Resource: "Section", PathID: "2", PayloadID: "1"})
	require.Equal(t, "Path and object section IDs do not match", err.Error())
	require.ErrorIs(t, err, ErrIDMismatch)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestKindWithPolicy(t *testing.T) {
	k := Kind[struct{}]{Name: "Movie", Policy: ForcePathID}
	strict := k.WithPolicy(RejectMismatch)
	require.Equal(t, RejectMismatch, strict.Policy)
	require.Equal(t, ForcePathID, k.Policy)
	require.Equal(t, "reject-mismatch", strict.Policy.String())
}
