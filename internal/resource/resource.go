// Package resource holds the pieces shared by every catalog resource: the
// descriptor that tells the generic layers how to handle an entity type and the
// error kinds surfaced to the transport.
package resource

// IDPolicy decides what an update does when the id embedded in the payload
// disagrees with the id taken from the request path.
type IDPolicy int

const (
	// ForcePathID overwrites the payload id with the path id.
	ForcePathID IDPolicy = iota
	// RejectMismatch fails with an IDMismatchError when the payload carries a
	// different, non-empty id. An empty payload id takes the path id.
	RejectMismatch
)

func (p IDPolicy) String() string {
	switch p {
	case ForcePathID:
		return "force-path-id"
	case RejectMismatch:
		return "reject-mismatch"
	}
	return "unknown"
}

// Kind describes an entity type T to the generic repository, service and
// handler layers.
type Kind[T any] struct {
	// Name is the singular display name used in error messages ("Movie").
	Name string
	// Collection is the document-store collection ("movies").
	Collection string
	// Policy applies to updates.
	Policy IDPolicy

	GetID func(*T) string
	SetID func(*T, string)
}

// WithPolicy returns a copy of k using policy p.
func (k Kind[T]) WithPolicy(p IDPolicy) Kind[T] {
	k.Policy = p
	return k
}
