package models

import "github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"

// User is a back-office account keyed by its Google e-mail. Enabled is stored
// but not enforced anywhere in this service.
type User struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Name    string `json:"name" bson:"name" binding:"required,email"`
	Enabled *bool  `json:"enabled" bson:"enabled" binding:"required"`
}

var UserKind = resource.Kind[User]{
	Name:       "User",
	Collection: "users",
	Policy:     resource.RejectMismatch,
	GetID:      func(u *User) string { return u.ID },
	SetID:      func(u *User, id string) { u.ID = id },
}

// Bool returns a pointer to b, for building users in code.
func Bool(b bool) *bool { return &b }
