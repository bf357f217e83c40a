package models

import "github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"

// Movie is a catalog entry. Image is an URL (or bare file reference) and Video
// the stored video file name.
type Movie struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title" binding:"required,min=5"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image" bson:"image" binding:"required,movieurl"`
	Video       string `json:"video" bson:"video" binding:"required,min=5"`
	Extra       string `json:"extra,omitempty" bson:"extra,omitempty"`
}

var MovieKind = resource.Kind[Movie]{
	Name:       "Movie",
	Collection: "movies",
	Policy:     resource.ForcePathID,
	GetID:      func(m *Movie) string { return m.ID },
	SetID:      func(m *Movie, id string) { m.ID = id },
}
