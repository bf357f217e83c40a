package models

import "github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"

// Section is a navigation entry of the front office menu.
type Section struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Icon  string `json:"icon" bson:"icon" binding:"required"`
	Title string `json:"title" bson:"title" binding:"required"`
	To    string `json:"to" bson:"to" binding:"required,navpath"`
	Order int    `json:"order" bson:"order"`
}

var SectionKind = resource.Kind[Section]{
	Name:       "Section",
	Collection: "sections",
	Policy:     resource.RejectMismatch,
	GetID:      func(s *Section) string { return s.ID },
	SetID:      func(s *Section, id string) { s.ID = id },
}
