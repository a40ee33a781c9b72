package models

import "gorm.io/gorm"

// Document is one schemaless record in a collection.
type Document map[string]any

// StoredDocument is the database row backing a single document.
// Documents carry their own id redundantly in the payload's "id" field so
// that equality queries on "id" and direct key lookups both work.
type StoredDocument struct {
	gorm.Model
	Collection string `gorm:"not null;index;uniqueIndex:idx_collection_doc"`
	DocID      string `gorm:"not null;uniqueIndex:idx_collection_doc"`
	Data       []byte `gorm:"not null"`
}

// Collection names.
const (
	CollectionUsers       = "users"
	CollectionItems       = "items"
	CollectionSubmissions = "submissions"
)

// Document fields shared across services.
const (
	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldItemID   = "item_id"
)
