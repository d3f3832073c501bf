// Package model holds the domain types shared by the repository, service and
// handler layers.
//
// Struct fields carry `db` tags for pgx.RowToStructByName and camelCase `json`
// tags for API responses.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the columns every table has.
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
