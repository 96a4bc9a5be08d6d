package domain

import "github.com/google/uuid"

// ID prefixes for server-assigned identifiers.
const (
	OrderIDPrefix = "ORD-"
	UserIDPrefix  = "USR-"
)

// NewID returns prefix followed by a time-ordered UUIDv7, so identifiers sort by creation.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + id.String()
}
