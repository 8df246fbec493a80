package appointment

import "github.com/google/uuid"

// IDGenerator mints appointment identifiers.
type IDGenerator func() string

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
