package appointment

import (
	"context"
	"errors"
	"time"
)

// ErrCorruptSnapshot marks a persisted blob that could not be decoded.
// Callers treat it as "no prior appointments".
var ErrCorruptSnapshot = errors.New("corrupt appointment snapshot")

// Repository is the persistence collaborator of the Store: it hands back the
// previously saved sequence at startup and receives the full sequence after
// every accepted booking.
type Repository interface {
	Load(ctx context.Context) ([]Appointment, error)
	Save(ctx context.Context, appointments []Appointment) error
}

// Pending is a conflicted booking waiting for the user to accept one of its
// suggestions or reject them all.
type Pending struct {
	ID          string        `json:"id"`
	Request     Appointment   `json:"request"`
	Suggestions []Appointment `json:"suggestions"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Suggestion returns the suggestion with the given id.
func (p *Pending) Suggestion(id string) (Appointment, bool) {
	for _, s := range p.Suggestions {
		if s.ID == id {
			return s, true
		}
	}
	return Appointment{}, false
}

// ErrPendingNotFound is returned for unknown or expired booking sessions.
var ErrPendingNotFound = errors.New("pending booking not found")

// PendingRepository holds conflicted bookings between the conflict response
// and the user's choice. Take removes the entry it returns.
type PendingRepository interface {
	Put(ctx context.Context, p Pending) error
	Take(ctx context.Context, id string) (*Pending, error)
}
