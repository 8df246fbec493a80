package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// AppointmentMemoryRepository keeps the appointment list in process memory.
type AppointmentMemoryRepository struct {
	mu    sync.Mutex
	items []domain.Appointment
	saves int
}

func NewAppointmentMemoryRepository(initial ...domain.Appointment) *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{items: slices.Clone(initial)}
}

func (r *AppointmentMemoryRepository) Load(_ context.Context) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items), nil
}

func (r *AppointmentMemoryRepository) Save(_ context.Context, aps []domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.Clone(aps)
	r.saves++
	return nil
}

// Saves reports how many times Save was called.
func (r *AppointmentMemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// PendingMemoryRepository keeps conflicted bookings in memory until they
// are taken or expire.
type PendingMemoryRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]pendingEntry
}

type pendingEntry struct {
	pending   domain.Pending
	expiresAt time.Time
}

func NewPendingMemoryRepository(ttl time.Duration, now func() time.Time) *PendingMemoryRepository {
	if now == nil {
		now = time.Now
	}
	return &PendingMemoryRepository{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]pendingEntry),
	}
}

func (r *PendingMemoryRepository) Put(_ context.Context, p domain.Pending) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	p.Suggestions = slices.Clone(p.Suggestions)
	r.entries[p.ID] = pendingEntry{pending: p, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *PendingMemoryRepository) Take(_ context.Context, id string) (*domain.Pending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrPendingNotFound
	}
	delete(r.entries, id)
	return &e.pending, nil
}

func (r *PendingMemoryRepository) evictExpired() {
	now := r.now()
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
		}
	}
}

var (
	_ domain.Repository        = (*AppointmentMemoryRepository)(nil)
	_ domain.PendingRepository = (*PendingMemoryRepository)(nil)
)
