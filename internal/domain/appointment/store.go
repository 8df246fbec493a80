package appointment

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Snapshot is the full ordered appointment list after a mutation. Version
// increases with every mutation so persisters can discard stale writes.
type Snapshot struct {
	Version      uint64
	Appointments []Appointment
}

// Rejected is a persisted record refused while seeding a Store.
type Rejected struct {
	Appointment Appointment
	Reason      error
}

// Store holds the booked appointments in insertion order. It is append-only
// and refuses any record that would overlap another on the same date or
// reuse an id.
type Store struct {
	mu      sync.RWMutex
	items   []Appointment
	ids     map[string]struct{}
	version uint64
}

// NewStore seeds a Store from previously persisted records, keeping them in
// order and dropping those that break the record shape or the store
// invariants.
func NewStore(initial []Appointment) (*Store, []Rejected) {
	s := &Store{ids: make(map[string]struct{}, len(initial))}

	var rejected []Rejected
	for _, ap := range initial {
		if err := s.admit(ap); err != nil {
			rejected = append(rejected, Rejected{Appointment: ap, Reason: err})
			continue
		}
		s.items = append(s.items, ap)
		s.ids[ap.ID] = struct{}{}
	}
	return s, rejected
}

func (s *Store) admit(ap Appointment) error {
	if err := ap.Validate(); err != nil {
		return err
	}
	if _, dup := s.ids[ap.ID]; dup {
		return httperr.ErrBusiness("duplicate_id")
	}
	slot, _ := ap.Slot()
	if !IsSlotAvailable(s.items, slot) {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

// Add appends ap unchanged if it is well formed, its id is unused and it
// overlaps no stored appointment on its date.
func (s *Store) Add(ap Appointment) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.admit(ap); err != nil {
		return Snapshot{}, err
	}

	s.items = append(s.items, ap)
	s.ids[ap.ID] = struct{}{}
	s.version++

	return Snapshot{Version: s.version, Appointments: slices.Clone(s.items)}, nil
}

func (s *Store) All() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ByDate returns the appointments of date ordered by start time.
func (s *Store) ByDate(date string) []Appointment {
	return s.filterSorted(func(ap Appointment) bool { return ap.Date == date })
}

// ByMonth returns the appointments of a calendar month ordered by date and
// start time.
func (s *Store) ByMonth(year, month int) []Appointment {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	return s.filterSorted(func(ap Appointment) bool { return strings.HasPrefix(ap.Date, prefix) })
}

func (s *Store) filterSorted(keep func(Appointment) bool) []Appointment {
	s.mu.RLock()
	out := make([]Appointment, 0, len(s.items))
	for _, ap := range s.items {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	s.mu.RUnlock()

	// canonical date and time strings sort chronologically
	slices.SortStableFunc(out, func(a, b Appointment) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return out
}
