package appointment

import (
	"context"
	"errors"
	"slices"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type AcceptSuggestion struct {
	store     *domain.Store
	pending   domain.PendingRepository
	persister *Persister
	audit     *audit.Dispatcher
}

func NewAcceptSuggestion(
	store *domain.Store,
	pending domain.PendingRepository,
	persister *Persister,
	audit *audit.Dispatcher,
) *AcceptSuggestion {
	return &AcceptSuggestion{
		store:     store,
		pending:   pending,
		persister: persister,
		audit:     audit,
	}
}

// Execute appends the chosen suggestion of a conflicted booking to the
// store unchanged and closes the booking session.
func (uc *AcceptSuggestion) Execute(
	ctx context.Context,
	bookingID string,
	suggestionID string,
) (*domain.Appointment, error) {

	p, err := uc.pending.Take(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrPendingNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	slot, ok := p.Suggestion(suggestionID)
	if !ok {
		// unknown suggestion: keep the session open for another choice
		if err := uc.pending.Put(ctx, *p); err != nil {
			return nil, err
		}
		return nil, httperr.ErrBusiness("suggestion_not_found")
	}

	snap, err := uc.store.Add(slot)
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			// the slot was booked meanwhile: offer the remaining ones
			p.Suggestions = slices.DeleteFunc(p.Suggestions, func(s domain.Appointment) bool {
				return s.ID == suggestionID
			})
			if err := uc.pending.Put(ctx, *p); err != nil {
				return nil, err
			}
			return nil, httperr.ErrBusiness("suggestion_unavailable")
		}
		return nil, err
	}
	uc.persister.persistAfter(ctx, snap)

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionSuggestionAccepted,
		Entity:   "appointment",
		EntityID: slot.ID,
		Metadata: map[string]any{"booking_id": p.ID},
	})

	return &slot, nil
}
