package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type RejectSuggestions struct {
	pending domain.PendingRepository
	audit   *audit.Dispatcher
}

func NewRejectSuggestions(
	pending domain.PendingRepository,
	audit *audit.Dispatcher,
) *RejectSuggestions {
	return &RejectSuggestions{pending: pending, audit: audit}
}

// Execute discards every suggestion of a conflicted booking. The store is
// not touched.
func (uc *RejectSuggestions) Execute(ctx context.Context, bookingID string) error {
	p, err := uc.pending.Take(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrPendingNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionSuggestionsRejected,
		Entity:   "booking",
		EntityID: p.ID,
		Metadata: map[string]any{"suggestions": len(p.Suggestions)},
	})
	return nil
}
