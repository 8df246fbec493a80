package appointment

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookAppointmentInput struct {
	Date        string
	StartTime   string
	EndTime     string
	Description string
}

// BookAppointmentOutput is either an accepted appointment or a conflicted
// booking session carrying alternative slots. Trail lists the workflow
// states the request went through.
type BookAppointmentOutput struct {
	State       domain.State
	Trail       []domain.State
	Appointment *domain.Appointment
	BookingID   string
	Suggestions []domain.Appointment
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	store     *domain.Store
	suggester *domain.Suggester
	pending   domain.PendingRepository
	persister *Persister
	clock     timezone.Clock
	newID     domain.IDGenerator
	audit     *audit.Dispatcher
}

func NewBookAppointment(
	store *domain.Store,
	suggester *domain.Suggester,
	pending domain.PendingRepository,
	persister *Persister,
	clock timezone.Clock,
	newID domain.IDGenerator,
	audit *audit.Dispatcher,
) *BookAppointment {
	if newID == nil {
		newID = domain.NewID
	}
	return &BookAppointment{
		store:     store,
		suggester: suggester,
		pending:   pending,
		persister: persister,
		clock:     clock,
		newID:     newID,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentOutput, error) {

	now := uc.clock.Now()
	flow := domain.NewWorkflow()

	// --------------------------------------------------
	// Validating
	// --------------------------------------------------
	if err := flow.To(domain.StateValidating); err != nil {
		return nil, err
	}
	slot, err := ValidateBooking(SlotInput{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}, now)
	if err != nil {
		if ferr := flow.To(domain.StateIdle); ferr != nil {
			return nil, ferr
		}
		code, _ := httperr.CodeOf(err)
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingRejected,
			Entity:   "appointment",
			Metadata: map[string]any{"reason": code},
		})
		return nil, err
	}

	ap := slot.Appointment(uc.newID(), strings.TrimSpace(in.Description))

	// --------------------------------------------------
	// Accepted
	// --------------------------------------------------
	if domain.IsSlotAvailable(uc.store.All(), slot) {
		snap, err := uc.store.Add(ap)
		switch {
		case err == nil:
			if err := flow.To(domain.StateAccepted); err != nil {
				return nil, err
			}
			uc.persister.persistAfter(ctx, snap)
			uc.audit.Dispatch(audit.Event{
				Action:   audit.ActionAppointmentCreated,
				Entity:   "appointment",
				EntityID: ap.ID,
			})
			return &BookAppointmentOutput{State: flow.State(), Trail: flow.Trail(), Appointment: &ap}, nil
		case !httperr.IsBusiness(err, "time_conflict"):
			return nil, err
		}
		// another booking took the slot between the check and the append
	}

	// --------------------------------------------------
	// Conflicted
	// --------------------------------------------------
	if err := flow.To(domain.StateConflicted); err != nil {
		return nil, err
	}
	suggestions := slices.Collect(uc.suggester.Suggest(uc.store.All(), slot.Date, ap.Description))
	if suggestions == nil {
		suggestions = []domain.Appointment{}
	}

	p := domain.Pending{
		ID:          uc.newID(),
		Request:     ap,
		Suggestions: suggestions,
		CreatedAt:   now,
	}
	if err := uc.pending.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("store pending booking: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentConflict,
		Entity:   "booking",
		EntityID: p.ID,
		Metadata: map[string]any{
			"date":        ap.Date,
			"start":       ap.StartTime,
			"end":         ap.EndTime,
			"suggestions": len(suggestions),
		},
	})

	return &BookAppointmentOutput{
		State:       flow.State(),
		Trail:       flow.Trail(),
		BookingID:   p.ID,
		Suggestions: suggestions,
	}, nil
}
