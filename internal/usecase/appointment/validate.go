package appointment

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// SlotInput carries raw form values.
type SlotInput struct {
	Date      string
	StartTime string
	EndTime   string
}

// ParseSlot canonicalizes form values into a Slot. Empty fields, malformed
// values and inverted ranges are rejected with distinct business codes.
func ParseSlot(in SlotInput) (domain.Slot, error) {
	date := strings.TrimSpace(in.Date)
	start := strings.TrimSpace(in.StartTime)
	end := strings.TrimSpace(in.EndTime)
	if date == "" || start == "" || end == "" {
		return domain.Slot{}, httperr.ErrBusiness("missing_fields")
	}

	var err error
	if date, err = validators.CanonicalDate(date); err != nil {
		return domain.Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if start, err = validators.CanonicalTime(start); err != nil {
		return domain.Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if end, err = validators.CanonicalTime(end); err != nil {
		return domain.Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	return domain.NewSlot(date, start, end)
}

// ValidateBooking is ParseSlot plus the rule that a booking may not start
// strictly before now.
func ValidateBooking(in SlotInput, now time.Time) (domain.Slot, error) {
	slot, err := ParseSlot(in)
	if err != nil {
		return domain.Slot{}, err
	}

	start, err := slot.StartIn(now.Location())
	if err != nil {
		return domain.Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if start.Before(now) {
		return domain.Slot{}, httperr.ErrBusiness("in_the_past")
	}
	return slot, nil
}

// ParseDate canonicalizes a single date value.
func ParseDate(date string) (string, error) {
	if strings.TrimSpace(date) == "" {
		return "", httperr.ErrBusiness("missing_date")
	}
	canonical, err := validators.CanonicalDate(date)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return canonical, nil
}
