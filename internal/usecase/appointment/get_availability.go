package appointment

import (
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// GetAvailability lists the free step-sized slots of a business day.
type GetAvailability struct {
	store  *domain.Store
	policy domain.Policy
}

func NewGetAvailability(store *domain.Store, policy domain.Policy) *GetAvailability {
	return &GetAvailability{store: store, policy: policy}
}

func (uc *GetAvailability) Execute(date string) (string, []domain.TimeSlot, error) {
	canonical, err := ParseDate(date)
	if err != nil {
		return "", nil, err
	}

	hours, err := uc.policy.BusinessHours()
	if err != nil {
		return "", nil, err
	}

	return canonical, domain.FreeSlots(uc.store.ByDate(canonical), canonical, hours, uc.policy.StepMinutes), nil
}
