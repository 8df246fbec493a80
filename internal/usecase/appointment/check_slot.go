package appointment

import (
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// CheckSlot answers whether a slot is free without booking it.
type CheckSlot struct {
	store *domain.Store
}

func NewCheckSlot(store *domain.Store) *CheckSlot {
	return &CheckSlot{store: store}
}

func (uc *CheckSlot) Execute(in SlotInput) (bool, error) {
	slot, err := ParseSlot(in)
	if err != nil {
		return false, err
	}
	return domain.IsSlotAvailable(uc.store.All(), slot), nil
}
