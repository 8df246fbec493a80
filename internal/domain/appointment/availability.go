package appointment

// TimeSlot is a free interval returned to the calendar view.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsSlotAvailable reports whether slot intersects no appointment in existing.
// Records that do not parse are ignored; the Store never holds any.
func IsSlotAvailable(existing []Appointment, slot Slot) bool {
	for _, ap := range existing {
		if ap.Date != slot.Date {
			continue
		}
		booked, err := ap.Slot()
		if err != nil {
			continue
		}
		if booked.Overlaps(slot) {
			return false
		}
	}
	return true
}

// FreeSlots walks the business day of date in step-minute increments and
// returns every [t, t+step) interval that IsSlotAvailable accepts.
func FreeSlots(existing []Appointment, date string, hours BusinessHours, stepMinutes int) []TimeSlot {
	slots := []TimeSlot{}
	if stepMinutes <= 0 {
		return slots
	}

	step := TimeOfDay(stepMinutes)
	for cur := hours.Start; cur+step <= hours.End; cur += step {
		slot := Slot{Date: date, Start: cur, End: cur + step}
		if IsSlotAvailable(existing, slot) {
			slots = append(slots, TimeSlot{
				Start: slot.Start.String(),
				End:   slot.End.String(),
			})
		}
	}
	return slots
}
