package appointment

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"
)

// Policy controls the alternative-slot search.
type Policy struct {
	StepMinutes    int
	HorizonHours   int
	DayStartTime   string
	DayEndTime     string
	MaxSuggestions int

	// ClampToBusinessDay skips candidates outside [DayStartTime, DayEndTime].
	// Off by default: suggestions may fall outside the rendered calendar.
	ClampToBusinessDay bool
}

func DefaultPolicy() Policy {
	return Policy{
		StepMinutes:    30,
		HorizonHours:   4,
		DayStartTime:   "08:00",
		DayEndTime:     "22:00",
		MaxSuggestions: 3,
	}
}

func (p Policy) Validate() error {
	if p.StepMinutes <= 0 || p.StepMinutes >= minutesPerDay {
		return fmt.Errorf("step minutes must be in (0, %d), got %d", minutesPerDay, p.StepMinutes)
	}
	if p.HorizonHours < 0 {
		return fmt.Errorf("horizon hours must not be negative, got %d", p.HorizonHours)
	}
	if p.MaxSuggestions <= 0 {
		return errors.New("max suggestions must be positive")
	}
	_, err := p.BusinessHours()
	return err
}

func (p Policy) BusinessHours() (BusinessHours, error) {
	return ParseBusinessHours(p.DayStartTime, p.DayEndTime)
}

// Suggester proposes free slots near the current time for a rejected request.
type Suggester struct {
	policy Policy
	hours  BusinessHours
	now    func() time.Time
	newID  IDGenerator
}

func NewSuggester(policy Policy, now func() time.Time, newID IDGenerator) (*Suggester, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	hours, _ := policy.BusinessHours()
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = NewID
	}
	return &Suggester{policy: policy, hours: hours, now: now, newID: newID}, nil
}

func (s *Suggester) Policy() Policy {
	return s.policy
}

// Suggest walks forward from the top of the current hour in StepMinutes
// increments and yields each [t, t+step) slot on date that is free in
// existing, until MaxSuggestions are found or t passes now+HorizonHours.
// The walk stops before a slot would reach midnight of date.
//
// The sequence is evaluated lazily against a snapshot of existing taken at
// call time and can be ranged over only once.
func (s *Suggester) Suggest(existing []Appointment, date, description string) iter.Seq[Appointment] {
	now := s.now()
	snapshot := slices.Clone(existing)
	consumed := false

	return func(yield func(Appointment) bool) {
		if consumed {
			return
		}
		consumed = true

		p := s.policy
		step := TimeOfDay(p.StepMinutes)
		limit := TimeOfDayOf(now) + TimeOfDay(p.HorizonHours*60)

		found := 0
		for cur := TimeOfDay(now.Hour() * 60); found < p.MaxSuggestions && cur <= limit; cur += step {
			end := cur + step
			if end >= minutesPerDay {
				return
			}
			if p.ClampToBusinessDay && !s.hours.Contains(cur, end) {
				continue
			}

			slot := Slot{Date: date, Start: cur, End: end}
			if !IsSlotAvailable(snapshot, slot) {
				continue
			}

			found++
			if !yield(slot.Appointment(s.newID(), description)) {
				return
			}
		}
	}
}
