package appointment

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Canonical wire layouts of an appointment record.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is the booking record shared with the browser shell and every
// persistence collaborator. Field names match the persisted JSON blob.
type Appointment struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// Slot returns the (date, start, end) interval the appointment occupies.
func (a Appointment) Slot() (Slot, error) {
	return NewSlot(a.Date, a.StartTime, a.EndTime)
}

// Validate checks the record shape: non-empty id, canonical date and times,
// start strictly before end.
func (a Appointment) Validate() error {
	if a.ID == "" {
		return httperr.ErrBusiness("missing_id")
	}
	_, err := a.Slot()
	return err
}
