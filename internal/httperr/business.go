package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, if any.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

var messages = map[string]string{
	"missing_fields":         "Date, start time and end time are required.",
	"invalid_date_or_time":   "Invalid date or time.",
	"invalid_time_range":     "Start time must be before end time.",
	"in_the_past":            "The requested time has already passed.",
	"time_conflict":          "The requested time overlaps an existing appointment.",
	"duplicate_id":           "An appointment with this id already exists.",
	"missing_id":             "Appointment id is required.",
	"booking_not_found":      "Booking session not found or expired.",
	"suggestion_not_found":   "Suggested slot not found.",
	"suggestion_unavailable": "The suggested slot is no longer available.",
	"missing_date":           "Date is required.",
	"invalid_date":           "Invalid date.",
	"invalid_year":           "Invalid year.",
	"invalid_month":          "Invalid month.",
	"missing_year_or_month":  "Year and month are required.",
}

// Message returns the user-facing text for a business code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Invalid request."
}
