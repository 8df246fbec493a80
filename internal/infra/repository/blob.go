package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// Blob stores keep the whole appointment list as one JSON array, the same
// shape the browser shell keeps under its "appointments" key.

func encodeBlob(aps []domain.Appointment) ([]byte, error) {
	if aps == nil {
		aps = []domain.Appointment{}
	}
	return json.Marshal(aps)
}

func decodeBlob(data []byte) ([]domain.Appointment, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Appointment{}, nil
	}
	var aps []domain.Appointment
	if err := json.Unmarshal(data, &aps); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if aps == nil {
		aps = []domain.Appointment{}
	}
	return aps, nil
}
