package dto

import domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

func FromAppointment(ap domain.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Description: ap.Description,
	}
}

func FromAppointments(aps []domain.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
