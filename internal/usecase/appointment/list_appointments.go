package appointment

import (
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type ListAppointments struct {
	store *domain.Store
}

func NewListAppointments(store *domain.Store) *ListAppointments {
	return &ListAppointments{store: store}
}

// All returns every appointment in booking order.
func (uc *ListAppointments) All() []dto.AppointmentListDTO {
	return dto.FromAppointments(uc.store.All())
}

// ByDate returns the appointments of one day ordered by start time.
func (uc *ListAppointments) ByDate(date string) ([]dto.AppointmentListDTO, error) {
	canonical, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(uc.store.ByDate(canonical)), nil
}

// ByMonth returns the appointments of a calendar month.
func (uc *ListAppointments) ByMonth(year, month int) ([]dto.AppointmentListDTO, error) {
	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}
	return dto.FromAppointments(uc.store.ByMonth(year, month)), nil
}
