package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
)

func seededStore(t *testing.T) *domain.Store {
	t.Helper()
	store, rejected := domain.NewStore([]domain.Appointment{
		{ID: "c", Date: "2024-01-10", StartTime: "14:00", EndTime: "15:00"},
		{ID: "a", Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"},
		{ID: "b", Date: "2024-01-11", StartTime: "08:00", EndTime: "08:30"},
		{ID: "d", Date: "2024-02-01", StartTime: "10:00", EndTime: "10:30"},
	})
	require.Empty(t, rejected)
	return store
}

func TestCheckSlot(t *testing.T) {
	uc := NewCheckSlot(seededStore(t))

	free, err := uc.Execute(SlotInput{Date: "2024-01-10", StartTime: "09:30", EndTime: "10:00"})
	require.NoError(t, err)
	assert.True(t, free)

	free, err = uc.Execute(SlotInput{Date: "2024-01-10", StartTime: "08:45", EndTime: "09:15"})
	require.NoError(t, err)
	assert.False(t, free)

	_, err = uc.Execute(SlotInput{Date: "2024-01-10", StartTime: "10:00"})
	assert.True(t, httperr.IsBusiness(err, "missing_fields"), err)
}

func TestListAppointments(t *testing.T) {
	uc := NewListAppointments(seededStore(t))

	all := uc.All()
	require.Len(t, all, 4)
	assert.Equal(t, "c", all[0].ID)

	day, err := uc.ByDate("2024-1-10")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, []string{"a", "c"}, []string{day[0].ID, day[1].ID})

	month, err := uc.ByMonth(2024, 1)
	require.NoError(t, err)
	assert.Len(t, month, 3)

	_, err = uc.ByDate("")
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
	_, err = uc.ByDate("10/01/2024")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	_, err = uc.ByMonth(1999, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_year"))
	_, err = uc.ByMonth(2024, 13)
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
}

func TestGetAvailability(t *testing.T) {
	uc := NewGetAvailability(seededStore(t), domain.DefaultPolicy())

	date, slots, err := uc.Execute("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", date)

	// 08:00-22:00 in 30 minute steps, minus 09:00 and the two halves of 14:00-15:00
	assert.Len(t, slots, 28-3)
	assert.Equal(t, domain.TimeSlot{Start: "08:00", End: "08:30"}, slots[0])
	for _, s := range slots {
		assert.NotEqual(t, "09:00", s.Start)
		assert.NotEqual(t, "14:00", s.Start)
		assert.NotEqual(t, "14:30", s.Start)
	}

	_, _, err = uc.Execute("")
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
}

func TestPersister_SkipsStaleSnapshots(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	p := NewPersister(repo, zap.NewNop())
	ctx := context.Background()

	newer := domain.Snapshot{Version: 2, Appointments: []domain.Appointment{
		{ID: "a", Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"},
		{ID: "b", Date: "2024-01-10", StartTime: "10:00", EndTime: "10:30"},
	}}
	older := domain.Snapshot{Version: 1, Appointments: newer.Appointments[:1]}

	require.NoError(t, p.Persist(ctx, newer))
	require.NoError(t, p.Persist(ctx, older))

	assert.Equal(t, 1, repo.Saves())
	saved, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestPersister_ReportsSaveError(t *testing.T) {
	p := NewPersister(failingRepository{}, zap.NewNop())

	err := p.Persist(context.Background(), domain.Snapshot{Version: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
