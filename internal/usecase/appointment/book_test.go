package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestBook_EmptyStoreAccepts(t *testing.T) {
	f := newFixture(t)

	out, err := f.book.Execute(context.Background(), BookAppointmentInput{
		Date: "2024-01-10", StartTime: "10:00", EndTime: "10:30", Description: " cleaning ",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateAccepted, out.State)
	assert.Equal(t, []domain.State{domain.StateIdle, domain.StateValidating, domain.StateAccepted}, out.Trail)
	require.NotNil(t, out.Appointment)
	assert.NotEmpty(t, out.Appointment.ID)
	assert.Equal(t, "cleaning", out.Appointment.Description)
	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, 1, f.repo.Saves())

	saved, err := f.repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.store.All(), saved)
}

func TestBook_InvertedRangeRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.book.Execute(context.Background(), BookAppointmentInput{
		Date: "2024-01-10", StartTime: "10:30", EndTime: "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"), err)
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.repo.Saves())
}

func TestBook_ConflictReturnsSuggestions(t *testing.T) {
	existing := domain.Appointment{ID: "a", Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"}
	f := newFixture(t, existing)

	out, err := f.book.Execute(context.Background(), BookAppointmentInput{
		Date: "2024-01-10", StartTime: "09:15", EndTime: "09:45", Description: "checkup",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateConflicted, out.State)
	assert.Equal(t, []domain.State{domain.StateIdle, domain.StateValidating, domain.StateConflicted}, out.Trail)
	assert.Nil(t, out.Appointment)
	assert.NotEmpty(t, out.BookingID)
	require.Len(t, out.Suggestions, 3)
	for _, s := range out.Suggestions {
		assert.NotEqual(t, "09:00", s.StartTime)
		assert.Equal(t, "checkup", s.Description)
	}
	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, 0, f.repo.Saves())
}

func TestBook_ValidationCodes(t *testing.T) {
	tests := []struct {
		name string
		in   BookAppointmentInput
		code string
	}{
		{"missing date", BookAppointmentInput{StartTime: "10:00", EndTime: "10:30"}, "missing_fields"},
		{"blank end", BookAppointmentInput{Date: "2024-01-10", StartTime: "10:00", EndTime: "  "}, "missing_fields"},
		{"bad date", BookAppointmentInput{Date: "2024-13-40", StartTime: "10:00", EndTime: "10:30"}, "invalid_date_or_time"},
		{"bad time", BookAppointmentInput{Date: "2024-01-10", StartTime: "25:00", EndTime: "25:30"}, "invalid_date_or_time"},
		{"equal times", BookAppointmentInput{Date: "2024-01-10", StartTime: "10:00", EndTime: "10:00"}, "invalid_time_range"},
		{"earlier today", BookAppointmentInput{Date: "2024-01-10", StartTime: "07:00", EndTime: "07:30"}, "in_the_past"},
		{"yesterday", BookAppointmentInput{Date: "2024-01-09", StartTime: "10:00", EndTime: "10:30"}, "in_the_past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.book.Execute(context.Background(), tt.in)
			code, ok := httperr.CodeOf(err)
			require.True(t, ok, err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, 0, f.store.Len())
		})
	}
}

func TestBook_StartingNowIsAllowed(t *testing.T) {
	f := newFixture(t)

	out, err := f.book.Execute(context.Background(), BookAppointmentInput{
		Date: "2024-01-10", StartTime: "08:10", EndTime: "08:40",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateAccepted, out.State)
}

func TestBook_CanonicalizesInput(t *testing.T) {
	f := newFixture(t)

	out, err := f.book.Execute(context.Background(), BookAppointmentInput{
		Date: "2024-1-10", StartTime: "9:00 am", EndTime: "09:30:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", out.Appointment.Date)
	assert.Equal(t, "09:00", out.Appointment.StartTime)
	assert.Equal(t, "09:30", out.Appointment.EndTime)
}

func TestBook_PersistenceFailureDoesNotFailBooking(t *testing.T) {
	f := newFixtureWithRepo(t, failingRepository{})

	out, err := f.book.Execute(context.Background(), BookAppointmentInput{
		Date: "2024-01-10", StartTime: "10:00", EndTime: "10:30",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateAccepted, out.State)
	assert.Equal(t, 1, f.store.Len())
}

func TestBook_AdjacentSlotsBothAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.book.Execute(ctx, BookAppointmentInput{Date: "2024-01-10", StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)
	out, err := f.book.Execute(ctx, BookAppointmentInput{Date: "2024-01-10", StartTime: "10:30", EndTime: "11:00"})
	require.NoError(t, err)

	assert.Equal(t, domain.StateAccepted, out.State)
	assert.Equal(t, 2, f.store.Len())
	assert.Equal(t, 2, f.repo.Saves())
}
