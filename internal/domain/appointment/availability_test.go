package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, date, start, end string) Slot {
	t.Helper()
	slot, err := NewSlot(date, start, end)
	require.NoError(t, err)
	return slot
}

func TestIsSlotAvailable_BoundaryTouch(t *testing.T) {
	existing := []Appointment{
		{ID: "a", Date: "2024-01-10", StartTime: "08:30", EndTime: "09:00"},
	}

	assert.True(t, IsSlotAvailable(existing, mustSlot(t, "2024-01-10", "09:00", "09:30")))
	assert.False(t, IsSlotAvailable(existing, mustSlot(t, "2024-01-10", "08:45", "09:15")))
}

func TestIsSlotAvailable_ScenarioA(t *testing.T) {
	existing := []Appointment{
		{ID: "a", Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"},
	}
	slot := mustSlot(t, "2024-01-10", "09:15", "09:45")

	first := IsSlotAvailable(existing, slot)
	second := IsSlotAvailable(existing, slot)

	assert.False(t, first)
	assert.Equal(t, first, second)
}

func TestIsSlotAvailable_OtherDateIgnored(t *testing.T) {
	existing := []Appointment{
		{ID: "a", Date: "2024-01-11", StartTime: "09:00", EndTime: "09:30"},
	}
	assert.True(t, IsSlotAvailable(existing, mustSlot(t, "2024-01-10", "09:00", "09:30")))
	assert.True(t, IsSlotAvailable(nil, mustSlot(t, "2024-01-10", "09:00", "09:30")))
}

func TestFreeSlots(t *testing.T) {
	existing := []Appointment{
		{ID: "a", Date: "2024-01-10", StartTime: "08:15", EndTime: "09:00"},
	}
	hours, err := ParseBusinessHours("08:00", "10:00")
	require.NoError(t, err)

	slots := FreeSlots(existing, "2024-01-10", hours, 30)

	assert.Equal(t, []TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:30", End: "10:00"},
	}, slots)
}

func TestFreeSlots_NonPositiveStep(t *testing.T) {
	hours, err := ParseBusinessHours("08:00", "10:00")
	require.NoError(t, err)
	assert.Empty(t, FreeSlots(nil, "2024-01-10", hours, 0))
}

func TestParseBusinessHours(t *testing.T) {
	hours, err := ParseBusinessHours("08:00", "22:00")
	require.NoError(t, err)
	assert.True(t, hours.Contains(480, 510))
	assert.True(t, hours.Contains(1290, 1320))
	assert.False(t, hours.Contains(1305, 1335))
	assert.False(t, hours.Contains(450, 480+30))

	_, err = ParseBusinessHours("22:00", "08:00")
	assert.Error(t, err)
	_, err = ParseBusinessHours("8am", "22:00")
	assert.Error(t, err)
}
