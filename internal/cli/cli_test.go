package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/app"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type harness struct {
	repo *infraRepo.AppointmentMemoryRepository
	open func(ctx context.Context, verbose bool) (*app.App, error)
}

func newHarness(t *testing.T, existing ...domain.Appointment) *harness {
	t.Helper()
	clock := timezone.FixedClock{At: time.Date(2024, 1, 10, 8, 10, 0, 0, time.Local)}
	repo := infraRepo.NewAppointmentMemoryRepository(existing...)
	pending := infraRepo.NewPendingMemoryRepository(time.Minute, clock.Now)

	cfg := &config.Config{
		StoreDriver:         config.DriverMemory,
		PendingTTLMinutes:   15,
		SuggestStepMinutes:  30,
		SuggestHorizonHours: 4,
		DayStartTime:        "08:00",
		DayEndTime:          "22:00",
		SuggestMax:          3,
	}
	return &harness{
		repo: repo,
		open: func(ctx context.Context, _ bool) (*app.App, error) {
			return app.New(ctx, cfg, zap.NewNop(), app.WithClock(clock), app.WithRepositories(repo, pending))
		},
	}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommandWith(&RootOptions{Open: h.open})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBookAndList(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "book", "2024-01-10", "10:00", "10:30", "--description", "cleaning")
	require.NoError(t, err)
	assert.Contains(t, out, "booked ")
	assert.Contains(t, out, "2024-01-10 10:00-10:30  cleaning")

	out, err = h.run(t, "list", "--format", "json")
	require.NoError(t, err)
	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "10:00", items[0]["start_time"])
}

func TestBookConflictAccept(t *testing.T) {
	h := newHarness(t, domain.Appointment{ID: "a", Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"})

	out, err := h.run(t, "book", "2024-01-10", "09:15", "09:45")
	require.NoError(t, err)
	assert.Contains(t, out, "slot taken")
	assert.Contains(t, out, "3) ")
	assert.Equal(t, 0, h.repo.Saves())

	out, err = h.run(t, "book", "2024-01-10", "09:15", "09:45", "--accept", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "booked suggestion")
	assert.Contains(t, out, "09:30-10:00")
	assert.Equal(t, 1, h.repo.Saves())
}

func TestCheckAndAvailability(t *testing.T) {
	h := newHarness(t, domain.Appointment{ID: "a", Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"})

	out, err := h.run(t, "check", "2024-01-10", "09:00", "09:30")
	require.NoError(t, err)
	assert.Equal(t, "taken\n", out)

	out, err = h.run(t, "availability", "2024-01-10")
	require.NoError(t, err)
	assert.Contains(t, out, "27 free slot(s)")

	out, err = h.run(t, "suggest", "2024-01-10")
	require.NoError(t, err)
	assert.Contains(t, out, "08:00-08:30")
}

func TestInvalidInput(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "book", "2024-01-10", "10:30", "10:00")
	assert.EqualError(t, err, "invalid_time_range")

	_, err = h.run(t, "list", "--format", "xml")
	assert.Error(t, err)

	_, err = h.run(t, "list", "--month", "January")
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "token")
	assert.Error(t, err)

	out, err := h.run(t, "token", "--secret", "s3cret", "--subject", "desk")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
