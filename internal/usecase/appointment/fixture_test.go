package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var testNow = time.Date(2024, 1, 10, 8, 10, 0, 0, time.Local)

type fixture struct {
	store   *domain.Store
	repo    *infraRepo.AppointmentMemoryRepository
	pending *infraRepo.PendingMemoryRepository

	book   *BookAppointment
	accept *AcceptSuggestion
	reject *RejectSuggestions
}

func sequentialIDs() domain.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newFixture(t *testing.T, existing ...domain.Appointment) *fixture {
	t.Helper()
	return newFixtureWithRepo(t, nil, existing...)
}

func newFixtureWithRepo(t *testing.T, repo domain.Repository, existing ...domain.Appointment) *fixture {
	t.Helper()

	store, rejected := domain.NewStore(existing)
	require.Empty(t, rejected)

	clock := timezone.FixedClock{At: testNow}
	ids := sequentialIDs()

	suggester, err := domain.NewSuggester(domain.DefaultPolicy(), clock.Now, ids)
	require.NoError(t, err)

	mem := infraRepo.NewAppointmentMemoryRepository(existing...)
	if repo == nil {
		repo = mem
	}
	pending := infraRepo.NewPendingMemoryRepository(15*time.Minute, clock.Now)
	persister := NewPersister(repo, zap.NewNop())

	return &fixture{
		store:   store,
		repo:    mem,
		pending: pending,
		book:    NewBookAppointment(store, suggester, pending, persister, clock, ids, nil),
		accept:  NewAcceptSuggestion(store, pending, persister, nil),
		reject:  NewRejectSuggestions(pending, nil),
	}
}

type failingRepository struct{}

func (failingRepository) Load(context.Context) ([]domain.Appointment, error) { return nil, nil }

func (failingRepository) Save(context.Context, []domain.Appointment) error {
	return errors.New("disk full")
}
