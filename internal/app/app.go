package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// App holds the singletons shared by the HTTP server and the CLI.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	Clock     timezone.Clock
	Store     *domain.Store
	Repo      domain.Repository
	Pending   domain.PendingRepository
	Suggester *domain.Suggester
	Audit     *audit.Dispatcher

	Book         *ucAppointment.BookAppointment
	Accept       *ucAppointment.AcceptSuggestion
	Reject       *ucAppointment.RejectSuggestions
	Check        *ucAppointment.CheckSlot
	List         *ucAppointment.ListAppointments
	Availability *ucAppointment.GetAvailability

	closers []func() error
}

type options struct {
	clock   timezone.Clock
	ids     domain.IDGenerator
	repo    domain.Repository
	pending domain.PendingRepository
}

type Option func(*options)

// WithClock replaces the wall clock.
func WithClock(c timezone.Clock) Option { return func(o *options) { o.clock = c } }

// WithIDs replaces the id generator.
func WithIDs(ids domain.IDGenerator) Option { return func(o *options) { o.ids = ids } }

// WithRepositories bypasses STORE_DRIVER.
func WithRepositories(repo domain.Repository, pending domain.PendingRepository) Option {
	return func(o *options) {
		o.repo = repo
		o.pending = pending
	}
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...Option) (*App, error) {
	o := options{
		clock: timezone.NewSystemClock(cfg.Timezone),
		ids:   domain.NewID,
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Log: log, Clock: o.clock}
	sinks := []audit.Sink{audit.NewZapSink(log)}

	if o.repo != nil && o.pending != nil {
		a.Repo, a.Pending = o.repo, o.pending
	} else {
		extra, err := a.openRepositories(ctx)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		sinks = append(sinks, extra...)
	}

	if err := a.loadStore(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	suggester, err := domain.NewSuggester(cfg.Policy(), o.clock.Now, o.ids)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Suggester = suggester

	a.Audit = audit.NewDispatcher(log, sinks...)
	a.closers = append([]func() error{func() error { a.Audit.Close(); return nil }}, a.closers...)

	persister := ucAppointment.NewPersister(a.Repo, log)
	a.Book = ucAppointment.NewBookAppointment(a.Store, suggester, a.Pending, persister, o.clock, o.ids, a.Audit)
	a.Accept = ucAppointment.NewAcceptSuggestion(a.Store, a.Pending, persister, a.Audit)
	a.Reject = ucAppointment.NewRejectSuggestions(a.Pending, a.Audit)
	a.Check = ucAppointment.NewCheckSlot(a.Store)
	a.List = ucAppointment.NewListAppointments(a.Store)
	a.Availability = ucAppointment.NewGetAvailability(a.Store, cfg.Policy())

	return a, nil
}

// openRepositories connects the persistence collaborators selected by
// STORE_DRIVER and returns any extra audit sinks they provide.
func (a *App) openRepositories(ctx context.Context) ([]audit.Sink, error) {
	cfg := a.Config
	ttl := time.Duration(cfg.PendingTTLMinutes) * time.Minute
	memPending := func() domain.PendingRepository {
		return infraRepo.NewPendingMemoryRepository(ttl, a.Clock.Now)
	}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		a.Repo = infraRepo.NewAppointmentMemoryRepository()
		a.Pending = memPending()

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, client.Close)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.Repo = infraRepo.NewAppointmentRedisRepository(client, cfg.RedisStoreKey)
		a.Pending = infraRepo.NewPendingRedisRepository(client, ttl)

	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		a.Repo = infraRepo.NewAppointmentGormRepository(db)
		a.Pending = memPending()
		return []audit.Sink{audit.New(db)}, nil

	case config.DriverS3:
		client := infraRepo.NewS3Client(infraRepo.S3Options{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		a.Repo = infraRepo.NewAppointmentS3Repository(client, cfg.S3Bucket, cfg.S3Key)
		a.Pending = memPending()

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	return nil, nil
}

// loadStore seeds the store from the repository. An undecodable blob counts
// as no prior appointments.
func (a *App) loadStore(ctx context.Context) error {
	items, err := a.Repo.Load(ctx)
	if errors.Is(err, domain.ErrCorruptSnapshot) {
		a.Log.Warn("persisted appointments unreadable, starting empty", zap.Error(err))
		items, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("load appointments: %w", err)
	}

	store, rejected := domain.NewStore(items)
	for _, r := range rejected {
		a.Log.Warn("dropping persisted appointment",
			zap.String("id", r.Appointment.ID),
			zap.String("date", r.Appointment.Date),
			zap.Error(r.Reason),
		)
	}
	a.Store = store

	a.Log.Info("appointments loaded",
		zap.String("driver", a.Config.StoreDriver),
		zap.Int("count", store.Len()),
	)
	return nil
}

// Close flushes the audit queue and releases connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
