package appointment

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// Persister hands store snapshots to the repository one at a time and skips
// snapshots older than the last one written, so the newest list wins.
type Persister struct {
	mu    sync.Mutex
	repo  domain.Repository
	saved uint64
	log   *zap.Logger
}

func NewPersister(repo domain.Repository, log *zap.Logger) *Persister {
	return &Persister{repo: repo, log: log}
}

func (p *Persister) Persist(ctx context.Context, snap domain.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Version <= p.saved {
		return nil
	}
	if err := p.repo.Save(ctx, snap.Appointments); err != nil {
		return fmt.Errorf("save appointments v%d: %w", snap.Version, err)
	}
	p.saved = snap.Version
	return nil
}

// persistAfter saves snap without failing the caller: the in-memory store
// is authoritative and the next mutation retries with a newer list.
func (p *Persister) persistAfter(ctx context.Context, snap domain.Snapshot) {
	if err := p.Persist(ctx, snap); err != nil {
		p.log.Warn("appointment persistence failed", zap.Error(err))
	}
}
