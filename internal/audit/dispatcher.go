package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentConflict = "appointment_conflict"
	ActionSuggestionAccepted  = "suggestion_accepted"
	ActionSuggestionsRejected = "suggestions_rejected"
	ActionBookingRejected     = "booking_rejected"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher fans events out to its sinks from a background worker so that
// auditing never blocks or fails a booking.
type Dispatcher struct {
	sinks []Sink
	log   *zap.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Log(context.Background(), ev); err != nil {
				d.log.Warn("audit sink failed", zap.String("action", ev.Action), zap.Error(err))
			}
		}
	}
}

// Dispatch enqueues ev, dropping it when the queue is full or the
// dispatcher is closed. A nil Dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Debug("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
