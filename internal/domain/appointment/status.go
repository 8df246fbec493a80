package appointment

import (
	"fmt"
	"slices"
)

// ===============================
// Booking workflow
// ===============================

// State is a step of the booking workflow:
// Idle -> Validating -> {Accepted, Conflicted} -> Idle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateAccepted   State = "accepted"
	StateConflicted State = "conflicted"
)

// Next reports the states reachable from s.
func (s State) Next() []State {
	switch s {
	case StateIdle:
		return []State{StateValidating}
	case StateValidating:
		return []State{StateIdle, StateAccepted, StateConflicted}
	case StateAccepted, StateConflicted:
		return []State{StateIdle}
	}
	return nil
}

// CanTransition reports whether the workflow may move from s to to.
func (s State) CanTransition(to State) bool {
	for _, n := range s.Next() {
		if n == to {
			return true
		}
	}
	return false
}

// Workflow follows a single booking through its states and refuses moves
// the state machine does not allow.
type Workflow struct {
	state State
	trail []State
}

func NewWorkflow() *Workflow {
	return &Workflow{state: StateIdle, trail: []State{StateIdle}}
}

func (w *Workflow) State() State {
	return w.state
}

// Trail returns every state visited so far, oldest first.
func (w *Workflow) Trail() []State {
	return slices.Clone(w.trail)
}

func (w *Workflow) To(next State) error {
	if !w.state.CanTransition(next) {
		return fmt.Errorf("booking workflow: %s -> %s not allowed", w.state, next)
	}
	w.state = next
	w.trail = append(w.trail, next)
	return nil
}
