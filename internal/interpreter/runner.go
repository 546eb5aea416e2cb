package interpreter

import (
	"context"
	"sync"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
)

// Runner interprets and dispatches commands, one at a time per owner.
type Runner struct {
	interpreter *Interpreter
	dispatcher  *Dispatcher
	now         func() time.Time

	mu       sync.Mutex
	inFlight map[domain.OwnerID]struct{}
}

// NewRunner creates a runner. A nil clock uses time.Now.
func NewRunner(interpreter *Interpreter, dispatcher *Dispatcher, clock func() time.Time) *Runner {
	if clock == nil {
		clock = time.Now
	}
	return &Runner{
		interpreter: interpreter,
		dispatcher:  dispatcher,
		now:         clock,
		inFlight:    make(map[domain.OwnerID]struct{}),
	}
}

func (r *Runner) acquire(owner domain.OwnerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.inFlight[owner]; busy {
		return false
	}
	r.inFlight[owner] = struct{}{}
	return true
}

func (r *Runner) release(owner domain.OwnerID) {
	r.mu.Lock()
	delete(r.inFlight, owner)
	r.mu.Unlock()
}

// Run interprets text for owner and applies the result. loc is the caller's
// time zone and defines today. A second call for the same owner while one is
// pending fails with a conflict error.
func (r *Runner) Run(ctx context.Context, owner domain.OwnerID, text string, loc *time.Location) (*Outcome, error) {
	if owner == "" {
		return nil, errors.NewAuthError("request has no owner identity", nil)
	}
	if loc == nil {
		loc = time.UTC
	}

	if !r.acquire(owner) {
		return nil, errors.NewConflictError("run command", "another command is still being processed")
	}
	defer r.release(owner)

	now := r.now().In(loc)
	cmd := r.interpreter.Interpret(ctx, text, now)
	return r.dispatcher.Dispatch(ctx, owner, cmd, now)
}
