package download

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultSimultaneous is the concurrency ceiling used when none is given.
const DefaultSimultaneous = 3

// Scheduler runs independent units of work under a global concurrency
// ceiling. A counting permit is acquired before a unit starts and released
// unconditionally when it finishes, so the ceiling holds even under failure.
// The permit gate is a single semaphore shared by every RunAll call on the
// same scheduler: concurrent batches never exceed the ceiling combined.
type Scheduler struct {
	simultaneous int64
	sem          *semaphore.Weighted
}

// NewScheduler creates a scheduler that runs at most simultaneous units
// concurrently, across all batches submitted to it.
func NewScheduler(simultaneous int) *Scheduler {
	if simultaneous <= 0 {
		simultaneous = DefaultSimultaneous
	}
	return &Scheduler{
		simultaneous: int64(simultaneous),
		sem:          semaphore.NewWeighted(int64(simultaneous)),
	}
}

// Simultaneous returns the configured concurrency ceiling.
func (s *Scheduler) Simultaneous() int {
	return int(s.simultaneous)
}

// RunAll executes all units and returns one outcome per unit, index-aligned
// with the input even though execution order is not guaranteed. One unit
// failing (or panicking) never aborts its siblings. RunAll returns only
// after every unit has reached a terminal outcome.
func (s *Scheduler) RunAll(ctx context.Context, units []Unit) []Outcome {
	outcomes := make([]Outcome, len(units))
	var wg sync.WaitGroup

	for i := range units {
		wg.Add(1)
		go func(i int, unit Unit) {
			defer wg.Done()
			if err := s.sem.Acquire(ctx, 1); err != nil {
				outcomes[i] = Outcome{ID: unit.ID, Status: StatusFailed, Err: err}
				return
			}
			defer s.sem.Release(1)
			outcomes[i] = runIsolated(ctx, unit)
		}(i, units[i])
	}

	wg.Wait()
	return outcomes
}

// Run executes one unit to a terminal outcome without drawing a permit. It
// is meant for coordinating units whose actual transfers run inside nested
// RunAll batches: those batches draw from the shared gate, and holding an
// extra permit at the coordinating level would starve them. The unit still
// gets the same error and panic isolation as scheduled units.
func Run(ctx context.Context, unit Unit) Outcome {
	return runIsolated(ctx, unit)
}

// runIsolated converts every failure mode of a unit, including a panic, into
// a Failed outcome for that unit's slot.
func runIsolated(ctx context.Context, unit Unit) (out Outcome) {
	out = Outcome{ID: unit.ID}
	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Err = fmt.Errorf("unit of work panicked: %v", r)
		}
	}()

	status, err := unit.Run(ctx)
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}
	out.Status = status
	return out
}
