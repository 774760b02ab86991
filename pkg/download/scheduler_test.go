package download

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll_OneOutcomePerUnit(t *testing.T) {
	const numUnits = 10
	sched := NewScheduler(4)

	units := make([]Unit, numUnits)
	for i := 0; i < numUnits; i++ {
		id := fmt.Sprintf("unit-%d", i)
		status := StatusCompleted
		if i%3 == 0 {
			status = StatusSkipped
		}
		units[i] = Unit{
			ID: id,
			Run: func(context.Context) (Status, error) {
				return status, nil
			},
		}
	}

	outcomes := sched.RunAll(context.Background(), units)
	require.Len(t, outcomes, numUnits)

	// Outcomes must be index-aligned with the input units.
	for i, outcome := range outcomes {
		assert.Equal(t, fmt.Sprintf("unit-%d", i), outcome.ID)
		if i%3 == 0 {
			assert.Equal(t, StatusSkipped, outcome.Status)
		} else {
			assert.Equal(t, StatusCompleted, outcome.Status)
		}
		assert.NoError(t, outcome.Err)
	}
}

func TestRunAll_ConcurrencyCeiling(t *testing.T) {
	const simultaneous = 3
	const numUnits = 20

	sched := NewScheduler(simultaneous)

	var active atomic.Int64
	var mu sync.Mutex
	peak := int64(0)

	units := make([]Unit, numUnits)
	for i := 0; i < numUnits; i++ {
		units[i] = Unit{
			ID: fmt.Sprintf("unit-%d", i),
			Run: func(context.Context) (Status, error) {
				cur := active.Add(1)
				mu.Lock()
				if cur > peak {
					peak = cur
				}
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				active.Add(-1)
				return StatusCompleted, nil
			},
		}
	}

	outcomes := sched.RunAll(context.Background(), units)
	require.Len(t, outcomes, numUnits)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(simultaneous),
		"more than %d units held the permit concurrently", simultaneous)
	assert.Greater(t, peak, int64(0))
}

func TestRunAll_GateSharedAcrossBatches(t *testing.T) {
	const simultaneous = 3
	const batches = 4
	const unitsPerBatch = 8

	sched := NewScheduler(simultaneous)

	var active atomic.Int64
	var mu sync.Mutex
	peak := int64(0)

	makeUnits := func() []Unit {
		units := make([]Unit, unitsPerBatch)
		for i := range units {
			units[i] = Unit{
				ID: fmt.Sprintf("unit-%d", i),
				Run: func(context.Context) (Status, error) {
					cur := active.Add(1)
					mu.Lock()
					if cur > peak {
						peak = cur
					}
					mu.Unlock()
					time.Sleep(5 * time.Millisecond)
					active.Add(-1)
					return StatusCompleted, nil
				},
			}
		}
		return units
	}

	var wg sync.WaitGroup
	for b := 0; b < batches; b++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes := sched.RunAll(context.Background(), makeUnits())
			assert.Len(t, outcomes, unitsPerBatch)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(simultaneous),
		"concurrent batches must share one permit gate")
	assert.Greater(t, peak, int64(0))
}

func TestRun_Isolation(t *testing.T) {
	out := Run(context.Background(), Unit{
		ID:  "panics",
		Run: func(context.Context) (Status, error) { panic("unexpected state") },
	})
	assert.Equal(t, "panics", out.ID)
	assert.Equal(t, StatusFailed, out.Status)
	require.Error(t, out.Err)
	assert.Contains(t, out.Err.Error(), "panicked")
}

func TestRunAll_FailureIsolation(t *testing.T) {
	sched := NewScheduler(2)

	boom := fmt.Errorf("remote exploded")
	units := []Unit{
		{ID: "ok", Run: func(context.Context) (Status, error) { return StatusCompleted, nil }},
		{ID: "fails", Run: func(context.Context) (Status, error) { return "", boom }},
		{ID: "panics", Run: func(context.Context) (Status, error) { panic("unexpected state") }},
		{ID: "also-ok", Run: func(context.Context) (Status, error) { return StatusSkipped, nil }},
	}

	outcomes := sched.RunAll(context.Background(), units)
	require.Len(t, outcomes, 4)

	assert.Equal(t, StatusCompleted, outcomes[0].Status)

	assert.Equal(t, StatusFailed, outcomes[1].Status)
	require.ErrorIs(t, outcomes[1].Err, boom)

	assert.Equal(t, StatusFailed, outcomes[2].Status)
	require.Error(t, outcomes[2].Err)
	assert.Contains(t, outcomes[2].Err.Error(), "panicked")

	assert.Equal(t, StatusSkipped, outcomes[3].Status)
}

func TestRunAll_Empty(t *testing.T) {
	sched := NewScheduler(3)
	outcomes := sched.RunAll(context.Background(), nil)
	assert.Empty(t, outcomes)
}

func TestNewScheduler_Default(t *testing.T) {
	assert.Equal(t, DefaultSimultaneous, NewScheduler(0).Simultaneous())
	assert.Equal(t, DefaultSimultaneous, NewScheduler(-2).Simultaneous())
	assert.Equal(t, 7, NewScheduler(7).Simultaneous())
}
