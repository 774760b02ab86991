package download

import "context"

// Status is the terminal state of one unit of work.
type Status string

// Terminal statuses. Every submitted unit ends in exactly one of these.
const (
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome is the result recorded for one unit of work. Outcomes are never
// dropped: RunAll produces exactly one per submitted unit.
type Outcome struct {
	ID     string // identifies the unit (share link, target path, ...)
	Status Status
	Err    error // cause, set only for StatusFailed
}

// Unit is one independently schedulable download task. Run reports whether
// the work completed or was skipped; a returned error marks the unit failed
// without affecting sibling units.
type Unit struct {
	ID  string
	Run func(ctx context.Context) (Status, error)
}
