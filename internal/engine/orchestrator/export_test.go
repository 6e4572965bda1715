package orchestrator

import "time"

// SetClock replaces the time source of o.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}
