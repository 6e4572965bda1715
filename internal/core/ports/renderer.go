package ports

import (
	"time"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Renderer is the abstraction for human-facing run output.
// It decouples orchestration from presentation so CI logs and tests can share one event stream.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once with the ordered list of targets about to run.
	OnPlanEmit(targets []string)

	// OnTargetStart is called before a target's first stage.
	OnTargetStart(name string, startTime time.Time)

	// OnTargetLog is called with raw subprocess output of a target.
	// data may contain partial lines.
	OnTargetLog(name string, data []byte)

	// OnTargetComplete is called when a target reaches a terminal stage.
	OnTargetComplete(name string, endTime time.Time, err error)

	// OnSummary is called once at the end of the run.
	OnSummary(outcomes []domain.Outcome)

	// Stop flushes any buffered output.
	Stop() error
}
