package domain

import "time"

// Stage is the position of one target in its build lifecycle.
type Stage string

const (
	// StagePending means the target has not started.
	StagePending Stage = "pending"
	// StageGenerating means project files are being generated.
	StageGenerating Stage = "generating"
	// StageBuildingDebug means the Debug configuration is being built.
	StageBuildingDebug Stage = "building-debug"
	// StageBuildingRelease means the Release configuration is being built.
	StageBuildingRelease Stage = "building-release"
	// StageCollecting means artifacts are being moved into the export tree.
	StageCollecting Stage = "collecting"
	// StageDone means every stage succeeded.
	StageDone Stage = "done"
	// StageFailed means a stage failed and the target was abandoned.
	StageFailed Stage = "failed"
)

var nextStage = map[Stage]Stage{
	StagePending:         StageGenerating,
	StageGenerating:      StageBuildingDebug,
	StageBuildingDebug:   StageBuildingRelease,
	StageBuildingRelease: StageCollecting,
	StageCollecting:      StageDone,
}

// BuildStage returns the building stage of a configuration.
func BuildStage(cfg Configuration) Stage {
	if cfg == ConfigRelease {
		return StageBuildingRelease
	}
	return StageBuildingDebug
}

// IsTerminal reports whether no further transition is possible.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// CanTransition reports whether s may move to next.
// Stages advance strictly in order; any non-terminal stage may fail.
func (s Stage) CanTransition(next Stage) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StageFailed {
		return true
	}
	return nextStage[s] == next
}

// Outcome is the result of orchestrating a single target.
type Outcome struct {
	Target string
	// Stage is the last stage reached: StageDone or StageFailed.
	Stage Stage
	// FailedStage is the stage that was running when the target failed.
	FailedStage Stage
	Err         error
	Artifacts   []Artifact
	Duration    time.Duration
}

// Failed reports whether the target did not complete.
func (o Outcome) Failed() bool {
	return o.Stage == StageFailed
}
