package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sdkbuild/internal/core/domain"
)

func TestStage_CanTransition(t *testing.T) {
	tests := []struct {
		from     domain.Stage
		to       domain.Stage
		expected bool
	}{
		{domain.StagePending, domain.StageGenerating, true},
		{domain.StageGenerating, domain.StageBuildingDebug, true},
		{domain.StageBuildingDebug, domain.StageBuildingRelease, true},
		{domain.StageBuildingRelease, domain.StageCollecting, true},
		{domain.StageCollecting, domain.StageDone, true},

		{domain.StagePending, domain.StageFailed, true},
		{domain.StageBuildingRelease, domain.StageFailed, true},

		{domain.StagePending, domain.StageBuildingDebug, false},
		{domain.StageBuildingDebug, domain.StageGenerating, false},
		{domain.StageGenerating, domain.StageCollecting, false},
		{domain.StageDone, domain.StageFailed, false},
		{domain.StageFailed, domain.StagePending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStage_IsTerminal(t *testing.T) {
	assert.True(t, domain.StageDone.IsTerminal())
	assert.True(t, domain.StageFailed.IsTerminal())
	assert.False(t, domain.StageCollecting.IsTerminal())
}

func TestBuildStage(t *testing.T) {
	assert.Equal(t, domain.StageBuildingDebug, domain.BuildStage(domain.ConfigDebug))
	assert.Equal(t, domain.StageBuildingRelease, domain.BuildStage(domain.ConfigRelease))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "INFO", domain.LogLevel(99).String())
}

func TestRequiredTools(t *testing.T) {
	assert.Equal(t, []domain.ToolKind{domain.ToolCMake, domain.ToolXcodeBuild}, domain.RequiredTools(domain.FamilyDesktopApple))
	assert.Equal(t, []domain.ToolKind{domain.ToolCMake, domain.ToolMSBuild}, domain.RequiredTools(domain.FamilyWindowsStore))
	assert.Equal(t, []domain.ToolKind{domain.ToolTizen}, domain.RequiredTools(domain.FamilyEmbeddedIDE))
	assert.Equal(t, []domain.ToolKind{domain.ToolCMake, domain.ToolMake}, domain.RequiredTools(domain.FamilyDesktopLinux))
	assert.Nil(t, domain.RequiredTools("unknown"))
}
