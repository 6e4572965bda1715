package deps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkbuild/internal/adapters/deps"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	fs      *mocks.MockFileSystem
	locator *mocks.MockToolchainLocator
	logger  *mocks.MockLogger
	p       *deps.Preflight
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		fs:      mocks.NewMockFileSystem(ctrl),
		locator: mocks.NewMockToolchainLocator(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.p = deps.NewPreflight(f.fs, f.locator, f.logger)
	return f
}

func target(t *testing.T, name string) domain.Target {
	t.Helper()
	target, ok := domain.DefaultRegistry(domain.HostLinux).Lookup(name)
	require.True(t, ok)
	return target
}

func TestEnsure_LocatesEachToolOnce(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings("/sdk")
	ctx := context.Background()

	gomock.InOrder(
		f.fs.EXPECT().MkdirAll(settings.BuildRoot).Return(nil),
		f.fs.EXPECT().MkdirAll(settings.ExportRoot).Return(nil),
		f.fs.EXPECT().Exists(settings.CMakeRoot).Return(true),
		f.locator.EXPECT().Locate(ctx, domain.ToolCMake, settings).Return("/sdk/build/jenkins/cmake/bin/cmake", nil),
		f.locator.EXPECT().Locate(ctx, domain.ToolMake, settings).Return("/usr/bin/make", nil),
	)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	unavailable, err := f.p.Ensure(ctx, settings, []domain.Target{
		target(t, "linux-x64-static"),
		target(t, "linux-x64-shared"),
	})
	require.NoError(t, err)
	assert.Empty(t, unavailable)
}

func TestEnsure_MissingCMakeRoot(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings("/sdk")

	f.fs.EXPECT().MkdirAll(gomock.Any()).Return(nil).Times(2)
	f.fs.EXPECT().Exists(settings.CMakeRoot).Return(false)
	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolMake, settings).Return("/usr/bin/make", nil)
	f.logger.EXPECT().Warn(gomock.Any())
	f.logger.EXPECT().Info(gomock.Any())

	unavailable, err := f.p.Ensure(context.Background(), settings, []domain.Target{target(t, "linux-x86-static")})
	require.NoError(t, err)

	reason := unavailable["linux-x86-static"]
	require.ErrorIs(t, reason, domain.ErrDependencyMissing)
	require.ErrorIs(t, reason, domain.ErrToolNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, reason, &zErr)
	assert.Equal(t, "cmake", zErr.Metadata()["tool"])
	assert.NotEmpty(t, zErr.Metadata()["hint"])
}

func TestEnsure_MissingToolOnlyAffectsItsTargets(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings("/sdk")
	registry := domain.DefaultRegistry(domain.HostDarwin)

	f.fs.EXPECT().MkdirAll(gomock.Any()).Return(nil).Times(2)
	f.fs.EXPECT().Exists(settings.CMakeRoot).Return(true)
	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolCMake, settings).Return("/sdk/cmake", nil)
	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolXcodeBuild, settings).Return("/usr/bin/xcodebuild", nil)
	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolTizen, settings).
		Return("", zerr.Wrap(domain.ErrToolNotFound, "tizen root is not configured"))
	f.logger.EXPECT().Info(gomock.Any()).Times(2)
	f.logger.EXPECT().Warn(gomock.Any())

	unavailable, err := f.p.Ensure(context.Background(), settings, registry.HostTargets())
	require.NoError(t, err)

	assert.Len(t, unavailable, 4)
	for name, reason := range unavailable {
		tgt, _ := registry.Lookup(name)
		assert.Equal(t, domain.FamilyEmbeddedIDE, tgt.Family)
		require.ErrorIs(t, reason, domain.ErrToolNotFound)

		var zErr *zerr.Error
		require.ErrorAs(t, reason, &zErr)
		assert.Equal(t, name, zErr.Metadata()["target"])
	}
	assert.NotContains(t, unavailable, "osx-static")
	assert.NotContains(t, unavailable, "osx-shared")
}

func TestEnsure_NoTargetsOnlyCreatesRoots(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings("/sdk")

	f.fs.EXPECT().MkdirAll(settings.BuildRoot).Return(nil)
	f.fs.EXPECT().MkdirAll(settings.ExportRoot).Return(nil)

	unavailable, err := f.p.Ensure(context.Background(), settings, nil)
	require.NoError(t, err)
	assert.Empty(t, unavailable)
}

func TestEnsure_RootCreationFails(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings("/sdk")

	f.fs.EXPECT().MkdirAll(settings.BuildRoot).Return(zerr.Wrap(domain.ErrFileSystemConflict, "failed to create directory"))

	_, err := f.p.Ensure(context.Background(), settings, nil)
	require.ErrorIs(t, err, domain.ErrFileSystemConflict)
}

func TestEnsure_CancelledContext(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings("/sdk")
	f.fs.EXPECT().MkdirAll(gomock.Any()).Return(nil).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.p.Ensure(ctx, settings, []domain.Target{target(t, "linux-x64-static")})
	require.ErrorIs(t, err, context.Canceled)
}
