package toolchain_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/sdkbuild/internal/core/ports/mocks"
	"go.trai.ch/sdkbuild/internal/engine/toolchain"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	executor *mocks.MockExecutor
	locator  *mocks.MockToolchainLocator
	fs       *mocks.MockFileSystem
	set      *toolchain.Set
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		executor: mocks.NewMockExecutor(ctrl),
		locator:  mocks.NewMockToolchainLocator(ctrl),
		fs:       mocks.NewMockFileSystem(ctrl),
	}
	f.set = toolchain.NewSet(f.executor, f.locator, f.fs)
	return f
}

func newJob(t *testing.T, name string) *domain.Job {
	t.Helper()
	target, ok := domain.DefaultRegistry(domain.HostLinux).Lookup(name)
	require.True(t, ok, "unknown target %s", name)
	return &domain.Job{Target: target, Settings: domain.DefaultSettings("/sdk")}
}

func (f *fixture) toolchain(t *testing.T, job *domain.Job) ports.Toolchain {
	t.Helper()
	tc, err := f.set.For(job.Target.Family)
	require.NoError(t, err)
	return tc
}

func (f *fixture) expectTool(kind domain.ToolKind, path string) {
	f.locator.EXPECT().Locate(gomock.Any(), kind, gomock.Any()).Return(path, nil)
}

func (f *fixture) expectRun(path, dir string, args ...string) *gomock.Call {
	return f.executor.EXPECT().Run(gomock.Any(), domain.Invocation{Path: path, Args: args, Dir: dir})
}

func TestSet_For(t *testing.T) {
	f := newFixture(t)

	families := map[domain.PlatformFamily]any{
		domain.FamilyDesktopApple:   &toolchain.Xcode{},
		domain.FamilyDesktopWindows: &toolchain.MSBuild{},
		domain.FamilyWindowsStore:   &toolchain.MSBuild{},
		domain.FamilyEmbeddedIDE:    &toolchain.Tizen{},
		domain.FamilyDesktopLinux:   &toolchain.Make{},
	}
	for family, want := range families {
		tc, err := f.set.For(family)
		require.NoError(t, err)
		assert.IsType(t, want, tc, string(family))
	}

	_, err := f.set.For("console")
	require.ErrorIs(t, err, domain.ErrUnsupportedTarget)
}

func TestDefines_ArgsSorted(t *testing.T) {
	defines := toolchain.Defines{
		"PLATFORM":             toolchain.String("uwp-x64-vc140-static"),
		"CMAKE_SYSTEM_VERSION": toolchain.String("10.0"),
		"CMAKE_SYSTEM_NAME":    toolchain.String("WindowsStore"),
		"GA_FLAG":              {Type: "BOOL", Value: "ON"},
	}

	assert.Equal(t, []string{
		"-DCMAKE_SYSTEM_NAME:STRING=WindowsStore",
		"-DCMAKE_SYSTEM_VERSION:STRING=10.0",
		"-DGA_FLAG:BOOL=ON",
		"-DPLATFORM:STRING=uwp-x64-vc140-static",
	}, defines.Args())
}

func TestXcode_GenerateAndBuild(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "osx-static")
	tc := f.toolchain(t, job)
	ctx := context.Background()
	buildDir := filepath.Join("/sdk", "build", "osx-static")

	f.expectTool(domain.ToolCMake, "/cmake/bin/cmake")
	f.expectRun("/cmake/bin/cmake", buildDir,
		filepath.Join("/sdk", "cmake", "gameanalytics"),
		"-DPLATFORM:STRING=osx-static",
		"-G", "Xcode",
	).Return(nil)
	require.NoError(t, tc.Generate(ctx, job))

	f.expectTool(domain.ToolXcodeBuild, "/usr/bin/xcodebuild")
	f.expectRun("/usr/bin/xcodebuild", buildDir, "-configuration", "Debug").Return(nil)
	require.NoError(t, tc.Build(ctx, job, domain.ConfigDebug))
}

func TestMSBuild_Desktop(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "win64-vc140-static")
	tc := f.toolchain(t, job)
	ctx := context.Background()
	buildDir := filepath.Join("/sdk", "build", "win64-vc140-static")

	f.expectTool(domain.ToolCMake, "cmake.exe")
	f.expectRun("cmake.exe", buildDir,
		filepath.Join("/sdk", "cmake", "gameanalytics"),
		"-DPLATFORM:STRING=win64-vc140-static",
		"-G", "Visual Studio 14 Win64",
	).Return(nil)
	require.NoError(t, tc.Generate(ctx, job))

	f.expectTool(domain.ToolMSBuild, "MSBuild.exe")
	f.expectRun("MSBuild.exe", buildDir,
		filepath.Join(buildDir, "GameAnalytics.sln"),
		"/m",
		"/t:GameAnalytics",
		"/p:Configuration=Release",
	).Return(nil)
	require.NoError(t, tc.Build(ctx, job, domain.ConfigRelease))
}

func TestMSBuild_StoreAddsSystemDefines(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "uwp-arm-vc140-static")
	tc := f.toolchain(t, job)

	f.expectTool(domain.ToolCMake, "cmake.exe")
	f.expectRun("cmake.exe", filepath.Join("/sdk", "build", "uwp-arm-vc140-static"),
		filepath.Join("/sdk", "cmake", "gameanalytics"),
		"-DCMAKE_SYSTEM_NAME:STRING=WindowsStore",
		"-DCMAKE_SYSTEM_VERSION:STRING=10.0",
		"-DPLATFORM:STRING=uwp-arm-vc140-static",
		"-G", "Visual Studio 14 ARM",
	).Return(nil)

	require.NoError(t, tc.Generate(context.Background(), job))
}

func TestMake_BuildPerConfiguration(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "linux-x86-shared")
	tc := f.toolchain(t, job)
	ctx := context.Background()
	dir := filepath.Join("/sdk", "build", "linux-x86-shared", "Release")

	require.NoError(t, tc.Generate(ctx, job))

	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolCMake, gomock.Any()).Return("/cmake/bin/cmake", nil)
	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolMake, gomock.Any()).Return("/usr/bin/make", nil).Times(2)
	gomock.InOrder(
		f.expectRun("/cmake/bin/cmake", dir,
			filepath.Join("/sdk", "cmake", "gameanalytics"),
			"-DCMAKE_BUILD_TYPE:STRING=Release",
			"-DCMAKE_CXX_FLAGS:STRING=-m32",
			"-DCMAKE_C_FLAGS:STRING=-m32",
			"-DPLATFORM:STRING=linux-x86-shared",
			"-G", "Unix Makefiles",
		).Return(nil),
		f.expectRun("/usr/bin/make", dir, "clean").Return(nil),
		f.expectRun("/usr/bin/make", dir).Return(nil),
	)

	require.NoError(t, tc.Build(ctx, job, domain.ConfigRelease))
}

func TestMake_ConfigureFailureStopsBuild(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "linux-x64-static")
	tc := f.toolchain(t, job)

	f.expectTool(domain.ToolCMake, "/cmake/bin/cmake")
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ErrProcessFailed)

	err := tc.Build(context.Background(), job, domain.ConfigDebug)
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}

func TestRun_ToolNotFound(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "osx-shared")
	tc := f.toolchain(t, job)

	f.locator.EXPECT().Locate(gomock.Any(), domain.ToolXcodeBuild, gomock.Any()).Return("", domain.ErrToolNotFound)

	err := tc.Build(context.Background(), job, domain.ConfigDebug)
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestSilentJobPropagates(t *testing.T) {
	f := newFixture(t)
	job := newJob(t, "osx-static")
	job.Silent = true
	tc := f.toolchain(t, job)

	f.expectTool(domain.ToolXcodeBuild, "/usr/bin/xcodebuild")
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) error {
			assert.True(t, inv.Silent)
			return nil
		})

	require.NoError(t, tc.Build(context.Background(), job, domain.ConfigRelease))
}
