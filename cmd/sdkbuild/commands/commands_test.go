package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkbuild/cmd/sdkbuild/commands"
	"go.trai.ch/sdkbuild/internal/app"
	"go.trai.ch/sdkbuild/internal/build"
	"go.trai.ch/sdkbuild/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) (*app.Report, error)
	targets []string
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (*app.Report, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return &app.Report{}, nil
}

func (m *mockApp) Targets() []string {
	return m.targets
}

func TestCommands_Root(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*app.Report, error) {
				captured = opts
				return &app.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"-t", "osx-static", "--target", "tizen-arm-shared",
			"-s", "-v", "15.0", "-n", "--skip-dependencies", "-c", "ci.yaml",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"osx-static", "tizen-arm-shared"}, captured.Targets)
		assert.True(t, captured.Silent)
		assert.Equal(t, "15.0", captured.Toolset)
		assert.True(t, captured.SkipTizen)
		assert.True(t, captured.SkipDependencies)
		assert.Equal(t, "ci.yaml", captured.ConfigPath)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*app.Report, error) {
				captured = opts
				return &app.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(nil)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.Targets)
		assert.False(t, captured.Silent)
		assert.Equal(t, commands.DefaultConfigPath, captured.ConfigPath)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*app.Report, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-t", "osx-static"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		cli := commands.New(&mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*app.Report, error) {
				panic("should not be called")
			},
		})
		cli.SetArgs([]string{"--bogus"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*app.Report, error) {
				panic("should not be called")
			},
		})
		cli.SetArgs([]string{"osx-static"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("help lists host targets", func(t *testing.T) {
		cli := commands.New(&mockApp{targets: []string{"linux-x64-shared", "linux-x64-static"}})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"--help"})

		require.NoError(t, cli.Execute(context.Background()))
		out := buf.String()
		assert.Contains(t, out, "--notizen")
		assert.Contains(t, out, "Valid targets on this host:")
		assert.Contains(t, out, "linux-x64-shared")
		assert.Contains(t, out, "linux-x64-static")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"sdkbuild version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String())
}
