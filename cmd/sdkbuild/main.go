// Package main is the entry point for the sdkbuild tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkbuild/cmd/sdkbuild/commands"
	"go.trai.ch/sdkbuild/internal/app"
	"go.trai.ch/sdkbuild/internal/core/domain"
	_ "go.trai.ch/sdkbuild/internal/wiring"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailed
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrBuildExecutionFailed):
		// Per-target failures are already logged and summarized.
		return exitFailed
	case errors.Is(err, domain.ErrInvalidArguments), errors.Is(err, domain.ErrUnknownTarget):
		components.Logger.Error(err)
		return exitUsage
	default:
		components.Logger.Error(err)
		return exitFailed
	}
}
