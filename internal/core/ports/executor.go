// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Executor defines the interface for running external toolchain processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the invocation with the process working directory set to inv.Dir
	// and restores the previous working directory afterwards, whatever the result.
	//
	// A non-zero exit is reported as domain.ErrProcessFailed with an "exit_code" field.
	Run(ctx context.Context, inv domain.Invocation) error

	// Output executes the invocation like Run and returns its standard output.
	Output(ctx context.Context, inv domain.Invocation) ([]byte, error)
}
