package toolchain

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Define is a typed CMake cache entry.
type Define struct {
	Type  string
	Value string
}

// Defines maps cache entry names to their typed values.
type Defines map[string]Define

// String is a shorthand for a STRING define.
func String(value string) Define {
	return Define{Type: "STRING", Value: value}
}

// Args renders the defines as -D<KEY>:<TYPE>=<VALUE> in sorted key order.
func (d Defines) Args() []string {
	keys := slices.Sorted(maps.Keys(d))
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		def := d[k]
		args = append(args, "-D"+k+":"+def.Type+"="+def.Value)
	}
	return args
}

// platformDefines returns the defines every CMake invocation carries.
func platformDefines(t domain.Target) Defines {
	return Defines{"PLATFORM": String(t.Name)}
}

// cmakeArgs assembles a configure command line for the SDK's CMake project.
func cmakeArgs(job *domain.Job, defines Defines) []string {
	args := []string{job.Settings.CMakeSourceDir()}
	args = append(args, defines.Args()...)
	return append(args, "-G", job.Target.Generator)
}

// configure runs CMake for job in dir.
func (r runner) configure(ctx context.Context, job *domain.Job, dir string, defines Defines) error {
	return r.run(ctx, job, domain.ToolCMake, dir, cmakeArgs(job, defines)...)
}
