package orchestrator

import (
	"io"

	"go.trai.ch/sdkbuild/internal/core/ports"
)

// targetVertex mirrors subprocess output of one target to the renderer.
type targetVertex struct {
	ports.Vertex
	stdout io.Writer
	stderr io.Writer
}

func newTargetVertex(v ports.Vertex, name string, renderer ports.Renderer) *targetVertex {
	sink := rendererWriter{name: name, renderer: renderer}
	return &targetVertex{
		Vertex: v,
		stdout: io.MultiWriter(v.Stdout(), sink),
		stderr: io.MultiWriter(v.Stderr(), sink),
	}
}

func (v *targetVertex) Stdout() io.Writer { return v.stdout }

func (v *targetVertex) Stderr() io.Writer { return v.stderr }

type rendererWriter struct {
	name     string
	renderer ports.Renderer
}

func (w rendererWriter) Write(p []byte) (int, error) {
	w.renderer.OnTargetLog(w.name, p)
	return len(p), nil
}
