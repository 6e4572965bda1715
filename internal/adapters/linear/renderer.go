// Package linear provides a synchronous, line-buffered renderer for CI environments.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/sdkbuild/internal/ui/output"
	"go.trai.ch/sdkbuild/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for CI/non-interactive environments.
// It outputs linear, chronological logs with target name prefixes.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	targets map[string]time.Time
	buffers map[string]*bytes.Buffer
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, output.ColorProfileANSI),
		targets: make(map[string]time.Time),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name := range r.buffers {
		r.flushBufferLocked(name)
	}
	return nil
}

// OnPlanEmit prints the planned targets.
func (r *Renderer) OnPlanEmit(targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning to build %d target(s): %s\n",
		len(targets), strings.Join(targets, ", "))
}

// OnTargetStart prints a target start message.
func (r *Renderer) OnTargetStart(name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.targets[name] = startTime
	r.buffers[name] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnTargetLog buffers log data and prints complete lines with the target prefix.
func (r *Renderer) OnTargetLog(name string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf, ok := r.buffers[name]
	if !ok {
		return
	}
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[name] = rest
			}
			break
		}
		r.printLineLocked(name, line)
	}
}

// OnTargetComplete flushes the remaining buffer and prints the completion status.
func (r *Renderer) OnTargetComplete(name string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startTime, ok := r.targets[name]
	if !ok {
		return
	}
	r.flushBufferLocked(name)

	duration := endTime.Sub(startTime)
	prefix := fmt.Sprintf("[%s]", name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %s\n",
			prefix, symbol, duration, headline(err))
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n",
			prefix, symbol, duration)
	}

	delete(r.targets, name)
	delete(r.buffers, name)
}

// OnSummary prints one line per target and the overall tally.
func (r *Renderer) OnSummary(outcomes []domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	failed := 0
	_, _ = fmt.Fprintln(r.stderr, r.output.String("Summary").Bold().String())
	for _, o := range outcomes {
		duration := o.Duration.Round(time.Millisecond)
		if o.Failed() {
			failed++
			symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
			_, _ = fmt.Fprintf(r.stderr, "  %s %s failed while %s (%v): %s\n",
				symbol, o.Target, failedStage(o), duration, headline(o.Err))
			continue
		}
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "  %s %s (%v, %d artifact(s))\n",
			symbol, o.Target, duration, len(o.Artifacts))
	}
	_, _ = fmt.Fprintf(r.stderr, "%d succeeded, %d failed\n", len(outcomes)-failed, failed)
}

func failedStage(o domain.Outcome) domain.Stage {
	if o.FailedStage == "" {
		return domain.StagePending
	}
	return o.FailedStage
}

// headline returns the first line of an error message.
func headline(err error) string {
	if err == nil {
		return "unknown error"
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

// flushBufferLocked flushes any remaining data in the buffer of a target.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(name string) {
	buf, ok := r.buffers[name]
	if !ok {
		return
	}
	if buf.Len() > 0 {
		r.printLineLocked(name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the target name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, string(line))
}
