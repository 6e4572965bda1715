package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/sdkbuild/internal/ui/output"
	"go.trai.ch/sdkbuild/internal/ui/style"
)

// Attribute keys that place a record inside a target build.
const (
	KeyTarget        = "target"
	KeyStage         = "stage"
	KeyConfiguration = "configuration"
	KeyExitCode      = "exit_code"
)

// PrettyHandler is a slog.Handler for build output. Records carrying a
// target, stage or configuration are tagged "[target stage configuration]",
// an exit code is appended to the headline and other attributes follow as key=value.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record. Only the first line of a multi-line message
// carries the tag and attributes.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var icon string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		icon = style.Cross + " "
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		icon = style.Warning + " "
		color = termenv.RGBColor(string(style.Yellow))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	var scope buildScope
	var rest []string
	add := func(attr slog.Attr) {
		if h.group == "" && scope.take(attr) {
			return
		}
		rest = append(rest, formatAttr(h.group, attr))
	}
	for _, attr := range h.attrs {
		add(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		add(attr)
		return true
	})

	head, body, multiline := strings.Cut(r.Message, "\n")

	var b strings.Builder
	b.WriteString(icon)
	b.WriteString(scope.tag())
	b.WriteString(head)
	if scope.exitCode != "" {
		b.WriteString(" (exit code " + scope.exitCode + ")")
	}
	if len(rest) > 0 {
		b.WriteString(" " + strings.Join(rest, " "))
	}
	if multiline {
		b.WriteString("\n" + body)
	}

	styled := h.out.String(b.String()).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: slices.Concat(h.attrs, attrs),
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
// Grouped attributes are never treated as build context.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// buildScope collects the build context attributes of one record.
// The first value of each key wins.
type buildScope struct {
	target        string
	stage         string
	configuration string
	exitCode      string
}

func (s *buildScope) take(attr slog.Attr) bool {
	var field *string
	switch attr.Key {
	case KeyTarget:
		field = &s.target
	case KeyStage:
		field = &s.stage
	case KeyConfiguration:
		field = &s.configuration
	case KeyExitCode:
		field = &s.exitCode
	default:
		return false
	}
	if *field == "" {
		*field = attr.Value.String()
	}
	return true
}

func (s buildScope) tag() string {
	parts := slices.DeleteFunc([]string{s.target, s.stage, s.configuration}, func(p string) bool {
		return p == ""
	})
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "] "
}

func isScopeKey(key string) bool {
	switch key {
	case KeyTarget, KeyStage, KeyConfiguration, KeyExitCode:
		return true
	}
	return false
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
