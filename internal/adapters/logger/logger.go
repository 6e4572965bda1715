// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/sdkbuild/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured fields, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger instance writing to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	entries, scope := collectErrorEntries(err)

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(entries), scope...)
}

type errorEntry struct {
	message string
	fields  []string
}

// collectErrorEntries walks the chain while errors report their own message.
// The first error that does not is rendered whole and ends the walk.
// Fields of a message-less wrapper, as produced by zerr.With on a plain error,
// are carried onto the next entry. Build context fields (target, stage,
// configuration, exit code) are returned separately as slog attributes so the
// handler can tag the headline with them; the outermost value of each wins.
func collectErrorEntries(err error) ([]errorEntry, []any) {
	var entries []errorEntry
	var scope []any
	seen := make(map[string]bool)
	var pending []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), fields: pending})
			break
		}

		fields := pending
		if md, ok := current.(metadataer); ok {
			for _, k := range sortedKeys(md.Metadata()) {
				v := md.Metadata()[k]
				if isScopeKey(k) {
					if !seen[k] {
						seen[k] = true
						scope = append(scope, slog.Any(k, v))
					}
					continue
				}
				fields = append(fields, fmt.Sprintf("%s=%v", k, v))
			}
		}
		next := errors.Unwrap(current)
		if m.Message() == "" && next != nil {
			pending = fields
			current = next
			continue
		}

		slices.Sort(fields)
		entries = append(entries, errorEntry{message: m.Message(), fields: fields})
		pending = nil
		current = next
	}
	return entries, scope
}

func sortedKeys(md map[string]any) []string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		first := msgLines[0]
		if len(entry.fields) > 0 {
			first += " (" + strings.Join(entry.fields, ", ") + ")"
		}

		if i == 0 {
			lines = append(lines, "Error: "+first)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+first)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
