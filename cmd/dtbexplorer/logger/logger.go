// Package logger provides an opt-in debug log for the TUI. Terminal UIs
// cannot write diagnostics to stdout, so enabled logs go to a dated file
// under ~/.dtbexplorer/logs instead.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L discards everything until Init enables file output.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	filePrefix    = "dtbexplorer-"
	fileSuffix    = ".log"
	retentionDays = 30
)

// Options configures Init.
type Options struct {
	Enabled bool
	LogDir  string     // default: ~/.dtbexplorer/logs
	Level   slog.Level // default: slog.LevelInfo
}

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".dtbexplorer", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	pruneOldLogs(dir)

	name := filepath.Join(dir, filePrefix+time.Now().Format("2006-01-02")+fileSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// pruneOldLogs removes dated log files past the retention window.
// Best effort; errors are ignored.
func pruneOldLogs(dir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		day, err := time.Parse("2006-01-02", strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
