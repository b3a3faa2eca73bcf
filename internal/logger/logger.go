// Package logger holds the module-wide structured logger. Library code logs
// through L; nothing is emitted until a host calls Init.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "wininterop-"
	logSuffix     = ".log"
	retentionDays = 14
)

// file is the log file opened by Init, if any.
var file *os.File

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination. When nil, a dated file under LogDir is used
	LogDir  string     // Directory for log files. Default: %LOCALAPPDATA%\wininterop\logs (or ~/.wininterop/logs)
	Level   slog.Level // Minimum log level. Zero means LevelInfo
}

// Init configures logging. Call before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	w := opts.Writer
	if w == nil {
		logDir := opts.LogDir
		if logDir == "" {
			dir, err := defaultLogDir()
			if err != nil {
				return err
			}
			logDir = dir
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return err
		}

		// Clean up old logs (best-effort, ignore errors)
		cleanOldLogs(logDir)

		name := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
		f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		file = f
		w = f
	}

	L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close releases the log file opened by Init and restores the discarding logger.
func Close() error {
	L = slog.New(slog.DiscardHandler)
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func defaultLogDir() (string, error) {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return filepath.Join(dir, "wininterop", "logs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wininterop", "logs"), nil
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: wininterop-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}
