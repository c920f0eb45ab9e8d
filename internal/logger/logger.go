package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a text logger writing to stdout and, when logPath is set, to
// that file too. An unknown level falls back to INFO with a warning. The
// returned close func releases the log file.
func Setup(logPath string, logLevel string) (*slog.Logger, func() error, error) {
	return setup(os.Stdout, logPath, logLevel)
}

func setup(console io.Writer, logPath string, logLevel string) (*slog.Logger, func() error, error) {
	out := console
	closeFn := func() error { return nil }

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, nil, fmt.Errorf("[logger] open %s: %w", logPath, err)
		}
		out = io.MultiWriter(console, logFile)
		closeFn = logFile.Close
	}

	level, levelErr := ParseLevel(logLevel)
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	if levelErr != nil {
		logger.Warn(levelErr.Error())
	}

	return logger, closeFn, nil
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to slog levels.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", levelStr)
	}
}
