package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// NewFile returns a size-rotated log file writer. The terminal belongs to
// the game, so nothing is logged to stderr while it runs.
func NewFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

func New(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// EngineFile derives the engine log path from the application log path:
// /tmp/mines.log becomes /tmp/mines-engine.log.
func EngineFile(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-engine" + ext
}

// ConfigureLogrus silences l on its own output and sends its entries to a
// rotated file instead.
func ConfigureLogrus(l *logrus.Logger, path string, development bool) error {
	level := logrus.InfoLevel
	if development {
		level = logrus.DebugLevel
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}

	l.SetLevel(level)
	l.SetOutput(io.Discard)
	l.AddHook(hook)
	return nil
}
