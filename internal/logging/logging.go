package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-term/internal/config"
)

// New builds the game logger. The terminal belongs to the UI, so entries
// only go to the rotating log file.
func New(config *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(config.Level())
	log.SetOutput(io.Discard)

	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create log directory: %w", err)
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if config.Development() {
		formatter = &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		}
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      config.Level(),
		Formatter:  formatter,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return log, nil
}

// NewConsole is the logger for start-up and shut-down, while the UI does
// not own the terminal.
func NewConsole(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}
