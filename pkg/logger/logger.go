// Package logger holds the process-wide structured logger for the career
// backend. Init also installs it as the slog default, so package-level
// slog calls in the middleware and usecases emit JSON through the same
// handler as logger.Log.
package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}
