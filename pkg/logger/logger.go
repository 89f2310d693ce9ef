package logger

import (
	"log/slog"
	"os"
)

// Logger — общий контракт логирования для всех слоёв приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// SlogLogger реализует Logger поверх стандартного slog.
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger() *SlogLogger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return &SlogLogger{log: slog.New(handler)}
}

func (l *SlogLogger) Debugf(format string, args ...any) {
	l.log.Debug(sprintf(format, args...))
}

func (l *SlogLogger) Infof(format string, args ...any) {
	l.log.Info(sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.log.Warn(sprintf(format, args...))
}

func (l *SlogLogger) Errorf(err error, format string, args ...any) {
	l.log.Error(sprintf(format, args...), slog.Any("error", err))
}
