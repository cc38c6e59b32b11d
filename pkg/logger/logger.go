// Package logger provides the service-wide leveled logger. The printf-style
// surface stays deliberately small so that packages can depend on a local
// Logger interface instead of a concrete implementation.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger behind a printf-style API.
type Logger struct {
	zl *zap.SugaredLogger
}

// New builds a production JSON logger writing to stdout and, when file is
// non-empty, to that file as well. level is one of debug/info/warn/error;
// empty means info.
func New(file, level string) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: unknown level %q: %w", level, err)
		}
		lvl = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}

	return &Logger{zl: zl.Sugar()}, nil
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Errorf(format, v...)
}

// Fatal logs the message and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatalf(format, v...)
}

// Close flushes any buffered log entries.
func (l *Logger) Close() {
	_ = l.zl.Sync()
}
