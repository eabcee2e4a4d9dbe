package cronwhen

import (
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"
)

// Logger is the interface the engine logs through. Methods take a
// message and alternating key/value args, slog style. The default is a
// no-op logger; use NewLogger, NewZapLogger or your own implementation
// to see output.
type Logger interface {
	Debug(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

var _ Logger = (*noOpLogger)(nil)

type noOpLogger struct{}

func (l noOpLogger) Debug(_ string, _ ...interface{}) {}
func (l noOpLogger) Error(_ string, _ ...interface{}) {}
func (l noOpLogger) Info(_ string, _ ...interface{})  {}
func (l noOpLogger) Warn(_ string, _ ...interface{})  {}

// LogLevel is the threshold for the basic stdlib-backed logger.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var _ Logger = (*logger)(nil)

type logger struct {
	level LogLevel
}

// NewLogger returns a Logger backed by the standard library log package
// that drops everything above the given level.
func NewLogger(level LogLevel) Logger {
	return &logger{level: level}
}

func (l *logger) Debug(msg string, args ...interface{}) {
	if l.level < LogLevelDebug {
		return
	}
	log.Printf("DEBUG: %s%s\n", msg, logFormatArgs(args...))
}

func (l *logger) Error(msg string, args ...interface{}) {
	if l.level < LogLevelError {
		return
	}
	log.Printf("ERROR: %s%s\n", msg, logFormatArgs(args...))
}

func (l *logger) Info(msg string, args ...interface{}) {
	if l.level < LogLevelInfo {
		return
	}
	log.Printf("INFO: %s%s\n", msg, logFormatArgs(args...))
}

func (l *logger) Warn(msg string, args ...interface{}) {
	if l.level < LogLevelWarn {
		return
	}
	log.Printf("WARN: %s%s\n", msg, logFormatArgs(args...))
}

func logFormatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	if len(args)%2 != 0 {
		return ", " + fmt.Sprint(args...)
	}
	var pairs []string
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, fmt.Sprintf("%s=%v", args[i], args[i+1]))
	}
	return ", " + strings.Join(pairs, ", ")
}

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap sugared logger to the Logger interface.
func NewZapLogger(sugar *zap.SugaredLogger) Logger {
	return &zapLogger{sugar: sugar}
}

func (l *zapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugw(msg, args...)
}

func (l *zapLogger) Error(msg string, args ...interface{}) {
	l.sugar.Errorw(msg, args...)
}

func (l *zapLogger) Info(msg string, args ...interface{}) {
	l.sugar.Infow(msg, args...)
}

func (l *zapLogger) Warn(msg string, args ...interface{}) {
	l.sugar.Warnw(msg, args...)
}
