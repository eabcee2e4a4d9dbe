package cronwhen

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNoOpLogger(_ *testing.T) {
	noOp := noOpLogger{}
	noOp.Debug("debug", "arg1", "arg2")
	noOp.Error("error", "arg1", "arg2")
	noOp.Info("info", "arg1", "arg2")
	noOp.Warn("warn", "arg1", "arg2")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name          string
		level         LogLevel
		expectedLines int
	}{
		{"error only", LogLevelError, 1},
		{"warn", LogLevelWarn, 2},
		{"info", LogLevelInfo, 3},
		{"debug", LogLevelDebug, 4},
		{"below error", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			orig := log.Writer()
			log.SetOutput(&buf)
			defer log.SetOutput(orig)

			l := NewLogger(tt.level)
			l.Error("err", "k", "v")
			l.Warn("warn")
			l.Info("info", "odd")
			l.Debug("debug", "k", 1)

			lines := strings.Count(buf.String(), "\n")
			assert.Equal(t, tt.expectedLines, lines)
		})
	}
}

func TestLogFormatArgs(t *testing.T) {
	assert.Equal(t, "", logFormatArgs())
	assert.Equal(t, ", k=v", logFormatArgs("k", "v"))
	assert.Equal(t, ", k=1, j=2", logFormatArgs("k", 1, "j", 2))
	assert.Equal(t, ", odd", logFormatArgs("odd"))
}

func TestNewZapLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapLogger(zap.New(core).Sugar())

	l.Debug("validation ok", "expression", "* * * * *")
	l.Info("hello")
	l.Warn("careful", "k", "v")
	l.Error("bad", "k", "v")

	assert.Equal(t, 4, logs.Len())
	first := logs.All()[0]
	assert.Equal(t, "validation ok", first.Message)
	assert.Equal(t, "* * * * *", first.ContextMap()["expression"])
}
