package logger

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerWithConfig(t *testing.T) {
	l := NewZerologLoggerWithConfig("test", "debug", "console")
	zl, ok := l.(*ZerologLogger)
	if !ok {
		t.Fatalf("expected *ZerologLogger got %T", l)
	}
	assert.Equal(t, zerolog.DebugLevel, zl.log.GetLevel())

	// Unknown levels fall back to info instead of failing.
	l = NewZerologLoggerWithConfig("test", "bogus", "json")
	assert.Equal(t, zerolog.InfoLevel, l.(*ZerologLogger).log.GetLevel())

	l.Debugf("suppressed at info level")
	l.Infof("visible at info level")
}

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	l.Debugf("debug")
	l.Debugw("debug", nil)
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")
}
