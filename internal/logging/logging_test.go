package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	if got, err := ParseLevel(""); err != nil || got != zapcore.InfoLevel {
		t.Fatalf("expected default info, got=%v err=%v", got, err)
	}
	if got, err := ParseLevel(" DEBUG "); err != nil || got != zapcore.DebugLevel {
		t.Fatalf("expected debug, got=%v err=%v", got, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew(t *testing.T) {
	l, err := New("warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected error to be enabled at warn level")
	}
}
