package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected *zapcore.Level
	}{
		{"debug", levelPtr(zapcore.DebugLevel)},
		{"info", levelPtr(zapcore.InfoLevel)},
		{"warn", levelPtr(zapcore.WarnLevel)},
		{"error", levelPtr(zapcore.ErrorLevel)},
		{"verbose", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *got)
				}
				return
			}
			if got == nil || *got != *tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, *tt.expected)
			}
		})
	}
}

func TestNewBuildsBothModes(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		l := New("warn", pretty)
		if l == nil {
			t.Fatalf("New(warn, %v) returned nil", pretty)
		}
		child := l.With(String("book_id", "abc"))
		child.Debug("dropped below warn")
		_ = l.Sync()
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("nothing", Int("n", 1), Bool("ok", true))
	l.With(Error(nil)).Warnf("still nothing %d", 2)
}

func levelPtr(l zapcore.Level) *zapcore.Level { return &l }
