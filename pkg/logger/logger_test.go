package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn, true)

	l.Info("hidden")
	l.Warn("shown", "path", "file.txt")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output %q contains message below level", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=file.txt") {
		t.Errorf("output %q missing warn record", out)
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	defer slog.SetDefault(old)
	slog.SetDefault(New(&buf, slog.LevelDebug, true))

	Named("csvfile").Debug("hello")

	if !strings.Contains(buf.String(), "name=csvfile") {
		t.Errorf("output %q missing name attribute", buf.String())
	}
}
