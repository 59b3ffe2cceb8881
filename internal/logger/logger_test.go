package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := buf.Len()

			logger.write(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > before
			if logged != tt.want {
				t.Errorf("write() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("fetch failed", Fields{"season": 2023}, errors.New("boom"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v, output %q", err, buf.String())
	}

	if entry.Level != "ERROR" || entry.Message != "fetch failed" || entry.Error != "boom" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Fields["season"] != float64(2023) {
		t.Errorf("season field = %v, want 2023", entry.Fields["season"])
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := New(LevelInfo, &buf)
	logger := base.With(Fields{"run_id": "abc", "stage": "fetch"})

	logger.Info("msg", Fields{"stage": "load"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry.Fields["run_id"] != "abc" {
		t.Errorf("run_id = %v, want abc", entry.Fields["run_id"])
	}
	if entry.Fields["stage"] != "load" {
		t.Errorf("stage = %v, call fields should win over base fields", entry.Fields["stage"])
	}

	buf.Reset()
	base.Info("plain", nil)
	if strings.Contains(buf.String(), "run_id") {
		t.Error("With() leaked fields into the parent logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" Warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	previous := defaultLogger
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(previous)

	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	if lines := strings.Count(buf.String(), "\n"); lines != 4 {
		t.Errorf("logged %d lines, want 4", lines)
	}
}
