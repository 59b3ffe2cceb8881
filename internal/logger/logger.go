// Package logger provides structured JSON logging and run metrics for nba-stats.
//
// Each entry is one JSON object per line with a timestamp, level, message and optional
// fields. A Logger derived with With carries base fields (the CLI adds a run id) that
// every entry repeats. Entries below the logger's minimum level are discarded.
//
// Example usage:
//
//	logger.Info("Fetched stats", logger.Fields{
//	    "season": 2023,
//	    "rows": 539,
//	})
//
//	logger.Error("Fetch failed", logger.Fields{"season": 2023}, err)
//
//	logger.IncrCounter("cache.hit")
//	logger.RecordTiming("fetch.duration", time.Since(start))
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel converts a level name (any case) into a Level
func ParseLevel(name string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("unknown log level: %s", name)
	}
	return level, nil
}

// Fields represents structured log fields
type Fields map[string]interface{}

// LogEntry is the JSON shape of one line of output
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Logger writes entries at or above minLevel to output
type Logger struct {
	minLevel Level
	output   io.Writer
	base     Fields
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger that drops entries below level
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
	}
}

// With returns a logger that adds fields to every entry.
// Fields passed to an individual call take precedence.
func (l *Logger) With(fields Fields) *Logger {
	return &Logger{
		minLevel: l.minLevel,
		output:   l.output,
		base:     mergeFields(l.base, fields),
	}
}

// SetDefault replaces the logger behind the package-level functions
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// enabled reports whether entries at level pass the minimum level
func (l *Logger) enabled(level Level) bool {
	return levelRank[level] >= levelRank[l.minLevel]
}

func (l *Logger) write(level Level, message string, fields Fields, err error) {
	if !l.enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if len(l.base) > 0 {
		entry.Fields = mergeFields(l.base, fields)
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// mergeFields copies a then b into a new map
func mergeFields(a, b Fields) Fields {
	merged := make(Fields, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// Debug logs detail that is only useful when tracing a run
func (l *Logger) Debug(message string, fields Fields) {
	l.write(LevelDebug, message, fields, nil)
}

// Info logs a normal step of the run, such as a completed fetch
func (l *Logger) Info(message string, fields Fields) {
	l.write(LevelInfo, message, fields, nil)
}

// Warn is for problems the run recovers from, such as a chart that failed to render
func (l *Logger) Warn(message string, fields Fields) {
	l.write(LevelWarn, message, fields, nil)
}

// Error logs a failure together with the error that caused it
func (l *Logger) Error(message string, fields Fields, err error) {
	l.write(LevelError, message, fields, err)
}

// Debug logs with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs with the default logger
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}
