// Package logger provides structured JSON logging for the atltech CLI.
//
// Log entries go to stderr as one JSON object per line so they never mix
// with command output on stdout. The package also keeps simple named
// counters (rows skipped, entries per category, pages scraped) that commands
// can dump in verbose mode.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"
)

// Level represents log severity.
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

// Fields carries structured context for a log entry.
type Fields map[string]interface{}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Logger writes structured log entries at or above a minimum level.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
	counters map[string]int64
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a Logger writing to output; messages below level are dropped.
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
		counters: make(map[string]int64),
	}
}

// SetDefault replaces the package-level logger used by the convenience
// functions.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, marshalErr := json.Marshal(e)
	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			e.Timestamp, e.Level, e.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// Debug logs diagnostic detail.
func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }

// Info logs operational information.
func (l *Logger) Info(message string, fields Fields) { l.log(LevelInfo, message, fields, nil) }

// Warn logs a condition that did not stop the run.
func (l *Logger) Warn(message string, fields Fields) { l.log(LevelWarn, message, fields, nil) }

// Error logs a failure, attaching err when non-nil.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// IncrCounter adds n to a named counter.
func (l *Logger) IncrCounter(name string, n int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counters[name] += n
}

// Counters returns a copy of all counters.
func (l *Logger) Counters() map[string]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int64, len(l.counters))
	for k, v := range l.counters {
		out[k] = v
	}
	return out
}

// DumpCounters logs every counter at debug level, in stable name order.
func (l *Logger) DumpCounters() {
	counters := l.Counters()
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		l.Debug("counter", Fields{"name": name, "value": counters[name]})
	}
}

// Package-level convenience functions using the default logger.

func Debug(message string, fields Fields)            { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)             { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)             { defaultLogger.Warn(message, fields) }
func Error(message string, fields Fields, err error) { defaultLogger.Error(message, fields, err) }
func IncrCounter(name string, n int64)               { defaultLogger.IncrCounter(name, n) }
func DumpCounters()                                  { defaultLogger.DumpCounters() }
