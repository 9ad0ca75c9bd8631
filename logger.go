package kitchensage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ToolCallLogger records every tool call handled by a Dispatcher.
type ToolCallLogger interface {
	LogToolCall(call ToolCallLog) error
}

// NewToolCallLogFilePath returns a log file path named after the server so
// logs from different deployments are easy to tell apart.
func NewToolCallLogFilePath(server string) string {
	return fmt.Sprintf(
		"./logs/%d.%s.json",
		time.Now().Unix(),
		strings.NewReplacer(":", "_", "/", "_", " ", "_").Replace(strings.ToLower(server)),
	)
}

// OpenToolCallLog returns the logger selected by cfg.ToolLogPath and a
// cleanup function that flushes and closes it.
func OpenToolCallLog(cfg ServerConfig) (ToolCallLogger, func() error, error) {
	path := cfg.ToolLogPath
	switch path {
	case "":
		return NewNoOpToolCallLogger(), func() error { return nil }, nil
	case "auto":
		path = NewToolCallLogFilePath(cfg.Name)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewFileToolCallLogger(logFile)
	cleanup := func() error {
		return errors.Join(logger.Flush(), logFile.Close())
	}
	return logger, cleanup, nil
}

// ToolCallLog represents a single tool execution
type ToolCallLog struct {
	Name       string         `json:"name"`
	Timestamp  time.Time      `json:"timestamp"`
	DurationMS int64          `json:"duration_ms"`
	Input      map[string]any `json:"input"`
	Output     map[string]any `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// FileToolCallLogger accumulates tool calls and writes them as one JSON
// document on Flush.
type FileToolCallLogger struct {
	mu     sync.Mutex
	calls  []ToolCallLog
	writer io.Writer
}

func NewFileToolCallLogger(writer io.Writer) *FileToolCallLogger {
	return &FileToolCallLogger{
		calls:  make([]ToolCallLog, 0),
		writer: writer,
	}
}

// LogToolCall buffers the call (does not flush immediately)
func (l *FileToolCallLogger) LogToolCall(call ToolCallLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
	return nil
}

// Flush writes all buffered calls to the writer and clears the buffer.
func (l *FileToolCallLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"tool_session": map[string]any{
			"timestamp":  time.Now(),
			"tool_calls": l.calls,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tool call log: %w", err)
	}

	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write tool call log: %w", err)
	}

	l.calls = l.calls[:0]
	return nil
}

// NoOpToolCallLogger discards all log entries
type NoOpToolCallLogger struct{}

func NewNoOpToolCallLogger() *NoOpToolCallLogger {
	return &NoOpToolCallLogger{}
}

func (nop *NoOpToolCallLogger) LogToolCall(call ToolCallLog) error {
	return nil
}

// StdoutToolCallLogger writes each call as a JSON line (for Lambda/CloudWatch)
type StdoutToolCallLogger struct {
	mu  sync.Mutex
	out io.Writer
}

func NewStdoutToolCallLogger() *StdoutToolCallLogger {
	return &StdoutToolCallLogger{out: os.Stdout}
}

func (l *StdoutToolCallLogger) LogToolCall(call ToolCallLog) error {
	data, err := json.Marshal(call)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = fmt.Fprintln(l.out, string(data))
	return err
}
