package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the minimal leveled logger shared across pipeline components.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	Named(component string) Logger
}

type implLogger struct {
	logger    *log.Logger
	level     string
	component string
}

// New creates a Logger writing to stdout at the given minimum level.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger writing to w at the given minimum level.
func NewWithWriter(w io.Writer, level string) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

// Named returns a logger that prefixes messages with the component name.
func (l *implLogger) Named(component string) Logger {
	return &implLogger{logger: l.logger, level: l.level, component: component}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) printf(level, msg string, args ...any) {
	prefix := "[" + strings.ToUpper(level) + "] "
	if l.component != "" {
		prefix += l.component + ": "
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...any) {
	if l.shouldLog("debug") {
		l.printf("debug", msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.shouldLog("info") {
		l.printf("info", msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.shouldLog("warn") {
		l.printf("warn", msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.shouldLog("error") {
		l.printf("error", msg, args...)
	}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() Logger {
	return NewWithWriter(io.Discard, "error")
}
