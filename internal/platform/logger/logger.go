// Package logger provides level-prefixed logging for the game.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger wraps one log.Logger per level.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing info and warnings to stdout and errors to stderr.
func NewLogger() *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stdout, "[KABOOM-INFO] ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "[KABOOM-WARN] ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "[KABOOM-ERROR] ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// New creates a logger writing every level to w.
func New(w io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "[KABOOM-INFO] ", 0),
		warnLogger:  log.New(w, "[KABOOM-WARN] ", 0),
		errorLogger: log.New(w, "[KABOOM-ERROR] ", 0),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.infoLogger.Printf(format, args...)
}

// Warnf logs a formatted warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Event logs a gameplay event for one session.
func (l *Logger) Event(eventType string, sessionID string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Session:%s | %s", eventType, sessionID, details)
}
