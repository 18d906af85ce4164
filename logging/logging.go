/*
Copyright © 2025 LiamStanDev <liamstandev@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package logging implements the icpp console logger. Diagnostics go to
// stderr with an optional colored level prefix; command output goes to
// stdout. Commands log through the context functions (InfoContext and
// friends) so the configured logger follows the cobra command context.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity of a log message.
type LogLevel int

// OutputType selects how log lines are rendered.
type OutputType int

// Output formats.
const (
	PlainOutput OutputType = iota
	ColorOutput
	JSONOutput
)

// Severity levels, ordered from least to most severe.
const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the level name used in log prefixes.
func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// CustomLogger renders diagnostics to ConsoleWriter and data to stdout.
type CustomLogger struct {
	mu            sync.Mutex
	LogLevel      slog.Level
	OutputType    OutputType
	Quiet         bool
	ConsoleWriter io.Writer
	Verbose       bool
}

// NewCustomLogger returns a plain-output logger writing to stderr.
func NewCustomLogger(level slog.Level) *CustomLogger {
	return &CustomLogger{
		LogLevel:      level,
		OutputType:    PlainOutput,
		ConsoleWriter: os.Stderr,
	}
}

// NewCustomLoggerWithOptions builds a logger from the root command's
// logging flags. Verbose lowers the level floor to debug; quiet mutes
// everything below error.
func NewCustomLoggerWithOptions(levelStr, format string, quiet, verbose bool) *CustomLogger {
	level := DetermineLogLevel(levelStr)

	outputType := PlainOutput
	switch format {
	case "json":
		outputType = JSONOutput
	case "color":
		outputType = ColorOutput
	case "text", "plain":
		outputType = PlainOutput
	}

	if verbose && level > slog.LevelDebug {
		level = slog.LevelDebug
	}

	return &CustomLogger{
		LogLevel:      level,
		OutputType:    outputType,
		Quiet:         quiet,
		ConsoleWriter: os.Stderr,
		Verbose:       verbose,
	}
}

// DetermineLogLevel converts a level string to a slog.Level, defaulting
// to info for anything unrecognized.
func DetermineLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatMessage renders the message, adding a colored level prefix for
// color output. Plain and JSON output carry the message as-is.
func (l *CustomLogger) formatMessage(level LogLevel, message string, args ...interface{}) string {
	msg := fmt.Sprintf(message, args...)

	if l.OutputType != ColorOutput {
		return msg
	}

	switch level {
	case DebugLevel:
		return color.HiBlackString("[DEBUG] %s", msg)
	case InfoLevel:
		return color.HiGreenString("[INFO] %s", msg)
	case WarnLevel:
		return color.HiYellowString("[WARN] %s", msg)
	case ErrorLevel:
		return color.HiRedString("[ERROR] %s", msg)
	default:
		return msg
	}
}

// visibleLocked reports whether a message at the given level reaches the
// console. Callers must hold l.mu.
// Quiet shows only errors; verbose shows everything; the default floor
// is info.
func (l *CustomLogger) visibleLocked(level LogLevel) bool {
	if l.Quiet {
		return level == ErrorLevel
	}
	if l.Verbose {
		return true
	}
	return level >= InfoLevel
}

func (l *CustomLogger) log(level LogLevel, message string, args ...interface{}) {
	msg := l.formatMessage(level, message, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.visibleLocked(level) || l.ConsoleWriter == nil {
		return
	}
	if _, err := fmt.Fprintf(l.ConsoleWriter, "[%s] %s\n", timestamp, msg); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", timestamp, msg)
	}
}

// SetQuiet toggles quiet mode. Thread-safe.
func (l *CustomLogger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Quiet = quiet
}

// SetVerbose toggles verbose mode. Thread-safe.
func (l *CustomLogger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Verbose = verbose
}

// IsQuiet reports whether the logger is in quiet mode. Thread-safe.
func (l *CustomLogger) IsQuiet() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Quiet
}

// Info logs an informational message.
func (l *CustomLogger) Info(format string, args ...interface{}) {
	l.log(InfoLevel, format, args...)
}

// Warn logs a warning message.
func (l *CustomLogger) Warn(format string, args ...interface{}) {
	l.log(WarnLevel, format, args...)
}

// Debug logs a debug message.
func (l *CustomLogger) Debug(format string, args ...interface{}) {
	l.log(DebugLevel, format, args...)
}

// Error logs an error message. The first argument may be an error, a
// format string, or any other value.
func (l *CustomLogger) Error(firstArg interface{}, args ...interface{}) {
	switch v := firstArg.(type) {
	case error:
		if len(args) == 0 {
			l.log(ErrorLevel, "%s", v.Error())
		} else {
			l.log(ErrorLevel, v.Error(), args...)
		}
	case string:
		l.log(ErrorLevel, v, args...)
	default:
		l.log(ErrorLevel, "%v", v)
	}
}

// Errorf logs a formatted error message with a type-safe format string.
func (l *CustomLogger) Errorf(format string, args ...interface{}) {
	l.log(ErrorLevel, format, args...)
}

// ErrorErr logs an error value directly without formatting.
func (l *CustomLogger) ErrorErr(err error) {
	if err != nil {
		l.log(ErrorLevel, "%s", err.Error())
	}
}

// Output sends data to stdout, JSON-encoded when the logger is in JSON
// mode. Use this for command results rather than diagnostics.
func (l *CustomLogger) Output(data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.OutputType {
	case JSONOutput:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode JSON output: %v\n", err)
		}
	default:
		fmt.Fprintln(os.Stdout, data)
	}
}

// Print writes raw output to stdout without a trailing newline. Use it
// for streamed subprocess output that already contains newlines.
func (l *CustomLogger) Print(data string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(os.Stdout, data)
}

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, l *CustomLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger from the context, falling back to a
// fresh default logger when none is stored.
func FromContext(ctx context.Context) *CustomLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*CustomLogger); ok && l != nil {
			return l
		}
	}
	return NewCustomLogger(slog.LevelInfo)
}

// InfoContext logs an informational message using the context logger.
func InfoContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Info(message, args...)
}

// WarnContext logs a warning message using the context logger.
func WarnContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Warn(message, args...)
}

// DebugContext logs a debug message using the context logger.
func DebugContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Debug(message, args...)
}

// ErrorContext logs an error message using the context logger. It
// accepts an error, a format string, or any other value first.
func ErrorContext(ctx context.Context, firstArg interface{}, args ...interface{}) {
	FromContext(ctx).Error(firstArg, args...)
}

// ErrorfContext logs a formatted error message using the context logger.
func ErrorfContext(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorErrContext logs an error value using the context logger.
func ErrorErrContext(ctx context.Context, err error) {
	FromContext(ctx).ErrorErr(err)
}

// OutputContext sends data to stdout using the context logger.
func OutputContext(ctx context.Context, data interface{}) {
	FromContext(ctx).Output(data)
}

// PrintContext writes raw output to stdout using the context logger.
func PrintContext(ctx context.Context, data string) {
	FromContext(ctx).Print(data)
}
