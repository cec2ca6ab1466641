// Package logger provides logging implementations for datasearcher runs.
//
// The logger package offers leveled logging of search progress, per-file
// failures and the final summary. Implementations are thread-safe and
// satisfy search.Observer, so they can be attached to a Searcher directly.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// progressBarWidth is the number of cells in the rendered progress bar.
const progressBarWidth = 20

// ConsoleLogger logs search progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output and in-place progress updates are enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer          io.Writer
	logLevel        string
	mutex           sync.Mutex
	colorOutput     bool
	inlineProgress  bool
	progressPending bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// logLevel determines the minimum log level for messages to be output.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	useColor := isTerminal(writer)

	return &ConsoleLogger{
		writer:         writer,
		logLevel:       normalizeLogLevel(logLevel),
		colorOutput:    useColor,
		inlineProgress: useColor,
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true for os.Stdout and os.Stderr when they are TTYs.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// fatih/color's detection also honors NO_COLOR
		return !color.NoColor
	}

	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writeLine(formatted)
}

// colorLevel returns the level name wrapped in its ANSI color.
func colorLevel(level string) string {
	switch strings.ToUpper(level) {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// writeLine writes a full line, first terminating any in-place progress line.
// Callers must hold the mutex.
func (cl *ConsoleLogger) writeLine(line string) {
	if cl.progressPending {
		cl.writer.Write([]byte("\n"))
		cl.progressPending = false
	}
	cl.writer.Write([]byte(line))
}

// SearchStarted logs the number of files found under root at INFO level.
// An empty tree is reported at WARN level.
func (cl *ConsoleLogger) SearchStarted(root string, totalFiles int) {
	if totalFiles == 0 {
		cl.LogWarn(fmt.Sprintf("No files found to search in %s", root))
		return
	}
	cl.LogInfo(fmt.Sprintf("Found %d files to search in %s", totalFiles, root))
}

// SearchProgress renders the progress bar with the current throughput.
// Format: "[HH:MM:SS] Progress: [=====     ] 50.0% (4/8) - 12.5 files/sec"
// On a terminal the line is rewritten in place.
func (cl *ConsoleLogger) SearchProgress(progress models.Progress) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	pb := NewProgressBar(progress.Total, progressBarWidth, cl.colorOutput)
	pb.Update(progress.Completed)
	pb.SetRate(progress.FilesPerSecond())
	pb.SetPrefix("Progress: ")

	line := fmt.Sprintf("[%s] %s", timestamp(), pb.Render())

	if cl.inlineProgress {
		cl.writer.Write([]byte("\r" + line))
		cl.progressPending = true
		return
	}
	cl.writer.Write([]byte(line + "\n"))
}

// WalkFailed logs a directory walk error at DEBUG level.
func (cl *ConsoleLogger) WalkFailed(err error) {
	cl.LogDebug(fmt.Sprintf("Walk: %v", err))
}

// FileFailed logs a per-file processing error at ERROR level.
// Format: "[HH:MM:SS] [ERROR] Error processing <path>: <err>"
func (cl *ConsoleLogger) FileFailed(path string, err error) {
	cl.LogError(fmt.Sprintf("Error processing %s: %v", path, err))
}

// SearchFinished logs the run summary at INFO level.
// Format: "[HH:MM:SS] Search completed. Processed N files and found M matches (duration)"
func (cl *ConsoleLogger) SearchFinished(stats models.RunStatistics) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	verb := "completed"
	if stats.Canceled {
		verb = "cancelled"
	}

	var message string
	if cl.colorOutput {
		message = formatColorizedSummary(verb, stats, newColorScheme())
	} else {
		message = formatSummary(verb, stats)
	}

	cl.writeLine(fmt.Sprintf("[%s] %s\n", timestamp(), message))
}

// formatSummary renders the plain summary sentence.
func formatSummary(verb string, stats models.RunStatistics) string {
	msg := fmt.Sprintf("Search %s. Processed %d files and found %d matches (%s)",
		verb, stats.FilesProcessed, stats.MatchesFound, formatDuration(stats.Elapsed))
	if stats.FileErrors > 0 {
		msg += fmt.Sprintf(", %d errors", stats.FileErrors)
	}
	return msg
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "350ms", "5.2s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}
