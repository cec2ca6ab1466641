package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/google/uuid"
)

// FileLogger logs search events to a per-run file in the log directory.
// It creates a timestamped run log and maintains a latest.log symlink
// pointing to the most recent run. Every run is tagged with a random run ID.
// It is thread-safe and implements search.Observer.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing to logDir with the given log level.
// It creates the log directory if needed, opens run-YYYYMMDD-HHMMSS.log and
// points latest.log at it.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.New().String()

	// Two runs in the same second share a timestamp; the run ID prefix keeps them apart
	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", ts, runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}

	logger.writeRunLog("=== datasearcher Run Log ===\n")
	logger.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// RunID returns the identifier written into the run log header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the path of the run log file.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// SearchStarted records the root and file count.
func (fl *FileLogger) SearchStarted(root string, totalFiles int) {
	fl.LogInfo(fmt.Sprintf("Search started in %s: %d files", root, totalFiles))
}

// SearchProgress records a progress snapshot at DEBUG level.
func (fl *FileLogger) SearchProgress(progress models.Progress) {
	fl.LogDebug(fmt.Sprintf("Progress: %.1f%% (%d/%d) - %.1f files/sec",
		progress.Percent(), progress.Completed, progress.Total, progress.FilesPerSecond()))
}

// WalkFailed records a directory walk error at WARN level.
func (fl *FileLogger) WalkFailed(err error) {
	fl.LogWarn(fmt.Sprintf("Walk: %v", err))
}

// FileFailed records a per-file processing error.
func (fl *FileLogger) FileFailed(path string, err error) {
	fl.LogError(fmt.Sprintf("Error processing %s: %v", path, err))
}

// SearchFinished writes the run summary block.
func (fl *FileLogger) SearchFinished(stats models.RunStatistics) {
	if !fl.shouldLog("info") {
		return
	}

	var sb strings.Builder
	sb.WriteString("\n=== Summary ===\n")
	sb.WriteString(fmt.Sprintf("Files found: %d\n", stats.FilesFound))
	sb.WriteString(fmt.Sprintf("Files processed: %d\n", stats.FilesProcessed))
	sb.WriteString(fmt.Sprintf("Matches found: %d\n", stats.MatchesFound))
	sb.WriteString(fmt.Sprintf("File errors: %d\n", stats.FileErrors))
	sb.WriteString(fmt.Sprintf("Workers: %d\n", stats.EffectiveWorkers))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", formatDuration(stats.Elapsed)))
	if stats.Canceled {
		sb.WriteString("Status: cancelled\n")
	} else {
		sb.WriteString("Status: completed\n")
	}

	fl.writeRunLog(sb.String())
}

// Close flushes and closes the run log file.
// It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
