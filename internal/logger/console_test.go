package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/NightKikko/datasearcher/internal/search"
)

var (
	_ search.Observer = (*ConsoleLogger)(nil)
	_ search.Observer = (*FileLogger)(nil)
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.colorOutput {
			t.Error("expected color disabled for non-terminal writer")
		}
		if logger.inlineProgress {
			t.Error("expected inline progress disabled for non-terminal writer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		// Must not panic
		logger.LogInfo("discarded")
		logger.SearchProgress(models.Progress{Completed: 1, Total: 2})
		logger.SearchFinished(models.RunStatistics{})
	})
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := map[string]string{
		"":       "info",
		"DEBUG":  "debug",
		" warn ": "warn",
		"bogus":  "info",
		"trace":  "trace",
		"Error":  "error",
	}
	for input, want := range tests {
		if got := normalizeLogLevel(input); got != want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "warn")

	logger.LogDebug("debug message")
	logger.LogInfo("info message")
	logger.LogWarn("warn message")
	logger.LogError("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("messages below warn should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("expected warn message, got: %s", output)
	}
	if !strings.Contains(output, "[ERROR] error message") {
		t.Errorf("expected error message, got: %s", output)
	}
}

func TestConsoleLogger_SearchStarted(t *testing.T) {
	t.Run("files found", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "info").SearchStarted("/data", 42)

		if !strings.Contains(buf.String(), "Found 42 files to search in /data") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("no files", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "info").SearchStarted("/empty", 0)

		if !strings.Contains(buf.String(), "[WARN] No files found to search in /empty") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}

func TestConsoleLogger_SearchProgress(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.SearchProgress(models.Progress{Completed: 50, Total: 200, Elapsed: 2 * time.Second})

	output := buf.String()
	for _, want := range []string{"Progress: ", "25.0%", "(50/200)", "25.0 files/sec"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("non-terminal progress should end with a newline")
	}
}

func TestConsoleLogger_InlineProgress(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")
	logger.inlineProgress = true

	logger.SearchProgress(models.Progress{Completed: 1, Total: 2, Elapsed: time.Second})
	logger.SearchProgress(models.Progress{Completed: 2, Total: 2, Elapsed: time.Second})
	logger.SearchFinished(models.RunStatistics{FilesProcessed: 2})

	output := buf.String()
	if strings.Count(output, "\r") != 2 {
		t.Errorf("expected two carriage returns, got: %q", output)
	}
	if !strings.Contains(output, "files/sec\n[") {
		t.Errorf("summary should start on a fresh line, got: %q", output)
	}
}

func TestConsoleLogger_FileFailed(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info").FileFailed("/data/bad.txt", errors.New("permission denied"))

	if !strings.Contains(buf.String(), "[ERROR] Error processing /data/bad.txt: permission denied") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestConsoleLogger_WalkFailedIsDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info").WalkFailed(errors.New("walk broke"))
	if buf.Len() != 0 {
		t.Errorf("walk errors should be hidden at info level, got: %s", buf.String())
	}

	buf.Reset()
	NewConsoleLogger(buf, "debug").WalkFailed(errors.New("walk broke"))
	if !strings.Contains(buf.String(), "walk broke") {
		t.Errorf("expected walk error at debug level, got: %s", buf.String())
	}
}

func TestConsoleLogger_SearchFinished(t *testing.T) {
	tests := []struct {
		name  string
		stats models.RunStatistics
		want  []string
	}{
		{
			name:  "completed",
			stats: models.RunStatistics{FilesProcessed: 10, MatchesFound: 3, Elapsed: 1500 * time.Millisecond},
			want:  []string{"Search completed. Processed 10 files and found 3 matches (1.5s)"},
		},
		{
			name:  "with errors",
			stats: models.RunStatistics{FilesProcessed: 4, MatchesFound: 0, FileErrors: 2},
			want:  []string{"Processed 4 files", ", 2 errors"},
		},
		{
			name:  "cancelled",
			stats: models.RunStatistics{FilesProcessed: 1, Canceled: true},
			want:  []string{"Search cancelled."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			NewConsoleLogger(buf, "info").SearchFinished(tt.stats)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("expected %q in output, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestConsoleLogger_ColorizedSummary(t *testing.T) {
	msg := formatColorizedSummary("completed", models.RunStatistics{FilesProcessed: 3, MatchesFound: 2, FileErrors: 1}, newColorScheme())
	for _, want := range []string{"completed", "files", "matches", "errors"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestConsoleLogger_ConcurrentWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("concurrent")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "concurrent\n"); got != 20 {
		t.Errorf("expected 20 intact lines, got %d", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{350 * time.Millisecond, "350ms"},
		{5200 * time.Millisecond, "5.2s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
		{3 * time.Hour, "3h"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
