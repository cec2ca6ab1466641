package display

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/NightKikko/datasearcher/internal/models"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf)

	output := buf.String()
	if !strings.HasPrefix(output, "\x1b[33mWarning: Configuration Missing\n") {
		t.Errorf("unexpected output: %q", output)
	}
	if !strings.HasSuffix(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code at end of output")
	}
	if strings.Contains(output, "Suggestion:") || strings.Contains(output, "Affected") {
		t.Error("Optional sections should be omitted")
	}
}

func TestDisplayWarning_Complete(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Problem",
		Message:    "Something happened",
		Files:      []string{"a.txt", "b.txt"},
		Suggestion: "Try again",
	}.Display(&buf)

	output := buf.String()
	for _, want := range []string{
		"    Something happened\n",
		"    Affected files:\n",
		"      1. a.txt\n",
		"      2. b.txt\n",
		"    Suggestion:\n    Try again\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "One", Files: []string{"only.txt"}}.Display(&buf)

	if !strings.Contains(buf.String(), "Affected file:\n") {
		t.Errorf("expected singular label, got: %s", buf.String())
	}
}

func TestWarnCancelled(t *testing.T) {
	stats := models.RunStatistics{FilesFound: 10, FilesProcessed: 4, FilesCompleted: 7, Canceled: true}

	w := WarnCancelled(stats, context.DeadlineExceeded)
	if w.Title != "Search stopped early" {
		t.Errorf("Title = %q", w.Title)
	}
	if !strings.Contains(w.Message, "Completed 7 of 10 files") {
		t.Errorf("Message = %q", w.Message)
	}
	if !strings.Contains(w.Message, "context deadline exceeded") {
		t.Errorf("Message should include the cause, got %q", w.Message)
	}

	if strings.Contains(WarnCancelled(stats, nil).Message, "(") {
		t.Error("nil cause should not be rendered")
	}
}

func TestWarnFileErrors(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		logPath     string
		wantListed  int
		wantMessage string
	}{
		{"few files", 3, "", 3, ""},
		{"truncated", 14, "/logs/latest.log", 10, "4 more not shown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var paths []string
			for i := 0; i < tt.count; i++ {
				paths = append(paths, fmt.Sprintf("/data/f%d.txt", i))
			}

			w := WarnFileErrors(paths, tt.logPath)
			if w.Title != fmt.Sprintf("%d files could not be searched", tt.count) {
				t.Errorf("Title = %q", w.Title)
			}
			if len(w.Files) != tt.wantListed {
				t.Errorf("listed %d files, want %d", len(w.Files), tt.wantListed)
			}
			if w.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", w.Message, tt.wantMessage)
			}
			if tt.logPath != "" && !strings.Contains(w.Suggestion, tt.logPath) {
				t.Errorf("Suggestion = %q", w.Suggestion)
			}
			if tt.logPath == "" && w.Suggestion != "" {
				t.Errorf("expected no suggestion, got %q", w.Suggestion)
			}
		})
	}
}
