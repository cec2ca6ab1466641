package logger

import (
	"fmt"
	"strings"
	"sync"
)

// ProgressBar represents an ASCII progress bar with color support
type ProgressBar struct {
	current     int
	total       int
	width       int
	rate        float64
	enableColor bool
	prefix      string
	mu          sync.RWMutex
}

// NewProgressBar creates a new progress bar
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Update sets the current progress value
func (pb *ProgressBar) Update(current int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = current
}

// Increment increments the current progress by 1
func (pb *ProgressBar) Increment() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current++
}

// SetRate sets the throughput shown after the counter, in files per second.
// A rate of zero or less is not shown.
func (pb *ProgressBar) SetRate(filesPerSecond float64) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.rate = filesPerSecond
}

// SetPrefix sets a custom prefix for the progress bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.prefix = prefix
}

// Current returns the current progress value
func (pb *ProgressBar) Current() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.current
}

// Total returns the total progress value
func (pb *ProgressBar) Total() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.total
}

// Percentage returns the progress percentage (0-100)
func (pb *ProgressBar) Percentage() float64 {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.percentage()
}

func (pb *ProgressBar) percentage() float64 {
	if pb.total <= 0 {
		return 0
	}
	perc := float64(pb.current) * 100 / float64(pb.total)
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}

// Render generates the ASCII progress bar string
// Format: "<prefix>[=====     ] 50.0% (4/8) - 12.5 files/sec"
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := pb.percentage()
	filled := int(perc) * pb.width / 100

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(strings.Repeat("=", filled))
	bar.WriteString(strings.Repeat(" ", pb.width-filled))
	bar.WriteString("]")

	result := fmt.Sprintf("%s%s %.1f%% (%d/%d)", pb.prefix, bar.String(), perc, pb.current, pb.total)
	if pb.rate > 0 {
		result += fmt.Sprintf(" - %.1f files/sec", pb.rate)
	}

	if pb.enableColor {
		if perc < 100 {
			result = fmt.Sprintf("\033[36m%s\033[0m", result) // Cyan for in-progress
		} else {
			result = fmt.Sprintf("\033[32m%s\033[0m", result) // Green for complete
		}
	}

	return result
}
