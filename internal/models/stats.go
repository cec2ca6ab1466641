package models

import "time"

// RunStatistics holds the aggregate counters of a search run
type RunStatistics struct {
	FilesFound       int           // Regular files enumerated under the root
	FilesProcessed   int           // Searchable files that completed, matches or not
	FilesCompleted   int           // Enumerated files that finished, skipped ones included
	MatchesFound     int           // Sum of per-file match counts
	FileErrors       int           // Searchable files whose scan failed
	EffectiveWorkers int           // Worker pool size actually used
	StartedAt        time.Time     // When the run began
	Elapsed          time.Duration // Wall time of the run
	Canceled         bool          // Run stopped dispatching before all files were queued
}

// FilesPerSecond returns processed throughput over the elapsed time.
func (s RunStatistics) FilesPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.FilesProcessed) / secs
}

// Progress is a snapshot of completed work units during a run.
// Every enumerated file is one unit, including files that were skipped.
type Progress struct {
	Completed int
	Total     int
	Elapsed   time.Duration
}

// Percent returns the completion ratio as a percentage (0-100)
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// FilesPerSecond returns completions divided by elapsed seconds.
func (p Progress) FilesPerSecond() float64 {
	secs := p.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(p.Completed) / secs
}
