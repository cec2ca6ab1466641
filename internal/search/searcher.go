package search

import (
	"context"
	"time"

	"github.com/NightKikko/datasearcher/internal/fileutil"
	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/NightKikko/datasearcher/internal/scanner"
	"golang.org/x/sync/errgroup"
)

// DefaultProgressInterval is the number of completions between progress reports.
const DefaultProgressInterval = 100

// FileProcessor defines the behavior required to search one file within a run.
type FileProcessor interface {
	Process(path string) (matches []models.MatchRecord, searchable bool, err error)
}

// Searcher coordinates a concurrent search over a directory tree.
type Searcher struct {
	cfg              models.SearchConfig
	processor        FileProcessor
	observer         Observer
	progressInterval int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithObserver sets the observer notified of progress and failures.
func WithObserver(o Observer) Option {
	return func(s *Searcher) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithProcessor replaces the default Processor built from the configuration.
func WithProcessor(p FileProcessor) Option {
	return func(s *Searcher) {
		if p != nil {
			s.processor = p
		}
	}
}

// WithProgressInterval sets how many completions separate progress reports.
// Values below 1 are ignored.
func WithProgressInterval(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.progressInterval = n
		}
	}
}

// NewSearcher validates cfg and builds a Searcher.
// A MaxWorkers below 1 is raised to 1. An invalid exclusion pattern is an error.
func NewSearcher(cfg models.SearchConfig, opts ...Option) (*Searcher, error) {
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 1
	}

	classifier, err := fileutil.NewClassifier(cfg.Exclude, cfg.Extensions)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		cfg:              cfg,
		processor:        NewProcessor(classifier, scanner.NewMatcher(cfg.Term, cfg.CaseSensitive)),
		observer:         NopObserver{},
		progressInterval: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the normalized configuration of the searcher.
func (s *Searcher) Config() models.SearchConfig {
	return s.cfg
}

// EffectiveWorkers clamps maxWorkers to the range [1, fileCount].
func EffectiveWorkers(maxWorkers, fileCount int) int {
	workers := maxWorkers
	if workers > fileCount {
		workers = fileCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

type fileOutcome struct {
	path       string
	matches    []models.MatchRecord
	searchable bool
	err        error
}

// Run walks the root directory and searches every file.
//
// The returned ResultSet and RunStatistics are final. The error is non-nil
// only when ctx was cancelled before every file was dispatched; the results
// then cover the files that completed.
func (s *Searcher) Run(ctx context.Context) (*models.ResultSet, models.RunStatistics, error) {
	start := time.Now()
	results := models.NewResultSet()
	stats := models.RunStatistics{StartedAt: start}

	scan := fileutil.ListFiles(s.cfg.Root)
	for _, err := range scan.Errors {
		s.observer.WalkFailed(err)
	}

	total := len(scan.Files)
	stats.FilesFound = total
	s.observer.SearchStarted(s.cfg.Root, total)

	if total == 0 {
		stats.Elapsed = time.Since(start)
		s.observer.SearchFinished(stats)
		return results, stats, nil
	}

	workers := EffectiveWorkers(s.cfg.MaxWorkers, total)
	stats.EffectiveWorkers = workers

	outcomes := make(chan fileOutcome, workers)

	go func() {
		defer close(outcomes)

		var g errgroup.Group
		g.SetLimit(workers)

		for _, path := range scan.Files {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				matches, searchable, err := s.processor.Process(path)
				outcomes <- fileOutcome{path: path, matches: matches, searchable: searchable, err: err}
				return nil
			})
		}

		// Workers never return errors; Wait is the join barrier
		_ = g.Wait()
	}()

	completed := 0
	lastReported := 0
	for o := range outcomes {
		completed++

		if o.searchable {
			stats.FilesProcessed++
			if o.err != nil {
				stats.FileErrors++
				s.observer.FileFailed(o.path, o.err)
			} else if results.Add(o.path, o.matches) {
				stats.MatchesFound += len(o.matches)
			}
		}

		if s.shouldReport(completed, total) {
			s.observer.SearchProgress(models.Progress{
				Completed: completed,
				Total:     total,
				Elapsed:   time.Since(start),
			})
			lastReported = completed
		}
	}

	var runErr error
	if completed < total {
		stats.Canceled = true
		runErr = ctx.Err()
		if lastReported != completed {
			s.observer.SearchProgress(models.Progress{
				Completed: completed,
				Total:     total,
				Elapsed:   time.Since(start),
			})
		}
	}

	stats.FilesCompleted = completed
	stats.Elapsed = time.Since(start)
	s.observer.SearchFinished(stats)

	return results, stats, runErr
}

// shouldReport reports on the first completion, every interval after it, and the last.
func (s *Searcher) shouldReport(completed, total int) bool {
	return (completed-1)%s.progressInterval == 0 || completed == total
}
