package search

import "github.com/NightKikko/datasearcher/internal/models"

// Observer receives search lifecycle events.
// Calls are made from the aggregating goroutine, one at a time.
type Observer interface {
	SearchStarted(root string, totalFiles int)
	SearchProgress(progress models.Progress)
	WalkFailed(err error)
	FileFailed(path string, err error)
	SearchFinished(stats models.RunStatistics)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) SearchStarted(string, int) {}
func (NopObserver) SearchProgress(models.Progress) {}
func (NopObserver) WalkFailed(error) {}
func (NopObserver) FileFailed(string, error) {}
func (NopObserver) SearchFinished(models.RunStatistics) {}

// MultiObserver forwards every event to each of its observers in order.
type MultiObserver []Observer

// SearchStarted forwards to all observers
func (mo MultiObserver) SearchStarted(root string, totalFiles int) {
	for _, o := range mo {
		o.SearchStarted(root, totalFiles)
	}
}

// SearchProgress forwards to all observers
func (mo MultiObserver) SearchProgress(progress models.Progress) {
	for _, o := range mo {
		o.SearchProgress(progress)
	}
}

// WalkFailed forwards to all observers
func (mo MultiObserver) WalkFailed(err error) {
	for _, o := range mo {
		o.WalkFailed(err)
	}
}

// FileFailed forwards to all observers
func (mo MultiObserver) FileFailed(path string, err error) {
	for _, o := range mo {
		o.FileFailed(path, err)
	}
}

// SearchFinished forwards to all observers
func (mo MultiObserver) SearchFinished(stats models.RunStatistics) {
	for _, o := range mo {
		o.SearchFinished(stats)
	}
}
