// Package search runs a concurrent literal-text search over a directory tree.
//
// A Searcher enumerates every regular file under the configured root, then
// dispatches each file to a bounded worker pool. Each worker runs a Processor
// (classification, line scan, and for JSON files a structured scan) and sends
// the outcome to a single aggregator that owns the ResultSet and the
// RunStatistics, so no locking is needed around them. Progress and per-file
// errors are reported to an Observer.
//
// Basic usage:
//
//	s, err := search.NewSearcher(cfg, search.WithObserver(consoleLog))
//	if err != nil {
//	    return err
//	}
//	results, stats, err := s.Run(ctx)
//
// Run returns only after every dispatched file completed. When ctx is
// cancelled, no further files are dispatched and the partial results are
// returned together with ctx.Err().
package search
