package tengok

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// recordBuffer is the capacity of the walker-to-aggregator channel.
const recordBuffer = 1024

// Observer is invoked by the aggregator after each record is folded, with
// the evolving summary and the record that produced it. It runs on the
// consuming goroutine and must return quickly; summary fields other than
// LargestDir are valid running totals at every call.
type Observer func(summary *Summary, rec FileRecord)

// Scan walks the tree rooted at cfg.Root and returns aggregated
// statistics.
//
// Traversal runs on fastwalk's worker pool, sized by the available
// hardware parallelism. Directories matched by .gitignore rules (and .git
// itself) are pruned; symlinks and special files are excluded. Each
// regular file yields one FileRecord, sent over a channel to the calling
// goroutine, which is the only place the summary is mutated.
//
// Per-entry errors are skipped silently: an unreadable file or a vanished
// directory entry must not abort the aggregate report. Scan blocks until
// every walker has finished and the channel is drained, or until ctx is
// cancelled.
func Scan(ctx context.Context, cfg Config, observer Observer) (*Summary, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	root = filepath.Clean(root)

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	start := time.Now()

	records := make(chan FileRecord, recordBuffer)
	ignorer := newIgnorer(root)

	conf := &fastwalk.Config{
		Follow: false, // Symlinks are not regular files
	}

	var walkErr error

	go func() {
		defer close(records)

		//nolint:varnamelen // d is standard for DirEntry
		walkErr = fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Intentionally skip unreadable entries
			}

			select {
			case <-ctx.Done():
				return context.Canceled
			default:
			}

			if d.IsDir() {
				if path == root {
					return nil
				}

				if d.Name() == ".git" || ignorer.ignored(path, true) {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if ignorer.ignored(path, false) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return nil //nolint:nilerr // Entry may have vanished since listing
			}

			size := info.Size()

			var lines int64
			if ShouldCountLines(path, size, cfg) {
				lines = countLinesPooled(path)
			}

			rec := FileRecord{
				Path:   path,
				Parent: filepath.Dir(path),
				Size:   size,
				Lines:  lines,
			}

			// A send that loses to cancellation means the consumer is
			// gone; stop this walker's traversal.
			select {
			case records <- rec:
				return nil
			case <-ctx.Done():
				return context.Canceled
			}
		})
	}()

	agg := newAggregator()

	for rec := range records {
		agg.add(rec)

		if observer != nil {
			observer(&agg.summary, rec)
		}
	}

	// close(records) happens before the range loop ends, so walkErr is
	// visible here.
	if walkErr != nil {
		return nil, walkErr
	}

	summary := agg.finalize()
	summary.Elapsed = time.Since(start)

	return summary, nil
}
