package tengok

import "time"

// DefaultMaxLineBytes is the default size ceiling for line counting.
const DefaultMaxLineBytes int64 = 5 * 1024 * 1024

// Config is the resolved scan configuration, shared read-only by all
// walk goroutines.
type Config struct {
	// Root is the directory to scan.
	Root string
	// Plain disables colored output and the progress line.
	Plain bool
	// SkipLines disables line counting entirely.
	SkipLines bool
	// ForceLines counts lines even for large or binary-looking files.
	ForceLines bool
	// MaxLineBytes is the line-counting size ceiling (0 = no ceiling).
	MaxLineBytes int64
}

// FileRecord is produced by a walk goroutine for each regular file.
type FileRecord struct {
	// Path is the file path as visited by the walker.
	Path string
	// Parent is the file's containing directory.
	Parent string
	// Size is the file size in bytes.
	Size int64
	// Lines is the line count, 0 if counting was skipped or failed.
	Lines int64
}

// FileStat is a snapshot of the file with the most lines seen so far.
type FileStat struct {
	// Path is the file path.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Lines is the line count.
	Lines int64 `json:"lines"`
}

// DirStat is a directory path with the summed size of the files it
// directly contains.
type DirStat struct {
	// Path is the directory path.
	Path string `json:"path"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// Summary holds aggregate statistics for a directory scan.
type Summary struct {
	// TotalFiles is the number of regular files scanned.
	TotalFiles int64 `json:"total_files"`
	// TotalSize is the cumulative size of all scanned files.
	TotalSize int64 `json:"total_size"`
	// TotalLines is the cumulative line count of all counted files.
	TotalLines int64 `json:"total_lines"`
	// MaxLinesFile is the file with the most lines, nil if none counted.
	MaxLinesFile *FileStat `json:"max_lines_file,omitempty"`
	// LargestDir is the directory whose direct files sum largest, nil if
	// no files were scanned. Set only once the record stream is drained.
	LargestDir *DirStat `json:"largest_dir,omitempty"`
	// Elapsed is the total scan duration.
	Elapsed time.Duration `json:"elapsed"`
}

// aggregator folds FileRecords into a Summary. It is owned by exactly one
// goroutine; no locking.
type aggregator struct {
	summary  Summary
	dirSizes map[string]int64
}

func newAggregator() *aggregator {
	return &aggregator{dirSizes: make(map[string]int64)}
}

// add folds one record into the running summary. The max-lines file is
// replaced on a strictly greater count; equal counts resolve to the
// lexicographically smaller path so repeated scans agree.
func (a *aggregator) add(rec FileRecord) {
	a.summary.TotalFiles++
	a.summary.TotalSize += rec.Size
	a.summary.TotalLines += rec.Lines

	if rec.Lines > 0 {
		max := a.summary.MaxLinesFile
		if max == nil || rec.Lines > max.Lines || (rec.Lines == max.Lines && rec.Path < max.Path) {
			a.summary.MaxLinesFile = &FileStat{Path: rec.Path, Size: rec.Size, Lines: rec.Lines}
		}
	}

	a.dirSizes[rec.Parent] += rec.Size
}

// finalize picks the largest directory from the accumulated per-directory
// totals. It must run only after the record stream is exhausted: an
// intermediate maximum could lock in a directory whose total is still
// growing. Equal totals resolve to the lexicographically smaller path.
func (a *aggregator) finalize() *Summary {
	var largest *DirStat

	for dir, size := range a.dirSizes {
		if largest == nil || size > largest.Size || (size == largest.Size && dir < largest.Path) {
			largest = &DirStat{Path: dir, Size: size}
		}
	}

	a.summary.LargestDir = largest
	a.dirSizes = nil

	return &a.summary
}
