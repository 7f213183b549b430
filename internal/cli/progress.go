package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/tengok/internal/tengok"
)

const (
	// drawInterval is the minimum delay between status line redraws.
	drawInterval = 80 * time.Millisecond
	// progressPathWidth is the display budget for the latest path.
	progressPathWidth = 40
)

// spinnerFrames are the rotating indicator glyphs.
//
//nolint:gochecknoglobals // Display constant
var spinnerFrames = []byte{'-', '\\', '|', '/'}

// progress renders a throttled, self-overwriting status line. All methods
// run on the aggregator goroutine, so no locking is needed; drawing must
// stay cheap enough not to slow consumption.
type progress struct {
	writer   io.Writer
	enabled  bool
	root     string
	frame    int
	lastDraw time.Time
}

func newProgress(writer io.Writer, enabled bool, root string) *progress {
	return &progress{writer: writer, enabled: enabled, root: root}
}

// Start hides the cursor for in-place updates.
func (p *progress) Start() {
	if !p.enabled {
		return
	}

	fmt.Fprint(p.writer, "\033[?25l")
}

// Observe is the tengok.Observer hook: redraws the status line at most
// once per drawInterval.
func (p *progress) Observe(summary *tengok.Summary, rec tengok.FileRecord) {
	if !p.enabled {
		return
	}

	now := time.Now()
	if now.Sub(p.lastDraw) < drawInterval {
		return
	}

	p.lastDraw = now
	p.frame = (p.frame + 1) % len(spinnerFrames)

	path := EllipsizeMiddle(RelativePath(rec.Path, p.root), progressPathWidth)

	fmt.Fprintf(p.writer, "\r\033[2K%c Scanning… %s files, %s (%s)",
		spinnerFrames[p.frame],
		humanize.Comma(summary.TotalFiles),
		humanize.Bytes(uint64(summary.TotalSize)), //nolint:gosec // Sizes are non-negative
		path)
}

// Stop clears the status line and restores the cursor. Must run on every
// exit path before the final report is printed.
func (p *progress) Stop() {
	if !p.enabled {
		return
	}

	fmt.Fprint(p.writer, "\r\033[2K\033[?25h")
}
