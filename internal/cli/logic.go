package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/tengok/internal/tengok"
)

// logic runs the scan with a live status line on stderr and prints the
// summary box to stdout.
func logic(cfg tengok.Config) error {
	enableProgress := !cfg.Plain && isatty.IsTerminal(os.Stderr.Fd())

	progress := newProgress(os.Stderr, enableProgress, cfg.Root)

	progress.Start()
	summary, err := tengok.Scan(context.Background(), cfg, progress.Observe)
	progress.Stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return err
	}

	Render(os.Stdout, cfg, summary)

	return nil
}
