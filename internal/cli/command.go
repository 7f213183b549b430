package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/tengok/internal/integration"
	"github.com/idelchi/tengok/internal/tengok"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options holds the raw flag values before resolution into a Config.
type options struct {
	plain        bool
	noColors     bool
	noLines      bool
	forceLines   bool
	maxLineBytes string
	version      bool
	integration  bool
}

func usage(flags *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, heredoc.Doc(`
			tengok summarizes a directory tree: file count, total size, line count,
			the largest directory and the file with the most lines.

			Usage:

			    tengok [flags] [path]

			Positional Arguments:
			  path                   Directory to summarize. Defaults to the current directory.

			Line counting skips known binary extensions and files above the size ceiling.
			Paths matched by .gitignore rules are pruned from the scan entirely.

			Flags:
		`))
		fmt.Fprint(os.Stderr, flags.FlagUsages())
	}
}

// Execute runs the CLI with the provided arguments. All diagnostics are
// written to stderr here; a non-nil return only signals the exit code.
func (c CLI) Execute(args []string) error {
	var opts options

	flags := pflag.NewFlagSet("tengok", pflag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.SortFlags = false
	flags.Usage = usage(flags)

	flags.BoolVar(&opts.plain, "plain", false, "Disable colors and the progress line")
	flags.BoolVar(&opts.noColors, "no-colors", false, "Alias for --plain")
	flags.BoolVar(&opts.noLines, "no-lines", false, "Skip line counting entirely")
	flags.BoolVar(&opts.forceLines, "force-lines", false, "Always count lines (even for large or binary files)")
	flags.StringVar(&opts.maxLineBytes, "max-line-bytes", "5MiB",
		"Only count lines for files up to this size (plain bytes or e.g. 1MB; 0 disables)")
	flags.BoolVarP(&opts.version, "version", "v", false, "Show version and exit")
	flags.BoolVar(&opts.integration, "init", false, "Output init script for shell usage")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		// With ContinueOnError pflag only returns the error; echo the
		// offending flag and the usage text ourselves.
		fmt.Fprintln(os.Stderr, err)
		flags.Usage()

		return err
	}

	if opts.version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if opts.integration {
		rendered, err := integration.Render()
		if err != nil {
			fmt.Fprintf(os.Stderr, "rendering integration script: %v\n", err)

			return err
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Println(rendered)

		return nil
	}

	cfg, err := resolve(opts, flags.Args())
	if err != nil {
		if errors.Is(err, errConfig) {
			flags.Usage()
		}

		return err
	}

	return logic(cfg)
}

// errConfig marks configuration errors that must be followed by the usage
// text. Root-path errors are reported without usage.
var errConfig = errors.New("invalid configuration")

// resolve turns parsed flags and positional arguments into a validated
// scan Config. The default root is the working directory, resolved once
// here and never consulted again mid-scan.
func resolve(opts options, args []string) (tengok.Config, error) {
	cfg := tengok.Config{
		Plain: opts.plain || opts.noColors,
		// force-lines always clears any prior skip-lines state
		SkipLines:    opts.noLines && !opts.forceLines,
		ForceLines:   opts.forceLines,
		MaxLineBytes: tengok.DefaultMaxLineBytes,
	}

	if opts.maxLineBytes != "" {
		size, err := humanize.ParseBytes(opts.maxLineBytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to parse --max-line-bytes: %v\n", err)

			return cfg, fmt.Errorf("invalid max-line-bytes: %w", errConfig)
		}

		cfg.MaxLineBytes = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "getting current directory: %v\n", err)

			return cfg, err
		}

		cfg.Root = cwd
	} else {
		cfg.Root = args[0]
	}

	if info, err := os.Stat(cfg.Root); err != nil {
		fmt.Fprintf(os.Stderr, "Path does not exist: %s\n", cfg.Root)

		return cfg, fmt.Errorf("accessing path %q: %w", cfg.Root, err)
	} else if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Path is not a directory: %s\n", cfg.Root)

		return cfg, fmt.Errorf("path %q is not a directory", cfg.Root)
	}

	return cfg, nil
}
