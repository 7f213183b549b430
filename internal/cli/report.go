package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/idelchi/tengok/internal/tengok"
)

// Layout constants for the summary box. The value column grows to fit the
// widest value (typically the max-line file) but never past the terminal
// width; overlong values are middle-ellipsized to stay on one row.
const (
	labelWidth    = 6
	labelGap      = 3
	minValueWidth = 24
	maxValueWidth = 96
)

// row is one label/value pair of the summary box.
type row struct {
	label string
	value string
}

// Render writes the bordered summary box for summary to writer.
// Colors are dropped in plain mode (fatih/color additionally disables
// itself on non-terminal output).
func Render(writer io.Writer, cfg tengok.Config, summary *tengok.Summary) {
	rows := summaryRows(cfg, summary)

	valueWidth := minValueWidth
	for _, r := range rows {
		if width := runewidth.StringWidth(r.value); width > valueWidth {
			valueWidth = width
		}
	}

	if valueWidth > maxValueWidth {
		valueWidth = maxValueWidth
	}

	// Clamp to the terminal: borders and padding take 4 cells per row.
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if maxValue := cols - 4 - labelWidth - labelGap; maxValue > 0 && valueWidth > maxValue {
			valueWidth = maxValue
		}
	}

	innerWidth := labelWidth + labelGap + valueWidth

	paintBorder := painter(cfg.Plain, color.FgHiGreen)
	paintLabel := painter(cfg.Plain, color.FgHiMagenta)
	paintValue := painter(cfg.Plain, color.FgHiGreen)

	horizontal := strings.Repeat("─", innerWidth+2)

	printLine := func(plain, colored string) {
		padding := innerWidth - runewidth.StringWidth(plain)
		if padding < 0 {
			padding = 0
		}

		fmt.Fprintf(writer, "%s %s%s %s\n",
			paintBorder("│"), colored, strings.Repeat(" ", padding), paintBorder("│"))
	}

	fmt.Fprintf(writer, "%s%s%s\n", paintBorder("┌"), paintBorder(horizontal), paintBorder("┐"))

	title := Truncate("Folder Summary: "+cfg.Root, innerWidth)
	printLine(title, paintValue(title))

	fmt.Fprintf(writer, "%s%s%s\n", paintBorder("├"), paintBorder(horizontal), paintBorder("┤"))

	for _, r := range rows {
		label := runewidth.FillRight(Truncate(r.label, labelWidth), labelWidth)
		value := EllipsizeMiddle(r.value, valueWidth)
		value = runewidth.FillLeft(value, valueWidth)

		plain := label + strings.Repeat(" ", labelGap) + value
		colored := paintLabel(label) + strings.Repeat(" ", labelGap) + paintValue(value)
		printLine(plain, colored)
	}

	fmt.Fprintf(writer, "%s%s%s\n", paintBorder("└"), paintBorder(horizontal), paintBorder("┘"))
}

// painter returns an identity function in plain mode, a color sprinter
// otherwise.
func painter(plain bool, attr color.Attribute) func(string) string {
	if plain {
		return func(s string) string { return s }
	}

	sprint := color.New(attr).Sprint

	return func(s string) string { return sprint(s) }
}

// summaryRows formats the five report rows, rendering unset optionals
// as "-".
func summaryRows(cfg tengok.Config, summary *tengok.Summary) []row {
	largestDir := "-"
	if summary.LargestDir != nil {
		largestDir = fmt.Sprintf("%s (%s)",
			RelativePath(summary.LargestDir.Path, cfg.Root),
			humanize.Bytes(uint64(summary.LargestDir.Size))) //nolint:gosec // Sizes are non-negative
	}

	maxFile := "-"
	if summary.MaxLinesFile != nil {
		maxFile = fmt.Sprintf("%s (%s lines, %s)",
			RelativePath(summary.MaxLinesFile.Path, cfg.Root),
			humanize.Comma(summary.MaxLinesFile.Lines),
			humanize.Bytes(uint64(summary.MaxLinesFile.Size))) //nolint:gosec // Sizes are non-negative
	}

	return []row{
		{label: "[F]", value: humanize.Comma(summary.TotalFiles) + " Files"},
		{label: "[B]", value: humanize.Bytes(uint64(summary.TotalSize))}, //nolint:gosec // Sizes are non-negative
		{label: "[L]", value: humanize.Comma(summary.TotalLines) + " Lines"},
		{label: "[D↑]", value: largestDir},
		{label: "[L↑]", value: maxFile},
	}
}
