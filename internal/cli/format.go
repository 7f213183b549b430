package cli

import (
	"path/filepath"
	"strings"
)

// RelativePath renders path relative to root for display, in slash form.
// The root itself renders as "." and paths outside root fall back to the
// full path.
func RelativePath(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}

// Truncate shortens s to at most max characters, ending in "…" when
// anything was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	if max < 1 {
		return ""
	}

	return string(runes[:max-1]) + "…"
}

// EllipsizeMiddle shortens s to at most max characters by replacing the
// middle with "…", keeping both ends visible.
func EllipsizeMiddle(s string, max int) string {
	if max == 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	if max == 1 {
		return "…"
	}

	keep := max - 1
	front := keep / 2
	back := keep - front

	return string(runes[:front]) + "…" + string(runes[len(runes)-back:])
}
