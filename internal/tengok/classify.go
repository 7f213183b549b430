package tengok

import (
	"path/filepath"
	"strings"
)

// binaryExts is the fixed denylist of extensions excluded from line
// counting: images, archives, audio/video, fonts and compiled binaries.
//
//nolint:gochecknoglobals // Config constant
var binaryExts = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "bmp": {}, "webp": {},
	"ico": {}, "svg": {}, "tif": {}, "tiff": {}, "pdf": {}, "zip": {},
	"gz": {}, "bz2": {}, "xz": {}, "7z": {}, "tar": {}, "rar": {},
	"mp4": {}, "mov": {}, "avi": {}, "mkv": {}, "mp3": {}, "wav": {},
	"flac": {}, "ogg": {}, "ttf": {}, "otf": {}, "woff": {}, "woff2": {},
	"exe": {}, "dll": {}, "so": {}, "dylib": {}, "class": {}, "jar": {},
	"bin": {},
}

// ShouldCountLines reports whether line counting should be attempted for
// the file at path with the given size. Rules are evaluated in order,
// first match wins:
//
//  1. cfg.SkipLines disables counting.
//  2. cfg.ForceLines enables counting.
//  3. Files above cfg.MaxLineBytes (when > 0) are skipped.
//  4. Known binary extensions (case-insensitive) are skipped.
//  5. Everything else is counted.
//
// Pure function of its inputs.
func ShouldCountLines(path string, size int64, cfg Config) bool {
	if cfg.SkipLines {
		return false
	}

	if cfg.ForceLines {
		return true
	}

	if cfg.MaxLineBytes > 0 && size > cfg.MaxLineBytes {
		return false
	}

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if _, ok := binaryExts[strings.ToLower(ext)]; ok {
			return false
		}
	}

	return true
}
