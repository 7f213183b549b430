package tengok

import (
	"path/filepath"
	"sync"

	gitignore "github.com/monochromegane/go-gitignore"
)

// ignoreFile is the exclusion rule file honored during traversal.
const ignoreFile = ".gitignore"

// ignorer matches paths against the .gitignore files found in the tree.
// Matchers are cached per directory since the walk visits every file of a
// directory through the same rule chain; the cache is shared by all walk
// goroutines.
type ignorer struct {
	root     string
	matchers sync.Map // directory path -> gitignore.IgnoreMatcher (nil when absent)
}

func newIgnorer(root string) *ignorer {
	return &ignorer{root: root}
}

// matcherFor returns the matcher for the .gitignore directly inside dir,
// or nil if dir has none. Missing files are cached too, so each directory
// is probed at most once.
func (ig *ignorer) matcherFor(dir string) gitignore.IgnoreMatcher {
	if cached, ok := ig.matchers.Load(dir); ok {
		matcher, _ := cached.(gitignore.IgnoreMatcher)

		return matcher
	}

	var matcher gitignore.IgnoreMatcher
	if parsed, err := gitignore.NewGitIgnore(filepath.Join(dir, ignoreFile), dir); err == nil {
		matcher = parsed
	}

	stored, _ := ig.matchers.LoadOrStore(dir, matcher)
	matcher, _ = stored.(gitignore.IgnoreMatcher)

	return matcher
}

// ignored reports whether path is excluded by a .gitignore anywhere
// between its parent directory and the scan root. A match at any level
// excludes; negation patterns overriding an ancestor's rule are not
// honored.
func (ig *ignorer) ignored(path string, isDir bool) bool {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if matcher := ig.matcherFor(dir); matcher != nil && matcher.Match(path, isDir) {
			return true
		}

		if dir == ig.root || dir == filepath.Dir(dir) {
			return false
		}
	}
}
