package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativePath(t *testing.T) {
	root := filepath.Join("home", "user", "project")

	assert.Equal(t, "src/main.go", RelativePath(filepath.Join(root, "src", "main.go"), root))
	assert.Equal(t, ".", RelativePath(root, root))

	outside := filepath.Join("var", "log", "messages")
	assert.Equal(t, filepath.ToSlash(outside), RelativePath(outside, root))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long…", Truncate("longer", 5))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestEllipsizeMiddleLeavesShortStringsAlone(t *testing.T) {
	assert.Equal(t, "short.txt", EllipsizeMiddle("short.txt", 20))
}

func TestEllipsizeMiddleCompactsMiddleAndKeepsEnds(t *testing.T) {
	assert.Equal(t, "somefilen…rylong.txt", EllipsizeMiddle("somefilenameisverylong.txt", 20))
}

func TestEllipsizeMiddleEdgeWidths(t *testing.T) {
	assert.Equal(t, "", EllipsizeMiddle("anything", 0))
	assert.Equal(t, "…", EllipsizeMiddle("anything", 1))
	assert.Equal(t, "a…g", EllipsizeMiddle("aeioug", 3))
}
