package tengok

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int64
	}{
		{name: "empty file", content: "", want: 0},
		{name: "single terminated line", content: "hello\n", want: 1},
		{name: "single unterminated line", content: "hello", want: 1},
		{name: "terminated lines", content: "a\nb\nc\n", want: 3},
		{name: "dangling tail counts once", content: "a\nb\nc", want: 3},
		{name: "blank lines count", content: "\n\n\n", want: 3},
		{name: "crlf terminators count as newlines", content: "a\r\nb\r\n", want: 2},
	}

	dir := t.TempDir()
	buf := make([]byte, lineBufSize)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".txt", tt.content)

			got, err := CountLines(path, buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLinesAcrossChunkBoundaries(t *testing.T) {
	dir := t.TempDir()

	// Force the terminator to land on every possible position relative to
	// the chunk boundary.
	content := strings.Repeat("x", 3) + "\n" + strings.Repeat("y", 5) + "\n" + "tail"
	path := writeFile(t, dir, "chunked.txt", content)

	for bufSize := 1; bufSize <= 8; bufSize++ {
		got, err := CountLines(path, make([]byte, bufSize))
		require.NoError(t, err)
		assert.Equal(t, int64(3), got, "buffer size %d", bufSize)
	}
}

func TestCountLinesMissingFile(t *testing.T) {
	_, err := CountLines(filepath.Join(t.TempDir(), "absent.txt"), make([]byte, lineBufSize))
	require.Error(t, err)
}

func TestCountLinesPooledSwallowsErrors(t *testing.T) {
	assert.Equal(t, int64(0), countLinesPooled(filepath.Join(t.TempDir(), "absent.txt")))
}
