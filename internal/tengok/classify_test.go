package tengok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldCountLines(t *testing.T) {
	tests := []struct {
		name string
		path string
		size int64
		cfg  Config
		want bool
	}{
		{
			name: "plain text file",
			path: "src/main.go",
			size: 1024,
			cfg:  Config{MaxLineBytes: DefaultMaxLineBytes},
			want: true,
		},
		{
			name: "skip lines wins over everything",
			path: "src/main.go",
			size: 1024,
			cfg:  Config{SkipLines: true, ForceLines: false, MaxLineBytes: DefaultMaxLineBytes},
			want: false,
		},
		{
			name: "force lines counts binary extensions",
			path: "assets/logo.png",
			size: 1024,
			cfg:  Config{ForceLines: true, MaxLineBytes: DefaultMaxLineBytes},
			want: true,
		},
		{
			name: "force lines counts oversized files",
			path: "big.log",
			size: 100,
			cfg:  Config{ForceLines: true, MaxLineBytes: 10},
			want: true,
		},
		{
			name: "file exactly at the ceiling is counted",
			path: "exact.txt",
			size: 10,
			cfg:  Config{MaxLineBytes: 10},
			want: true,
		},
		{
			name: "file one byte over the ceiling is skipped",
			path: "over.txt",
			size: 11,
			cfg:  Config{MaxLineBytes: 10},
			want: false,
		},
		{
			name: "zero ceiling disables the size check",
			path: "huge.txt",
			size: 1 << 40,
			cfg:  Config{MaxLineBytes: 0},
			want: true,
		},
		{
			name: "binary extension is skipped",
			path: "archive.zip",
			size: 1024,
			cfg:  Config{MaxLineBytes: DefaultMaxLineBytes},
			want: false,
		},
		{
			name: "binary extension check is case-insensitive",
			path: "photo.JPEG",
			size: 1024,
			cfg:  Config{MaxLineBytes: DefaultMaxLineBytes},
			want: false,
		},
		{
			name: "no extension is counted",
			path: "Makefile",
			size: 1024,
			cfg:  Config{MaxLineBytes: DefaultMaxLineBytes},
			want: true,
		},
		{
			name: "dotfile without extension is counted",
			path: ".gitignore",
			size: 64,
			cfg:  Config{MaxLineBytes: DefaultMaxLineBytes},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldCountLines(tt.path, tt.size, tt.cfg)
			assert.Equal(t, tt.want, got)

			// Pure function: same inputs, same answer.
			assert.Equal(t, got, ShouldCountLines(tt.path, tt.size, tt.cfg))
		})
	}
}
