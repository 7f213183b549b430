package tengok

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
)

// lineBufSize is the chunk size used when counting lines.
const lineBufSize = 64 * 1024

// lineBufPool hands out scratch buffers so the concurrent walk callbacks
// do not allocate per file.
//
//nolint:gochecknoglobals // Shared buffer pool
var lineBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, lineBufSize)

		return &buf
	},
}

// CountLines counts newline-terminated lines in the file at path, reading
// through buf in fixed-size chunks. A trailing run of bytes with no final
// newline counts as one line.
func CountLines(path string, buf []byte) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var lines int64

	danglingTail := false

	for {
		n, err := file.Read(buf)
		if n > 0 {
			lines += int64(bytes.Count(buf[:n], []byte{'\n'}))
			danglingTail = buf[n-1] != '\n'
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, err
		}
	}

	if danglingTail {
		lines++
	}

	return lines, nil
}

// countLinesPooled runs CountLines with a buffer from the pool. A read
// failure yields 0 lines: one unreadable file must not abort the scan.
func countLinesPooled(path string) int64 {
	buf, _ := lineBufPool.Get().(*[]byte)
	defer lineBufPool.Put(buf)

	lines, err := CountLines(path, *buf)
	if err != nil {
		return 0
	}

	return lines
}
