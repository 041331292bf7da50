// Package files provides filesystem access for the analyzer: whole-file
// reads with binary and size guards, and recursive source enumeration.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ReadSource reads a file fully as text. Binary files (NUL byte in the first
// KiB) and files above maxSize are refused; the caller records the failure.
// A maxSize of zero disables the size guard.
func ReadSource(path string, maxSize int64) (string, int64, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("file not found or stat error: %w", err)
	}
	if fileInfo.IsDir() {
		return "", 0, fmt.Errorf("path '%s' is a directory, not a file", path)
	}

	size := fileInfo.Size()
	if maxSize > 0 && size > maxSize {
		return "", 0, fmt.Errorf("file '%s' is too large (%d bytes, limit %d)", filepath.Base(path), size, maxSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("cannot open file: %w", err)
	}
	buffer := make([]byte, 1024)
	n, _ := file.Read(buffer)
	file.Close()

	for i := 0; i < n; i++ {
		if buffer[i] == 0 {
			return "", 0, fmt.Errorf("file '%s' appears to be binary", filepath.Base(path))
		}
	}

	logrus.Debugf("Reading complete file '%s' (%d bytes).", filepath.Base(path), size)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("error reading file: %w", err)
	}

	return string(content), size, nil
}
