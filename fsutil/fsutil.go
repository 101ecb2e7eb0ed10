// Package fsutil has the small file helpers shared by the batch commands.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// FileInfo describes a path whether or not it exists.
type FileInfo struct {
	Path   string
	Name   string
	Stem   string
	Ext    string
	Dir    string
	Size   int64 // -1 when the file does not exist
	Exists bool
}

// EnsureDir creates dir and any parents.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Stem returns the base name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Info collects naming and size details for path.
func Info(path string) FileInfo {
	fi := FileInfo{
		Path: path,
		Name: filepath.Base(path),
		Stem: Stem(path),
		Ext:  filepath.Ext(path),
		Dir:  filepath.Dir(path),
		Size: -1,
	}
	if st, err := os.Stat(path); err == nil {
		fi.Exists = true
		fi.Size = st.Size()
	}
	return fi
}

// FormatSize renders a byte count for humans, e.g. "1.5 KiB".
func FormatSize(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}
