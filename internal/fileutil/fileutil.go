package fileutil

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Written describes a file produced by WriteAtomic.
type Written struct {
	Path   string
	Bytes  int64
	SHA256 string
}

// WriteAtomic writes dst through fill into a temp file in the same directory,
// fsyncs it, and renames it over dst. dst is untouched when fill fails.
func WriteAtomic(dst string, mode os.FileMode, fill func(io.Writer) error) (Written, error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Written{}, fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return Written{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	hasher := sha256.New()
	counter := &countingWriter{}
	buffered := bufio.NewWriter(io.MultiWriter(tmp, hasher, counter))
	if err := fill(buffered); err != nil {
		return Written{}, err
	}
	if err := buffered.Flush(); err != nil {
		return Written{}, fmt.Errorf("flush %s: %w", dst, err)
	}
	if err := tmp.Sync(); err != nil {
		return Written{}, fmt.Errorf("sync %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return Written{}, fmt.Errorf("close %s: %w", dst, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return Written{}, fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return Written{}, fmt.Errorf("rename into %s: %w", dst, err)
	}
	committed = true

	return Written{Path: dst, Bytes: counter.n, SHA256: hex.EncodeToString(hasher.Sum(nil))}, nil
}

// FileSHA256 returns the hex SHA256 digest and size of path.
func FileSHA256(path string) (string, int64, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer in.Close()

	hasher := sha256.New()
	n, err := io.Copy(hasher, in)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(hasher.Sum(nil)), n, nil
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
