package corpusio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (gf *gzipFile) Close() error {
	err := gf.Reader.Close()
	if err2 := gf.f.Close(); err == nil {
		err = err2
	}
	return err
}

// IsGzipped tells whether a path refers to a gzip-compressed file
// (by its name).
func IsGzipped(path string) bool {
	matched, _ := filepath.Match("*.gz", filepath.Base(path))
	return matched
}

// Open opens a corpus file. Files ending with ".gz" are decompressed
// transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	if !IsGzipped(path) {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzipped corpus file %s: %w", path, err)
	}
	return &gzipFile{Reader: gz, f: f}, nil
}
