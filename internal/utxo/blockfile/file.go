package blockfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Path composes the name of the block file with the given index inside dir.
func Path(dir string, index uint32) string {
	name := fmt.Sprintf("blk%05d.dat", index)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// File owns an open block file for the duration of one scan. Close releases
// the descriptor exactly once, however many times it is called.
type File struct {
	path string
	rc   io.ReadCloser
	r    io.Reader
}

// Open opens the block file at path, de-obfuscating it with key when the key
// is not all zero.
func Open(path string, key XORKey) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open block file %s: %w", path, err)
	}
	return NewFile(path, f, key), nil
}

// NewFile takes ownership of rc.
func NewFile(path string, rc io.ReadCloser, key XORKey) *File {
	var r io.Reader = rc
	if !key.IsZero() {
		r = NewXORReader(rc, key)
	}
	return &File{path: path, rc: rc, r: r}
}

// Path returns the file name the handle was opened with.
func (f *File) Path() string {
	return f.path
}

func (f *File) Read(p []byte) (int, error) {
	if f.rc == nil {
		return 0, fmt.Errorf("%w: %s is closed", ErrSourceRead, f.path)
	}
	return f.r.Read(p)
}

// Close closes the underlying file. Calls after the first are no-ops.
func (f *File) Close() error {
	if f.rc == nil {
		return nil
	}
	rc := f.rc
	f.rc = nil
	return rc.Close()
}
