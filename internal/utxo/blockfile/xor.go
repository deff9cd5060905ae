package blockfile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// XORKey is the obfuscation key stored next to the block files in xor.dat.
type XORKey [8]byte

// IsZero reports whether the key leaves data unchanged.
func (k XORKey) IsZero() bool {
	return k == XORKey{}
}

// ReadXORKey loads the key from path. A missing file means the block files
// are not obfuscated.
func ReadXORKey(path string) (XORKey, error) {
	var key XORKey
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return key, nil
	}
	if err != nil {
		return key, fmt.Errorf("open xor key %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.ReadFull(f, key[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return key, nil
		}
		return key, fmt.Errorf("read xor key %s: %w", path, err)
	}
	return key, nil
}

// XORReader undoes block file obfuscation. Each byte is XORed with the key
// byte selected by its absolute offset in the stream.
type XORReader struct {
	r   io.Reader
	key XORKey
	pos uint64
}

// NewXORReader wraps r, starting at offset zero.
func NewXORReader(r io.Reader, key XORKey) *XORReader {
	return &XORReader{r: r, key: key}
}

func (x *XORReader) Read(p []byte) (int, error) {
	n, err := x.r.Read(p)
	for i := 0; i < n; i++ {
		p[i] ^= x.key[(x.pos+uint64(i))&7]
	}
	x.pos += uint64(n)
	return n, err
}
