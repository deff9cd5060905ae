// Package blockfile scans append-only block files and deserializes the block
// records they contain.
package blockfile

import (
	"errors"
	"fmt"
	"io"
)

// RingReader is a bounded circular buffer over a forward-only byte source. It
// guarantees that the last rewind bytes before the read position can be read
// again, and it never holds more than its fixed capacity in memory.
type RingReader struct {
	src       io.Reader
	srcPos    uint64 // bytes pulled from src
	readPos   uint64 // bytes delivered to the caller
	readLimit uint64
	rewind    uint64
	buf       []byte

	eof    bool
	srcErr error
}

// NewRingReader allocates a ring buffer of size bytes over src. rewind must be
// strictly less than size.
func NewRingReader(src io.Reader, size, rewind uint64) (*RingReader, error) {
	if rewind >= size {
		return nil, fmt.Errorf("%w: rewind %d, size %d", ErrRewindTooLarge, rewind, size)
	}
	return &RingReader{
		src:       src,
		readLimit: NoLimit,
		rewind:    rewind,
		buf:       make([]byte, size),
	}, nil
}

// fill pulls the next chunk from the source into the buffer, never writing
// over the guaranteed rewind window or past the physical end of the buffer.
func (r *RingReader) fill() error {
	size := uint64(len(r.buf))
	pos := r.srcPos % size
	readNow := size - pos
	avail := size - (r.srcPos - r.readPos) - r.rewind
	if avail < readNow {
		readNow = avail
	}
	if readNow == 0 {
		return nil
	}
	if r.srcErr != nil {
		return r.srcErr
	}
	if r.eof {
		return ErrEndOfSource
	}

	n, err := r.src.Read(r.buf[pos : pos+readNow])
	r.srcPos += uint64(n)
	switch {
	case errors.Is(err, io.EOF):
		r.eof = true
	case err != nil:
		r.srcErr = fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	if n > 0 {
		return nil
	}
	if r.eof {
		return ErrEndOfSource
	}
	if r.srcErr != nil {
		return r.srcErr
	}
	return fmt.Errorf("%w: %w", ErrSourceRead, io.ErrNoProgress)
}

// Read fills p completely. Unlike a plain io.Reader it never returns a short
// read without an error: it fails with ErrLimitExceeded when p would cross the
// read limit, ErrEndOfSource when the source runs dry, or ErrSourceRead.
func (r *RingReader) Read(p []byte) (int, error) {
	if uint64(len(p))+r.readPos > r.readLimit {
		return 0, ErrLimitExceeded
	}
	size := uint64(len(r.buf))
	read := 0
	for read < len(p) {
		if r.readPos == r.srcPos {
			if err := r.fill(); err != nil {
				return read, err
			}
		}
		pos := r.readPos % size
		now := uint64(len(p) - read)
		if pos+now > size {
			now = size - pos
		}
		if r.readPos+now > r.srcPos {
			now = r.srcPos - r.readPos
		}
		copy(p[read:], r.buf[pos:pos+now])
		r.readPos += now
		read += int(now)
	}
	return read, nil
}

// ReadByte reads a single byte.
func (r *RingReader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// FindByte advances the read position until it rests on b. Only a source
// failure or exhaustion stops the search. The read limit is not consulted.
func (r *RingReader) FindByte(b byte) error {
	size := uint64(len(r.buf))
	for {
		if r.readPos == r.srcPos {
			if err := r.fill(); err != nil {
				return err
			}
		}
		if r.buf[r.readPos%size] == b {
			return nil
		}
		r.readPos++
	}
}

// Pos returns the number of bytes delivered so far.
func (r *RingReader) Pos() uint64 {
	return r.readPos
}

// SetPos moves the read position within the bytes still held by the buffer.
// A target outside that window is clamped to its nearest edge and SetPos
// reports false.
func (r *RingReader) SetPos(pos uint64) bool {
	size := uint64(len(r.buf))
	if pos+size < r.srcPos {
		r.readPos = r.srcPos - size
		return false
	}
	if pos > r.srcPos {
		r.readPos = r.srcPos
		return false
	}
	r.readPos = pos
	return true
}

// SetLimit forbids reading beyond pos. It fails when pos is behind the bytes
// already delivered. Pass NoLimit to clear the limit.
func (r *RingReader) SetLimit(pos uint64) error {
	if pos < r.readPos {
		return fmt.Errorf("%w: limit %d behind read position %d", ErrLimitExceeded, pos, r.readPos)
	}
	r.readLimit = pos
	return nil
}

// ClearLimit removes the read limit.
func (r *RingReader) ClearLimit() {
	r.readLimit = NoLimit
}

// AtEnd reports whether every buffered byte has been delivered and the source
// has reported exhaustion.
func (r *RingReader) AtEnd() bool {
	return r.readPos == r.srcPos && r.eof
}
