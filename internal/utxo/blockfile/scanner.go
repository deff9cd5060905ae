package blockfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"
)

// Reasons reported to ScannerMetrics.ObserveRejected.
const (
	RejectMagic  = "magic"
	RejectSize   = "size"
	RejectDecode = "decode"
)

type (
	// BlockHandler receives every decoded block together with the offset of
	// its magic sequence. An error from the handler aborts the scan.
	BlockHandler func(blk *wire.MsgBlock, pos uint64) error

	// ScannerMetrics observes scan attempts.
	ScannerMetrics interface {
		ObserveBlock()
		ObserveRejected(reason string)
	}
)

// Result summarizes one scanned source.
type Result struct {
	Blocks   int
	Rejected int
	Failed   int
}

// Scanner locates and decodes block records inside a single block file.
type Scanner struct {
	magic      [magicSize]byte
	bufferSize uint64
	rewindSize uint64
	metrics    ScannerMetrics
	logger     *zap.Logger
}

// NewScanner builds a scanner for the network identified by magic.
func NewScanner(magic [4]byte, metrics ScannerMetrics, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Scanner{
		magic:      magic,
		bufferSize: BufferSize,
		rewindSize: RewindSize,
		metrics:    metrics,
		logger:     logger,
	}
}

// outcome is the result of one pass of the resync loop.
type outcome struct {
	magicPos uint64
	next     uint64 // rewind mark for the following attempt
	block    *wire.MsgBlock
	reason   string
	err      error
	done     bool
}

// Scan walks src from its current position to exhaustion, calling handle for
// every block it can decode. Format violations are logged and skipped; only
// a source failure or a handler error is returned.
func (s *Scanner) Scan(src io.Reader, handle BlockHandler) (Result, error) {
	var res Result
	r, err := NewRingReader(src, s.bufferSize, s.rewindSize)
	if err != nil {
		return res, err
	}

	rewindMark := r.Pos()
	for {
		a := s.attempt(r, rewindMark)
		if a.done {
			return res, a.err
		}
		rewindMark = a.next

		switch {
		case a.block != nil:
			res.Blocks++
			s.metrics.ObserveBlock()
			if err := handle(a.block, a.magicPos); err != nil {
				return res, err
			}
		case a.reason == RejectDecode:
			res.Failed++
			s.metrics.ObserveRejected(a.reason)
			s.logger.Warn("deserialize or I/O error",
				zap.Uint64("pos", a.magicPos),
				zap.Error(a.err),
			)
		case a.reason == RejectSize:
			res.Rejected++
			s.metrics.ObserveRejected(a.reason)
			s.logger.Debug("block size out of range", zap.Uint64("pos", a.magicPos), zap.Error(a.err))
		case a.reason == RejectMagic:
			res.Rejected++
			s.metrics.ObserveRejected(a.reason)
		}
	}
}

// attempt restores the stream to rewindMark and runs the
// seeking → header validation → decoding sequence once.
func (s *Scanner) attempt(r *RingReader, rewindMark uint64) outcome {
	r.SetPos(rewindMark)
	r.ClearLimit()
	if r.AtEnd() {
		return outcome{done: true}
	}

	if err := r.FindByte(s.magic[0]); err != nil {
		return outcome{done: true, err: endOfScan(err)}
	}
	magicPos := r.Pos()
	next := magicPos + 1

	var buf [magicSize]byte
	if _, err := r.Read(buf[:]); err != nil {
		return outcome{done: true, err: endOfScan(err)}
	}
	if !bytes.Equal(buf[:], s.magic[:]) {
		return outcome{magicPos: magicPos, next: next, reason: RejectMagic, err: ErrBadMagic}
	}

	if _, err := r.Read(buf[:blockSizeBytes]); err != nil {
		return outcome{done: true, err: endOfScan(err)}
	}
	size := binary.LittleEndian.Uint32(buf[:blockSizeBytes])
	if size < MinBlockSerializedSize || size > MaxBlockSerializedSize {
		return outcome{
			magicPos: magicPos,
			next:     next,
			reason:   RejectSize,
			err:      fmt.Errorf("%w: %d", ErrBlockSize, size),
		}
	}

	start := r.Pos()
	if err := r.SetLimit(start + uint64(size)); err != nil {
		return outcome{magicPos: magicPos, next: next, reason: RejectDecode, err: err}
	}
	r.SetPos(start)
	blk, err := DecodeBlock(r)
	if err != nil {
		if IsSourceFailure(err) {
			return outcome{done: true, err: fmt.Errorf("decode block at %d: %w", magicPos, err)}
		}
		return outcome{magicPos: magicPos, next: next, reason: RejectDecode, err: err}
	}
	return outcome{magicPos: magicPos, next: r.Pos(), block: blk}
}

// endOfScan maps an error raised while looking for a header: running out of
// source is the normal end of a file.
func endOfScan(err error) error {
	if errors.Is(err, ErrEndOfSource) {
		return nil
	}
	return err
}

type nopMetrics struct{}

func (nopMetrics) ObserveBlock()          {}
func (nopMetrics) ObserveRejected(string) {}
