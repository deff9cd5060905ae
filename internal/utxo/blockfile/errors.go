package blockfile

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEndOfSource is returned when the byte source is exhausted.
	ErrEndOfSource = fmt.Errorf("blockfile: end of source: %w", io.EOF)
	// ErrSourceRead is returned when the byte source fails for a reason other than exhaustion.
	ErrSourceRead = errors.New("blockfile: source read failed")
	// ErrLimitExceeded is returned when a read would cross the current read limit.
	ErrLimitExceeded = errors.New("blockfile: read attempted past buffer limit")
	// ErrRewindTooLarge is returned when the rewind guarantee does not fit the buffer.
	ErrRewindTooLarge = errors.New("blockfile: rewind limit must be less than buffer size")

	// ErrNonCanonical is returned for a compact size that has a shorter encoding.
	ErrNonCanonical = errors.New("blockfile: non-canonical compact size")
	// ErrValueTooLarge is returned for a compact size above MaxBlockSerializedSize.
	ErrValueTooLarge = errors.New("blockfile: compact size is too large")
	// ErrBadMagic is returned when the candidate header does not start with the network magic.
	ErrBadMagic = errors.New("blockfile: magic mismatch")
	// ErrBlockSize is returned when the declared payload size is out of range.
	ErrBlockSize = errors.New("blockfile: declared block size out of range")
	// ErrMalformed is returned for structurally invalid transactions.
	ErrMalformed = errors.New("blockfile: malformed transaction")
)

// IsSourceFailure reports whether err comes from the underlying byte source
// rather than from the data it produced.
func IsSourceFailure(err error) bool {
	return errors.Is(err, ErrSourceRead)
}

// IsFormatViolation reports whether err is a recoverable problem with the
// scanned bytes. A premature end of source inside a decode window counts as a
// truncated payload.
func IsFormatViolation(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNonCanonical),
		errors.Is(err, ErrValueTooLarge),
		errors.Is(err, ErrLimitExceeded),
		errors.Is(err, ErrBadMagic),
		errors.Is(err, ErrBlockSize),
		errors.Is(err, ErrMalformed),
		errors.Is(err, ErrEndOfSource):
		return true
	default:
		return false
	}
}
