package blockfile

import "math"

const (
	// MaxBlockSerializedSize is the largest payload a block record may declare.
	MaxBlockSerializedSize = 4_000_000
	// MinBlockSerializedSize is the smallest payload a block record may declare (a bare header).
	MinBlockSerializedSize = 80

	// BufferSize is the ring buffer capacity used by the scanner.
	BufferSize = 2 * MaxBlockSerializedSize
	// RewindSize is the number of bytes the scanner needs to step back over a failed block.
	RewindSize = MaxBlockSerializedSize + 8

	// NoLimit clears the read limit of a RingReader.
	NoLimit uint64 = math.MaxUint64

	magicSize      = 4
	blockSizeBytes = 4
)
