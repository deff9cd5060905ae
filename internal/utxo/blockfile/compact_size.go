package blockfile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadCompactSize decodes a variable-length unsigned integer. The tag byte
// selects the width (<253 inline, 253 two bytes, 254 four bytes, 255 eight
// bytes). Encodings that could have used a shorter tag fail with
// ErrNonCanonical, values of MaxBlockSerializedSize or more fail with
// ErrValueTooLarge.
func ReadCompactSize(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}

	var (
		value uint64
		floor uint64
	)
	switch tag := buf[0]; tag {
	case 0xfd:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return 0, err
		}
		value, floor = uint64(binary.LittleEndian.Uint16(buf[:2])), 0xfd
	case 0xfe:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return 0, err
		}
		value, floor = uint64(binary.LittleEndian.Uint32(buf[:4])), 0x10000
	case 0xff:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return 0, err
		}
		value, floor = binary.LittleEndian.Uint64(buf[:8]), 0x100000000
	default:
		value = uint64(tag)
	}

	if value < floor {
		return 0, fmt.Errorf("%w: tag 0x%02x encodes %d", ErrNonCanonical, buf[0], value)
	}
	if value >= MaxBlockSerializedSize {
		return 0, fmt.Errorf("%w: %d", ErrValueTooLarge, value)
	}
	return value, nil
}

// AppendCompactSize appends the minimal encoding of v to b.
func AppendCompactSize(b []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(b, byte(v))
	case v <= 0xffff:
		return binary.LittleEndian.AppendUint16(append(b, 0xfd), uint16(v))
	case v <= 0xffffffff:
		return binary.LittleEndian.AppendUint32(append(b, 0xfe), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(b, 0xff), v)
	}
}
