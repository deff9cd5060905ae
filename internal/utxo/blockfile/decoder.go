package blockfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	witnessFlag = 0x01

	// preallocHint bounds slice preallocation for declared counts; the read
	// limit, not the count, decides how many elements actually decode.
	preallocHint = 64
)

// decoder applies the structural decoding rules (fixed-width scalars, opaque
// blobs, compact-size prefixed sequences) to a byte stream. Nothing is
// rolled back on failure: the stream stays wherever the failing read left it.
type decoder struct {
	r   io.Reader
	buf [8]byte
}

// DecodeBlock deserializes one block record from r.
func DecodeBlock(r io.Reader) (*wire.MsgBlock, error) {
	d := &decoder{r: r}
	return d.block()
}

func (d *decoder) block() (*wire.MsgBlock, error) {
	header, err := d.header()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	count, err := ReadCompactSize(d.r)
	if err != nil {
		return nil, fmt.Errorf("tx count: %w", err)
	}
	blk := &wire.MsgBlock{
		Header:       header,
		Transactions: make([]*wire.MsgTx, 0, prealloc(count)),
	}
	for i := uint64(0); i < count; i++ {
		tx, err := d.tx()
		if err != nil {
			return nil, fmt.Errorf("tx %d: %w", i, err)
		}
		blk.Transactions = append(blk.Transactions, tx)
	}
	return blk, nil
}

func (d *decoder) header() (wire.BlockHeader, error) {
	var h wire.BlockHeader
	version, err := d.uint32()
	if err != nil {
		return h, err
	}
	h.Version = int32(version)
	if err := d.hash(&h.PrevBlock); err != nil {
		return h, err
	}
	if err := d.hash(&h.MerkleRoot); err != nil {
		return h, err
	}
	ts, err := d.uint32()
	if err != nil {
		return h, err
	}
	h.Timestamp = time.Unix(int64(ts), 0)
	if h.Bits, err = d.uint32(); err != nil {
		return h, err
	}
	if h.Nonce, err = d.uint32(); err != nil {
		return h, err
	}
	return h, nil
}

func (d *decoder) tx() (*wire.MsgTx, error) {
	version, err := d.uint32()
	if err != nil {
		return nil, err
	}
	tx := &wire.MsgTx{Version: int32(version)}

	var flags byte
	if tx.TxIn, err = d.txIns(); err != nil {
		return nil, err
	}
	if len(tx.TxIn) == 0 {
		// An empty input vector is the segwit marker; the flag byte follows.
		if flags, err = d.uint8(); err != nil {
			return nil, err
		}
		if flags != 0 {
			if tx.TxIn, err = d.txIns(); err != nil {
				return nil, err
			}
			if tx.TxOut, err = d.txOuts(); err != nil {
				return nil, err
			}
		}
	} else if tx.TxOut, err = d.txOuts(); err != nil {
		return nil, err
	}

	if flags&witnessFlag != 0 {
		flags ^= witnessFlag
		hasWitness := false
		for _, in := range tx.TxIn {
			if in.Witness, err = d.byteVectors(); err != nil {
				return nil, fmt.Errorf("witness: %w", err)
			}
			if len(in.Witness) > 0 {
				hasWitness = true
			}
		}
		if !hasWitness {
			return nil, fmt.Errorf("%w: superfluous witness record", ErrMalformed)
		}
	}
	if flags != 0 {
		return nil, fmt.Errorf("%w: unknown transaction optional data 0x%02x", ErrMalformed, flags)
	}

	if tx.LockTime, err = d.uint32(); err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *decoder) txIns() ([]*wire.TxIn, error) {
	count, err := ReadCompactSize(d.r)
	if err != nil {
		return nil, fmt.Errorf("input count: %w", err)
	}
	ins := make([]*wire.TxIn, 0, prealloc(count))
	for i := uint64(0); i < count; i++ {
		in := &wire.TxIn{}
		if err := d.hash(&in.PreviousOutPoint.Hash); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		if in.PreviousOutPoint.Index, err = d.uint32(); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		if in.SignatureScript, err = d.byteVector(); err != nil {
			return nil, fmt.Errorf("input %d script: %w", i, err)
		}
		if in.Sequence, err = d.uint32(); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		ins = append(ins, in)
	}
	return ins, nil
}

func (d *decoder) txOuts() ([]*wire.TxOut, error) {
	count, err := ReadCompactSize(d.r)
	if err != nil {
		return nil, fmt.Errorf("output count: %w", err)
	}
	outs := make([]*wire.TxOut, 0, prealloc(count))
	for i := uint64(0); i < count; i++ {
		value, err := d.uint64()
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		script, err := d.byteVector()
		if err != nil {
			return nil, fmt.Errorf("output %d script: %w", i, err)
		}
		outs = append(outs, wire.NewTxOut(int64(value), script))
	}
	return outs, nil
}

func (d *decoder) byteVectors() ([][]byte, error) {
	count, err := ReadCompactSize(d.r)
	if err != nil {
		return nil, err
	}
	items := make([][]byte, 0, prealloc(count))
	for i := uint64(0); i < count; i++ {
		item, err := d.byteVector()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (d *decoder) byteVector() ([]byte, error) {
	size, err := ReadCompactSize(d.r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decoder) hash(h *chainhash.Hash) error {
	_, err := io.ReadFull(d.r, h[:])
	return err
}

func (d *decoder) uint8() (byte, error) {
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

func (d *decoder) uint32() (uint32, error) {
	if _, err := io.ReadFull(d.r, d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d.buf[:4]), nil
}

func (d *decoder) uint64() (uint64, error) {
	if _, err := io.ReadFull(d.r, d.buf[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d.buf[:8]), nil
}

func prealloc(count uint64) uint64 {
	if count > preallocHint {
		return preallocHint
	}
	return count
}
