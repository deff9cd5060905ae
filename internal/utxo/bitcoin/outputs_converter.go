package bitcoin

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/pkg/safe"
)

// Extractor turns an output script into addresses.
type Extractor interface {
	Extract(pkScript []byte) ([]string, error)
}

// OutputConverter flattens decoded blocks into one row per paid address.
type OutputConverter struct {
	extractor Extractor
	coin      model.Coin
	network   model.Network
	logger    *zap.Logger
}

// NewOutputConverter constructs a converter for the given network.
func NewOutputConverter(extractor Extractor, coin model.Coin, network model.Network, logger *zap.Logger) *OutputConverter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutputConverter{extractor: extractor, coin: coin, network: network, logger: logger}
}

// Convert lists the addresses of every output of blk in block, transaction
// and output order. Addresses depend on the output script alone: the value is
// copied as the raw 8 bytes from the wire and never validated. Outputs whose
// script yields no address, or cannot be parsed, are skipped.
func (c *OutputConverter) Convert(blk *wire.MsgBlock, blockFile string) []model.ExtractedAddress {
	blockHash := blk.BlockHash().String()
	var rows []model.ExtractedAddress
	for _, tx := range blk.Transactions {
		txid := tx.TxHash().String()
		for idx, out := range tx.TxOut {
			index, err := safe.Uint32(idx)
			if err != nil {
				c.logger.Warn("output index overflow", zap.String("txid", txid), zap.Error(err))
				break
			}
			addresses, err := c.extractor.Extract(out.PkScript)
			if err != nil {
				c.logger.Warn("skipping output with unparsable script",
					zap.String("txid", txid),
					zap.Uint32("output_index", index),
					zap.Stringer("value", btcutil.Amount(out.Value)),
					zap.Error(err),
				)
				continue
			}
			for _, addr := range addresses {
				rows = append(rows, model.ExtractedAddress{
					Coin:        c.coin,
					Network:     c.network,
					BlockFile:   blockFile,
					BlockHash:   blockHash,
					BlockTime:   blk.Header.Timestamp.UTC(),
					TxID:        txid,
					OutputIndex: index,
					Value:       uint64(out.Value),
					Address:     addr,
				})
			}
		}
	}
	return rows
}
