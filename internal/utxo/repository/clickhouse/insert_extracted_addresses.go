package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

const insertExtractedAddressesQuery = `
INSERT INTO utxo_extracted_addresses (
	coin,
	network,
	block_file,
	block_hash,
	block_timestamp,
	txid,
	output_index,
	value,
	address
) VALUES`

// InsertExtractedAddresses stores extracted addresses in ClickHouse.
func (r *Repository) InsertExtractedAddresses(ctx context.Context, rows []model.ExtractedAddress) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_extracted_addresses", firstCoin(rows), firstNetwork(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertExtractedAddressesQuery)
	if err != nil {
		return fmt.Errorf("prepare extracted addresses batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(row.Coin),
			string(row.Network),
			row.BlockFile,
			row.BlockHash,
			row.BlockTime,
			row.TxID,
			row.OutputIndex,
			row.Value,
			row.Address,
		); err != nil {
			return fmt.Errorf("append extracted address: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert extracted addresses: %w", err)
	}
	return nil
}

func firstCoin(rows []model.ExtractedAddress) model.Coin {
	if len(rows) == 0 {
		return ""
	}
	return rows[0].Coin
}

func firstNetwork(rows []model.ExtractedAddress) model.Network {
	if len(rows) == 0 {
		return ""
	}
	return rows[0].Network
}
