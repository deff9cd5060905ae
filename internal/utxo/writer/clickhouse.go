package writer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/pkg/batcher"
)

const (
	defaultBatchSize     = 10000
	defaultFlushInterval = 5 * time.Second
	defaultInsertRPS     = 10
)

// ClickhouseWriter queues rows and inserts them in batches through a Repository.
type ClickhouseWriter struct {
	batcher *batcher.Batcher[model.ExtractedAddress]
}

// NewClickhouseWriter builds a writer that inserts through repo. Zero fields
// of cfg fall back to defaults.
func NewClickhouseWriter(repo Repository, cfg batcher.Config, logger *zap.Logger) *ClickhouseWriter {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.RPS == 0 {
		cfg.RPS = defaultInsertRPS
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClickhouseWriter{
		batcher: batcher.New[model.ExtractedAddress](cfg, repo.InsertExtractedAddresses, logger.Named("clickhouse_writer")),
	}
}

// Start launches the background insert loop.
func (c *ClickhouseWriter) Start(ctx context.Context) {
	c.batcher.Start(ctx)
}

// Stop inserts what is still queued and stops the loop.
func (c *ClickhouseWriter) Stop() {
	c.batcher.Stop()
}

func (c *ClickhouseWriter) Write(ctx context.Context, rows []model.ExtractedAddress) error {
	for _, row := range rows {
		if err := c.batcher.Add(ctx, row); err != nil {
			return fmt.Errorf("queue extracted address: %w", err)
		}
	}
	return nil
}

func (c *ClickhouseWriter) Flush(ctx context.Context) error {
	if err := c.batcher.Flush(ctx); err != nil {
		return fmt.Errorf("insert extracted addresses: %w", err)
	}
	return nil
}
