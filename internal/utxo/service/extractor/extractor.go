// Package extractor walks a directory of block files in index order and
// emits the address of every transaction output it can decode.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

// Config selects the chain and the block files to process.
type Config struct {
	Coin       model.Coin
	Network    model.Network
	BlocksDir  string
	StartIndex uint32
	XORKey     blockfile.XORKey
}

// Stats summarizes a run.
type Stats struct {
	Files       int
	FailedFiles int
	Blocks      int
	Addresses   int
}

type Service struct {
	cfg       Config
	magic     [4]byte
	converter *bitcoin.OutputConverter
	writer    AddressWriter
	metrics   Metrics
	logger    *zap.Logger
	open      func(path string, key blockfile.XORKey) (io.ReadCloser, error)
}

func New(
	cfg Config,
	extractor AddressExtractor,
	writer AddressWriter,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	magic, err := bitcoin.MagicForNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}
	if extractor == nil {
		return nil, errors.New("address extractor is required")
	}
	if writer == nil {
		return nil, errors.New("address writer is required")
	}
	if metrics == nil {
		return nil, errors.New("extractor metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)

	return &Service{
		cfg:       cfg,
		magic:     magic,
		converter: bitcoin.NewOutputConverter(extractor, cfg.Coin, cfg.Network, logger.Named("converter")),
		writer:    writer,
		metrics:   metrics,
		logger:    logger,
		open:      openBlockFile,
	}, nil
}

// Run processes blk files starting at StartIndex until one cannot be opened.
// A file whose source fails mid-scan is counted as failed and skipped. The
// context is checked between files.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	for index := s.cfg.StartIndex; ; index++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		path := blockfile.Path(s.cfg.BlocksDir, index)
		src, err := s.open(path, s.cfg.XORKey)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Info("no more block files", zap.String("file", path))
			} else {
				s.logger.Warn("open block file failed; stopping", zap.String("file", path), zap.Error(err))
			}
			break
		}

		if err := s.processFile(ctx, path, src, &stats); err != nil {
			if !blockfile.IsSourceFailure(err) {
				return stats, err
			}
			stats.FailedFiles++
			s.logger.Error("block file read failed", zap.String("file", path), zap.Error(err))
		}

		if index == math.MaxUint32 {
			break
		}
	}

	s.logger.Info("processing finished",
		zap.Int("files", stats.Files),
		zap.Int("failed_files", stats.FailedFiles),
		zap.Int("blocks", stats.Blocks),
		zap.Int("addresses", stats.Addresses),
	)
	return stats, nil
}

func (s *Service) processFile(ctx context.Context, path string, src io.ReadCloser, stats *Stats) (err error) {
	started := time.Now()
	logger := s.logger.With(zap.String("file", path))
	logger.Info("processing block file")

	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			logger.Warn("close block file failed", zap.Error(closeErr))
		}
		s.metrics.ObserveFile(err, started)
	}()

	stats.Files++
	name := filepath.Base(path)
	scanner := blockfile.NewScanner(s.magic, s.metrics, logger.Named("scanner"))

	res, scanErr := scanner.Scan(src, func(blk *wire.MsgBlock, _ uint64) error {
		stats.Blocks++
		if stats.Blocks%progressInterval == 0 {
			s.logger.Info("block is read", zap.Int("blocks", stats.Blocks))
		}

		rows := s.converter.Convert(blk, name)
		if len(rows) == 0 {
			return nil
		}
		if err := s.writer.Write(ctx, rows); err != nil {
			return fmt.Errorf("write addresses: %w", err)
		}
		stats.Addresses += len(rows)
		s.metrics.ObserveAddresses(len(rows))
		return nil
	})

	if flushErr := s.writer.Flush(ctx); flushErr != nil {
		if scanErr != nil {
			logger.Error("block file read failed", zap.Error(scanErr))
		}
		return fmt.Errorf("flush addresses: %w", flushErr)
	}
	if scanErr != nil {
		return scanErr
	}

	logger.Debug("block file done",
		zap.Int("blocks", res.Blocks),
		zap.Int("rejected", res.Rejected),
		zap.Int("failed", res.Failed),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func openBlockFile(path string, key blockfile.XORKey) (io.ReadCloser, error) {
	return blockfile.Open(path, key)
}
