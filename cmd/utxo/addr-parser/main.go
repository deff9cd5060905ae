package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/service/extractor"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/writer"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/pkg/batcher"
)

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
		LogFile:     cfg.LogFile,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("address parser failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	network, err := cfg.network()
	if err != nil {
		return err
	}
	addresses, err := bitcoin.NewAddressExtractor(network)
	if err != nil {
		return fmt.Errorf("init address extractor: %w", err)
	}
	xorKey, err := blockfile.ReadXORKey(cfg.xorKeyPath())
	if err != nil {
		return fmt.Errorf("read xor key: %w", err)
	}
	if !xorKey.IsZero() {
		logger.Info("block files are obfuscated", zap.String("key_file", cfg.xorKeyPath()))
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	sink := writer.Multi{writer.NewTextWriter(out)}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewAddressSink())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if closeErr := repo.Close(); closeErr != nil {
				logger.Warn("close clickhouse connection failed", zap.Error(closeErr))
			}
		}()

		chWriter := writer.NewClickhouseWriter(repo, batcher.Config{FlushSize: cfg.ClickhouseBatchSize}, logger)
		chWriter.Start(ctx)
		defer chWriter.Stop()
		sink = append(sink, chWriter)
	}

	svc, err := extractor.New(
		extractor.Config{
			Coin:       cfg.Coin,
			Network:    network,
			BlocksDir:  cfg.BlocksDir,
			StartIndex: cfg.StartIndex,
			XORKey:     xorKey,
		},
		addresses,
		sink,
		metrics.NewExtractor(cfg.Coin, network),
		logger.Named("extractor"),
	)
	if err != nil {
		return err
	}

	stats, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	if stats.Files == 0 {
		logger.Warn("no block files found", zap.String("blocks_dir", cfg.BlocksDir), zap.Uint32("start_index", cfg.StartIndex))
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
