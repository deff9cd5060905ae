package main

import (
	"errors"
	"path/filepath"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

const xorKeyFileName = "xor.dat"

type config struct {
	Coin       model.Coin `long:"coin" env:"ADDR_PARSER_COIN" description:"coin name" default:"BTC"`
	Network    string     `short:"n" long:"network" env:"ADDR_PARSER_NETWORK" description:"network of the block files" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet" default:"mainnet"`
	Mainnet    bool       `short:"m" long:"mainnet" description:"shortcut for --network=mainnet"`
	Testnet    bool       `short:"t" long:"testnet" description:"shortcut for --network=testnet"`
	Regtest    bool       `short:"r" long:"regtest" description:"shortcut for --network=regtest"`
	BlocksDir  string     `short:"p" long:"blocks-dir" env:"ADDR_PARSER_BLOCKS_DIR" description:"directory holding blk*.dat files" default:"."`
	StartIndex uint32     `long:"start-index" env:"ADDR_PARSER_START_INDEX" description:"index of the first blk file to read" default:"0"`
	XORKeyFile string     `long:"xor-key-file" env:"ADDR_PARSER_XOR_KEY_FILE" description:"block file obfuscation key (default: <blocks-dir>/xor.dat)"`
	Output     string     `short:"o" long:"output" env:"ADDR_PARSER_OUTPUT" description:"file receiving one address per line" default:"addresses.txt"`

	ClickhouseDSN       string `long:"clickhouse-dsn" env:"ADDR_PARSER_CLICKHOUSE_DSN" description:"also store addresses in ClickHouse when set"`
	ClickhouseBatchSize int    `long:"clickhouse-batch-size" env:"ADDR_PARSER_CLICKHOUSE_BATCH_SIZE" description:"rows per ClickHouse insert" default:"10000"`

	MetricsAddr    string `long:"metrics-addr" env:"ADDR_PARSER_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
	LogLevel       string `long:"log-level" env:"ADDR_PARSER_LOG_LEVEL" description:"log level" default:"info"`
	LogFile        string `long:"log-file" env:"ADDR_PARSER_LOG_FILE" description:"rotated JSON log file"`
	LogDevelopment bool   `long:"log-development" env:"ADDR_PARSER_LOG_DEVELOPMENT" description:"human friendly console logs"`
}

var errConflictingNetworks = errors.New("only one of -m, -t and -r may be given")

// network applies the single-letter shortcuts on top of --network.
func (c config) network() (model.Network, error) {
	var picked []model.Network
	if c.Mainnet {
		picked = append(picked, model.Mainnet)
	}
	if c.Testnet {
		picked = append(picked, model.Testnet)
	}
	if c.Regtest {
		picked = append(picked, model.Regtest)
	}

	switch len(picked) {
	case 0:
		return model.Network(c.Network), nil
	case 1:
		return picked[0], nil
	default:
		return "", errConflictingNetworks
	}
}

func (c config) xorKeyPath() string {
	if c.XORKeyFile != "" {
		return c.XORKeyFile
	}
	return filepath.Join(c.BlocksDir, xorKeyFileName)
}
