// Package metrics exposes application metrics collectors.
package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "blocks_decoded_total",
		Help:      "Count of block records decoded from block files.",
	}, []string{"coin", "network"})

	scannerRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "candidates_rejected_total",
		Help:      "Count of candidate block headers abandoned by the scanner.",
	}, []string{"coin", "network", "reason"})
)

// Scanner tracks metrics for the block file scanner.
type Scanner struct {
	coin    model.Coin
	network model.Network
}

// NewScanner constructs a Scanner with sane defaults.
func NewScanner(coin model.Coin, network model.Network) *Scanner {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Scanner{coin: coin, network: network}
}

// ObserveBlock records a decoded block.
func (m Scanner) ObserveBlock() {
	scannerBlocksTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
}

// ObserveRejected records an abandoned candidate.
func (m Scanner) ObserveRejected(reason string) {
	scannerRejectedTotal.WithLabelValues(string(m.coin), string(m.network), reason).Inc()
}
