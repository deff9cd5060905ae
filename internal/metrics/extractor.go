package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractorFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_extractor",
		Name:      "files_total",
		Help:      "Count of processed block files.",
	}, []string{"coin", "network", "status"})

	extractorFileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_extractor",
		Name:      "file_duration_seconds",
		Help:      "Duration of scanning a single block file.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"coin", "network", "status"})

	extractorAddressesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_extractor",
		Name:      "addresses_total",
		Help:      "Count of extracted output addresses.",
	}, []string{"coin", "network"})
)

// Extractor tracks metrics for the address extraction run, including the
// scanners it drives.
type Extractor struct {
	Scanner
	coin    model.Coin
	network model.Network
}

// NewExtractor constructs an Extractor with sane defaults.
func NewExtractor(coin model.Coin, network model.Network) *Extractor {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Extractor{Scanner: *NewScanner(coin, network), coin: coin, network: network}
}

// ObserveFile records the outcome and duration of one block file.
func (m Extractor) ObserveFile(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	extractorFilesTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	extractorFileDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveAddresses records extracted addresses.
func (m Extractor) ObserveAddresses(count int) {
	extractorAddressesTotal.WithLabelValues(string(m.coin), string(m.network)).Add(float64(count))
}
