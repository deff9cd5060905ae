package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	addressSinkBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_sink",
		Name:      "batches_total",
		Help:      "Extracted address batches written to ClickHouse, by outcome.",
	}, []string{"operation", "coin", "network", "status"})
	addressSinkBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_sink",
		Name:      "batch_duration_seconds",
		Help:      "Time spent preparing and sending one extracted address batch.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "coin", "network", "status"})
)

// AddressSink tracks the inserts that persist extracted addresses.
type AddressSink struct{}

func NewAddressSink() *AddressSink {
	return &AddressSink{}
}

// Observe records one insert. An empty coin or network is reported as
// "unknown", which is what an empty batch carries.
func (AddressSink) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	labels := []string{operation, labelOrUnknown(string(coin)), labelOrUnknown(string(network)), status}

	addressSinkBatchesTotal.WithLabelValues(labels...).Inc()
	addressSinkBatchDuration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
