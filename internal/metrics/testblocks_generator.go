package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "testblocks_generator",
		Name:      "generate_total",
		Help:      "Count of contract generation runs.",
	}, []string{"coin", "network", "status"})

	generateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "testblocks_generator",
		Name:      "generate_duration_seconds",
		Help:      "Duration of a contract generation run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	generateHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "testblocks_generator",
		Name:      "height_duration_seconds",
		Help:      "Duration of fetching a single block record.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
)

// TestBlocksGenerator tracks metrics for the contract generation pipeline.
type TestBlocksGenerator struct {
	coin    model.Coin
	network model.Network
}

func NewTestBlocksGenerator(coin model.Coin, network model.Network) *TestBlocksGenerator {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &TestBlocksGenerator{coin: coin, network: network}
}

func (m TestBlocksGenerator) ObserveGenerate(err error, _ int, started time.Time) {
	status := statusLabel(err)
	generateTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	generateDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func (m TestBlocksGenerator) ObserveHeight(err error, _ uint64, started time.Time) {
	generateHeightDuration.WithLabelValues(string(m.coin), string(m.network), statusLabel(err)).
		Observe(time.Since(started).Seconds())
}
