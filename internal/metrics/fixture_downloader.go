// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fixtureBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "fixture_downloader",
		Name:      "batch_total",
		Help:      "Count of fixture download runs.",
	}, []string{"coin", "network", "status"})

	fixtureBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "fixture_downloader",
		Name:      "batch_duration_seconds",
		Help:      "Duration of a fixture download run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	fixtureBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "fixture_downloader",
		Name:      "batch_size",
		Help:      "Number of heights requested per run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})

	fixtureHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "fixture_downloader",
		Name:      "height_duration_seconds",
		Help:      "Duration of downloading a single fixture.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	fixtureCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "fixture_downloader",
		Name:      "cache_hits_total",
		Help:      "Count of heights skipped because the fixture already exists.",
	}, []string{"coin", "network"})
)

// FixtureDownloader tracks metrics for the fixture download pipeline.
type FixtureDownloader struct {
	coin    model.Coin
	network model.Network
}

// NewFixtureDownloader constructs a FixtureDownloader with sane defaults.
func NewFixtureDownloader(coin model.Coin, network model.Network) *FixtureDownloader {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &FixtureDownloader{coin: coin, network: network}
}

// ObserveBatch records a download run over a set of heights.
func (m FixtureDownloader) ObserveBatch(err error, heights int, started time.Time) {
	status := statusLabel(err)
	fixtureBatchTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	fixtureBatchDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	fixtureBatchSize.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(heights))
}

// ObserveHeight records the download of a single fixture.
func (m FixtureDownloader) ObserveHeight(err error, _ uint64, started time.Time) {
	fixtureHeightDuration.WithLabelValues(string(m.coin), string(m.network), statusLabel(err)).
		Observe(time.Since(started).Seconds())
}

// ObserveCacheHit records a height skipped because its fixture exists.
func (m FixtureDownloader) ObserveCacheHit(_ uint64) {
	fixtureCacheHitsTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
}
