// Package service contains the fixture download and contract generation pipelines.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/pkg/workerpool"
)

// FixtureDownloader saves raw block hex files for a set of heights, skipping
// heights whose file already exists.
type FixtureDownloader struct {
	source  RawBlockSource
	cache   FixtureCache
	metrics FixtureDownloaderMetrics
	limit   int
	logger  *zap.Logger
}

// NewFixtureDownloader builds a downloader. A non-positive limit selects the default.
func NewFixtureDownloader(
	source RawBlockSource,
	cache FixtureCache,
	metrics FixtureDownloaderMetrics,
	limit int,
	logger *zap.Logger,
) (*FixtureDownloader, error) {
	if source == nil {
		return nil, errors.New("fixture downloader source is required")
	}
	if cache == nil {
		return nil, errors.New("fixture downloader cache is required")
	}
	if metrics == nil {
		return nil, errors.New("fixture downloader metrics is required")
	}
	if limit <= 0 {
		limit = defaultFixtureConcurrency
	}
	return &FixtureDownloader{
		source:  source,
		cache:   cache,
		metrics: metrics,
		limit:   limit,
		logger:  logger.Named("fixtureDownloader"),
	}, nil
}

// Download fetches every missing fixture. Failures do not stop other heights;
// the returned error lists every height that failed.
func (d *FixtureDownloader) Download(ctx context.Context, heights []uint64) error {
	started := time.Now()
	unique := uniqueHeights(heights)

	d.logger.Info("downloading fixtures", zap.Int("height_count", len(unique)), zap.Int("concurrency", d.limit))
	err := workerpool.Process(ctx, d.limit, unique, workerpool.CollectAll, d.downloadHeight)
	d.metrics.ObserveBatch(err, len(unique), started)
	if err != nil {
		return fmt.Errorf("download fixtures: %w", err)
	}

	d.logger.Info("all blocks saved", zap.Int("height_count", len(unique)))
	return nil
}

func (d *FixtureDownloader) downloadHeight(ctx context.Context, height uint64) (err error) {
	exists, err := d.cache.Exists(height)
	if err != nil {
		return fmt.Errorf("check fixture height %d: %w", height, err)
	}
	if exists {
		d.metrics.ObserveCacheHit(height)
		d.logger.Info("block already exists, skipping", zap.Uint64("height", height))
		return nil
	}

	started := time.Now()
	defer func() {
		d.metrics.ObserveHeight(err, height, started)
	}()

	raw, err := d.source.FetchRawBlock(ctx, height)
	if err != nil {
		d.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("fetch block height %d: %w", height, err)
	}
	if err = d.cache.Write(height, raw); err != nil {
		d.logger.Error("write block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("write block height %d: %w", height, err)
	}

	d.logger.Info("block saved", zap.Uint64("height", height))
	return nil
}

// uniqueHeights drops repeated heights so no two tasks target the same file.
func uniqueHeights(heights []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(heights))
	out := make([]uint64, 0, len(heights))
	for _, h := range heights {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}
