package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/contract"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/pkg/workerpool"
)

// TestBlocksGenerator builds the TestBlocks contract for a contiguous height range.
type TestBlocksGenerator struct {
	source  RecordSource
	metrics TestBlocksGeneratorMetrics
	limit   int
	logger  *zap.Logger
}

// NewTestBlocksGenerator builds a generator. A non-positive limit selects the default.
func NewTestBlocksGenerator(
	source RecordSource,
	metrics TestBlocksGeneratorMetrics,
	limit int,
	logger *zap.Logger,
) (*TestBlocksGenerator, error) {
	if source == nil {
		return nil, errors.New("testblocks generator source is required")
	}
	if metrics == nil {
		return nil, errors.New("testblocks generator metrics is required")
	}
	if limit <= 0 {
		limit = defaultTestBlocksConcurrency
	}
	return &TestBlocksGenerator{
		source:  source,
		metrics: metrics,
		limit:   limit,
		logger:  logger.Named("testBlocksGenerator"),
	}, nil
}

// Generate renders the contract for heights [start, start+lookback) into w.
// Nothing is written unless every block was fetched.
func (g *TestBlocksGenerator) Generate(ctx context.Context, w io.Writer, start, lookback uint64) (err error) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveGenerate(err, int(min(lookback, maxLookback)), started)
	}()

	retargetHash, records, err := g.Records(ctx, start, lookback)
	if err != nil {
		return err
	}
	if err := contract.Render(w, retargetHash, records); err != nil {
		return err
	}

	g.logger.Info("contract generated",
		zap.Uint64("start_height", start),
		zap.Uint64("end_height", records[len(records)-1].Height),
		zap.String("retarget_hash", retargetHash.String()),
	)
	return nil
}

// Records returns the retarget anchor hash for start and the records for
// [start, start+lookback) sorted by height.
func (g *TestBlocksGenerator) Records(ctx context.Context, start, lookback uint64) (chainhash.Hash, []model.BlockRecord, error) {
	heights, err := heightRange(start, lookback)
	if err != nil {
		return chainhash.Hash{}, nil, err
	}

	retargetHeight := model.RetargetHeight(start)
	retargetHash, err := g.source.BlockHash(ctx, retargetHeight)
	if err != nil {
		return chainhash.Hash{}, nil, fmt.Errorf("fetch retarget block hash at height %d: %w", retargetHeight, err)
	}
	g.logger.Info("fetching block records",
		zap.Uint64("start_height", start),
		zap.Uint64("lookback", lookback),
		zap.Uint64("retarget_height", retargetHeight),
		zap.Int("concurrency", g.limit),
	)

	records, err := workerpool.Map(ctx, g.limit, heights, workerpool.FailFast, g.fetchRecord)
	if err != nil {
		return chainhash.Hash{}, nil, fmt.Errorf("fetch block records: %w", err)
	}
	return *retargetHash, contract.SortRecords(records), nil
}

func (g *TestBlocksGenerator) fetchRecord(ctx context.Context, height uint64) (record model.BlockRecord, err error) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveHeight(err, height, started)
	}()

	record, err = g.source.FetchRecord(ctx, height)
	if err != nil {
		g.logger.Error("fetch block record failed", zap.Uint64("height", height), zap.Error(err))
		return model.BlockRecord{}, fmt.Errorf("fetch block height %d: %w", height, err)
	}
	g.logger.Debug("fetched block record", zap.Uint64("height", height))
	return record, nil
}

func heightRange(start, lookback uint64) ([]uint64, error) {
	if lookback == 0 {
		return nil, errors.New("lookback must be positive")
	}
	if lookback > maxLookback {
		return nil, fmt.Errorf("lookback %d exceeds limit %d", lookback, maxLookback)
	}
	if start > math.MaxUint64-(lookback-1) {
		return nil, fmt.Errorf("height range %d+%d overflows", start, lookback)
	}
	heights := make([]uint64, 0, lookback)
	for i := uint64(0); i < lookback; i++ {
		heights = append(heights, start+i)
	}
	return heights, nil
}
