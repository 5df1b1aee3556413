package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RawBlockSource interface {
		FetchRawBlock(ctx context.Context, height uint64) (string, error)
	}
	RecordSource interface {
		BlockHash(ctx context.Context, height uint64) (*chainhash.Hash, error)
		FetchRecord(ctx context.Context, height uint64) (model.BlockRecord, error)
	}
	FixtureCache interface {
		Exists(height uint64) (bool, error)
		Write(height uint64, rawHex string) error
	}
	FixtureDownloaderMetrics interface {
		ObserveBatch(err error, heights int, started time.Time)
		ObserveHeight(err error, height uint64, started time.Time)
		ObserveCacheHit(height uint64)
	}
	TestBlocksGeneratorMetrics interface {
		ObserveGenerate(err error, heights int, started time.Time)
		ObserveHeight(err error, height uint64, started time.Time)
	}
)
