// Package bitcoin resolves Bitcoin block data by height over JSON-RPC.
package bitcoin

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/pkg/safe"
)

// Source fetches block data by height with two dependent calls: the hash lookup
// followed by the block lookup.
type Source struct {
	rpc RPCClient
}

// NewSource creates a Source on top of rpc. The client is shared by all callers.
func NewSource(rpc RPCClient) *Source {
	return &Source{rpc: rpc}
}

// BlockHash returns the hash of the block at height.
func (s *Source) BlockHash(ctx context.Context, height uint64) (*chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash, nil
}

// FetchRawBlock returns the serialized block at height as hex.
func (s *Source) FetchRawBlock(ctx context.Context, height uint64) (string, error) {
	hash, err := s.BlockHash(ctx, height)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := s.rpc.GetBlockRaw(hash)
	if err != nil {
		return "", fmt.Errorf("get raw block %s: %w", hash, err)
	}
	return raw, nil
}

// FetchRecord returns the hash, height and chainwork of the block at height.
func (s *Source) FetchRecord(ctx context.Context, height uint64) (model.BlockRecord, error) {
	hash, err := s.BlockHash(ctx, height)
	if err != nil {
		return model.BlockRecord{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.BlockRecord{}, err
	}
	block, err := s.rpc.GetBlockVerbose(hash)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	chainwork, err := ParseChainwork(block.Chainwork)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("block %s: %w", hash, err)
	}
	return model.BlockRecord{
		Hash:      *hash,
		Height:    height,
		Chainwork: chainwork,
	}, nil
}

// ParseChainwork decodes the hex chainwork string reported by getblock.
func ParseChainwork(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty chainwork", model.ErrRPC)
	}
	work, ok := new(big.Int).SetString(trimmed, 16)
	if !ok || work.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid chainwork %q", model.ErrRPC, s)
	}
	return work, nil
}
