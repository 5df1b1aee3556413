// Package rpcclient wraps btcd's JSON-RPC client with metrics and rate limiting.
package rpcclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
)

const (
	methodGetBlock = "getblock"

	verbosityRaw     = 0
	verbosityVerbose = 1
)

type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. A non-positive rps disables rate limiting.
func NewObservedClient(client Client, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// GetBlockHash resolves a height with getblockhash.
func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()

	hash, err = r.client.GetBlockHash(blockHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: getblockhash %d: %w", model.ErrRPC, blockHeight, err)
	}
	return hash, nil
}

// GetBlockRaw returns the serialized block as the hex string sent by the node.
func (r *ObservedClient) GetBlockRaw(blockHash *chainhash.Hash) (raw string, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_raw", err, started)
	}()

	if err = r.getBlock(blockHash, verbosityRaw, &raw); err != nil {
		return "", err
	}
	return raw, nil
}

// GetBlockVerbose returns the decoded getblock verbosity 1 result.
func (r *ObservedClient) GetBlockVerbose(blockHash *chainhash.Hash) (res *VerboseBlock, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()

	res = &VerboseBlock{}
	if err = r.getBlock(blockHash, verbosityVerbose, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ObservedClient) getBlock(blockHash *chainhash.Hash, verbosity int, out any) error {
	hashParam, err := json.Marshal(blockHash.String())
	if err != nil {
		return fmt.Errorf("marshal block hash: %w", err)
	}
	verbosityParam, err := json.Marshal(verbosity)
	if err != nil {
		return fmt.Errorf("marshal verbosity: %w", err)
	}

	result, err := r.client.RawRequest(methodGetBlock, []json.RawMessage{hashParam, verbosityParam})
	if err != nil {
		return fmt.Errorf("%w: getblock %s: %w", model.ErrRPC, blockHash, err)
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("%w: decode getblock %s result: %w", model.ErrRPC, blockHash, err)
	}
	return nil
}
