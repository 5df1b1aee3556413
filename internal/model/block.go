// Package model defines domain models for test block generation.
package model

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RetargetInterval is the number of blocks between difficulty adjustments.
const RetargetInterval uint64 = 2016

// BlockRecord is the per-height unit produced by the fetch stage.
type BlockRecord struct {
	Hash      chainhash.Hash
	Height    uint64
	Chainwork *big.Int
}

// RetargetHeight returns the height of the last difficulty adjustment at or below height.
func RetargetHeight(height uint64) uint64 {
	return height - height%RetargetInterval
}
