package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/pkg/btcd/rpcclient"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCClient interface {
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockRaw(blockHash *chainhash.Hash) (string, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*rpcclient.VerboseBlock, error)
	}
)
