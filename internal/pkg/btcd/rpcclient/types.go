package rpcclient

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client is the subset of btcd's rpcclient.Client used by ObservedClient.
	Client interface {
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// VerboseBlock holds the fields of a getblock verbosity 1 result we rely on.
type VerboseBlock struct {
	Hash      string `json:"hash"`
	Height    int64  `json:"height"`
	Chainwork string `json:"chainwork"`
}
