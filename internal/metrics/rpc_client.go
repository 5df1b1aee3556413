package metrics

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const rpcStatusNodeError = "node_error"

var (
	rpcCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "calls_total",
		Help:      "JSON-RPC calls to the bitcoin node by method and outcome.",
	}, []string{"method", "coin", "network", "status"})
	rpcCallLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "call_latency_seconds",
		Help:      "Round trip latency of JSON-RPC calls to the bitcoin node.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms..20s
	}, []string{"method", "coin", "network"})
)

// RPCClient counts node calls. Errors returned by the node itself are
// labelled apart from transport failures.
type RPCClient struct {
	coin    model.Coin
	network model.Network
}

func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{coin: coin, network: network}
}

func (m RPCClient) Observe(method string, err error, started time.Time) {
	rpcCallsTotal.WithLabelValues(method, string(m.coin), string(m.network), rpcStatus(err)).Inc()
	rpcCallLatency.WithLabelValues(method, string(m.coin), string(m.network)).Observe(time.Since(started).Seconds())
}

func rpcStatus(err error) string {
	var nodeErr *btcjson.RPCError
	if errors.As(err, &nodeErr) {
		return rpcStatusNodeError
	}
	return statusLabel(err)
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
