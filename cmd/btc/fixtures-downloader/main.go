package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/fixture"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Blocks used by the circuit tests.
var defaultHeights = []uint64{
	854784, 856799, 856800, 856801, 854376, 852768, 854373, 854374, 854375, 854377,
	854378, 854379, 854380, 854136, 858564, 858565, 858566, 858567, 858568,
}

type config struct {
	RPCURL      string        `long:"rpc-url" env:"BITCOIN_RPC" description:"Bitcoin RPC URL"`
	RPCUser     string        `long:"rpc-user" env:"BITCOIN_RPC_USER" description:"Bitcoin RPC username, overrides credentials in the URL"`
	RPCPassword string        `long:"rpc-password" env:"BITCOIN_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRate     int           `long:"rpc-rps" env:"BITCOIN_RPC_RPS" description:"max RPC requests per second, 0 disables the limit" default:"0"`
	Network     model.Network `long:"network" env:"BITCOIN_NETWORK" description:"network name used in metrics" default:"mainnet"`
	Heights     []uint64      `long:"height" description:"block height to download, repeatable; defaults to the circuit test set"`
	OutputDir   string        `long:"output-dir" env:"FIXTURES_OUTPUT_DIR" description:"directory for block_<height>.hex files" default:"tests/data"`
	Concurrency int           `long:"concurrency" env:"FIXTURES_CONCURRENCY" description:"max blocks fetched at once" default:"10"`
	MetricsAddr string        `long:"metrics-addr" env:"FIXTURES_METRICS_ADDR" description:"address for metrics server, empty disables it"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal("failed to load .env", zap.Error(err))
	}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.RPCURL == "" {
		logger.Fatal("BITCOIN_RPC is required", zap.Error(model.ErrConfiguration))
	}
	if len(cfg.Heights) == 0 {
		cfg.Heights = defaultHeights
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("fixture download failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	client, err := rpcclient.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		client.Shutdown()
		client.WaitForShutdown()
	}()
	rpc := rpcclient.NewObservedClient(client, metrics.NewRPCClient(model.BTC, cfg.Network), cfg.RPCRate)

	cache := fixture.NewCache(cfg.OutputDir)
	downloader, err := service.NewFixtureDownloader(
		bitcoin.NewSource(rpc),
		cache,
		metrics.NewFixtureDownloader(model.BTC, cfg.Network),
		cfg.Concurrency,
		logger,
	)
	if err != nil {
		return err
	}
	logger.Info("writing fixtures", zap.String("output_dir", cache.Dir()), zap.Int("height_count", len(cfg.Heights)))
	return downloader.Download(ctx, cfg.Heights)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
