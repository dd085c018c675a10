package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/metrics"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	btcdrpc "github.com/goodnatureofminers/reorgcalc7000-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/reorg/bitcoin"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/reorg/work"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/service"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/transport"
)

type config struct {
	Network             string        `long:"network" env:"REORG_WATCHER_NETWORK" description:"network name (mainnet, testnet, testnet4, regtest)" default:"testnet4"`
	RPCURL              string        `long:"rpc-url" env:"REORG_WATCHER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:48337"`
	RPCUser             string        `long:"rpc-user" env:"REORG_WATCHER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword         string        `long:"rpc-password" env:"REORG_WATCHER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ClickhouseDSN       string        `long:"clickhouse-dsn" env:"REORG_WATCHER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	HTTPAddr            string        `long:"http-addr" env:"REORG_WATCHER_HTTP_ADDR" description:"address for metrics and estimates endpoints" default:":8002"`
	ForkHeight          uint64        `long:"fork-height" env:"REORG_WATCHER_FORK_HEIGHT" description:"fork height to track (0 tracks 100 blocks behind tip)"`
	Hashrate            float64       `long:"hashrate" env:"REORG_WATCHER_HASHRATE" description:"available hashrate in hashes/second"`
	TargetDuration      time.Duration `long:"target-duration" env:"REORG_WATCHER_TARGET_DURATION" description:"target completion time" default:"72h"`
	HashesPerDifficulty float64       `long:"hashes-per-difficulty" env:"REORG_WATCHER_HASHES_PER_DIFFICULTY" description:"expected hashes for a unit-difficulty block" default:"4294967296"`
	Interval            time.Duration `long:"interval" env:"REORG_WATCHER_INTERVAL" description:"recompute interval" default:"5m"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("reorg watcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	observed := btcdrpc.NewObservedClient(rpc, metrics.NewRPCClient(model.BTC, network))
	source, err := bitcoin.NewSource(observed, network)
	if err != nil {
		return fmt.Errorf("init chain source: %w", err)
	}

	calcMetrics := metrics.NewCalculator(model.BTC, network)
	accumulator := work.NewAccumulator(source, calcMetrics, logger)
	engine := work.NewEngine(cfg.HashesPerDifficulty)
	scanner := work.NewScanner(accumulator, engine, calcMetrics, logger, 0)

	calculator := service.NewCalculatorService(source, accumulator, engine, scanner, model.BTC, network, logger)
	recorder := service.NewBatchingRecorder(repo, logger)

	budget := model.DurationBudget(cfg.TargetDuration)
	if cfg.Hashrate > 0 {
		budget = model.HashrateBudget(cfg.Hashrate)
	}

	watcher := service.NewWatcherService(calculator, recorder, budget, cfg.ForkHeight, cfg.Interval, logger)

	srv := newHTTPServer(cfg.HTTPAddr, repo, network, logger)
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen and serve", zap.Error(err))
		}
	}()

	return watcher.Run(ctx)
}

func newHTTPServer(addr string, repo *clickhouse.Repository, network model.Network, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/v1/estimates", transport.NewEstimatesHandler(repo, model.BTC, network, logger))
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(connCfg, nil)
}
