package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/metrics"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	btcdrpc "github.com/goodnatureofminers/reorgcalc7000-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/reorg/bitcoin"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/reorg/work"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/report"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/service"
)

type config struct {
	Network             string        `long:"network" env:"REORG_CALC_NETWORK" description:"network name (mainnet, testnet, testnet4, regtest)" default:"testnet4"`
	RPCURL              string        `long:"rpc-url" env:"REORG_CALC_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:48337"`
	RPCUser             string        `long:"rpc-user" env:"REORG_CALC_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword         string        `long:"rpc-password" env:"REORG_CALC_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ForkHeight          *uint64       `long:"fork-height" env:"REORG_CALC_FORK_HEIGHT" description:"fork height to reorg from (default: 100 blocks behind tip)"`
	Hashrate            float64       `long:"hashrate" env:"REORG_CALC_HASHRATE" description:"available hashrate in hashes/second"`
	TargetDuration      time.Duration `long:"target-duration" env:"REORG_CALC_TARGET_DURATION" description:"target completion time" default:"72h"`
	HashesPerDifficulty float64       `long:"hashes-per-difficulty" env:"REORG_CALC_HASHES_PER_DIFFICULTY" description:"expected hashes for a unit-difficulty block" default:"4294967296"`
	Batch               bool          `long:"batch" env:"REORG_CALC_BATCH" description:"scan every fork height down to --lowest-height"`
	LowestHeight        uint64        `long:"lowest-height" env:"REORG_CALC_LOWEST_HEIGHT" description:"batch scan floor height"`
	Quick               bool          `long:"quick" env:"REORG_CALC_QUICK" description:"estimate only sampled offsets behind the tip"`
	ScanWorkers         int           `long:"scan-workers" env:"REORG_CALC_SCAN_WORKERS" description:"parallel workers for batch scans" default:"8"`
	OutputFile          string        `long:"output-file" env:"REORG_CALC_OUTPUT_FILE" description:"append results to this file"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("reorg calculator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)

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
	scanner := work.NewScanner(accumulator, engine, calcMetrics, logger, cfg.ScanWorkers)

	svc := service.NewCalculatorService(source, accumulator, engine, scanner, model.BTC, network, logger)

	budget, err := chooseBudget(cfg)
	if err != nil {
		return err
	}

	var estimates []model.ReorgEstimate
	switch {
	case cfg.Batch:
		estimates, err = runBatch(ctx, cfg, svc, logger)
	case cfg.Quick:
		estimates, err = svc.QuickScan(ctx, budget)
	default:
		estimates, err = runPoint(ctx, cfg, svc, budget, logger)
	}
	if err != nil {
		return err
	}

	for _, e := range estimates {
		logger.Info("result",
			zap.Uint64("fork_height", e.ForkHeight),
			zap.Uint64("tip_height", e.TipHeight),
			zap.Uint64("blocks_needed", e.BlocksNeeded),
			zap.String("hashrate", report.FormatHashrate(e.Hashrate)),
			zap.String("time_required", report.FormatDuration(e.DurationSeconds)),
			zap.Bool("single_block_sufficient", e.SingleBlockSufficient))
	}

	if cfg.OutputFile != "" {
		if err := report.NewFileWriter(cfg.OutputFile).Append(estimates); err != nil {
			return err
		}
		logger.Info("results saved", zap.String("file", cfg.OutputFile))
	}
	return nil
}

func runPoint(ctx context.Context, cfg config, svc *service.CalculatorService, budget model.ResourceBudget, logger *zap.Logger) ([]model.ReorgEstimate, error) {
	forkHeight := uint64(0)
	if cfg.ForkHeight != nil {
		forkHeight = *cfg.ForkHeight
	} else {
		suggested, err := svc.SuggestedForkHeight(ctx)
		if err != nil {
			return nil, err
		}
		forkHeight = suggested
		logger.Info("no fork height specified, using suggested height", zap.Uint64("fork_height", forkHeight))
	}

	estimate, err := svc.PointEstimate(ctx, forkHeight, budget)
	if err != nil {
		return nil, err
	}
	return []model.ReorgEstimate{estimate}, nil
}

func runBatch(ctx context.Context, cfg config, svc *service.CalculatorService, logger *zap.Logger) ([]model.ReorgEstimate, error) {
	// Time-bounded search: the hashrate each candidate requires within the
	// target duration is computed, then filtered against available hashrate.
	candidates, err := svc.Scan(ctx, cfg.LowestHeight, model.DurationBudget(cfg.TargetDuration))
	if err != nil {
		return nil, err
	}

	if cfg.Hashrate > 0 {
		candidates = work.ViableWithin(candidates, cfg.Hashrate)
	}
	logger.Info("batch scan finished", zap.Int("candidates", len(candidates)))

	for _, c := range candidates {
		logger.Info("candidate",
			zap.Uint64("fork_height", c.ForkHeight),
			zap.Uint64("blocks_needed", c.BlocksNeeded),
			zap.String("required_hashrate", report.FormatHashrate(c.RequiredHashrate)),
			zap.String("duration", report.FormatDuration(c.DurationSeconds)))
	}
	return nil, nil
}

func chooseBudget(cfg config) (model.ResourceBudget, error) {
	if cfg.Hashrate > 0 {
		return model.HashrateBudget(cfg.Hashrate), nil
	}
	if cfg.TargetDuration > 0 {
		return model.DurationBudget(cfg.TargetDuration), nil
	}
	return model.ResourceBudget{}, errors.New("either --hashrate or --target-duration is required")
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
