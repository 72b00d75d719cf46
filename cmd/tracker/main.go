package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/rp1014/launchtrack/internal/aggregator"
	"github.com/rp1014/launchtrack/internal/config"
	"github.com/rp1014/launchtrack/internal/provider"
	"github.com/rp1014/launchtrack/internal/recorder"
	"github.com/rp1014/launchtrack/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cmd := &cli.Command{
		Name:  "tracker",
		Usage: "reconcile launchpad token prices and derive ROI metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "configs/config.yaml",
				Usage: "path to the YAML configuration",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run one aggregation and print the records as JSON",
				Action: runOnce,
			},
			{
				Name:   "serve",
				Usage:  "refresh periodically and record run history",
				Action: serve,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildAggregator(cfg *config.Config) *aggregator.Aggregator {
	timeout := cfg.Timeout()
	return &aggregator.Aggregator{
		Prices:          provider.NewJupiter(cfg.Providers.JupiterBaseURL, timeout),
		Venues:          provider.NewDexScreener(cfg.Providers.DexScreenerBaseURL, timeout),
		Candles:         provider.NewGeckoTerminal(cfg.Providers.GeckoTerminalBaseURL, cfg.Providers.Network, timeout),
		Assets:          cfg.Assets,
		Timeframe:       provider.Timeframe(cfg.Aggregation.CandleTimeframe),
		Aggregate:       cfg.Aggregation.CandleAggregate,
		CandleLimit:     cfg.Aggregation.CandleLimit,
		AnchorOffset:    cfg.AnchorOffset(),
		AnchorTolerance: cfg.AnchorTolerance(),
		AssetDelay:      cfg.AssetDelay(),
	}
}

// runOnce aggregates once and writes the record set to stdout. The JSON
// list is the outbound interface boundary; anything rendering it further
// lives outside this binary.
func runOnce(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := buildAggregator(cfg).Run(ctx)
	if err != nil {
		return err
	}
	if res.Degraded {
		log.Println("[WARN] no asset resolved a current price; records carry null prices")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Records)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.NewScheduler(ctx, buildAggregator(cfg), rec)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RunNow()
	}

	log.Println("[INFO] tracker is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return nil
}
