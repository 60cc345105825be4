package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"codeberg.org/mutker/signalctl/internal/aggregate"
	"codeberg.org/mutker/signalctl/internal/config"
	"codeberg.org/mutker/signalctl/internal/engine"
	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// cfg holds the active configuration. Reloads swap the pointer, so a
// tick always works against one coherent snapshot.
var cfg atomic.Pointer[config.Config]

func init() {
	c, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Store(c)

	logger.Init(c.Debug, c.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	errFactory := errors.New()

	c := cfg.Load()
	engineCfg := engine.DefaultConfig()
	engineCfg.Capacity = c.Capacity
	engineCfg.WindowMinutes = c.WindowMinutes
	engineCfg.HealthyThreshold = c.HealthyThreshold
	engineCfg.Seed = c.Seed

	eng, err := engine.New(engineCfg, prometheus.DefaultRegisterer)
	if err != nil {
		logger.FatalWithCode(errFactory.Wrap(errors.ErrInitApp, err)).Msg("failed to initialize engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if path := os.Getenv("SIGNALCTL_CONFIG"); path != "" {
		go func() {
			if err := config.Watch(ctx, path, func(updated *config.Config) {
				cfg.Store(updated)
			}); err != nil {
				logger.Error().Err(err).Msg("config watcher stopped")
			}
		}()
	}

	if err := loop(ctx, eng); err != nil {
		logger.ErrorWithCode(errFactory.Wrap(errors.ErrMainLoop, err)).Msg("error in main loop")
	}
	logger.Info().Msg("Exiting...")
}

func loop(ctx context.Context, eng engine.Service) error {
	c := cfg.Load()
	if c.Interval <= 0 {
		return fmt.Errorf("invalid interval: %d", c.Interval)
	}

	interval := time.Duration(c.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().
		Int("samples", c.Samples).
		Float64("base_frequency", c.BaseFrequency).
		Msg("Monitor mode activated. Logging signal quality...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := tick(ctx, eng); err != nil {
				return err
			}
		}
	}
}

// tick runs one simulate-and-summarize cycle against the config
// snapshot current at its start.
func tick(ctx context.Context, eng engine.Service) error {
	c := cfg.Load()

	if _, err := eng.Simulate(ctx, c.Samples, c.BaseFrequency); err != nil {
		return err
	}

	rep, err := eng.Summary(ctx, c.WindowMinutes)
	if err != nil {
		return err
	}
	logSummary(c, rep)

	return nil
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func logSummary(c *config.Config, rep aggregate.SummaryReport) {
	quality := rep.Stats["quality_score"]
	snr := rep.Stats["snr"]

	if c.Debug {
		logger.Debug().
			Int("count", rep.Count).
			Int("total_measurements", rep.TotalMeasurements).
			Int("window_minutes", rep.WindowMinutes).
			Float64("healthy_ratio", rep.HealthyRatio).
			Float64("quality_min", quality.Min).
			Float64("quality_max", quality.Max).
			Float64("quality_mean", quality.Mean).
			Float64("snr_min", snr.Min).
			Float64("snr_max", snr.Max).
			Float64("snr_mean", snr.Mean).
			Time("last_updated", rep.LastUpdated).
			Msg("")
	} else if c.Verbose {
		logger.Info().
			Int("count", rep.Count).
			Float64("healthy_ratio", rep.HealthyRatio).
			Float64("quality_mean", quality.Mean).
			Float64("snr_mean", snr.Mean).
			Msg("")
	}
}
