// Command reconcile merges blobs found in the object store into the record
// store once and exits. It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--config    config file (default: $CONFIG_PATH or ./config.yaml)
//	--timeout   upper bound for the whole run (default 5m)
//	--no-seed   do not insert the example records into an empty store
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/ranch-records/internal/app"
	"github.com/heartmarshall/ranch-records/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("reconcile: %v", err)
	}
}

func run() error {
	var (
		configPath string
		timeout    time.Duration
		noSeed     bool
	)

	flagSet := pflag.NewFlagSet("reconcile", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	flagSet.DurationVar(&timeout, "timeout", 5*time.Minute, "upper bound for the whole run")
	flagSet.BoolVar(&noSeed, "no-seed", false, "do not insert the example records into an empty store")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	if noSeed {
		cfg.Records.SkipSeedExamples = true
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc, closeFn, err := app.OpenRecords(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := svc.Reconcile(ctx)
	if err != nil {
		return err
	}

	logger.Info("reconcile completed",
		slog.Int("listed", report.Listed),
		slog.Int("added", report.Added),
		slog.Int("known", report.Known),
		slog.Int("tombstoned", report.Tombstoned),
		slog.Int("malformed", report.Malformed),
		slog.Int("failed", report.Failed),
		slog.Int("seeded", report.Seeded),
	)
	if report.Failed > 0 {
		return fmt.Errorf("%d blobs could not be published", report.Failed)
	}
	return nil
}
