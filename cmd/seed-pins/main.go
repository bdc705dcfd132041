// Command seed-pins inserts the configured user and admin passcodes into
// the PostgreSQL pin registry when they are not registered yet. It applies
// pending migrations first.
//
// Usage:
//
//	seed-pins [--config=path] [--list] [--pin=1234 --level=user --description="gate code" --expires=720h]
//
// Requires DATABASE_DSN.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/ranch-records/internal/adapter/postgres"
	"github.com/heartmarshall/ranch-records/internal/adapter/postgres/pin"
	"github.com/heartmarshall/ranch-records/internal/app"
	"github.com/heartmarshall/ranch-records/internal/config"
	"github.com/heartmarshall/ranch-records/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed-pins: %v", err)
	}
}

func run() error {
	var (
		list        bool
		extraPin    string
		level       string
		description string
		expires     time.Duration
		configPath  string
	)

	flagSet := pflag.NewFlagSet("seed-pins", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	flagSet.BoolVar(&list, "list", false, "print the registry after seeding")
	flagSet.StringVar(&extraPin, "pin", "", "additional passcode to register")
	flagSet.StringVar(&level, "level", string(domain.AccessLevelUser), "access level of --pin (user or admin)")
	flagSet.StringVar(&description, "description", "", "description of --pin")
	flagSet.DurationVar(&expires, "expires", 0, "lifetime of --pin; zero never expires")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return errors.New("DATABASE_DSN is required")
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, logger, pool); err != nil {
		return err
	}

	repo := pin.New(pool)

	entries := []domain.AccessPin{
		{Pin: cfg.Access.UserPasscode, AccessLevel: domain.AccessLevelUser, Description: "Default user passcode"},
		{Pin: cfg.Access.AdminPasscode, AccessLevel: domain.AccessLevelAdmin, Description: "Default admin passcode"},
	}
	if extraPin != "" {
		lvl := domain.AccessLevel(level)
		if lvl != domain.AccessLevelUser && lvl != domain.AccessLevelAdmin {
			return fmt.Errorf("--level must be user or admin, got %q", level)
		}
		entry := domain.AccessPin{Pin: extraPin, AccessLevel: lvl, Description: description}
		if expires > 0 {
			at := time.Now().Add(expires).UTC()
			entry.ExpiresAt = &at
		}
		entries = append(entries, entry)
	}

	for _, e := range entries {
		if e.Pin == "" {
			continue
		}
		created, err := repo.Create(ctx, e)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			logger.Info("passcode already registered", slog.String("description", e.Description))
		case err != nil:
			return fmt.Errorf("register %s: %w", e.Description, err)
		default:
			logger.Info("passcode registered",
				slog.Int64("id", created.ID),
				slog.String("access_level", string(created.AccessLevel)),
				slog.String("description", created.Description),
			)
		}
	}

	if !list {
		return nil
	}
	pins, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range pins {
		expiry := "never"
		if p.ExpiresAt != nil {
			expiry = p.ExpiresAt.Format(time.RFC3339)
		}
		fmt.Printf("%d\t%s\t%s\texpires %s\n", p.ID, p.AccessLevel, p.Description, expiry)
	}
	return nil
}
