package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ranch-records/internal/adapter/blob/gcs"
	"github.com/heartmarshall/ranch-records/internal/adapter/blob/localfs"
	"github.com/heartmarshall/ranch-records/internal/adapter/postgres"
	"github.com/heartmarshall/ranch-records/internal/adapter/postgres/pin"
	"github.com/heartmarshall/ranch-records/internal/adapter/postgres/record"
	"github.com/heartmarshall/ranch-records/internal/adapter/snapshot"
	"github.com/heartmarshall/ranch-records/internal/config"
	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/records"
)

// recordStore is implemented by the snapshot and postgres record repositories.
type recordStore interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	CreateBatch(ctx context.Context, recs []domain.Record) ([]domain.Record, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
	Count(ctx context.Context) (int, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error)
	Delete(ctx context.Context, id int64, tombstone bool) (*domain.Record, error)
	Tombstones(ctx context.Context) (map[string]struct{}, error)
	Ping(ctx context.Context) error
}

// blobStore is implemented by the localfs and gcs object stores.
type blobStore interface {
	List(ctx context.Context, prefix string) ([]domain.BlobInfo, error)
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	MakePublic(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyForURL(url string) (string, bool)
	Ping(ctx context.Context) error
}

// components holds the storage the services run on. Close releases it in
// reverse order of opening.
type components struct {
	pool    *pgxpool.Pool
	records recordStore
	blobs   blobStore
	files   http.Handler
	pins    *pin.Repo
	closers []func()
}

func openComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *components, err error) {
	c := &components{}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	if cfg.NeedsDatabase() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		c.pool = pool
		c.closers = append(c.closers, pool.Close)

		if !cfg.Database.SkipMigrations {
			if err := postgres.Migrate(ctx, logger, pool); err != nil {
				return nil, fmt.Errorf("migrate database: %w", err)
			}
		}
		logger.Info("database connected")
	}

	switch cfg.Records.Driver {
	case config.RecordsDriverPostgres:
		c.records = record.New(c.pool)
	default:
		store, err := snapshot.Open(logger, cfg.Records.SnapshotPath, cfg.Records.TombstonePath)
		if err != nil {
			return nil, fmt.Errorf("open record snapshot: %w", err)
		}
		c.records = store
	}

	switch cfg.ObjectStore.Driver {
	case config.ObjectStoreGCS:
		store, err := gcs.New(ctx, logger, gcs.Options{
			Bucket:          cfg.ObjectStore.Bucket,
			CredentialsFile: cfg.ObjectStore.CredentialsFile,
			PublicBaseURL:   cfg.ObjectStore.PublicBaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("open object store: %w", err)
		}
		c.blobs = store
		c.closers = append(c.closers, func() {
			if err := store.Close(); err != nil {
				logger.Warn("close object store", slog.String("error", err.Error()))
			}
		})
	default:
		store, err := localfs.New(logger, cfg.ObjectStore.Root, cfg.ObjectStore.PublicBaseURL)
		if err != nil {
			return nil, fmt.Errorf("open object store: %w", err)
		}
		c.blobs = store
		c.files = store.Handler()
	}

	if cfg.Access.PinRegistry == config.PinRegistryPostgres {
		c.pins = pin.New(c.pool)
	}

	logger.Info("storage ready",
		slog.String("records_driver", cfg.Records.Driver),
		slog.String("object_store", cfg.ObjectStore.Driver),
		slog.String("pin_registry", cfg.Access.PinRegistry),
	)
	return c, nil
}

func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *components) recordsService(cfg *config.Config, logger *slog.Logger) *records.Service {
	return records.NewService(logger, c.records, c.blobs, records.Config{
		Prefix:         cfg.ObjectStore.Prefix,
		MaxUploadBytes: cfg.Upload.MaxBytes,
		SeedExamples:   !cfg.Records.SkipSeedExamples,
	})
}

// OpenRecords opens the configured storage and returns the records service
// over it. The returned func releases the storage.
func OpenRecords(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*records.Service, func(), error) {
	c, err := openComponents(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return c.recordsService(cfg, logger), c.Close, nil
}
