package records

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	CreateBatch(ctx context.Context, recs []domain.Record) ([]domain.Record, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
	Count(ctx context.Context) (int, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error)

	// Delete removes the record and, when tombstone is set, remembers its
	// fileContent URL in the same write.
	Delete(ctx context.Context, id int64, tombstone bool) (*domain.Record, error)
	Tombstones(ctx context.Context) (map[string]struct{}, error)
}

type blobStore interface {
	List(ctx context.Context, prefix string) ([]domain.BlobInfo, error)
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	MakePublic(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyForURL(url string) (string, bool)
}

// Config tunes the records service.
type Config struct {
	// Prefix is the object store key prefix that holds record blobs.
	Prefix         string
	MaxUploadBytes int64
	SeedExamples   bool
}

// Service owns the record library: listing, reconciliation with the object
// store, uploads and the archive/delete lifecycle.
type Service struct {
	records recordRepo
	blobs   blobStore
	cfg     Config
	log     *slog.Logger
	now     func() time.Time

	// mu serializes reconciliation, upload commits and deletes so one blob
	// never becomes two records.
	mu     sync.Mutex
	flight singleflight.Group

	// lastKeyMillis is the timestamp of the newest upload key; guarded by mu.
	lastKeyMillis int64
}

// NewService creates a new Records service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	blobs blobStore,
	cfg Config,
) *Service {
	return &Service{
		records: records,
		blobs:   blobs,
		cfg:     cfg,
		log:     log.With("service", "records"),
		now:     time.Now,
	}
}
