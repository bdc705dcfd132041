// Package gcs is an object store backed by a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// DefaultPublicHost is where publicly readable objects are served.
const DefaultPublicHost = "https://storage.googleapis.com"

// Store reads and writes record blobs in one bucket.
type Store struct {
	client  *storage.Client
	bucket  *storage.BucketHandle
	name    string
	baseURL string
	log     *slog.Logger
}

// Options configures New.
type Options struct {
	Bucket string

	// CredentialsFile is a service account key. Empty uses Application
	// Default Credentials.
	CredentialsFile string

	// PublicBaseURL overrides "https://storage.googleapis.com/<bucket>".
	PublicBaseURL string

	// ClientOptions are appended after the credentials option.
	ClientOptions []option.ClientOption
}

// New opens a storage client for opts.Bucket. Close releases it.
func New(ctx context.Context, log *slog.Logger, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("gcs: bucket is required")
	}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts.ClientOptions...)

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	base := opts.PublicBaseURL
	if base == "" {
		base = DefaultPublicHost + "/" + opts.Bucket
	}

	return &Store{
		client:  client,
		bucket:  client.Bucket(opts.Bucket),
		name:    opts.Bucket,
		baseURL: strings.TrimRight(base, "/"),
		log:     log.With("adapter", "gcs", "bucket", opts.Bucket),
	}, nil
}

// Close releases the storage client.
func (s *Store) Close() error {
	return s.client.Close()
}

// List returns every object whose name starts with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]domain.BlobInfo, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var blobs []domain.BlobInfo
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcs: list %s: %w", prefix, err)
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		blobs = append(blobs, domain.BlobInfo{Key: attrs.Name, Created: attrs.Created.UTC()})
	}
	return blobs, nil
}

// Put streams body into a new object. The write is committed by Close, so a
// failed copy leaves no object behind.
func (s *Store) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		cancel()
		_ = w.Close()
		return fmt.Errorf("gcs: write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs: commit %s: %w", key, err)
	}

	s.log.DebugContext(ctx, "blob written", slog.String("key", key))
	return nil
}

// MakePublic grants allUsers read access and returns the public URL.
func (s *Store) MakePublic(ctx context.Context, key string) (string, error) {
	if err := s.bucket.Object(key).ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("gcs: make %s public: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// Delete removes the object. A missing object is reported as
// domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs: delete %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("gcs: delete %s: %w", key, err)
	}
	s.log.DebugContext(ctx, "blob deleted", slog.String("key", key))
	return nil
}

// PublicURL returns the canonical public URL of key.
func (s *Store) PublicURL(key string) string {
	return publicURL(s.baseURL, key)
}

// KeyForURL is the inverse of PublicURL.
func (s *Store) KeyForURL(raw string) (string, bool) {
	return keyForURL(s.baseURL, raw)
}

// Ping checks that the bucket is reachable with the configured credentials.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.bucket.Attrs(ctx); err != nil {
		return fmt.Errorf("gcs: bucket %s: %w", s.name, err)
	}
	return nil
}

func publicURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return base + "/" + strings.Join(segments, "/")
}

func keyForURL(base, raw string) (string, bool) {
	rest, found := strings.CutPrefix(raw, base+"/")
	if !found || rest == "" {
		return "", false
	}
	key, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return key, true
}
