// Package localfs is an object store on the local filesystem. Blobs are
// plain files under a root directory and are served over HTTP by Handler,
// so every stored blob is publicly readable.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Store keeps blobs under root and publishes them below baseURL.
type Store struct {
	root    string
	baseURL string
	log     *slog.Logger
}

// New creates the root directory if needed. baseURL is the absolute URL
// Handler is mounted at, for example "http://localhost:5000/files".
func New(log *slog.Logger, root, baseURL string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("localfs: resolve root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, dirPerms); err != nil {
		return nil, fmt.Errorf("localfs: create root %s: %w", abs, err)
	}
	return &Store{
		root:    abs,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With("adapter", "localfs"),
	}, nil
}

// resolve maps a key to a file path, refusing keys that escape the root.
func (s *Store) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("localfs: invalid key %q", key)
	}
	p := filepath.Clean(filepath.Join(s.root, filepath.FromSlash(key)))
	if !strings.HasPrefix(p, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("localfs: key escapes root: %q", key)
	}
	return p, nil
}

// List returns the blobs whose key starts with prefix. Modification time
// stands in for creation time.
func (s *Store) List(ctx context.Context, prefix string) ([]domain.BlobInfo, error) {
	dir := s.root
	if d := path.Dir(prefix + "x"); d != "." {
		resolved, err := s.resolve(d)
		if err != nil {
			return nil, err
		}
		dir = resolved
	}

	var blobs []domain.BlobInfo
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == dir {
				return filepath.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || isWorkingCopy(p) {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		blobs = append(blobs, domain.BlobInfo{Key: key, Created: info.ModTime().UTC()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("localfs: list %s: %w", prefix, err)
	}
	return blobs, nil
}

// tempPrefix marks an in-progress write. Keys written by the records
// service start with a timestamp, so a working copy never shadows a blob.
const tempPrefix = ".wip-"

func isWorkingCopy(p string) bool {
	return strings.HasPrefix(path.Base(filepath.ToSlash(p)), tempPrefix)
}

// Put streams body into the blob at key. The content type is not stored;
// Handler derives it from the file extension.
func (s *Store) Put(ctx context.Context, key, _ string, body io.Reader) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), dirPerms); err != nil {
		return fmt.Errorf("localfs: create directory for %s: %w", key, err)
	}

	tempPath := filepath.Join(filepath.Dir(p), tempPrefix+filepath.Base(p))
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tempPath)
		}
	}()

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerms)
	if err != nil {
		return fmt.Errorf("localfs: create %s: %w", key, err)
	}
	if _, err := io.Copy(f, contextReader{ctx: ctx, r: body}); err != nil {
		f.Close()
		return fmt.Errorf("localfs: write %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("localfs: close %s: %w", key, err)
	}
	if err := os.Rename(tempPath, p); err != nil {
		return fmt.Errorf("localfs: commit %s: %w", key, err)
	}

	success = true
	s.log.DebugContext(ctx, "blob written", slog.String("key", key))
	return nil
}

// MakePublic checks the blob exists and returns its URL. Files under the
// root are always served, so there is no ACL to change.
func (s *Store) MakePublic(_ context.Context, key string) (string, error) {
	p, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("localfs: stat %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// Delete removes the blob. A missing blob is reported as domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, key string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("localfs: delete %s: %w", key, domain.ErrNotFound)
		}
		return fmt.Errorf("localfs: delete %s: %w", key, err)
	}
	s.log.DebugContext(ctx, "blob deleted", slog.String("key", key))
	return nil
}

// PublicURL returns the URL Handler serves key at.
func (s *Store) PublicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/")
}

// KeyForURL is the inverse of PublicURL. ok is false for URLs this store
// did not issue.
func (s *Store) KeyForURL(raw string) (string, bool) {
	rest, found := strings.CutPrefix(raw, s.baseURL+"/")
	if !found || rest == "" {
		return "", false
	}
	key, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	if _, err := s.resolve(key); err != nil {
		return "", false
	}
	return key, true
}

// Ping reports whether the root directory is reachable.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.root); err != nil {
		return fmt.Errorf("localfs: stat root: %w", err)
	}
	return nil
}

// Handler serves blobs read-only. Mount it with http.StripPrefix at the
// path of the base URL. Directory listings and working copies are hidden.
func (s *Store) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/") || isWorkingCopy(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
