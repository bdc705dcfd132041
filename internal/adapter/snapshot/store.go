// Package snapshot keeps records in memory and mirrors them to JSON files
// on local disk. Every mutation rewrites the affected file through a
// temporary working copy that is renamed over the original, so a crash
// leaves either the old or the new snapshot, never a torn one.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// Store is a record repository backed by a JSON array snapshot and a
// sibling tombstone file.
type Store struct {
	path          string
	tombstonePath string
	log           *slog.Logger

	mu         sync.RWMutex
	records    map[int64]domain.Record
	nextID     int64
	tombstones map[string]struct{}
}

// Open loads the snapshot and tombstone files. Missing files start an empty
// store; unreadable or corrupt files are an error.
func Open(log *slog.Logger, path, tombstonePath string) (*Store, error) {
	s := &Store{
		path:          path,
		tombstonePath: tombstonePath,
		log:           log.With("adapter", "snapshot"),
		records:       make(map[int64]domain.Record),
		nextID:        1,
		tombstones:    make(map[string]struct{}),
	}

	var recs []domain.Record
	if err := readJSON(path, &recs); err != nil {
		return nil, err
	}
	for _, r := range recs {
		if _, dup := s.records[r.ID]; dup || r.ID <= 0 {
			return nil, fmt.Errorf("snapshot: %s: invalid or duplicate record id %d", path, r.ID)
		}
		s.records[r.ID] = r
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}

	var urls []string
	if err := readJSON(tombstonePath, &urls); err != nil {
		return nil, err
	}
	for _, u := range urls {
		s.tombstones[u] = struct{}{}
	}

	s.log.Info("snapshot loaded",
		slog.Int("records", len(s.records)),
		slog.Int("tombstones", len(s.tombstones)),
		slog.Int64("next_id", s.nextID),
	)
	return s, nil
}

// Create assigns the next id and stores the record. Ids consumed by a
// failed write are not handed out again.
func (s *Store) Create(_ context.Context, rec *domain.Record) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *rec
	r.ID = s.nextID
	s.nextID++
	s.records[r.ID] = r

	if err := s.saveRecordsLocked(); err != nil {
		delete(s.records, r.ID)
		return nil, err
	}
	return &r, nil
}

// CreateBatch stores all records and writes the snapshot once.
func (s *Store) CreateBatch(_ context.Context, recs []domain.Record) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Record, 0, len(recs))
	for _, r := range recs {
		r.ID = s.nextID
		s.nextID++
		s.records[r.ID] = r
		out = append(out, r)
	}

	if err := s.saveRecordsLocked(); err != nil {
		for _, r := range out {
			delete(s.records, r.ID)
		}
		return nil, err
	}
	return out, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

// List returns all records in id order, which is insertion order.
func (s *Store) List(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(), nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *Store) SetArchived(_ context.Context, id int64, archived bool) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	prev := r
	r.Archived = archived
	s.records[id] = r

	if err := s.saveRecordsLocked(); err != nil {
		s.records[id] = prev
		return nil, err
	}
	return &r, nil
}

// Delete removes a record. With tombstone set, the record's fileContent is
// written to the tombstone file first; if the record snapshot then fails to
// save, both changes are rolled back.
func (s *Store) Delete(_ context.Context, id int64, tombstone bool) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	added := false
	if tombstone {
		if _, seen := s.tombstones[r.FileContent]; !seen {
			s.tombstones[r.FileContent] = struct{}{}
			if err := s.saveTombstonesLocked(); err != nil {
				delete(s.tombstones, r.FileContent)
				return nil, err
			}
			added = true
		}
	}

	delete(s.records, id)
	if err := s.saveRecordsLocked(); err != nil {
		s.records[id] = r
		if added {
			delete(s.tombstones, r.FileContent)
			_ = s.saveTombstonesLocked()
		}
		return nil, err
	}
	return &r, nil
}

func (s *Store) Tombstones(_ context.Context) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.tombstones))
	for u := range s.tombstones {
		out[u] = struct{}{}
	}
	return out, nil
}

// Ping reports whether the snapshot directory is still writable.
func (s *Store) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("snapshot: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("snapshot: %s is not a directory", dir)
	}
	return nil
}

func (s *Store) sortedLocked() []domain.Record {
	out := make([]domain.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) saveRecordsLocked() error {
	return s.write(s.path, s.sortedLocked())
}

func (s *Store) saveTombstonesLocked() error {
	urls := make([]string, 0, len(s.tombstones))
	for u := range s.tombstones {
		urls = append(urls, u)
	}
	slices.Sort(urls)
	return s.write(s.tombstonePath, urls)
}

func (s *Store) write(path string, v any) error {
	if err := writeAtomic(path, v); err != nil {
		s.log.Error("snapshot write failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// writeAtomic encodes v into "<path>.wip" and renames it over path.
func writeAtomic(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tempPath := path + ".wip"
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tempPath)
		}
	}()

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open working copy %s: %w", tempPath, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write working copy %s: %w", tempPath, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync working copy %s: %w", tempPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close working copy %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("replace %s with working copy: %w", path, err)
	}
	success = true
	return nil
}

// readJSON decodes path into v. A missing file leaves v untouched.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	return nil
}
