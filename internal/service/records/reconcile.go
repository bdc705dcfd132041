package records

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// Reconcile merges blobs found under the managed prefix into the record
// store. Concurrent callers share a single pass. A listing failure seeds
// the example records when the store was empty and returns an error
// matching domain.ErrSync.
func (s *Service) Reconcile(ctx context.Context) (domain.SyncReport, error) {
	v, err, shared := s.flight.Do("reconcile", func() (any, error) {
		return s.reconcile(ctx)
	})
	if shared {
		s.log.DebugContext(ctx, "joined in-flight reconciliation")
	}
	report, _ := v.(domain.SyncReport)
	return report, err
}

func (s *Service) reconcile(ctx context.Context) (domain.SyncReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report domain.SyncReport

	before, err := s.records.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: count records: %w", domain.ErrSync, err)
	}

	blobs, err := s.blobs.List(ctx, s.cfg.Prefix)
	if err != nil {
		s.log.ErrorContext(ctx, "list object store failed", slog.String("error", err.Error()))
		if before == 0 {
			seeded, seedErr := s.seedLocked(ctx)
			if seedErr != nil {
				s.log.ErrorContext(ctx, "seed example records failed", slog.String("error", seedErr.Error()))
			}
			report.Seeded = seeded
		}
		return report, fmt.Errorf("%w: list blobs: %w", domain.ErrSync, err)
	}

	report.Listed = len(blobs)
	if len(blobs) == 0 {
		s.log.DebugContext(ctx, "no blobs under prefix", slog.String("prefix", s.cfg.Prefix))
		return report, nil
	}

	existing, err := s.records.List(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: list records: %w", domain.ErrSync, err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		known[r.FileContent] = struct{}{}
	}

	tombstones, err := s.records.Tombstones(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: load tombstones: %w", domain.ErrSync, err)
	}

	var added []domain.Record
	for _, blob := range blobs {
		name, ok := OriginalName(blob.Key)
		if !ok {
			report.Malformed++
			s.log.DebugContext(ctx, "skip blob without timestamp prefix", slog.String("key", blob.Key))
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			report.Malformed++
			s.log.DebugContext(ctx, "skip blob without file name", slog.String("key", blob.Key))
			continue
		}

		url := s.blobs.PublicURL(blob.Key)
		if _, dead := tombstones[url]; dead {
			report.Tombstoned++
			s.log.DebugContext(ctx, "skip deleted blob", slog.String("key", blob.Key))
			continue
		}
		if _, seen := known[url]; seen {
			report.Known++
			continue
		}

		url, err = s.blobs.MakePublic(ctx, blob.Key)
		if err != nil {
			report.Failed++
			s.log.WarnContext(ctx, "make blob public failed",
				slog.String("key", blob.Key),
				slog.String("error", err.Error()),
			)
			continue
		}

		created := blob.Created
		if created.IsZero() {
			created = s.now()
		}
		title := strings.TrimSpace(InferTitle(name))
		if title == "" {
			title = name
		}
		added = append(added, domain.Record{
			Title:       title,
			Type:        InferType(name),
			Description: uploadDescription(created),
			FileName:    name,
			FileContent: url,
			Visibility:  domain.VisibilityPublic,
			UploadDate:  created.UTC(),
		})
		known[url] = struct{}{}
	}

	if len(added) > 0 {
		if _, err := s.records.CreateBatch(ctx, added); err != nil {
			return report, fmt.Errorf("%w: save discovered records: %w", domain.ErrSync, err)
		}
	}
	report.Added = len(added)

	s.log.InfoContext(ctx, "object store reconciled",
		slog.Int("listed", report.Listed),
		slog.Int("added", report.Added),
		slog.Int("tombstoned", report.Tombstoned),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
