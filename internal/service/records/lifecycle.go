package records

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// SetArchived moves a record between the active and archived views.
func (s *Service) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	rec, err := s.records.SetArchived(ctx, id, archived)
	if err != nil {
		return nil, fmt.Errorf("set archived on record %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "record archive state changed",
		slog.Int64("record_id", id),
		slog.Bool("archived", archived),
	)
	return rec, nil
}

// Delete permanently removes a record. When the record's file lives under
// the managed prefix its URL is tombstoned so reconciliation never brings it
// back, and the blob itself is deleted on a best-effort basis.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}

	key, managed := s.managedKey(rec.FileContent)

	removed, err := s.records.Delete(ctx, id, managed)
	if err != nil {
		return nil, fmt.Errorf("delete record %d: %w", id, err)
	}

	if managed {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "delete blob failed",
				slog.Int64("record_id", id),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.Int64("record_id", id),
		slog.Bool("tombstoned", managed),
	)
	return &domain.DeletedRecord{ID: removed.ID, FileContent: removed.FileContent}, nil
}

// managedKey maps a record URL to its blob key when the blob lives under the
// managed prefix.
func (s *Service) managedKey(fileContent string) (string, bool) {
	key, ok := s.blobs.KeyForURL(fileContent)
	if !ok || !strings.HasPrefix(key, s.cfg.Prefix) {
		return "", false
	}
	return key, true
}
