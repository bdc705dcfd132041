package records

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// Upload validates the file and its metadata, writes the blob under the
// managed prefix, publishes it and records it. Nothing is written to the
// object store until every check has passed.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Record, error) {
	if err := input.validateFile(s.cfg.MaxUploadBytes); err != nil {
		return nil, err
	}
	if err := input.validateMetadata(); err != nil {
		return nil, err
	}

	safeName := SanitizeFileName(input.FileName)
	if safeName == "" {
		return nil, domain.NewValidationError("file", "No file uploaded")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key, err := s.freeKey(ctx, now.UnixMilli(), safeName)
	if err != nil {
		return nil, err
	}

	if err := s.blobs.Put(ctx, key, input.ContentType, input.Body); err != nil {
		return nil, fmt.Errorf("%w: write blob %s: %w", domain.ErrUpload, key, err)
	}

	url, err := s.blobs.MakePublic(ctx, key)
	if err != nil {
		s.discardBlob(ctx, key)
		return nil, fmt.Errorf("%w: publish blob %s: %w", domain.ErrUpload, key, err)
	}

	rec, err := s.records.Create(ctx, &domain.Record{
		Title:       strings.TrimSpace(input.Title),
		Type:        domain.RecordType(strings.TrimSpace(input.Type)),
		Description: input.Description,
		FileName:    input.FileName,
		FileContent: url,
		Visibility:  input.visibility(),
		UploadDate:  now.UTC(),
	})
	if err != nil {
		s.discardBlob(ctx, key)
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "record uploaded",
		slog.Int64("record_id", rec.ID),
		slog.String("key", key),
		slog.String("visibility", rec.Visibility.String()),
	)
	return rec, nil
}

// maxKeyAttempts bounds the search for an unused upload key.
const maxKeyAttempts = 16

// freeKey picks "<prefix><millis>-<name>" with millis at or after the given
// time, never reusing a timestamp handed out before and never naming an
// existing blob. The caller holds s.mu.
func (s *Service) freeKey(ctx context.Context, millis int64, name string) (string, error) {
	if millis <= s.lastKeyMillis {
		millis = s.lastKeyMillis + 1
	}
	for range maxKeyAttempts {
		key := s.cfg.Prefix + strconv.FormatInt(millis, 10) + keySeparator + name
		taken, err := s.blobExists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("%w: check blob %s: %w", domain.ErrUpload, key, err)
		}
		if !taken {
			s.lastKeyMillis = millis
			return key, nil
		}
		millis++
	}
	return "", fmt.Errorf("%w: no free key for %s", domain.ErrUpload, name)
}

func (s *Service) blobExists(ctx context.Context, key string) (bool, error) {
	blobs, err := s.blobs.List(ctx, key)
	if err != nil {
		return false, err
	}
	for _, b := range blobs {
		if b.Key == key {
			return true, nil
		}
	}
	return false, nil
}

// discardBlob removes a blob whose record could not be committed.
func (s *Service) discardBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "discard orphaned blob failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
