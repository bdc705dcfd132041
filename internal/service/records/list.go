package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ranch-records/internal/defaults"
	"github.com/heartmarshall/ranch-records/internal/domain"
)

// ListInput selects what a caller sees of the library.
type ListInput struct {
	Tier    domain.AccessLevel
	Options FilterOptions
	Policy  Policy
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if !i.Tier.IsValid() {
		errs = append(errs, domain.FieldError{Field: "accessLevel", Message: "unknown access level"})
	}
	if i.Options.Archived != "" && !i.Options.Archived.IsValid() {
		errs = append(errs, domain.FieldError{Field: "archived", Message: "must be one of include, exclude, only"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRecords reconciles with the object store and returns what the caller's
// tier may see. A failed reconciliation is logged and the locally known
// records are returned.
func (s *Service) ListRecords(ctx context.Context, input ListInput) ([]domain.Record, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Reconcile(ctx); err != nil {
		s.log.WarnContext(ctx, "serving records without reconciliation", slog.String("error", err.Error()))
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, input.Tier, input.Options, input.Policy), nil
}

// ListAll returns every stored record. An empty store is first populated
// with the example records unless seeding is disabled.
func (s *Service) ListAll(ctx context.Context) ([]domain.Record, error) {
	all, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if len(all) > 0 || !s.cfg.SeedExamples {
		return all, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.seedLocked(ctx); err != nil {
		return nil, err
	}
	all, err = s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return all, nil
}

// GetRecord returns one record if the caller's tier may see it.
// Records hidden from the tier are reported as not found.
func (s *Service) GetRecord(ctx context.Context, id int64, tier domain.AccessLevel, policy Policy) (*domain.Record, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	if !visibleAt(*rec, tier, policy) {
		return nil, fmt.Errorf("get record %d: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

// seedLocked inserts the example records if the store is still empty.
// s.mu must be held.
func (s *Service) seedLocked(ctx context.Context) (int, error) {
	if !s.cfg.SeedExamples {
		return 0, nil
	}

	count, err := s.records.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	examples, err := defaults.ExampleRecords()
	if err != nil {
		return 0, err
	}
	now := s.now().UTC()
	for i := range examples {
		examples[i].UploadDate = now
	}

	created, err := s.records.CreateBatch(ctx, examples)
	if err != nil {
		return 0, fmt.Errorf("seed example records: %w", err)
	}

	s.log.InfoContext(ctx, "seeded example records", slog.Int("count", len(created)))
	return len(created), nil
}
