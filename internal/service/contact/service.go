package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

type contactRepo interface {
	Create(ctx context.Context, sub domain.ContactSubmission) (*domain.ContactSubmission, error)
}

// Service records contact form submissions.
type Service struct {
	submissions contactRepo
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Contact service.
func NewService(log *slog.Logger, submissions contactRepo) *Service {
	return &Service{
		submissions: submissions,
		log:         log.With("service", "contact"),
		now:         time.Now,
	}
}

// Submit validates and stores one contact form submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.ContactSubmission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.submissions.Create(ctx, input.submission(s.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}

	s.log.InfoContext(ctx, "contact form submitted",
		slog.Int64("submission_id", sub.ID),
		slog.Bool("property_owner", sub.IsPropertyOwner),
	)
	return sub, nil
}
