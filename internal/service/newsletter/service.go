package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

type subscriptionRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error)

	// Create returns domain.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, sub domain.NewsletterSubscription) (*domain.NewsletterSubscription, error)
}

// SubscribeInput is the newsletter form.
type SubscribeInput struct {
	Email          string `json:"email"`
	JoinEmailChain bool   `json:"joinEmailChain"`
}

// Validate checks all fields and collects all errors.
func (i SubscribeInput) Validate() error {
	email := strings.TrimSpace(i.Email)
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if len(email) > 254 {
		return domain.NewValidationError("email", "too long")
	}
	if _, err := i.mailbox(); err != nil {
		return domain.NewValidationError("email", "invalid email")
	}
	return nil
}

// mailbox returns the bare address, so "Bob <bob@x.com>" and "bob@x.com"
// name the same subscriber.
func (i SubscribeInput) mailbox() (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(i.Email))
	if err != nil {
		return "", err
	}
	return domain.NormalizeText(addr.Address), nil
}

// Service manages newsletter subscriptions.
type Service struct {
	subs subscriptionRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new Newsletter service.
func NewService(log *slog.Logger, subs subscriptionRepo) *Service {
	return &Service{
		subs: subs,
		log:  log.With("service", "newsletter"),
		now:  time.Now,
	}
}

// Subscribe stores a subscription keyed by the normalized mailbox address. Subscribing
// an email twice returns the original subscription and created=false.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (sub *domain.NewsletterSubscription, created bool, err error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	email, err := input.mailbox()
	if err != nil {
		return nil, false, domain.NewValidationError("email", "invalid email")
	}

	existing, err := s.subs.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("get subscription: %w", err)
	}

	sub, err = s.subs.Create(ctx, domain.NewsletterSubscription{
		Email:            email,
		SubscriptionDate: s.now().UTC(),
		JoinEmailChain:   input.JoinEmailChain,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent subscribe.
		existing, getErr := s.subs.GetByEmail(ctx, email)
		if getErr != nil {
			return nil, false, fmt.Errorf("get subscription: %w", getErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("create subscription: %w", err)
	}

	s.log.InfoContext(ctx, "newsletter subscription created",
		slog.Int64("subscription_id", sub.ID),
		slog.Bool("join_email_chain", sub.JoinEmailChain),
	)
	return sub, true, nil
}
