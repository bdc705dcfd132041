package access

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// Result sources.
const (
	SourceFallback = "fallback"
	SourceRegistry = "registry"
)

const (
	minPinLen = 4
	maxPinLen = 8
)

type pinRegistry interface {
	FindByPin(ctx context.Context, pin string) (*domain.AccessPin, error)
}

// Config holds the fallback passcodes that work even when the registry is down.
type Config struct {
	UserPasscode  string
	AdminPasscode string
}

// Result is a successful validation.
type Result struct {
	Level   domain.AccessLevel
	Source  string
	Message string
}

// Service turns a submitted passcode into an access tier.
type Service struct {
	registry pinRegistry
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Access service. registry may be nil, in which
// case only the fallback passcodes are accepted.
func NewService(log *slog.Logger, registry pinRegistry, cfg Config) *Service {
	return &Service{
		registry: registry,
		cfg:      cfg,
		log:      log.With("service", "access"),
		now:      time.Now,
	}
}

// Validate checks pin against the fallback passcodes first, then the registry.
// Returns a ValidationError for malformed input, ErrInvalidPasscode when no
// entry matches and ErrPasscodeExpired for an expired registry entry.
func (s *Service) Validate(ctx context.Context, pin string) (*Result, error) {
	if n := len(pin); n < minPinLen || n > maxPinLen {
		return nil, domain.NewValidationError("pin", "must be 4 to 8 characters")
	}

	switch {
	case s.cfg.AdminPasscode != "" && pin == s.cfg.AdminPasscode:
		return &Result{
			Level:   domain.AccessLevelAdmin,
			Source:  SourceFallback,
			Message: "Admin passcode validated successfully (fallback)",
		}, nil
	case s.cfg.UserPasscode != "" && pin == s.cfg.UserPasscode:
		return &Result{
			Level:   domain.AccessLevelUser,
			Source:  SourceFallback,
			Message: "User passcode validated successfully (fallback)",
		}, nil
	}

	if s.registry == nil {
		return nil, domain.ErrInvalidPasscode
	}

	entry, err := s.registry.FindByPin(ctx, pin)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			// Registry outage degrades to fallback-only.
			s.log.ErrorContext(ctx, "pin registry lookup failed", slog.String("error", err.Error()))
		}
		return nil, domain.ErrInvalidPasscode
	}

	if entry.IsExpired(s.now()) {
		s.log.InfoContext(ctx, "expired passcode rejected", slog.Int64("pin_id", entry.ID))
		return nil, domain.ErrPasscodeExpired
	}

	return &Result{
		Level:   registryLevel(entry.AccessLevel),
		Source:  SourceRegistry,
		Message: "Passcode validated successfully",
	}, nil
}

// registryLevel maps a stored level to a tier. Anything but admin is user.
func registryLevel(l domain.AccessLevel) domain.AccessLevel {
	if l == domain.AccessLevelAdmin {
		return domain.AccessLevelAdmin
	}
	return domain.AccessLevelUser
}
