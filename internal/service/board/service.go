package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

const maxMembers = 50

type boardRepo interface {
	List(ctx context.Context) ([]domain.BoardMember, error)
	ReplaceAll(ctx context.Context, members []domain.BoardMember) error
}

// Service manages the board directory.
type Service struct {
	members boardRepo
	log     *slog.Logger
}

// NewService creates a new Board service.
func NewService(log *slog.Logger, members boardRepo) *Service {
	return &Service{
		members: members,
		log:     log.With("service", "board"),
	}
}

// List returns the current board directory.
func (s *Service) List(ctx context.Context) ([]domain.BoardMember, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	return members, nil
}

// Replace swaps the whole directory for members. Members without a positive
// ID get the next free one. Returns the stored directory.
func (s *Service) Replace(ctx context.Context, members []domain.BoardMember) ([]domain.BoardMember, error) {
	if err := validateMembers(members); err != nil {
		return nil, err
	}

	next := int64(1)
	for _, m := range members {
		if m.ID >= next {
			next = m.ID + 1
		}
	}

	out := make([]domain.BoardMember, len(members))
	for i, m := range members {
		m.Name = strings.TrimSpace(m.Name)
		m.Position = strings.TrimSpace(m.Position)
		m.Email = strings.TrimSpace(m.Email)
		m.Phone = strings.TrimSpace(m.Phone)
		if m.ID <= 0 {
			m.ID = next
			next++
		}
		out[i] = m
	}

	if err := s.members.ReplaceAll(ctx, out); err != nil {
		return nil, fmt.Errorf("replace board members: %w", err)
	}

	s.log.InfoContext(ctx, "board members replaced", slog.Int("count", len(out)))
	return out, nil
}

func validateMembers(members []domain.BoardMember) error {
	var errs []domain.FieldError

	if len(members) > maxMembers {
		errs = append(errs, domain.FieldError{Field: "members", Message: fmt.Sprintf("max %d members", maxMembers)})
	}

	seen := make(map[int64]bool, len(members))
	for i, m := range members {
		prefix := fmt.Sprintf("members[%d].", i)
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "required"})
		}
		if strings.TrimSpace(m.Position) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "position", Message: "required"})
		}
		if len(m.Name) > 200 {
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "max 200 characters"})
		}
		if m.ID > 0 {
			if seen[m.ID] {
				errs = append(errs, domain.FieldError{Field: prefix + "id", Message: "duplicate id"})
			}
			seen[m.ID] = true
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
