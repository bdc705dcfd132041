// Package memory holds the small process-lifetime collections: the board
// directory, contact submissions and newsletter subscriptions.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// BoardRepo keeps the board directory in memory.
type BoardRepo struct {
	mu      sync.RWMutex
	members []domain.BoardMember
}

// NewBoardRepo creates a directory holding initial.
func NewBoardRepo(initial []domain.BoardMember) *BoardRepo {
	return &BoardRepo{members: slices.Clone(initial)}
}

// List returns a copy of the directory. Never nil.
func (r *BoardRepo) List(_ context.Context) ([]domain.BoardMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.BoardMember, len(r.members))
	copy(out, r.members)
	return out, nil
}

// ReplaceAll swaps the whole directory.
func (r *BoardRepo) ReplaceAll(_ context.Context, members []domain.BoardMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members = slices.Clone(members)
	return nil
}
