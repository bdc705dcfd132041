package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// ContactRepo is a write-only log of contact submissions.
type ContactRepo struct {
	mu     sync.Mutex
	nextID int64
	subs   []domain.ContactSubmission
}

func NewContactRepo() *ContactRepo {
	return &ContactRepo{nextID: 1}
}

// Create assigns the next ID and stores sub.
func (r *ContactRepo) Create(_ context.Context, sub domain.ContactSubmission) (*domain.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = r.nextID
	r.nextID++
	r.subs = append(r.subs, sub)
	return &sub, nil
}

// Len reports how many submissions were stored.
func (r *ContactRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
