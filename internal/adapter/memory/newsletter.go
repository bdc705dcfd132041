package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// NewsletterRepo stores subscriptions keyed by email.
type NewsletterRepo struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]domain.NewsletterSubscription
}

func NewNewsletterRepo() *NewsletterRepo {
	return &NewsletterRepo{nextID: 1, byEmail: make(map[string]domain.NewsletterSubscription)}
}

func (r *NewsletterRepo) GetByEmail(_ context.Context, email string) (*domain.NewsletterSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("subscription %s: %w", email, domain.ErrNotFound)
	}
	return &sub, nil
}

// Create returns domain.ErrAlreadyExists when email is already subscribed.
func (r *NewsletterRepo) Create(_ context.Context, sub domain.NewsletterSubscription) (*domain.NewsletterSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[sub.Email]; ok {
		return nil, fmt.Errorf("subscription %s: %w", sub.Email, domain.ErrAlreadyExists)
	}
	sub.ID = r.nextID
	r.nextID++
	r.byEmail[sub.Email] = sub
	return &sub, nil
}
