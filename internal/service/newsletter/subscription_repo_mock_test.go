package newsletter

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	CreateFunc     func(ctx context.Context, sub domain.NewsletterSubscription) (*domain.NewsletterSubscription, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.NewsletterSubscription, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Sub domain.NewsletterSubscription
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *subscriptionRepoMock) Create(ctx context.Context, sub domain.NewsletterSubscription) (*domain.NewsletterSubscription, error) {
	if mock.CreateFunc == nil {
		panic("subscriptionRepoMock.CreateFunc: method is nil but subscriptionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub domain.NewsletterSubscription
	}{
		Ctx: ctx,
		Sub: sub,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sub)
}

func (mock *subscriptionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Sub domain.NewsletterSubscription
} {
	var calls []struct {
		Ctx context.Context
		Sub domain.NewsletterSubscription
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	if mock.GetByEmailFunc == nil {
		panic("subscriptionRepoMock.GetByEmailFunc: method is nil but subscriptionRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *subscriptionRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}
