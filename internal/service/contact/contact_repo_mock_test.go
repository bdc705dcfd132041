package contact

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	CreateFunc func(ctx context.Context, sub domain.ContactSubmission) (*domain.ContactSubmission, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Sub domain.ContactSubmission
		}
	}
	lockCreate sync.RWMutex
}

func (mock *contactRepoMock) Create(ctx context.Context, sub domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if mock.CreateFunc == nil {
		panic("contactRepoMock.CreateFunc: method is nil but contactRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub domain.ContactSubmission
	}{
		Ctx: ctx,
		Sub: sub,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sub)
}

func (mock *contactRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Sub domain.ContactSubmission
} {
	var calls []struct {
		Ctx context.Context
		Sub domain.ContactSubmission
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
