package board

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	ListFunc       func(ctx context.Context) ([]domain.BoardMember, error)
	ReplaceAllFunc func(ctx context.Context, members []domain.BoardMember) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ReplaceAll []struct {
			Ctx     context.Context
			Members []domain.BoardMember
		}
	}
	lockList       sync.RWMutex
	lockReplaceAll sync.RWMutex
}

func (mock *boardRepoMock) List(ctx context.Context) ([]domain.BoardMember, error) {
	if mock.ListFunc == nil {
		panic("boardRepoMock.ListFunc: method is nil but boardRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *boardRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *boardRepoMock) ReplaceAll(ctx context.Context, members []domain.BoardMember) error {
	if mock.ReplaceAllFunc == nil {
		panic("boardRepoMock.ReplaceAllFunc: method is nil but boardRepo.ReplaceAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Members []domain.BoardMember
	}{
		Ctx:     ctx,
		Members: members,
	}
	mock.lockReplaceAll.Lock()
	mock.calls.ReplaceAll = append(mock.calls.ReplaceAll, callInfo)
	mock.lockReplaceAll.Unlock()
	return mock.ReplaceAllFunc(ctx, members)
}

func (mock *boardRepoMock) ReplaceAllCalls() []struct {
	Ctx     context.Context
	Members []domain.BoardMember
} {
	var calls []struct {
		Ctx     context.Context
		Members []domain.BoardMember
	}
	mock.lockReplaceAll.RLock()
	calls = mock.calls.ReplaceAll
	mock.lockReplaceAll.RUnlock()
	return calls
}
