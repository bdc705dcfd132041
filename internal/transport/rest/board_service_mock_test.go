package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ boardService = &boardServiceMock{}

type boardServiceMock struct {
	ListFunc    func(ctx context.Context) ([]domain.BoardMember, error)
	ReplaceFunc func(ctx context.Context, members []domain.BoardMember) ([]domain.BoardMember, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Replace []struct {
			Ctx     context.Context
			Members []domain.BoardMember
		}
	}
	lockList    sync.RWMutex
	lockReplace sync.RWMutex
}

func (mock *boardServiceMock) List(ctx context.Context) ([]domain.BoardMember, error) {
	if mock.ListFunc == nil {
		panic("boardServiceMock.ListFunc: method is nil but boardService.List was just called")
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

func (mock *boardServiceMock) ListCalls() []struct {
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

func (mock *boardServiceMock) Replace(ctx context.Context, members []domain.BoardMember) ([]domain.BoardMember, error) {
	if mock.ReplaceFunc == nil {
		panic("boardServiceMock.ReplaceFunc: method is nil but boardService.Replace was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Members []domain.BoardMember
	}{
		Ctx:     ctx,
		Members: members,
	}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, members)
}

func (mock *boardServiceMock) ReplaceCalls() []struct {
	Ctx     context.Context
	Members []domain.BoardMember
} {
	var calls []struct {
		Ctx     context.Context
		Members []domain.BoardMember
	}
	mock.lockReplace.RLock()
	calls = mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}
