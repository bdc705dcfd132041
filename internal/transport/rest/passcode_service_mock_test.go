package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/service/access"
)

var _ passcodeService = &passcodeServiceMock{}

type passcodeServiceMock struct {
	ValidateFunc func(ctx context.Context, pin string) (*access.Result, error)

	calls struct {
		Validate []struct {
			Ctx context.Context
			Pin string
		}
	}
	lockValidate sync.RWMutex
}

func (mock *passcodeServiceMock) Validate(ctx context.Context, pin string) (*access.Result, error) {
	if mock.ValidateFunc == nil {
		panic("passcodeServiceMock.ValidateFunc: method is nil but passcodeService.Validate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Pin string
	}{
		Ctx: ctx,
		Pin: pin,
	}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(ctx, pin)
}

func (mock *passcodeServiceMock) ValidateCalls() []struct {
	Ctx context.Context
	Pin string
} {
	var calls []struct {
		Ctx context.Context
		Pin string
	}
	mock.lockValidate.RLock()
	calls = mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
