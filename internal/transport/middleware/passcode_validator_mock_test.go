package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/service/access"
)

var _ passcodeValidator = &passcodeValidatorMock{}

type passcodeValidatorMock struct {
	ValidateFunc func(ctx context.Context, pin string) (*access.Result, error)

	calls struct {
		Validate []struct {
			Ctx context.Context
			Pin string
		}
	}
	lockValidate sync.RWMutex
}

func (mock *passcodeValidatorMock) Validate(ctx context.Context, pin string) (*access.Result, error) {
	if mock.ValidateFunc == nil {
		panic("passcodeValidatorMock.ValidateFunc: method is nil but passcodeValidator.Validate was just called")
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

func (mock *passcodeValidatorMock) ValidateCalls() []struct {
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
