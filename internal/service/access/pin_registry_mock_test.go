package access

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ pinRegistry = &pinRegistryMock{}

type pinRegistryMock struct {
	FindByPinFunc func(ctx context.Context, pin string) (*domain.AccessPin, error)

	calls struct {
		FindByPin []struct {
			Ctx context.Context
			Pin string
		}
	}
	lockFindByPin sync.RWMutex
}

func (mock *pinRegistryMock) FindByPin(ctx context.Context, pin string) (*domain.AccessPin, error) {
	if mock.FindByPinFunc == nil {
		panic("pinRegistryMock.FindByPinFunc: method is nil but pinRegistry.FindByPin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Pin string
	}{
		Ctx: ctx,
		Pin: pin,
	}
	mock.lockFindByPin.Lock()
	mock.calls.FindByPin = append(mock.calls.FindByPin, callInfo)
	mock.lockFindByPin.Unlock()
	return mock.FindByPinFunc(ctx, pin)
}

func (mock *pinRegistryMock) FindByPinCalls() []struct {
	Ctx context.Context
	Pin string
} {
	var calls []struct {
		Ctx context.Context
		Pin string
	}
	mock.lockFindByPin.RLock()
	calls = mock.calls.FindByPin
	mock.lockFindByPin.RUnlock()
	return calls
}
