package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/newsletter"
)

var _ newsletterService = &newsletterServiceMock{}

type newsletterServiceMock struct {
	SubscribeFunc func(ctx context.Context, input newsletter.SubscribeInput) (*domain.NewsletterSubscription, bool, error)

	calls struct {
		Subscribe []struct {
			Ctx   context.Context
			Input newsletter.SubscribeInput
		}
	}
	lockSubscribe sync.RWMutex
}

func (mock *newsletterServiceMock) Subscribe(ctx context.Context, input newsletter.SubscribeInput) (*domain.NewsletterSubscription, bool, error) {
	if mock.SubscribeFunc == nil {
		panic("newsletterServiceMock.SubscribeFunc: method is nil but newsletterService.Subscribe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input newsletter.SubscribeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, input)
}

func (mock *newsletterServiceMock) SubscribeCalls() []struct {
	Ctx   context.Context
	Input newsletter.SubscribeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input newsletter.SubscribeInput
	}
	mock.lockSubscribe.RLock()
	calls = mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}
