package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/contact"
)

var _ contactService = &contactServiceMock{}

type contactServiceMock struct {
	SubmitFunc func(ctx context.Context, input contact.SubmitInput) (*domain.ContactSubmission, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input contact.SubmitInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *contactServiceMock) Submit(ctx context.Context, input contact.SubmitInput) (*domain.ContactSubmission, error) {
	if mock.SubmitFunc == nil {
		panic("contactServiceMock.SubmitFunc: method is nil but contactService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *contactServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input contact.SubmitInput
} {
	var calls []struct {
		Ctx   context.Context
		Input contact.SubmitInput
	}
	mock.lockSubmit.RLock()
	calls = mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
