package records

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	DeleteFunc     func(ctx context.Context, key string) error
	KeyForURLFunc  func(url string) (string, bool)
	ListFunc       func(ctx context.Context, prefix string) ([]domain.BlobInfo, error)
	MakePublicFunc func(ctx context.Context, key string) (string, error)
	PublicURLFunc  func(key string) string
	PutFunc        func(ctx context.Context, key string, contentType string, body io.Reader) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			Key string
		}
		KeyForURL []struct {
			URL string
		}
		List []struct {
			Ctx    context.Context
			Prefix string
		}
		MakePublic []struct {
			Ctx context.Context
			Key string
		}
		PublicURL []struct {
			Key string
		}
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Body        io.Reader
		}
	}
	lockDelete     sync.RWMutex
	lockKeyForURL  sync.RWMutex
	lockList       sync.RWMutex
	lockMakePublic sync.RWMutex
	lockPublicURL  sync.RWMutex
	lockPut        sync.RWMutex
}

func (mock *blobStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	var calls []struct {
		Ctx context.Context
		Key string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *blobStoreMock) KeyForURL(url string) (string, bool) {
	if mock.KeyForURLFunc == nil {
		panic("blobStoreMock.KeyForURLFunc: method is nil but blobStore.KeyForURL was just called")
	}
	callInfo := struct {
		URL string
	}{
		URL: url,
	}
	mock.lockKeyForURL.Lock()
	mock.calls.KeyForURL = append(mock.calls.KeyForURL, callInfo)
	mock.lockKeyForURL.Unlock()
	return mock.KeyForURLFunc(url)
}

func (mock *blobStoreMock) KeyForURLCalls() []struct {
	URL string
} {
	var calls []struct {
		URL string
	}
	mock.lockKeyForURL.RLock()
	calls = mock.calls.KeyForURL
	mock.lockKeyForURL.RUnlock()
	return calls
}

func (mock *blobStoreMock) List(ctx context.Context, prefix string) ([]domain.BlobInfo, error) {
	if mock.ListFunc == nil {
		panic("blobStoreMock.ListFunc: method is nil but blobStore.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{
		Ctx:    ctx,
		Prefix: prefix,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, prefix)
}

func (mock *blobStoreMock) ListCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	var calls []struct {
		Ctx    context.Context
		Prefix string
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *blobStoreMock) MakePublic(ctx context.Context, key string) (string, error) {
	if mock.MakePublicFunc == nil {
		panic("blobStoreMock.MakePublicFunc: method is nil but blobStore.MakePublic was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockMakePublic.Lock()
	mock.calls.MakePublic = append(mock.calls.MakePublic, callInfo)
	mock.lockMakePublic.Unlock()
	return mock.MakePublicFunc(ctx, key)
}

func (mock *blobStoreMock) MakePublicCalls() []struct {
	Ctx context.Context
	Key string
} {
	var calls []struct {
		Ctx context.Context
		Key string
	}
	mock.lockMakePublic.RLock()
	calls = mock.calls.MakePublic
	mock.lockMakePublic.RUnlock()
	return calls
}

func (mock *blobStoreMock) PublicURL(key string) string {
	if mock.PublicURLFunc == nil {
		panic("blobStoreMock.PublicURLFunc: method is nil but blobStore.PublicURL was just called")
	}
	callInfo := struct {
		Key string
	}{
		Key: key,
	}
	mock.lockPublicURL.Lock()
	mock.calls.PublicURL = append(mock.calls.PublicURL, callInfo)
	mock.lockPublicURL.Unlock()
	return mock.PublicURLFunc(key)
}

func (mock *blobStoreMock) PublicURLCalls() []struct {
	Key string
} {
	var calls []struct {
		Key string
	}
	mock.lockPublicURL.RLock()
	calls = mock.calls.PublicURL
	mock.lockPublicURL.RUnlock()
	return calls
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, contentType string, body io.Reader) error {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Body        io.Reader
	}{
		Ctx:         ctx,
		Key:         key,
		ContentType: contentType,
		Body:        body,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, body)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Body        io.Reader
} {
	var calls []struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Body        io.Reader
	}
	mock.lockPut.RLock()
	calls = mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
