package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/records"
)

var _ recordService = &recordServiceMock{}

type recordServiceMock struct {
	DeleteFunc      func(ctx context.Context, id int64) (*domain.DeletedRecord, error)
	GetRecordFunc   func(ctx context.Context, id int64, tier domain.AccessLevel, policy records.Policy) (*domain.Record, error)
	ListRecordsFunc func(ctx context.Context, input records.ListInput) ([]domain.Record, error)
	ReconcileFunc   func(ctx context.Context) (domain.SyncReport, error)
	SetArchivedFunc func(ctx context.Context, id int64, archived bool) (*domain.Record, error)
	UploadFunc      func(ctx context.Context, input records.UploadInput) (*domain.Record, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		GetRecord []struct {
			Ctx    context.Context
			ID     int64
			Tier   domain.AccessLevel
			Policy records.Policy
		}
		ListRecords []struct {
			Ctx   context.Context
			Input records.ListInput
		}
		Reconcile []struct {
			Ctx context.Context
		}
		SetArchived []struct {
			Ctx      context.Context
			ID       int64
			Archived bool
		}
		Upload []struct {
			Ctx   context.Context
			Input records.UploadInput
		}
	}
	lockDelete      sync.RWMutex
	lockGetRecord   sync.RWMutex
	lockListRecords sync.RWMutex
	lockReconcile   sync.RWMutex
	lockSetArchived sync.RWMutex
	lockUpload      sync.RWMutex
}

func (mock *recordServiceMock) Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error) {
	if mock.DeleteFunc == nil {
		panic("recordServiceMock.DeleteFunc: method is nil but recordService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordServiceMock) GetRecord(ctx context.Context, id int64, tier domain.AccessLevel, policy records.Policy) (*domain.Record, error) {
	if mock.GetRecordFunc == nil {
		panic("recordServiceMock.GetRecordFunc: method is nil but recordService.GetRecord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Tier   domain.AccessLevel
		Policy records.Policy
	}{
		Ctx:    ctx,
		ID:     id,
		Tier:   tier,
		Policy: policy,
	}
	mock.lockGetRecord.Lock()
	mock.calls.GetRecord = append(mock.calls.GetRecord, callInfo)
	mock.lockGetRecord.Unlock()
	return mock.GetRecordFunc(ctx, id, tier, policy)
}

func (mock *recordServiceMock) GetRecordCalls() []struct {
	Ctx    context.Context
	ID     int64
	Tier   domain.AccessLevel
	Policy records.Policy
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Tier   domain.AccessLevel
		Policy records.Policy
	}
	mock.lockGetRecord.RLock()
	calls = mock.calls.GetRecord
	mock.lockGetRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) ListRecords(ctx context.Context, input records.ListInput) ([]domain.Record, error) {
	if mock.ListRecordsFunc == nil {
		panic("recordServiceMock.ListRecordsFunc: method is nil but recordService.ListRecords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input records.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListRecords.Lock()
	mock.calls.ListRecords = append(mock.calls.ListRecords, callInfo)
	mock.lockListRecords.Unlock()
	return mock.ListRecordsFunc(ctx, input)
}

func (mock *recordServiceMock) ListRecordsCalls() []struct {
	Ctx   context.Context
	Input records.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input records.ListInput
	}
	mock.lockListRecords.RLock()
	calls = mock.calls.ListRecords
	mock.lockListRecords.RUnlock()
	return calls
}

func (mock *recordServiceMock) Reconcile(ctx context.Context) (domain.SyncReport, error) {
	if mock.ReconcileFunc == nil {
		panic("recordServiceMock.ReconcileFunc: method is nil but recordService.Reconcile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, callInfo)
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx)
}

func (mock *recordServiceMock) ReconcileCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockReconcile.RLock()
	calls = mock.calls.Reconcile
	mock.lockReconcile.RUnlock()
	return calls
}

func (mock *recordServiceMock) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error) {
	if mock.SetArchivedFunc == nil {
		panic("recordServiceMock.SetArchivedFunc: method is nil but recordService.SetArchived was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       int64
		Archived bool
	}{
		Ctx:      ctx,
		ID:       id,
		Archived: archived,
	}
	mock.lockSetArchived.Lock()
	mock.calls.SetArchived = append(mock.calls.SetArchived, callInfo)
	mock.lockSetArchived.Unlock()
	return mock.SetArchivedFunc(ctx, id, archived)
}

func (mock *recordServiceMock) SetArchivedCalls() []struct {
	Ctx      context.Context
	ID       int64
	Archived bool
} {
	var calls []struct {
		Ctx      context.Context
		ID       int64
		Archived bool
	}
	mock.lockSetArchived.RLock()
	calls = mock.calls.SetArchived
	mock.lockSetArchived.RUnlock()
	return calls
}

func (mock *recordServiceMock) Upload(ctx context.Context, input records.UploadInput) (*domain.Record, error) {
	if mock.UploadFunc == nil {
		panic("recordServiceMock.UploadFunc: method is nil but recordService.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input records.UploadInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *recordServiceMock) UploadCalls() []struct {
	Ctx   context.Context
	Input records.UploadInput
} {
	var calls []struct {
		Ctx   context.Context
		Input records.UploadInput
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
