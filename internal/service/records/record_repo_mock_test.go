package records

import (
	"context"
	"sync"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CountFunc       func(ctx context.Context) (int, error)
	CreateFunc      func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	CreateBatchFunc func(ctx context.Context, recs []domain.Record) ([]domain.Record, error)
	DeleteFunc      func(ctx context.Context, id int64, tombstone bool) (*domain.Record, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.Record, error)
	ListFunc        func(ctx context.Context) ([]domain.Record, error)
	SetArchivedFunc func(ctx context.Context, id int64, archived bool) (*domain.Record, error)
	TombstonesFunc  func(ctx context.Context) (map[string]struct{}, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			Rec *domain.Record
		}
		CreateBatch []struct {
			Ctx  context.Context
			Recs []domain.Record
		}
		Delete []struct {
			Ctx       context.Context
			ID        int64
			Tombstone bool
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		SetArchived []struct {
			Ctx      context.Context
			ID       int64
			Archived bool
		}
		Tombstones []struct {
			Ctx context.Context
		}
	}
	lockCount       sync.RWMutex
	lockCreate      sync.RWMutex
	lockCreateBatch sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockSetArchived sync.RWMutex
	lockTombstones  sync.RWMutex
}

func (mock *recordRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("recordRepoMock.CountFunc: method is nil but recordRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *recordRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Record
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Record
} {
	var calls []struct {
		Ctx context.Context
		Rec *domain.Record
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) CreateBatch(ctx context.Context, recs []domain.Record) ([]domain.Record, error) {
	if mock.CreateBatchFunc == nil {
		panic("recordRepoMock.CreateBatchFunc: method is nil but recordRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.Record
	}{
		Ctx:  ctx,
		Recs: recs,
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, recs)
}

func (mock *recordRepoMock) CreateBatchCalls() []struct {
	Ctx  context.Context
	Recs []domain.Record
} {
	var calls []struct {
		Ctx  context.Context
		Recs []domain.Record
	}
	mock.lockCreateBatch.RLock()
	calls = mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, id int64, tombstone bool) (*domain.Record, error) {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        int64
		Tombstone bool
	}{
		Ctx:       ctx,
		ID:        id,
		Tombstone: tombstone,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, tombstone)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	ID        int64
	Tombstone bool
} {
	var calls []struct {
		Ctx       context.Context
		ID        int64
		Tombstone bool
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) List(ctx context.Context) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
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

func (mock *recordRepoMock) ListCalls() []struct {
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

func (mock *recordRepoMock) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error) {
	if mock.SetArchivedFunc == nil {
		panic("recordRepoMock.SetArchivedFunc: method is nil but recordRepo.SetArchived was just called")
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

func (mock *recordRepoMock) SetArchivedCalls() []struct {
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

func (mock *recordRepoMock) Tombstones(ctx context.Context) (map[string]struct{}, error) {
	if mock.TombstonesFunc == nil {
		panic("recordRepoMock.TombstonesFunc: method is nil but recordRepo.Tombstones was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTombstones.Lock()
	mock.calls.Tombstones = append(mock.calls.Tombstones, callInfo)
	mock.lockTombstones.Unlock()
	return mock.TombstonesFunc(ctx)
}

func (mock *recordRepoMock) TombstonesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockTombstones.RLock()
	calls = mock.calls.Tombstones
	mock.lockTombstones.RUnlock()
	return calls
}
