package entry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	CreateFunc          func(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	UpdateManualFunc    func(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	FindOverlappingFunc func(ctx context.Context, start, end time.Time, excludeID uuid.UUID) (*domain.OverlapConflict, error)
	ListFunc            func(ctx context.Context, filter domain.EntryFilter) ([]*domain.ActivityLogEntry, int, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		Create []struct {
			Entry *domain.ActivityLogEntry
		}
		UpdateManual []struct {
			Entry *domain.ActivityLogEntry
		}
		Delete []struct {
			ID uuid.UUID
		}
		FindOverlapping []struct {
			Start     time.Time
			End       time.Time
			ExcludeID uuid.UUID
		}
		List []struct {
			Filter domain.EntryFilter
		}
	}
	lockGetByID         sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdateManual    sync.RWMutex
	lockDelete          sync.RWMutex
	lockFindOverlapping sync.RWMutex
	lockList            sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Entry *domain.ActivityLogEntry
	}{Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Entry *domain.ActivityLogEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateManual(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	if mock.UpdateManualFunc == nil {
		panic("entryRepoMock.UpdateManualFunc: method is nil but entryRepo.UpdateManual was just called")
	}
	callInfo := struct {
		Entry *domain.ActivityLogEntry
	}{Entry: entry}
	mock.lockUpdateManual.Lock()
	mock.calls.UpdateManual = append(mock.calls.UpdateManual, callInfo)
	mock.lockUpdateManual.Unlock()
	return mock.UpdateManualFunc(ctx, entry)
}

func (mock *entryRepoMock) UpdateManualCalls() []struct {
	Entry *domain.ActivityLogEntry
} {
	mock.lockUpdateManual.RLock()
	calls := mock.calls.UpdateManual
	mock.lockUpdateManual.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) FindOverlapping(ctx context.Context, start, end time.Time, excludeID uuid.UUID) (*domain.OverlapConflict, error) {
	if mock.FindOverlappingFunc == nil {
		panic("entryRepoMock.FindOverlappingFunc: method is nil but entryRepo.FindOverlapping was just called")
	}
	callInfo := struct {
		Start     time.Time
		End       time.Time
		ExcludeID uuid.UUID
	}{Start: start, End: end, ExcludeID: excludeID}
	mock.lockFindOverlapping.Lock()
	mock.calls.FindOverlapping = append(mock.calls.FindOverlapping, callInfo)
	mock.lockFindOverlapping.Unlock()
	return mock.FindOverlappingFunc(ctx, start, end, excludeID)
}

func (mock *entryRepoMock) FindOverlappingCalls() []struct {
	Start     time.Time
	End       time.Time
	ExcludeID uuid.UUID
} {
	mock.lockFindOverlapping.RLock()
	calls := mock.calls.FindOverlapping
	mock.lockFindOverlapping.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, filter domain.EntryFilter) ([]*domain.ActivityLogEntry, int, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Filter domain.EntryFilter
	}{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Filter domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			ID uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *activityRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("activityRepoMock.ExistsFunc: method is nil but activityRepo.Exists was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *activityRepoMock) ExistsCalls() []struct {
	ID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly; transactional behavior itself is
// covered by the repository integration tests.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
