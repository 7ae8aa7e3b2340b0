package timer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	GetLiveFunc          func(ctx context.Context) (*domain.ActivityLogEntry, error)
	CreateFunc           func(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	UpdateTransitionFunc func(ctx context.Context, entry *domain.ActivityLogEntry, from domain.SessionStatus) (*domain.ActivityLogEntry, error)
	DeleteLiveFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetLive []struct{}
		Create  []struct {
			Entry *domain.ActivityLogEntry
		}
		UpdateTransition []struct {
			Entry *domain.ActivityLogEntry
			From  domain.SessionStatus
		}
		DeleteLive []struct {
			ID uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockGetLive          sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdateTransition sync.RWMutex
	lockDeleteLive       sync.RWMutex
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

func (mock *entryRepoMock) GetLive(ctx context.Context) (*domain.ActivityLogEntry, error) {
	if mock.GetLiveFunc == nil {
		panic("entryRepoMock.GetLiveFunc: method is nil but entryRepo.GetLive was just called")
	}
	mock.lockGetLive.Lock()
	mock.calls.GetLive = append(mock.calls.GetLive, struct{}{})
	mock.lockGetLive.Unlock()
	return mock.GetLiveFunc(ctx)
}

func (mock *entryRepoMock) GetLiveCalls() []struct{} {
	mock.lockGetLive.RLock()
	calls := mock.calls.GetLive
	mock.lockGetLive.RUnlock()
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

func (mock *entryRepoMock) UpdateTransition(ctx context.Context, entry *domain.ActivityLogEntry, from domain.SessionStatus) (*domain.ActivityLogEntry, error) {
	if mock.UpdateTransitionFunc == nil {
		panic("entryRepoMock.UpdateTransitionFunc: method is nil but entryRepo.UpdateTransition was just called")
	}
	callInfo := struct {
		Entry *domain.ActivityLogEntry
		From  domain.SessionStatus
	}{Entry: entry, From: from}
	mock.lockUpdateTransition.Lock()
	mock.calls.UpdateTransition = append(mock.calls.UpdateTransition, callInfo)
	mock.lockUpdateTransition.Unlock()
	return mock.UpdateTransitionFunc(ctx, entry, from)
}

func (mock *entryRepoMock) UpdateTransitionCalls() []struct {
	Entry *domain.ActivityLogEntry
	From  domain.SessionStatus
} {
	mock.lockUpdateTransition.RLock()
	calls := mock.calls.UpdateTransition
	mock.lockUpdateTransition.RUnlock()
	return calls
}

func (mock *entryRepoMock) DeleteLive(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteLiveFunc == nil {
		panic("entryRepoMock.DeleteLiveFunc: method is nil but entryRepo.DeleteLive was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDeleteLive.Lock()
	mock.calls.DeleteLive = append(mock.calls.DeleteLive, callInfo)
	mock.lockDeleteLive.Unlock()
	return mock.DeleteLiveFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteLiveCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDeleteLive.RLock()
	calls := mock.calls.DeleteLive
	mock.lockDeleteLive.RUnlock()
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
