package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc      func(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListFunc        func(ctx context.Context) ([]*domain.Activity, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	UsageCountsFunc func(ctx context.Context) ([]domain.ActivityUsage, error)

	calls struct {
		Create []struct {
			Activity *domain.Activity
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List   []struct{}
		Update []struct {
			ID     uuid.UUID
			Params domain.ActivityUpdateParams
		}
		Delete []struct {
			ID uuid.UUID
		}
		UsageCounts []struct{}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockUsageCounts sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Activity *domain.Activity
	}{Activity: activity}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, activity)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Activity *domain.Activity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *activityRepoMock) List(ctx context.Context) ([]*domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityRepoMock.ListFunc: method is nil but activityRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *activityRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error) {
	if mock.UpdateFunc == nil {
		panic("activityRepoMock.UpdateFunc: method is nil but activityRepo.Update was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Params domain.ActivityUpdateParams
	}{ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *activityRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.ActivityUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *activityRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("activityRepoMock.DeleteFunc: method is nil but activityRepo.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *activityRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *activityRepoMock) UsageCounts(ctx context.Context) ([]domain.ActivityUsage, error) {
	if mock.UsageCountsFunc == nil {
		panic("activityRepoMock.UsageCountsFunc: method is nil but activityRepo.UsageCounts was just called")
	}
	mock.lockUsageCounts.Lock()
	mock.calls.UsageCounts = append(mock.calls.UsageCounts, struct{}{})
	mock.lockUsageCounts.Unlock()
	return mock.UsageCountsFunc(ctx)
}
