package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/tracknox/timetrack-backend/internal/domain"
	"github.com/tracknox/timetrack-backend/internal/service/entry"
)

// Stub services for handler tests. Unset funcs panic so a test that hits
// an unexpected method fails loudly.

type timerServiceMock struct {
	StartFunc      func(ctx context.Context, activityID uuid.UUID) (*domain.ActivityLogEntry, error)
	PauseFunc      func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	ResumeFunc     func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	HeartbeatFunc  func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	StopFunc       func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	ResetFunc      func(ctx context.Context, id uuid.UUID) error
	RecoverFunc    func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, domain.RecoveryAction, error)
	GetCurrentFunc func(ctx context.Context) (*domain.ActivityLogEntry, error)
}

func (m *timerServiceMock) Start(ctx context.Context, activityID uuid.UUID) (*domain.ActivityLogEntry, error) {
	return m.StartFunc(ctx, activityID)
}

func (m *timerServiceMock) Pause(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return m.PauseFunc(ctx, id)
}

func (m *timerServiceMock) Resume(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return m.ResumeFunc(ctx, id)
}

func (m *timerServiceMock) Heartbeat(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return m.HeartbeatFunc(ctx, id)
}

func (m *timerServiceMock) Stop(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return m.StopFunc(ctx, id)
}

func (m *timerServiceMock) Reset(ctx context.Context, id uuid.UUID) error {
	return m.ResetFunc(ctx, id)
}

func (m *timerServiceMock) Recover(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, domain.RecoveryAction, error) {
	return m.RecoverFunc(ctx, id)
}

func (m *timerServiceMock) GetCurrent(ctx context.Context) (*domain.ActivityLogEntry, error) {
	return m.GetCurrentFunc(ctx)
}

type entryServiceMock struct {
	CreateManualFunc func(ctx context.Context, input entry.CreateEntryInput) (*domain.ActivityLogEntry, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	ListFunc         func(ctx context.Context, input entry.ListEntriesInput) ([]*domain.ActivityLogEntry, int, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, input entry.UpdateEntryInput) (*domain.ActivityLogEntry, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *entryServiceMock) CreateManual(ctx context.Context, input entry.CreateEntryInput) (*domain.ActivityLogEntry, error) {
	return m.CreateManualFunc(ctx, input)
}

func (m *entryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return m.GetFunc(ctx, id)
}

func (m *entryServiceMock) List(ctx context.Context, input entry.ListEntriesInput) ([]*domain.ActivityLogEntry, int, error) {
	return m.ListFunc(ctx, input)
}

func (m *entryServiceMock) Update(ctx context.Context, id uuid.UUID, input entry.UpdateEntryInput) (*domain.ActivityLogEntry, error) {
	return m.UpdateFunc(ctx, id, input)
}

func (m *entryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type activityServiceMock struct {
	CreateFunc func(ctx context.Context, name, color string) (*domain.Activity, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListFunc   func(ctx context.Context) ([]*domain.Activity, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	StatsFunc  func(ctx context.Context) ([]domain.ActivityUsage, error)
}

func (m *activityServiceMock) Create(ctx context.Context, name, color string) (*domain.Activity, error) {
	return m.CreateFunc(ctx, name, color)
}

func (m *activityServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	return m.GetFunc(ctx, id)
}

func (m *activityServiceMock) List(ctx context.Context) ([]*domain.Activity, error) {
	return m.ListFunc(ctx)
}

func (m *activityServiceMock) Update(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *activityServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *activityServiceMock) Stats(ctx context.Context) ([]domain.ActivityUsage, error) {
	return m.StatsFunc(ctx)
}
