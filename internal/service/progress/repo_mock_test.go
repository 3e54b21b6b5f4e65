package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	UpsertFunc      func(ctx context.Context, p domain.LessonProgress) (*domain.LessonProgress, error)
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]domain.LessonProgress, error)

	calls struct {
		Upsert      []domain.LessonProgress
		GetByUserID []uuid.UUID
	}
	lockUpsert      sync.RWMutex
	lockGetByUserID sync.RWMutex
}

func (mock *progressRepoMock) Upsert(ctx context.Context, p domain.LessonProgress) (*domain.LessonProgress, error) {
	if mock.UpsertFunc == nil {
		panic("progressRepoMock.UpsertFunc: method is nil but progressRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, p)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *progressRepoMock) UpsertCalls() []domain.LessonProgress {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.LessonProgress, error) {
	if mock.GetByUserIDFunc == nil {
		panic("progressRepoMock.GetByUserIDFunc: method is nil but progressRepo.GetByUserID was just called")
	}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, userID)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *progressRepoMock) GetByUserIDCalls() []uuid.UUID {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}
