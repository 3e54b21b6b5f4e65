// Package progress implements the lesson-progress ledger: reconciling a
// user's lesson-completion state with the remote authoritative store.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

// progressRepo is the persistence surface this service needs.
type progressRepo interface {
	Upsert(ctx context.Context, p domain.LessonProgress) (*domain.LessonProgress, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.LessonProgress, error)
}

// Service implements the progress ledger business logic. Writes are never
// retried automatically: a failed write is surfaced to the caller and must
// be explicitly reinvoked.
type Service struct {
	repo         progressRepo
	log          *slog.Logger
	writeTimeout time.Duration
	now          func() time.Time
}

// NewService creates a new progress Service. writeTimeout bounds every
// remote write.
func NewService(log *slog.Logger, repo progressRepo, writeTimeout time.Duration) *Service {
	return &Service{
		repo:         repo,
		log:          log,
		writeTimeout: writeTimeout,
		now:          time.Now,
	}
}
