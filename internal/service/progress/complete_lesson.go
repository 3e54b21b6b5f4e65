package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
	"github.com/heartmarshall/biblestories-backend/pkg/ctxutil"
)

// CompleteLessonInput holds the parameters for CompleteLesson.
type CompleteLessonInput struct {
	LessonID string
	Notes    *string
}

func (in *CompleteLessonInput) validate() error {
	if strings.TrimSpace(in.LessonID) == "" {
		return domain.NewValidationError("lesson_id", "required")
	}
	return nil
}

// CompleteLesson marks a lesson complete for the authenticated user in one
// atomic upsert keyed on (user id, lesson id). Completing the same lesson
// again overwrites the existing row, notes and completion time included,
// and never produces a second row.
//
// Without an authenticated user the call is rejected locally with
// domain.ErrUnauthorized before any network attempt. A remote failure is
// returned as-is: no retries, no optimistic local state.
func (s *Service) CompleteLesson(ctx context.Context, input CompleteLessonInput) (*domain.LessonProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	stored, err := s.repo.Upsert(writeCtx, domain.LessonProgress{
		UserID:      userID,
		LessonID:    input.LessonID,
		Completed:   true,
		Notes:       input.Notes,
		CompletedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("complete lesson: %w", err)
	}

	s.log.InfoContext(ctx, "lesson completed",
		slog.String("user_id", userID.String()),
		slog.String("lesson_id", input.LessonID),
	)

	return stored, nil
}
