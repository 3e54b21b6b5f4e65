package progress

import (
	"context"
	"fmt"

	"github.com/heartmarshall/biblestories-backend/pkg/ctxutil"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

// FetchProgress returns the user's completed lesson ids and per-lesson
// notes. A guest session (no authenticated user in context) is a no-op
// returning empty state, not an error, so the lesson pages render the
// same way for guests and for users with no history.
func (s *Service) FetchProgress(ctx context.Context) (domain.ProgressSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.EmptyProgressSummary(), nil
	}

	rows, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return domain.ProgressSummary{}, fmt.Errorf("fetch progress: %w", err)
	}

	summary := domain.EmptyProgressSummary()
	for _, p := range rows {
		if p.Completed {
			summary.CompletedLessonIDs[p.LessonID] = true
		}
		if p.Notes != nil && *p.Notes != "" {
			summary.NotesByLessonID[p.LessonID] = *p.Notes
		}
	}

	return summary, nil
}
