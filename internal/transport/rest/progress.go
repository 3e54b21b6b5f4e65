package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
	"github.com/heartmarshall/biblestories-backend/internal/service/progress"
)

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	FetchProgress(ctx context.Context) (domain.ProgressSummary, error)
	CompleteLesson(ctx context.Context, input progress.CompleteLessonInput) (*domain.LessonProgress, error)
}

// ProgressHandler serves the lesson-progress REST endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type completeLessonRequest struct {
	LessonID string  `json:"lessonId"`
	Notes    *string `json:"notes,omitempty"`
}

type progressSummaryResponse struct {
	CompletedLessonIDs []string          `json:"completedLessonIds"`
	NotesByLessonID    map[string]string `json:"notesByLessonId"`
}

type lessonProgressResponse struct {
	LessonID    string    `json:"lessonId"`
	Completed   bool      `json:"completed"`
	Notes       *string   `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// Fetch handles GET /api/progress. Guests get an empty summary with 200;
// the lesson pages render identically for a guest and a signed-in user with
// no history.
func (h *ProgressHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.FetchProgress(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressSummaryResponse(summary))
}

// Complete handles POST /api/progress/complete.
func (h *ProgressHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.svc.CompleteLesson(r.Context(), progress.CompleteLessonInput{
		LessonID: req.LessonID,
		Notes:    req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lessonProgressResponse{
		LessonID:    stored.LessonID,
		Completed:   stored.Completed,
		Notes:       stored.Notes,
		CompletedAt: stored.CompletedAt,
	})
}

func (h *ProgressHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "must be signed in to record progress")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "progress store timed out")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toProgressSummaryResponse(summary domain.ProgressSummary) progressSummaryResponse {
	completed := make([]string, 0, len(summary.CompletedLessonIDs))
	for id := range summary.CompletedLessonIDs {
		completed = append(completed, id)
	}
	sort.Strings(completed)

	notes := summary.NotesByLessonID
	if notes == nil {
		notes = map[string]string{}
	}

	return progressSummaryResponse{
		CompletedLessonIDs: completed,
		NotesByLessonID:    notes,
	}
}
