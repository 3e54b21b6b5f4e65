package domain

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress is the one mutable entity in the system: a per-user record
// of a completed study lesson, keyed by (UserID, LessonID). The remote store
// owns it; this service only holds transient fetch results for rendering.
type LessonProgress struct {
	UserID      uuid.UUID
	LessonID    string
	Completed   bool
	Notes       *string
	CompletedAt time.Time
}

// ProgressSummary is the render-oriented shape of a user's progress:
// the set of completed lesson ids plus any notes keyed by lesson id.
type ProgressSummary struct {
	CompletedLessonIDs map[string]bool
	NotesByLessonID    map[string]string
}

// EmptyProgressSummary returns a summary with initialized, empty collections.
// Guest sessions get this instead of an error.
func EmptyProgressSummary() ProgressSummary {
	return ProgressSummary{
		CompletedLessonIDs: map[string]bool{},
		NotesByLessonID:    map[string]string{},
	}
}
