// Package progress implements the lesson-progress repository using
// PostgreSQL. The write path is a single conflict-resolving upsert on the
// (user_id, lesson_id) primary key, never a read-then-decide sequence, so
// repeated completions of the same lesson overwrite one row instead of
// inserting a second.
package progress

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/biblestories-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

// qb builds queries with PostgreSQL $n placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const upsertSuffix = `ON CONFLICT (user_id, lesson_id) DO UPDATE
SET completed = EXCLUDED.completed,
    notes = EXCLUDED.notes,
    completed_at = EXCLUDED.completed_at
RETURNING user_id, lesson_id, completed, notes, completed_at`

// Repo provides lesson-progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert writes the full desired row state for (UserID, LessonID) in one
// atomic statement. Last write wins at the row level; both racers carry the
// whole row, so a race is an idempotent overwrite, not a lost update.
func (r *Repo) Upsert(ctx context.Context, p domain.LessonProgress) (*domain.LessonProgress, error) {
	query, args, err := qb.
		Insert("lesson_progress").
		Columns("user_id", "lesson_id", "completed", "notes", "completed_at").
		Values(p.UserID, p.LessonID, p.Completed, p.Notes, p.CompletedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert query: %w", err)
	}

	row := r.db.QueryRow(ctx, query, args...)
	stored, err := scanProgress(row)
	if err != nil {
		return nil, mapError(err, "lesson_progress", p.LessonID)
	}

	return stored, nil
}

// GetByUserID returns all progress rows for a user, ordered by lesson id.
// A user with no progress yields an empty slice, not an error.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.LessonProgress, error) {
	query, args, err := qb.
		Select("user_id", "lesson_id", "completed", "notes", "completed_at").
		From("lesson_progress").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("lesson_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "lesson_progress", userID.String())
	}
	defer rows.Close()

	progress := []domain.LessonProgress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson_progress: %w", err)
		}
		progress = append(progress, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson_progress: %w", err)
	}

	return progress, nil
}

// scanProgress scans one lesson_progress row in column order
// (user_id, lesson_id, completed, notes, completed_at). A NULL notes column
// scans to a nil pointer.
func scanProgress(row pgx.Row) (*domain.LessonProgress, error) {
	var p domain.LessonProgress
	if err := row.Scan(&p.UserID, &p.LessonID, &p.Completed, &p.Notes, &p.CompletedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// mapError converts pgx/pgconn errors into domain errors.
// context.DeadlineExceeded and context.Canceled pass through as-is.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrConflict)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
