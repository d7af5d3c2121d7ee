package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type CompletionRepo struct {
	db *sql.DB
}

func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, taskID int64, completedAt time.Time, xpAwarded, coinsAwarded, streakBefore int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO task_completions (task_id, completed_at, xp_awarded, coins_awarded, streak_before)
		VALUES (?, ?, ?, ?, ?)
	`, taskID, completedAt, xpAwarded, coinsAwarded, streakBefore)
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

// Last returns the most recent completion for a task, or nil.
func (r *CompletionRepo) Last(ctx context.Context, taskID int64) (*TaskCompletion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, task_id, completed_at, xp_awarded, coins_awarded, streak_before
		FROM task_completions
		WHERE task_id = ?
		ORDER BY completed_at DESC, id DESC
		LIMIT 1
	`, taskID)
	var tc TaskCompletion
	if err := row.Scan(&tc.ID, &tc.TaskID, &tc.CompletedAt, &tc.XPAwarded, &tc.CoinsAwarded, &tc.StreakBefore); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("completion last: %w", err)
	}
	return &tc, nil
}

func (r *CompletionRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_completions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("completion delete: %w", err)
	}
	return nil
}

func (r *CompletionRepo) CountAll(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task_completions`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}
