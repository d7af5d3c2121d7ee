package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Title      string
	Category   string
	Difficulty string
	Type       string
	XP         int
	Coins      int
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, category, difficulty, type, xp, coins)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.Title, in.Category, in.Difficulty, in.Type, in.XP, in.Coins)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, category, difficulty, type, completed, xp, coins,
			streak, last_completed, created_at
		FROM tasks WHERE id = ?`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `
		SELECT id, title, category, difficulty, type, completed, xp, coins,
			streak, last_completed, created_at
		FROM tasks ORDER BY id ASC`)
}

func (r *TaskRepo) ListByType(ctx context.Context, taskType string) ([]Task, error) {
	return r.list(ctx, `
		SELECT id, title, category, difficulty, type, completed, xp, coins,
			streak, last_completed, created_at
		FROM tasks WHERE type = ? ORDER BY id ASC`, taskType)
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// MarkCompleted stamps a completion and updates streak bookkeeping in one
// write.
func (r *TaskRepo) MarkCompleted(ctx context.Context, id int64, streak int, lastCompleted time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET completed = 1, streak = ?, last_completed = ? WHERE id = ?
	`, streak, lastCompleted, id)
	if err != nil {
		return fmt.Errorf("task mark completed: %w", err)
	}
	return nil
}

// ResetCompleted flips a recurring task back to incomplete, preserving
// streak and last_completed (daily rollover path).
func (r *TaskRepo) ResetCompleted(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task reset completed: %w", err)
	}
	return nil
}

// ResetStreak zeroes a task streak (missed daily).
func (r *TaskRepo) ResetStreak(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET streak = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task reset streak: %w", err)
	}
	return nil
}

// Restore undoes a completion, returning the task to incomplete with the
// given streak.
func (r *TaskRepo) Restore(ctx context.Context, id int64, streak int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 0, streak = ? WHERE id = ?`, streak, id)
	if err != nil {
		return fmt.Errorf("task restore: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_completions WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("task delete completions: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		t             Task
		completed     int
		lastCompleted sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Category, &t.Difficulty, &t.Type,
		&completed, &t.XP, &t.Coins, &t.Streak, &lastCompleted, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.Completed = completed != 0
	if lastCompleted.Valid {
		v := lastCompleted.Time
		t.LastCompleted = &v
	}
	return &t, nil
}
