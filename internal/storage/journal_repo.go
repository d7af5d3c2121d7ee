package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Insert(ctx context.Context, content string, mood *string, createdAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (content, mood, created_at) VALUES (?, ?, ?)
	`, content, mood, createdAt)
	if err != nil {
		return 0, fmt.Errorf("journal insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal last insert id: %w", err)
	}
	return id, nil
}

func (r *JournalRepo) Get(ctx context.Context, id int64) (*JournalEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, content, mood, created_at FROM journal_entries WHERE id = ?`, id)
	var (
		e    JournalEntry
		mood sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Content, &mood, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("journal get: %w", err)
	}
	if mood.Valid {
		v := mood.String
		e.Mood = &v
	}
	return &e, nil
}

func (r *JournalRepo) ListAll(ctx context.Context) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, content, mood, created_at FROM journal_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("journal list: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var (
			e    JournalEntry
			mood sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Content, &mood, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		if mood.Valid {
			v := mood.String
			e.Mood = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal rows: %w", err)
	}
	return out, nil
}

func (r *JournalRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("journal delete: %w", err)
	}
	return nil
}

func (r *JournalRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_entries`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}

type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) Insert(ctx context.Context, isoWeek, content string, createdAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO weekly_reviews (iso_week, content, created_at) VALUES (?, ?, ?)
	`, isoWeek, content, createdAt)
	if err != nil {
		return 0, fmt.Errorf("review insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("review last insert id: %w", err)
	}
	return id, nil
}

func (r *ReviewRepo) HasWeek(ctx context.Context, isoWeek string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM weekly_reviews WHERE iso_week = ? LIMIT 1`, isoWeek)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("review has week: %w", err)
	}
	return true, nil
}

func (r *ReviewRepo) ListAll(ctx context.Context) ([]WeeklyReview, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, iso_week, content, created_at FROM weekly_reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("review list: %w", err)
	}
	defer rows.Close()

	var out []WeeklyReview
	for rows.Next() {
		var w WeeklyReview
		if err := rows.Scan(&w.ID, &w.ISOWeek, &w.Content, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("review scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review rows: %w", err)
	}
	return out, nil
}
