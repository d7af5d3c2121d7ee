package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

func (r *AchievementRepo) IsUnlocked(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM achievements WHERE id = ? LIMIT 1`, id)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("achievement unlocked: %w", err)
	}
	return true, nil
}

func (r *AchievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (id, unlocked_at) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, at)
	if err != nil {
		return fmt.Errorf("achievement unlock: %w", err)
	}
	return nil
}

func (r *AchievementRepo) ListUnlocked(ctx context.Context) ([]AchievementUnlock, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, unlocked_at FROM achievements ORDER BY unlocked_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []AchievementUnlock
	for rows.Next() {
		var a AchievementUnlock
		if err := rows.Scan(&a.ID, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

type QuestTemplateRepo struct {
	db *sql.DB
}

func NewQuestTemplateRepo(db *sql.DB) *QuestTemplateRepo {
	return &QuestTemplateRepo{db: db}
}

func (r *QuestTemplateRepo) Get(ctx context.Context, code string) (*QuestTemplateState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT code, status FROM quest_templates WHERE code = ?`, code)
	var s QuestTemplateState
	if err := row.Scan(&s.Code, &s.Status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest template get: %w", err)
	}
	return &s, nil
}

func (r *QuestTemplateRepo) Upsert(ctx context.Context, s QuestTemplateState) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_templates (code, status) VALUES (?, ?)
		ON CONFLICT(code) DO UPDATE SET status = excluded.status
	`, s.Code, s.Status)
	if err != nil {
		return fmt.Errorf("quest template upsert: %w", err)
	}
	return nil
}

func (r *QuestTemplateRepo) ListByStatus(ctx context.Context, status string) ([]QuestTemplateState, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT code, status FROM quest_templates WHERE status = ? ORDER BY code ASC`, status)
	if err != nil {
		return nil, fmt.Errorf("quest template list: %w", err)
	}
	defer rows.Close()

	var out []QuestTemplateState
	for rows.Next() {
		var s QuestTemplateState
		if err := rows.Scan(&s.Code, &s.Status); err != nil {
			return nil, fmt.Errorf("quest template scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest template rows: %w", err)
	}
	return out, nil
}
