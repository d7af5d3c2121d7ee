package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const MainHeroKey = "hero"

// Starting vitals for a fresh hero.
const (
	DefaultMaxHealth = 100
)

type HeroRepo struct {
	db *sql.DB
}

func NewHeroRepo(db *sql.DB) *HeroRepo {
	return &HeroRepo{db: db}
}

func (r *HeroRepo) Get(ctx context.Context, key string) (*Hero, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, xp, skill_points, coins, gems, health, max_health,
			streak, longest_streak, tasks_completed, last_login, debuffs, inventory,
			journal_deletions, last_journal_deletion
		FROM hero WHERE key = ?`, key)

	var (
		h            Hero
		debuffs      sql.NullString
		inventory    sql.NullString
		lastDeletion sql.NullTime
	)
	if err := row.Scan(&h.Key, &h.XP, &h.SkillPoints, &h.Coins, &h.Gems,
		&h.Health, &h.MaxHealth, &h.Streak, &h.LongestStreak,
		&h.TasksCompleted, &h.LastLogin, &debuffs, &inventory,
		&h.JournalDeletions, &lastDeletion); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("hero get: %w", err)
	}

	if debuffs.Valid && debuffs.String != "" {
		if err := json.Unmarshal([]byte(debuffs.String), &h.Debuffs); err != nil {
			return nil, fmt.Errorf("unmarshal debuffs: %w", err)
		}
	}
	if inventory.Valid && inventory.String != "" {
		if err := json.Unmarshal([]byte(inventory.String), &h.Inventory); err != nil {
			return nil, fmt.Errorf("unmarshal inventory: %w", err)
		}
	}
	if lastDeletion.Valid {
		v := lastDeletion.Time
		h.LastJournalDeletion = &v
	}
	return &h, nil
}

func (r *HeroRepo) GetOrCreateMain(ctx context.Context) (*Hero, error) {
	h, err := r.Get(ctx, MainHeroKey)
	if err != nil {
		return nil, err
	}
	if h != nil {
		return h, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO hero (key, health, max_health, last_login)
		VALUES (?, ?, ?, ?)`,
		MainHeroKey, DefaultMaxHealth, DefaultMaxHealth, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("hero insert: %w", err)
	}
	return r.Get(ctx, MainHeroKey)
}

func (r *HeroRepo) Update(ctx context.Context, h *Hero) error {
	debuffs, err := json.Marshal(h.Debuffs)
	if err != nil {
		return fmt.Errorf("marshal debuffs: %w", err)
	}
	inventory, err := json.Marshal(h.Inventory)
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE hero
		SET xp = ?, skill_points = ?, coins = ?, gems = ?, health = ?,
			max_health = ?, streak = ?, longest_streak = ?, tasks_completed = ?,
			last_login = ?, debuffs = ?, inventory = ?,
			journal_deletions = ?, last_journal_deletion = ?
		WHERE key = ?`,
		h.XP, h.SkillPoints, h.Coins, h.Gems, h.Health, h.MaxHealth,
		h.Streak, h.LongestStreak, h.TasksCompleted, h.LastLogin,
		string(debuffs), string(inventory),
		h.JournalDeletions, h.LastJournalDeletion, h.Key)
	if err != nil {
		return fmt.Errorf("hero update: %w", err)
	}
	return nil
}
