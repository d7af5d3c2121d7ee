package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const MainBossKey = "boss"

type BossRepo struct {
	db *sql.DB
}

func NewBossRepo(db *sql.DB) *BossRepo {
	return &BossRepo{db: db}
}

func (r *BossRepo) Get(ctx context.Context) (*Boss, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, code, name, week, current_hp, max_hp, resistances,
			reward_xp, reward_coins, reward_gems, last_defeated
		FROM boss WHERE key = ?`, MainBossKey)

	var (
		b            Boss
		resistances  sql.NullString
		lastDefeated sql.NullString
	)
	if err := row.Scan(&b.Key, &b.Code, &b.Name, &b.Week, &b.CurrentHP, &b.MaxHP,
		&resistances, &b.RewardXP, &b.RewardCoins, &b.RewardGems, &lastDefeated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("boss get: %w", err)
	}

	if resistances.Valid && resistances.String != "" {
		if err := json.Unmarshal([]byte(resistances.String), &b.Resistances); err != nil {
			return nil, fmt.Errorf("unmarshal resistances: %w", err)
		}
	}
	if lastDefeated.Valid {
		v := lastDefeated.String
		b.LastDefeated = &v
	}
	return &b, nil
}

// Upsert replaces the weekly boss singleton.
func (r *BossRepo) Upsert(ctx context.Context, b *Boss) error {
	resistances, err := json.Marshal(b.Resistances)
	if err != nil {
		return fmt.Errorf("marshal resistances: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO boss (key, code, name, week, current_hp, max_hp, resistances,
			reward_xp, reward_coins, reward_gems, last_defeated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			code = excluded.code,
			name = excluded.name,
			week = excluded.week,
			current_hp = excluded.current_hp,
			max_hp = excluded.max_hp,
			resistances = excluded.resistances,
			reward_xp = excluded.reward_xp,
			reward_coins = excluded.reward_coins,
			reward_gems = excluded.reward_gems,
			last_defeated = excluded.last_defeated
	`, MainBossKey, b.Code, b.Name, b.Week, b.CurrentHP, b.MaxHP, string(resistances),
		b.RewardXP, b.RewardCoins, b.RewardGems, b.LastDefeated)
	if err != nil {
		return fmt.Errorf("boss upsert: %w", err)
	}
	return nil
}
