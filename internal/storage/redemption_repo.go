package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type RedemptionRepo struct {
	db *sql.DB
}

func NewRedemptionRepo(db *sql.DB) *RedemptionRepo {
	return &RedemptionRepo{db: db}
}

func (r *RedemptionRepo) Insert(ctx context.Context, rewardID string, redeemedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO redemptions (reward_id, redeemed_at) VALUES (?, ?)
	`, rewardID, redeemedAt)
	if err != nil {
		return 0, fmt.Errorf("redemption insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("redemption last insert id: %w", err)
	}
	return id, nil
}

// CountSince counts redemptions of a reward at or after the period start.
func (r *RedemptionRepo) CountSince(ctx context.Context, rewardID string, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM redemptions WHERE reward_id = ? AND redeemed_at >= ?
	`, rewardID, since)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("redemption count: %w", err)
	}
	return n, nil
}

type CustomRewardRepo struct {
	db *sql.DB
}

func NewCustomRewardRepo(db *sql.DB) *CustomRewardRepo {
	return &CustomRewardRepo{db: db}
}

type CustomRewardInsert struct {
	Title        string
	CoinCost     int
	GemCost      int
	RedeemLimit  int
	RedeemPeriod string
}

func (r *CustomRewardRepo) Insert(ctx context.Context, in CustomRewardInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO custom_rewards (title, coin_cost, gem_cost, redeem_limit, redeem_period)
		VALUES (?, ?, ?, ?, ?)
	`, in.Title, in.CoinCost, in.GemCost, in.RedeemLimit, in.RedeemPeriod)
	if err != nil {
		return 0, fmt.Errorf("custom reward insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("custom reward last insert id: %w", err)
	}
	return id, nil
}

func (r *CustomRewardRepo) ListAll(ctx context.Context) ([]CustomReward, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, coin_cost, gem_cost, redeem_limit, redeem_period
		FROM custom_rewards ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("custom reward list: %w", err)
	}
	defer rows.Close()

	var out []CustomReward
	for rows.Next() {
		var (
			c      CustomReward
			period sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.CoinCost, &c.GemCost, &c.RedeemLimit, &period); err != nil {
			return nil, fmt.Errorf("custom reward scan: %w", err)
		}
		if period.Valid {
			c.RedeemPeriod = period.String
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("custom reward rows: %w", err)
	}
	return out, nil
}

func (r *CustomRewardRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM custom_rewards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("custom reward delete: %w", err)
	}
	return nil
}
