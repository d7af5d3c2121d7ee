package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// RedeemPeriod is the window a redemption limit applies to.
type RedeemPeriod string

const (
	PeriodDay   RedeemPeriod = "day"
	PeriodWeek  RedeemPeriod = "week"
	PeriodMonth RedeemPeriod = "month"
)

// RewardItem is a shop entry. Exactly one of CoinCost and GemCost is
// nonzero. A zero RedeemLimit means unlimited.
type RewardItem struct {
	ID          string
	Title       string
	CoinCost    int
	GemCost     int
	RedeemLimit int
	Period      RedeemPeriod
	Custom      bool
}

// Built-in catalog. Custom rewards are appended from storage at read
// time.
var builtinRewards = []RewardItem{
	{ID: "snack", Title: "Guilt-free snack", CoinCost: 50, RedeemLimit: 2, Period: PeriodDay},
	{ID: "episode", Title: "One episode of anything", CoinCost: 100, RedeemLimit: 1, Period: PeriodDay},
	{ID: "gaming-hour", Title: "One hour of gaming", CoinCost: 150, RedeemLimit: 1, Period: PeriodDay},
	{ID: "sleep-in", Title: "Sleep in tomorrow", CoinCost: 300, RedeemLimit: 2, Period: PeriodWeek},
	{ID: "takeout", Title: "Order takeout", CoinCost: 400, RedeemLimit: 1, Period: PeriodWeek},
	{ID: "day-off", Title: "A full day off", GemCost: 5, RedeemLimit: 1, Period: PeriodWeek},
	{ID: "treat-yourself", Title: "Buy something nice", GemCost: 10, RedeemLimit: 1, Period: PeriodMonth},
}

func customRewardID(id int64) string {
	return fmt.Sprintf("custom-%d", id)
}

// Rewards lists the full catalog, built-ins first.
func (s *Service) Rewards(ctx context.Context) ([]RewardItem, error) {
	out := make([]RewardItem, len(builtinRewards))
	copy(out, builtinRewards)

	customs, err := s.customRewards.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customs {
		out = append(out, RewardItem{
			ID:          customRewardID(c.ID),
			Title:       c.Title,
			CoinCost:    c.CoinCost,
			GemCost:     c.GemCost,
			RedeemLimit: c.RedeemLimit,
			Period:      RedeemPeriod(c.RedeemPeriod),
			Custom:      true,
		})
	}
	return out, nil
}

func (s *Service) findReward(ctx context.Context, id string) (*RewardItem, error) {
	rewards, err := s.Rewards(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rewards {
		if rewards[i].ID == id {
			return &rewards[i], nil
		}
	}
	return nil, fmt.Errorf("reward %q not found", id)
}

func (s *Service) periodStart(p RedeemPeriod) time.Time {
	now := s.clock.Now()
	switch p {
	case PeriodWeek:
		return StartOfWeek(now)
	case PeriodMonth:
		return StartOfMonth(now)
	default:
		return StartOfDay(now)
	}
}

// RedeemedCount reports how many times a reward was used in its current
// limit window.
func (s *Service) RedeemedCount(ctx context.Context, id string) (int, error) {
	r, err := s.findReward(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.redemptions.CountSince(ctx, r.ID, s.periodStart(r.Period))
}

// RedeemReward spends coins or gems for a reward, enforcing the
// per-period limit, and records the redemption.
func (s *Service) RedeemReward(ctx context.Context, id string) (*RewardItem, error) {
	r, err := s.findReward(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.RedeemLimit > 0 {
		n, err := s.redemptions.CountSince(ctx, r.ID, s.periodStart(r.Period))
		if err != nil {
			return nil, err
		}
		if n >= r.RedeemLimit {
			return nil, ErrRedemptionLimit
		}
	}

	if r.GemCost > 0 {
		if err := s.AddGems(ctx, -r.GemCost); err != nil {
			return nil, err
		}
	} else {
		if err := s.AddCoins(ctx, -r.CoinCost); err != nil {
			return nil, err
		}
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	h.Inventory = append(h.Inventory, r.Title)
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	if _, err := s.redemptions.Insert(ctx, r.ID, s.clock.Now()); err != nil {
		return nil, err
	}

	s.log.Info("reward redeemed", zap.String("reward", r.ID),
		zap.Int("coin_cost", r.CoinCost), zap.Int("gem_cost", r.GemCost))
	s.notifier.Notify(NotifyRewardRedeemed, "Reward Redeemed", r.Title)
	return r, nil
}

// AddCustomRewardInput defines a user-made shop entry. Exactly one cost
// must be set.
type AddCustomRewardInput struct {
	Title       string
	CoinCost    int
	GemCost     int
	RedeemLimit int
	Period      RedeemPeriod
}

func (s *Service) AddCustomReward(ctx context.Context, in AddCustomRewardInput) (*RewardItem, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if (in.CoinCost > 0) == (in.GemCost > 0) {
		return nil, fmt.Errorf("reward must cost either coins or gems")
	}
	if in.Period == "" {
		in.Period = PeriodDay
	}

	id, err := s.customRewards.Insert(ctx, storage.CustomRewardInsert{
		Title:        title,
		CoinCost:     in.CoinCost,
		GemCost:      in.GemCost,
		RedeemLimit:  in.RedeemLimit,
		RedeemPeriod: string(in.Period),
	})
	if err != nil {
		return nil, err
	}
	return s.findReward(ctx, customRewardID(id))
}

func (s *Service) DeleteCustomReward(ctx context.Context, id int64) error {
	return s.customRewards.Delete(ctx, id)
}
