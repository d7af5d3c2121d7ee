package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// XPResult reports the outcome of an XP change.
type XPResult struct {
	XPBefore          int
	XPAfter           int
	LevelBefore       int
	LevelAfter        int
	LevelUp           bool
	SkillPointsGained int
}

// applyXP mutates the hero's XP, skill points and derived level in
// memory. Negative amounts floor total XP at zero so penalties can never
// push the ledger below a fresh hero. The caller persists.
func (s *Service) applyXP(h *storage.Hero, amount int) XPResult {
	res := XPResult{
		XPBefore:    h.XP,
		LevelBefore: LevelForTotalXP(h.XP),
	}

	h.XP += amount
	if h.XP < 0 {
		h.XP = 0
	}
	res.XPAfter = h.XP
	res.LevelAfter = LevelForTotalXP(h.XP)

	if res.LevelAfter > res.LevelBefore {
		res.LevelUp = true
		res.SkillPointsGained = SkillPointsPerLevel * (res.LevelAfter - res.LevelBefore)
		h.SkillPoints += res.SkillPointsGained
		s.notifier.Notify(NotifyLevelUp, "Level Up!",
			fmt.Sprintf("You reached level %d (%s) and earned %d skill points.",
				res.LevelAfter, TierForLevel(res.LevelAfter), res.SkillPointsGained))
	}
	return res
}

// AddXP applies an XP delta to the hero and persists the result.
func (s *Service) AddXP(ctx context.Context, amount int) (*XPResult, error) {
	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}

	res := s.applyXP(h, amount)
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	if res.LevelUp {
		if _, err := s.EvaluateAchievements(ctx); err != nil {
			s.log.Warn("achievement evaluation failed", zap.Error(err))
		}
	}
	return &res, nil
}

// AddCoins applies a coin delta. A debit that would push the balance
// negative is rejected without mutation.
func (s *Service) AddCoins(ctx context.Context, amount int) error {
	h, err := s.Hero(ctx)
	if err != nil {
		return err
	}
	if amount < 0 && h.Coins+amount < 0 {
		s.notifier.Notify(NotifyInsufficientFunds, "Not enough coins!",
			fmt.Sprintf("You need %d coins but only have %d.", -amount, h.Coins))
		return ErrInsufficientFunds
	}
	h.Coins += amount
	return s.heroes.Update(ctx, h)
}

// AddGems applies a gem delta with the same overdraw rule as AddCoins.
func (s *Service) AddGems(ctx context.Context, amount int) error {
	h, err := s.Hero(ctx)
	if err != nil {
		return err
	}
	if amount < 0 && h.Gems+amount < 0 {
		s.notifier.Notify(NotifyInsufficientFunds, "Not enough gems!",
			fmt.Sprintf("You need %d gems but only have %d.", -amount, h.Gems))
		return ErrInsufficientFunds
	}
	h.Gems += amount
	return s.heroes.Update(ctx, h)
}
