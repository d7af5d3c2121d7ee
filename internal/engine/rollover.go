package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// Exhaustion penalties applied when rollover drops health to zero or
// below.
const (
	missedDailyPenalty = 10
	exhaustionXPLoss   = 100
	exhaustionCoinLoss = 50
)

// RolloverResult describes what a daily rollover did.
type RolloverResult struct {
	DebuffDamage  int
	MissedDailies int
	HealthPenalty int
	NewHealth     int
	Exhausted     bool
	Streak        int
	StreakBroken  bool
}

// EnsureDay runs the daily rollover if the hero's last login is on an
// earlier calendar day than now. Calling it again on the same day is a
// no-op, which makes the transition safe to trigger from every command.
func (s *Service) EnsureDay(ctx context.Context) (*RolloverResult, error) {
	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if SameDay(h.LastLogin, now) {
		return nil, nil
	}
	return s.rollover(ctx, h)
}

func (s *Service) rollover(ctx context.Context, h *storage.Hero) (*RolloverResult, error) {
	now := s.clock.Now()
	res := &RolloverResult{}

	// Debuffs tick down one day and deal their damage on every rollover
	// they are active for, including the one that expires them.
	var remaining []storage.Debuff
	for _, d := range h.Debuffs {
		res.DebuffDamage += ApplyDebuff(DebuffKind(d.Kind))
		if d.Duration > 1 {
			remaining = append(remaining, storage.Debuff{Kind: d.Kind, Duration: d.Duration - 1})
		}
	}

	dailies, err := s.tasks.ListByType(ctx, string(TaskDaily))
	if err != nil {
		return nil, err
	}

	allDone := true
	for _, t := range dailies {
		if !t.Completed {
			allDone = false
			res.MissedDailies++
			if err := s.tasks.ResetStreak(ctx, t.ID); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.tasks.ResetCompleted(ctx, t.ID); err != nil {
			return nil, err
		}
	}

	res.HealthPenalty = res.DebuffDamage + res.MissedDailies*missedDailyPenalty

	if allDone && len(dailies) > 0 {
		h.Streak++
	} else {
		res.StreakBroken = h.Streak > 0
		h.Streak = 0
	}
	if h.Streak > h.LongestStreak {
		h.LongestStreak = h.Streak
	}
	res.Streak = h.Streak

	h.Health -= res.HealthPenalty
	h.Debuffs = remaining
	h.LastLogin = now

	if h.Health <= 0 {
		// Exhaustion: pay the penalty, wake up fully rested. Health never
		// stays at or below zero past a rollover.
		res.Exhausted = true
		h.XP -= exhaustionXPLoss
		if h.XP < 0 {
			h.XP = 0
		}
		h.Coins -= exhaustionCoinLoss
		if h.Coins < 0 {
			h.Coins = 0
		}
		h.Health = h.MaxHealth
		h.Debuffs = nil
	}
	if h.Health > h.MaxHealth {
		h.Health = h.MaxHealth
	}
	res.NewHealth = h.Health

	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	s.log.Info("daily rollover",
		zap.Int("debuff_damage", res.DebuffDamage),
		zap.Int("missed_dailies", res.MissedDailies),
		zap.Int("health", res.NewHealth),
		zap.Int("streak", res.Streak),
		zap.Bool("exhausted", res.Exhausted),
	)

	if res.Exhausted {
		s.notifier.Notify(NotifyExhaustion, "Exhausted!",
			fmt.Sprintf("You entered the penalty zone: -%d XP and -%d coins, but you are fully rested.",
				exhaustionXPLoss, exhaustionCoinLoss))
	} else if res.HealthPenalty > 0 {
		s.notifier.Notify(NotifyDamageTaken, "Daily Reset",
			fmt.Sprintf("You took %d damage from missed quests and debuffs.", res.HealthPenalty))
	}

	if _, err := s.EvaluateAchievements(ctx); err != nil {
		s.log.Warn("achievement evaluation failed", zap.Error(err))
	}
	return res, nil
}
