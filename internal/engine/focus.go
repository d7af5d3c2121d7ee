package engine

import (
	"context"

	"go.uber.org/zap"
)

// CompletePomodoro awards XP for a finished focus session. sessionCount
// is the position of the session in today's sitting (1-based); later
// sessions pay a growing bonus.
func (s *Service) CompletePomodoro(ctx context.Context, sessionCount int) (*XPResult, error) {
	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	xp := PomodoroXP(sessionCount, HeroLevel(h))
	res := s.applyXP(h, xp)
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}
	s.log.Info("focus session completed", zap.Int("session", sessionCount), zap.Int("xp", xp))
	return &res, nil
}
