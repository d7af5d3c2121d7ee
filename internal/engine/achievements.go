package engine

import (
	"context"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// Stats is the snapshot achievement predicates evaluate against.
type Stats struct {
	Level          int
	TasksCompleted int
	LongestStreak  int
	DungeonsDone   int
	JournalEntries int
}

// AchievementDef is a built-in achievement with a declarative unlock
// predicate.
type AchievementDef struct {
	ID     string
	Title  string
	Unlock func(Stats) bool
}

var achievementDefs = []AchievementDef{
	{ID: "first-steps", Title: "First Steps", Unlock: func(s Stats) bool { return s.TasksCompleted >= 1 }},
	{ID: "getting-serious", Title: "Getting Serious", Unlock: func(s Stats) bool { return s.TasksCompleted >= 10 }},
	{ID: "half-century", Title: "Half Century", Unlock: func(s Stats) bool { return s.TasksCompleted >= 50 }},
	{ID: "centurion", Title: "Centurion", Unlock: func(s Stats) bool { return s.TasksCompleted >= 100 }},
	{ID: "adept", Title: "Adept", Unlock: func(s Stats) bool { return s.Level >= 10 }},
	{ID: "veteran", Title: "Veteran", Unlock: func(s Stats) bool { return s.Level >= 25 }},
	{ID: "master", Title: "Master", Unlock: func(s Stats) bool { return s.Level >= 50 }},
	{ID: "week-warrior", Title: "Week Warrior", Unlock: func(s Stats) bool { return s.LongestStreak >= 7 }},
	{ID: "monk-mode", Title: "Monk Mode", Unlock: func(s Stats) bool { return s.LongestStreak >= 30 }},
	{ID: "unbreakable", Title: "Unbreakable", Unlock: func(s Stats) bool { return s.LongestStreak >= 100 }},
	{ID: "delver", Title: "Delver", Unlock: func(s Stats) bool { return s.DungeonsDone >= 1 }},
	{ID: "dear-diary", Title: "Dear Diary", Unlock: func(s Stats) bool { return s.JournalEntries >= 1 }},
}

func (s *Service) stats(ctx context.Context, h *storage.Hero) (Stats, error) {
	dungeons, err := s.dungeons.CountCompleted(ctx)
	if err != nil {
		return Stats{}, err
	}
	entries, err := s.journal.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Level:          HeroLevel(h),
		TasksCompleted: h.TasksCompleted,
		LongestStreak:  h.LongestStreak,
		DungeonsDone:   dungeons,
		JournalEntries: entries,
	}, nil
}

// EvaluateAchievements checks every locked achievement against the
// current stats and unlocks the ones whose predicate now holds. Returns
// the newly unlocked definitions. Unlocking is idempotent.
func (s *Service) EvaluateAchievements(ctx context.Context) ([]AchievementDef, error) {
	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.stats(ctx, h)
	if err != nil {
		return nil, err
	}

	var unlocked []AchievementDef
	for _, def := range achievementDefs {
		if !def.Unlock(st) {
			continue
		}
		have, err := s.achievements.IsUnlocked(ctx, def.ID)
		if err != nil {
			return nil, err
		}
		if have {
			continue
		}
		if err := s.achievements.Unlock(ctx, def.ID, s.clock.Now()); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, def)
		s.log.Info("achievement unlocked", zap.String("id", def.ID))
		s.notifier.Notify(NotifyAchievement, "Achievement Unlocked!", def.Title)
	}
	return unlocked, nil
}

// AchievementStatus pairs a definition with its unlock state.
type AchievementStatus struct {
	AchievementDef
	Unlocked bool
}

// Achievements lists every achievement with its current state.
func (s *Service) Achievements(ctx context.Context) ([]AchievementStatus, error) {
	rows, err := s.achievements.ListUnlocked(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(rows))
	for _, r := range rows {
		have[r.ID] = true
	}

	out := make([]AchievementStatus, 0, len(achievementDefs))
	for _, def := range achievementDefs {
		out = append(out, AchievementStatus{AchievementDef: def, Unlocked: have[def.ID]})
	}
	return out, nil
}
