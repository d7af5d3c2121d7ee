package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// AddTaskInput carries the user-supplied fields for a new quest.
// Category, difficulty and type fall back to defaults when empty.
type AddTaskInput struct {
	Title      string
	Category   Category
	Difficulty Difficulty
	Type       TaskType
}

// AddTask creates a quest with its XP and coin rewards frozen at
// creation-time level, so later level-ups never retroactively change a
// pending quest's value.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if !in.Category.IsValid() {
		in.Category = CategoryHobbies
	}
	if !in.Difficulty.IsValid() {
		in.Difficulty = DifficultyEasy
	}
	if !in.Type.IsValid() {
		in.Type = TaskOneTime
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	level := HeroLevel(h)

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Title:      title,
		Category:   string(in.Category),
		Difficulty: string(in.Difficulty),
		Type:       string(in.Type),
		XP:         TaskXP(in.Difficulty),
		Coins:      TaskCoins(in.Difficulty, level),
	})
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}

	s.log.Info("quest added", zap.Int64("id", id), zap.String("title", title),
		zap.String("type", string(in.Type)))
	s.notifier.Notify(NotifyQuestAdded, "Quest Added", title)
	return t, nil
}

// CompleteResult reports everything a completion awarded.
type CompleteResult struct {
	Task         *storage.Task
	XPAwarded    int
	CoinsAwarded int
	Streak       int
	XP           XPResult
	Boss         *StrikeResult
}

// CompleteTask marks a quest done and pays out. Completing an
// already-completed quest is a no-op error rather than a double award.
// Recurring quests pay streak-scaled habit XP; one-time quests pay the
// value frozen at creation.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	if t.Completed {
		return nil, fmt.Errorf("quest %d is already completed", id)
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	level := HeroLevel(h)
	now := s.clock.Now()

	taskType := TaskType(t.Type)
	streakBefore := t.Streak
	newStreak := t.Streak
	xp := t.XP
	coins := t.Coins

	if taskType.IsRecurring() {
		switch {
		case t.LastCompleted == nil:
			newStreak = 1
		case DaysBetween(*t.LastCompleted, now) == 1:
			newStreak = streakBefore + 1
		case DaysBetween(*t.LastCompleted, now) == 0:
			newStreak = streakBefore
		default:
			newStreak = 1
		}
		xp = HabitXP(newStreak, level)
		coins = TaskCoins(Difficulty(t.Difficulty), level)
	}

	if err := s.tasks.MarkCompleted(ctx, id, newStreak, now); err != nil {
		return nil, err
	}
	if _, err := s.completions.Insert(ctx, id, now, xp, coins, streakBefore); err != nil {
		return nil, err
	}

	xpRes := s.applyXP(h, xp)
	h.Coins += coins
	h.TasksCompleted++
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	strike, err := s.DealBossDamage(ctx, Difficulty(t.Difficulty), Category(t.Category))
	if err != nil {
		// The completion already paid out; a combat failure should not
		// undo it.
		s.log.Warn("boss strike failed", zap.Error(err))
		strike = nil
	}

	s.log.Info("quest completed", zap.Int64("id", id), zap.String("title", t.Title),
		zap.Int("xp", xp), zap.Int("coins", coins), zap.Int("streak", newStreak))

	if _, err := s.EvaluateAchievements(ctx); err != nil {
		s.log.Warn("achievement evaluation failed", zap.Error(err))
	}

	t, err = s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CompleteResult{
		Task:         t,
		XPAwarded:    xp,
		CoinsAwarded: coins,
		Streak:       newStreak,
		XP:           xpRes,
		Boss:         strike,
	}, nil
}

// RestoreTask undoes the most recent completion of a quest: the task
// returns to incomplete with its pre-completion streak and the recorded
// award is clawed back. XP and coins floor at zero.
func (s *Service) RestoreTask(ctx context.Context, id int64) (*storage.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	if !t.Completed {
		return nil, fmt.Errorf("quest %d is not completed", id)
	}

	last, err := s.completions.Last(ctx, id)
	if err != nil {
		return nil, err
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}

	streak := t.Streak
	if last != nil {
		s.applyXP(h, -last.XPAwarded)
		h.Coins -= last.CoinsAwarded
		if h.Coins < 0 {
			h.Coins = 0
		}
		streak = last.StreakBefore
		if err := s.completions.Delete(ctx, last.ID); err != nil {
			return nil, err
		}
	}
	if h.TasksCompleted > 0 {
		h.TasksCompleted--
	}
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	if err := s.tasks.Restore(ctx, id, streak); err != nil {
		return nil, err
	}
	s.log.Info("quest restored", zap.Int64("id", id), zap.String("title", t.Title))
	return s.tasks.Get(ctx, id)
}

// DeleteTask removes a quest and its completion history. Awards already
// paid stay paid.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return &NotFoundError{Kind: "task", ID: id}
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("quest deleted", zap.Int64("id", id), zap.String("title", t.Title))
	return nil
}

// Tasks lists every quest.
func (s *Service) Tasks(ctx context.Context) ([]storage.Task, error) {
	return s.tasks.ListAll(ctx)
}
