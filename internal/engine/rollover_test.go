package engine

import (
	"context"
	"testing"
	"time"

	"odyssey/internal/storage"
)

func TestEnsureDaySameDayIsNoOp(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	syncLastLogin(t, svc, clock)

	res, err := svc.EnsureDay(context.Background())
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if res != nil {
		t.Fatalf("rollover ran on the same day: %+v", res)
	}
}

func TestRolloverMissedDailiesDamageAndStreakReset(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.AddTask(ctx, AddTaskInput{Title: "Missed one", Type: TaskDaily}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.AddTask(ctx, AddTaskInput{Title: "Missed two", Type: TaskDaily}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	h := getHero(t, svc)
	h.Streak = 4
	h.LastLogin = clock.T
	if err := svc.HeroRepo().Update(ctx, h); err != nil {
		t.Fatalf("update hero: %v", err)
	}

	clock.Advance(24 * time.Hour)
	res, err := svc.EnsureDay(ctx)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if res.MissedDailies != 2 || res.HealthPenalty != 20 {
		t.Fatalf("missed=%d penalty=%d, want 2/20", res.MissedDailies, res.HealthPenalty)
	}
	if !res.StreakBroken || res.Streak != 0 {
		t.Fatalf("streak=%d broken=%v, want 0/true", res.Streak, res.StreakBroken)
	}

	h = getHero(t, svc)
	if h.Health != storage.DefaultMaxHealth-20 {
		t.Fatalf("health=%d, want %d", h.Health, storage.DefaultMaxHealth-20)
	}

	// Running again on the new day does nothing.
	res, err = svc.EnsureDay(ctx)
	if err != nil {
		t.Fatalf("EnsureDay again: %v", err)
	}
	if res != nil {
		t.Fatalf("rollover ran twice in one day")
	}
}

func TestRolloverAllDailiesDoneExtendsStreakAndResets(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task, err := svc.AddTask(ctx, AddTaskInput{Title: "Done daily", Type: TaskDaily, Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	syncLastLogin(t, svc, clock)

	clock.Advance(24 * time.Hour)
	res, err := svc.EnsureDay(ctx)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if res.Streak != 1 || res.MissedDailies != 0 {
		t.Fatalf("streak=%d missed=%d, want 1/0", res.Streak, res.MissedDailies)
	}

	// Completed daily flips back to incomplete, streak intact.
	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Completed {
		t.Fatalf("daily still completed after rollover")
	}
	if got.Streak != 1 {
		t.Fatalf("task streak=%d, want 1", got.Streak)
	}
}

func TestRolloverDebuffsTickAndExpire(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	h := getHero(t, svc)
	h.Debuffs = []storage.Debuff{
		{Kind: string(DebuffPoison), Duration: 2},
		{Kind: string(DebuffCurse), Duration: 1},
	}
	h.LastLogin = clock.T
	if err := svc.HeroRepo().Update(ctx, h); err != nil {
		t.Fatalf("update hero: %v", err)
	}

	clock.Advance(24 * time.Hour)
	res, err := svc.EnsureDay(ctx)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if res.DebuffDamage != 15 {
		t.Fatalf("debuff damage=%d, want 15", res.DebuffDamage)
	}

	h = getHero(t, svc)
	if len(h.Debuffs) != 1 || h.Debuffs[0].Kind != string(DebuffPoison) || h.Debuffs[0].Duration != 1 {
		t.Fatalf("debuffs after tick: %+v", h.Debuffs)
	}
}

func TestRolloverExhaustion(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	notifier := &recordingNotifier{}
	svc.notifier = notifier

	if _, err := svc.AddTask(ctx, AddTaskInput{Title: "Impossible", Type: TaskDaily}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	h := getHero(t, svc)
	h.Health = 5
	h.XP = 400
	h.Coins = 30
	h.LastLogin = clock.T
	if err := svc.HeroRepo().Update(ctx, h); err != nil {
		t.Fatalf("update hero: %v", err)
	}

	clock.Advance(24 * time.Hour)
	res, err := svc.EnsureDay(ctx)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if !res.Exhausted {
		t.Fatalf("expected exhaustion, got %+v", res)
	}
	if res.NewHealth != storage.DefaultMaxHealth {
		t.Fatalf("health after exhaustion=%d, want full", res.NewHealth)
	}
	if !notifier.has(NotifyExhaustion) {
		t.Fatalf("missing exhaustion notification")
	}

	h = getHero(t, svc)
	if h.XP != 300 {
		t.Fatalf("xp after exhaustion=%d, want 300", h.XP)
	}
	// Coin penalty floors at zero.
	if h.Coins != 0 {
		t.Fatalf("coins after exhaustion=%d, want 0", h.Coins)
	}
}
