package engine

import (
	"context"
	"testing"
	"time"

	"odyssey/internal/storage"
)

func setBoss(t *testing.T, svc *Service, b *storage.Boss) {
	t.Helper()
	b.Key = storage.MainBossKey
	if err := storage.NewBossRepo(svc.db).Upsert(context.Background(), b); err != nil {
		t.Fatalf("upsert boss: %v", err)
	}
}

func testBoss(week string, hp int) *storage.Boss {
	return &storage.Boss{
		Code:      "test-boss",
		Name:      "Test Boss",
		Week:      week,
		CurrentHP: hp,
		MaxHP:     hp,
		Resistances: map[string]float64{
			string(CategoryHealth): 0.5,
			string(CategorySocial): 2.0,
		},
		RewardXP:    300,
		RewardCoins: 150,
		RewardGems:  2,
	}
}

func TestEnsureWeeklyBossSpawnsAndPersists(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	b, err := svc.EnsureWeeklyBoss(ctx)
	if err != nil {
		t.Fatalf("EnsureWeeklyBoss: %v", err)
	}
	if b.Week != ISOWeekID(clock.T) {
		t.Fatalf("boss week=%q, want %q", b.Week, ISOWeekID(clock.T))
	}
	if b.CurrentHP != b.MaxHP {
		t.Fatalf("fresh boss hp=%d/%d", b.CurrentHP, b.MaxHP)
	}

	// Same week returns the same boss, damage intact.
	b.CurrentHP -= 10
	setBoss(t, svc, b)
	again, err := svc.EnsureWeeklyBoss(ctx)
	if err != nil {
		t.Fatalf("EnsureWeeklyBoss again: %v", err)
	}
	if again.CurrentHP != b.CurrentHP {
		t.Fatalf("boss hp reset within the week: %d", again.CurrentHP)
	}

	// New ISO week respawns at full HP.
	clock.Advance(7 * 24 * time.Hour)
	next, err := svc.EnsureWeeklyBoss(ctx)
	if err != nil {
		t.Fatalf("EnsureWeeklyBoss next week: %v", err)
	}
	if next.Week == b.Week {
		t.Fatalf("boss week did not roll over")
	}
	if next.CurrentHP != next.MaxHP {
		t.Fatalf("respawned boss hp=%d/%d", next.CurrentHP, next.MaxHP)
	}
}

func TestDealBossDamageResistanceScaling(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setBoss(t, svc, testBoss(ISOWeekID(clock.T), 10000))

	// Weakness halves the divisor: floor(100 / 0.5) = 200.
	res, err := svc.DealBossDamage(ctx, DifficultyHard, CategoryHealth)
	if err != nil {
		t.Fatalf("weakness strike: %v", err)
	}
	if res.Outcome != OutcomeWeakness || res.Damage != 200 {
		t.Fatalf("weakness strike: %+v, want 200 damage", res)
	}

	// Resistance: floor(100 / 2.0) = 50.
	res, err = svc.DealBossDamage(ctx, DifficultyHard, CategorySocial)
	if err != nil {
		t.Fatalf("resisted strike: %v", err)
	}
	if res.Outcome != OutcomeResisted || res.Damage != 50 {
		t.Fatalf("resisted strike: %+v, want 50 damage", res)
	}

	// Unlisted category hits at face value.
	res, err = svc.DealBossDamage(ctx, DifficultyMedium, CategoryCareer)
	if err != nil {
		t.Fatalf("normal strike: %v", err)
	}
	if res.Outcome != OutcomeNormal || res.Damage != 50 {
		t.Fatalf("normal strike: %+v, want 50 damage", res)
	}

	// N/A difficulty deals nothing.
	res, err = svc.DealBossDamage(ctx, DifficultyNone, CategoryHealth)
	if err != nil {
		t.Fatalf("no-damage strike: %v", err)
	}
	if res.Outcome != OutcomeNoDamage || res.Damage != 0 {
		t.Fatalf("no-damage strike: %+v", res)
	}
}

func TestBossDefeatPaysExactlyOnce(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	notifier := &recordingNotifier{}
	svc.notifier = notifier

	setBoss(t, svc, testBoss(ISOWeekID(clock.T), 40))

	res, err := svc.DealBossDamage(ctx, DifficultyHard, CategoryCareer)
	if err != nil {
		t.Fatalf("killing strike: %v", err)
	}
	if !res.Defeated || res.RemainingHP != 0 {
		t.Fatalf("killing strike: %+v, want defeat at 0 HP", res)
	}
	if res.RewardXP != 300 || res.RewardCoins != 150 || res.RewardGems != 2 {
		t.Fatalf("reward %d/%d/%d, want 300/150/2", res.RewardXP, res.RewardCoins, res.RewardGems)
	}
	if !notifier.has(NotifyBossDefeated) {
		t.Fatalf("missing boss-defeated notification")
	}

	h := getHero(t, svc)
	if h.XP != 300 || h.Coins != 150 || h.Gems != 2 {
		t.Fatalf("hero after defeat: xp=%d coins=%d gems=%d", h.XP, h.Coins, h.Gems)
	}

	// Further strikes in the same week are no-ops.
	res, err = svc.DealBossDamage(ctx, DifficultyHard, CategoryCareer)
	if err != nil {
		t.Fatalf("post-defeat strike: %v", err)
	}
	if res.Outcome != OutcomeAlreadyDefeated {
		t.Fatalf("post-defeat outcome=%s", res.Outcome)
	}
	h = getHero(t, svc)
	if h.XP != 300 {
		t.Fatalf("double payout: xp=%d", h.XP)
	}
}
