package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestHeroRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewHeroRepo(db)

	h, err := repo.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateMain: %v", err)
	}
	if h.Health != DefaultMaxHealth || h.MaxHealth != DefaultMaxHealth {
		t.Fatalf("fresh hero health %d/%d", h.Health, h.MaxHealth)
	}

	now := time.Now().UTC().Truncate(time.Second)
	h.XP = 250
	h.Coins = 40
	h.Debuffs = []Debuff{{Kind: "poison", Duration: 2}}
	h.Inventory = []string{"Sleep in tomorrow"}
	h.JournalDeletions = 1
	h.LastJournalDeletion = &now
	if err := repo.Update(ctx, h); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(ctx, MainHeroKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.XP != 250 || got.Coins != 40 {
		t.Fatalf("round trip xp=%d coins=%d", got.XP, got.Coins)
	}
	if len(got.Debuffs) != 1 || got.Debuffs[0].Kind != "poison" || got.Debuffs[0].Duration != 2 {
		t.Fatalf("debuffs round trip: %+v", got.Debuffs)
	}
	if len(got.Inventory) != 1 {
		t.Fatalf("inventory round trip: %+v", got.Inventory)
	}
	if got.LastJournalDeletion == nil {
		t.Fatalf("last journal deletion not persisted")
	}
}

func TestTaskCompletionHistory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tasks := NewTaskRepo(db)
	completions := NewCompletionRepo(db)

	id, err := tasks.Insert(ctx, TaskInsert{Title: "Run", Category: "Health", Difficulty: "Easy", Type: "Daily", XP: 20, Coins: 5})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	now := time.Now().UTC()
	if _, err := completions.Insert(ctx, id, now.Add(-time.Hour), 15, 5, 0); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	if _, err := completions.Insert(ctx, id, now, 17, 5, 1); err != nil {
		t.Fatalf("second completion: %v", err)
	}

	last, err := completions.Last(ctx, id)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last == nil || last.XPAwarded != 17 || last.StreakBefore != 1 {
		t.Fatalf("Last returned %+v", last)
	}

	if err := tasks.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	last, err = completions.Last(ctx, id)
	if err != nil {
		t.Fatalf("Last after delete: %v", err)
	}
	if last != nil {
		t.Fatalf("completions survived task delete: %+v", last)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dungeons (title, difficulty, xp) VALUES ('x', 1, 100)`); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("WithTx err=%v, want sentinel", err)
	}

	row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dungeons`)
	var n int
	if err := row.Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rolled-back insert visible: %d rows", n)
	}
}

func TestBossUpsertReplacesSingleton(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBossRepo(db)

	b, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get empty: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil boss, got %+v", b)
	}

	first := &Boss{Key: MainBossKey, Code: "a", Name: "A", Week: "2026-W10", CurrentHP: 100, MaxHP: 100,
		Resistances: map[string]float64{"Health": 0.5}, RewardXP: 1, RewardCoins: 1, RewardGems: 1}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	week := "2026-W11"
	second := &Boss{Key: MainBossKey, Code: "b", Name: "B", Week: week, CurrentHP: 200, MaxHP: 200,
		RewardXP: 2, RewardCoins: 2, RewardGems: 2, LastDefeated: &week}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Code != "b" || got.Week != week || got.LastDefeated == nil {
		t.Fatalf("upsert did not replace: %+v", got)
	}
}
