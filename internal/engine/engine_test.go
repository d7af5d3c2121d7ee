package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"odyssey/internal/storage"
)

// testEpoch is a Monday.
var testEpoch = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *FixedClock, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	clock := &FixedClock{T: testEpoch}
	svc := NewService(db, WithClock(clock))
	cleanup := func() {
		_ = db.Close()
	}
	return svc, clock, cleanup
}

func getHero(t *testing.T, svc *Service) *storage.Hero {
	t.Helper()
	h, err := svc.Hero(context.Background())
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	return h
}

func setHeroXP(t *testing.T, svc *Service, totalXP int) {
	t.Helper()
	h := getHero(t, svc)
	h.XP = totalXP
	if err := svc.HeroRepo().Update(context.Background(), h); err != nil {
		t.Fatalf("update hero: %v", err)
	}
}

func setHeroCoins(t *testing.T, svc *Service, coins int) {
	t.Helper()
	h := getHero(t, svc)
	h.Coins = coins
	if err := svc.HeroRepo().Update(context.Background(), h); err != nil {
		t.Fatalf("update hero: %v", err)
	}
}

// syncLastLogin pins the hero's last login to the test clock so a
// rollover only fires when a test advances the clock.
func syncLastLogin(t *testing.T, svc *Service, clock *FixedClock) {
	t.Helper()
	h := getHero(t, svc)
	h.LastLogin = clock.T
	if err := svc.HeroRepo().Update(context.Background(), h); err != nil {
		t.Fatalf("update hero: %v", err)
	}
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	kinds []NotifyKind
}

func (n *recordingNotifier) Notify(kind NotifyKind, _, _ string) {
	n.kinds = append(n.kinds, kind)
}

func (n *recordingNotifier) has(kind NotifyKind) bool {
	for _, k := range n.kinds {
		if k == kind {
			return true
		}
	}
	return false
}
