package engine

import (
	"context"
	"testing"
	"time"
)

func TestJournalEntryReward(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.AddJournalEntry(ctx, "Slept well, trained hard.", nil)
	if err != nil {
		t.Fatalf("AddJournalEntry: %v", err)
	}
	if res.Coins != JournalEntryCoins {
		t.Fatalf("coins=%d, want %d", res.Coins, JournalEntryCoins)
	}

	h := getHero(t, svc)
	if h.XP != JournalEntryXP || h.Coins != JournalEntryCoins {
		t.Fatalf("hero after entry: xp=%d coins=%d", h.XP, h.Coins)
	}
}

func TestJournalDeletionPenaltyEscalates(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	addEntry := func() int64 {
		res, err := svc.AddJournalEntry(ctx, "entry", nil)
		if err != nil {
			t.Fatalf("AddJournalEntry: %v", err)
		}
		return res.Entry.ID
	}
	first, second := addEntry(), addEntry()
	setHeroXP(t, svc, 1000)
	setHeroCoins(t, svc, 1000)

	// First deletion of a fresh entry costs the plain entry reward.
	pen, err := svc.DeleteJournalEntry(ctx, first)
	if err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if pen.XPLost != 25 || pen.CoinsLost != 5 {
		t.Fatalf("first penalty %d/%d, want 25/5", pen.XPLost, pen.CoinsLost)
	}

	// A second penalized deletion inside the hour doubles it.
	clock.Advance(10 * time.Minute)
	pen, err = svc.DeleteJournalEntry(ctx, second)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if pen.XPLost != 50 || pen.CoinsLost != 10 {
		t.Fatalf("second penalty %d/%d, want 50/10", pen.XPLost, pen.CoinsLost)
	}

	// After the window closes the escalation resets.
	clock.Advance(2 * time.Hour)
	pen, err = svc.DeleteJournalEntry(ctx, addEntry())
	if err != nil {
		t.Fatalf("third delete: %v", err)
	}
	if pen.XPLost != 25 {
		t.Fatalf("third penalty %d, want 25", pen.XPLost)
	}
}

func TestJournalDeletionOfOldEntryIsFree(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.AddJournalEntry(ctx, "kept for a while", nil)
	if err != nil {
		t.Fatalf("AddJournalEntry: %v", err)
	}
	setHeroXP(t, svc, 1000)
	setHeroCoins(t, svc, 1000)

	clock.Advance(48 * time.Hour)
	pen, err := svc.DeleteJournalEntry(ctx, res.Entry.ID)
	if err != nil {
		t.Fatalf("DeleteJournalEntry: %v", err)
	}
	if pen.XPLost != 0 || pen.CoinsLost != 0 {
		t.Fatalf("penalty %d/%d for an old entry, want 0/0", pen.XPLost, pen.CoinsLost)
	}

	h := getHero(t, svc)
	if h.XP != 1000 || h.Coins != 1000 {
		t.Fatalf("hero mutated by free deletion: xp=%d coins=%d", h.XP, h.Coins)
	}
	if h.LastJournalDeletion != nil {
		t.Fatalf("free deletion advanced the penalty window")
	}
}

func TestWeeklyReviewOncePerWeek(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.AddWeeklyReview(ctx, "Solid week.")
	if err != nil {
		t.Fatalf("AddWeeklyReview: %v", err)
	}
	if res.XPAfter-res.XPBefore != WeeklyReviewXP {
		t.Fatalf("review xp delta=%d, want %d", res.XPAfter-res.XPBefore, WeeklyReviewXP)
	}

	if _, err := svc.AddWeeklyReview(ctx, "Again?"); err == nil {
		t.Fatalf("expected error for second review in the same week")
	}

	clock.Advance(7 * 24 * time.Hour)
	if _, err := svc.AddWeeklyReview(ctx, "New week."); err != nil {
		t.Fatalf("review in new week: %v", err)
	}
}
