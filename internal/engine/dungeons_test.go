package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func addTestDungeon(t *testing.T, svc *Service) int64 {
	t.Helper()
	d, err := svc.AddDungeon(context.Background(), AddDungeonInput{
		Title:      "Spring Cleaning",
		Difficulty: 3,
		Challenges: []string{"Kitchen", "Bathroom", "Bedroom", "Hallway"},
	})
	require.NoError(t, err)
	return d.ID
}

func completeAllChallenges(t *testing.T, svc *Service, dungeonID int64) {
	t.Helper()
	ctx := context.Background()
	challenges, err := svc.DungeonChallenges(ctx, dungeonID)
	require.NoError(t, err)
	for _, c := range challenges {
		_, err := svc.ToggleChallenge(ctx, dungeonID, c.ID)
		require.NoError(t, err)
	}
}

func TestAddDungeonDefaultsAndClamps(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	d, err := svc.AddDungeon(ctx, AddDungeonInput{Title: "Too hard", Difficulty: 9})
	require.NoError(t, err)
	require.Equal(t, 5, d.Difficulty)
	require.Equal(t, 500, d.XP)

	d, err = svc.AddDungeon(ctx, AddDungeonInput{Title: "Custom", Difficulty: 2, XP: 777})
	require.NoError(t, err)
	require.Equal(t, 777, d.XP)
}

func TestDungeonLifecycleGuards(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	id := addTestDungeon(t, svc)

	_, err := svc.CompleteDungeon(ctx, id)
	require.ErrorIs(t, err, ErrDungeonNotStarted)

	_, err = svc.StartDungeon(ctx, id)
	require.NoError(t, err)

	_, err = svc.StartDungeon(ctx, id)
	require.ErrorIs(t, err, ErrDungeonAlreadyStarted)

	_, err = svc.CompleteDungeon(ctx, id)
	require.ErrorIs(t, err, ErrChallengesRemaining)
}

func TestCompleteDungeonSpeedBonus(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	id := addTestDungeon(t, svc)

	_, err := svc.StartDungeon(ctx, id)
	require.NoError(t, err)
	completeAllChallenges(t, svc, id)

	// Four challenges target two hours; finishing in one hour earns a
	// 50% bonus on 300 base XP.
	clock.Advance(time.Hour)
	res, err := svc.CompleteDungeon(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 300, res.BaseXP)
	require.Equal(t, 150, res.BonusXP)
	require.Equal(t, 450, res.TotalXP)

	h := getHero(t, svc)
	require.Equal(t, 450, h.XP)

	_, err = svc.CompleteDungeon(ctx, id)
	require.ErrorIs(t, err, ErrDungeonAlreadyComplete)
}

func TestCompleteDungeonSlowRunNoBonus(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	id := addTestDungeon(t, svc)

	_, err := svc.StartDungeon(ctx, id)
	require.NoError(t, err)
	completeAllChallenges(t, svc, id)

	clock.Advance(6 * time.Hour)
	res, err := svc.CompleteDungeon(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 0, res.BonusXP)
	require.Equal(t, res.BaseXP, res.TotalXP)
}

func TestToggleChallengeUnknownID(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	id := addTestDungeon(t, svc)

	_, err := svc.ToggleChallenge(context.Background(), id, 9999)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
