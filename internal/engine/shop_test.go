package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddCoinsRejectsOverdraw(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	notifier := &recordingNotifier{}
	svc.notifier = notifier

	setHeroCoins(t, svc, 10)
	err := svc.AddCoins(ctx, -20)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.True(t, notifier.has(NotifyInsufficientFunds))

	h := getHero(t, svc)
	require.Equal(t, 10, h.Coins, "failed debit must not mutate the balance")
}

func TestRedeemRewardSpendsAndRecords(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setHeroCoins(t, svc, 120)
	r, err := svc.RedeemReward(ctx, "episode")
	require.NoError(t, err)
	require.Equal(t, 100, r.CoinCost)

	h := getHero(t, svc)
	require.Equal(t, 20, h.Coins)
	require.Contains(t, h.Inventory, r.Title)

	n, err := svc.RedeemedCount(ctx, "episode")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRedeemRewardInsufficientFunds(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	setHeroCoins(t, svc, 10)
	_, err := svc.RedeemReward(context.Background(), "episode")
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestRedeemRewardDailyLimitResets(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setHeroCoins(t, svc, 1000)

	// "episode" allows one redemption per day.
	_, err := svc.RedeemReward(ctx, "episode")
	require.NoError(t, err)
	_, err = svc.RedeemReward(ctx, "episode")
	require.ErrorIs(t, err, ErrRedemptionLimit)

	// The window opens again at midnight.
	clock.Advance(24 * time.Hour)
	_, err = svc.RedeemReward(ctx, "episode")
	require.NoError(t, err)
}

func TestRedeemGemReward(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	h := getHero(t, svc)
	h.Gems = 7
	require.NoError(t, svc.HeroRepo().Update(ctx, h))

	_, err := svc.RedeemReward(ctx, "day-off")
	require.NoError(t, err)

	h = getHero(t, svc)
	require.Equal(t, 2, h.Gems)

	// Weekly limit of one.
	h.Gems = 10
	require.NoError(t, svc.HeroRepo().Update(ctx, h))
	_, err = svc.RedeemReward(ctx, "day-off")
	require.ErrorIs(t, err, ErrRedemptionLimit)
}

func TestCustomRewardRoundTrip(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	r, err := svc.AddCustomReward(ctx, AddCustomRewardInput{
		Title:       "Long bath",
		CoinCost:    80,
		RedeemLimit: 1,
		Period:      PeriodWeek,
	})
	require.NoError(t, err)
	require.True(t, r.Custom)

	setHeroCoins(t, svc, 100)
	_, err = svc.RedeemReward(ctx, r.ID)
	require.NoError(t, err)
	_, err = svc.RedeemReward(ctx, r.ID)
	require.ErrorIs(t, err, ErrRedemptionLimit)

	// Both costs or neither is invalid.
	_, err = svc.AddCustomReward(ctx, AddCustomRewardInput{Title: "Broken", CoinCost: 10, GemCost: 1})
	require.Error(t, err)
	_, err = svc.AddCustomReward(ctx, AddCustomRewardInput{Title: "Free"})
	require.Error(t, err)
}
