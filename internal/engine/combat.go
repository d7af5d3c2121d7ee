package engine

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// bossTemplate seeds the weekly boss. Resistance factors scale the
// base damage for a category: below 1.0 is a weakness, above 1.0 a
// resistance, exactly 0 blocks the category entirely.
type bossTemplate struct {
	Code        string
	Name        string
	MaxHP       int
	Resistances map[string]float64
	RewardXP    int
	RewardCoins int
	RewardGems  int
}

var bossCatalog = []bossTemplate{
	{
		Code:  "procrastination-hydra",
		Name:  "The Procrastination Hydra",
		MaxHP: 500,
		Resistances: map[string]float64{
			string(CategoryCareer):  0.5,
			string(CategoryHobbies): 1.5,
		},
		RewardXP:    300,
		RewardCoins: 150,
		RewardGems:  2,
	},
	{
		Code:  "doomscroll-wraith",
		Name:  "The Doomscroll Wraith",
		MaxHP: 400,
		Resistances: map[string]float64{
			string(CategoryMindfulness): 0.5,
			string(CategorySocial):      1.5,
		},
		RewardXP:    250,
		RewardCoins: 120,
		RewardGems:  2,
	},
	{
		Code:  "couch-golem",
		Name:  "The Couch Golem",
		MaxHP: 600,
		Resistances: map[string]float64{
			string(CategoryHealth):  0.5,
			string(CategoryFinance): 1.5,
		},
		RewardXP:    350,
		RewardCoins: 180,
		RewardGems:  3,
	},
	{
		Code:  "debt-leviathan",
		Name:  "The Debt Leviathan",
		MaxHP: 550,
		Resistances: map[string]float64{
			string(CategoryFinance): 0.5,
			string(CategoryHealth):  1.5,
		},
		RewardXP:    320,
		RewardCoins: 200,
		RewardGems:  2,
	},
	{
		Code:  "ignorance-colossus",
		Name:  "The Ignorance Colossus",
		MaxHP: 650,
		Resistances: map[string]float64{
			string(CategoryLearning): 0.5,
			string(CategorySocial):   1.5,
		},
		RewardXP:    400,
		RewardCoins: 180,
		RewardGems:  3,
	},
}

// Outcome classifies a boss strike.
type Outcome string

const (
	OutcomeNormal          Outcome = "normal"
	OutcomeWeakness        Outcome = "weakness"
	OutcomeResisted        Outcome = "resisted"
	OutcomeNoDamage        Outcome = "no-damage"
	OutcomeAlreadyDefeated Outcome = "already-defeated"
)

// StrikeResult reports the effect of a single hit on the weekly boss.
type StrikeResult struct {
	Outcome     Outcome
	Damage      int
	RemainingHP int
	Defeated    bool
	RewardXP    int
	RewardCoins int
	RewardGems  int
	XP          *XPResult
}

// EnsureWeeklyBoss returns the boss for the current ISO week, spawning
// a new one from the rotating catalog when the stored boss belongs to a
// past week. A defeated boss stays dead until the week changes.
func (s *Service) EnsureWeeklyBoss(ctx context.Context) (*storage.Boss, error) {
	week := ISOWeekID(s.clock.Now())
	b, err := s.bosses.Get(ctx)
	if err != nil {
		return nil, err
	}
	if b != nil && b.Week == week {
		return b, nil
	}

	tpl := bossCatalog[ISOWeekIndex(s.clock.Now())%len(bossCatalog)]
	b = &storage.Boss{
		Key:         storage.MainBossKey,
		Code:        tpl.Code,
		Name:        tpl.Name,
		Week:        week,
		CurrentHP:   tpl.MaxHP,
		MaxHP:       tpl.MaxHP,
		Resistances: tpl.Resistances,
		RewardXP:    tpl.RewardXP,
		RewardCoins: tpl.RewardCoins,
		RewardGems:  tpl.RewardGems,
	}
	if err := s.bosses.Upsert(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("weekly boss spawned", zap.String("boss", b.Name), zap.String("week", week))
	return b, nil
}

// DealBossDamage strikes the weekly boss with the base damage of the
// given difficulty, scaled by the boss's resistance factor for the
// category. Defeat pays the boss reward exactly once.
func (s *Service) DealBossDamage(ctx context.Context, difficulty Difficulty, category Category) (*StrikeResult, error) {
	b, err := s.EnsureWeeklyBoss(ctx)
	if err != nil {
		return nil, err
	}
	if b.LastDefeated != nil {
		return &StrikeResult{Outcome: OutcomeAlreadyDefeated, RemainingHP: 0, Defeated: true}, nil
	}

	base := BossBaseDamage(difficulty)
	factor := 1.0
	if f, ok := b.Resistances[string(category)]; ok {
		factor = f
	}
	dmg := int(math.Floor(float64(base) / nonZero(factor)))
	if factor == 0 || base == 0 {
		dmg = 0
	}

	res := &StrikeResult{Damage: dmg}
	switch {
	case dmg == 0:
		res.Outcome = OutcomeNoDamage
	case factor < 1.0:
		res.Outcome = OutcomeWeakness
	case factor > 1.0:
		res.Outcome = OutcomeResisted
	default:
		res.Outcome = OutcomeNormal
	}

	b.CurrentHP -= dmg
	if b.CurrentHP <= 0 {
		b.CurrentHP = 0
		week := b.Week
		b.LastDefeated = &week
		res.Defeated = true
		res.RewardXP = b.RewardXP
		res.RewardCoins = b.RewardCoins
		res.RewardGems = b.RewardGems
	}
	res.RemainingHP = b.CurrentHP

	if err := s.bosses.Upsert(ctx, b); err != nil {
		return nil, err
	}

	if res.Defeated {
		h, err := s.Hero(ctx)
		if err != nil {
			return nil, err
		}
		xp := s.applyXP(h, b.RewardXP)
		h.Coins += b.RewardCoins
		h.Gems += b.RewardGems
		if err := s.heroes.Update(ctx, h); err != nil {
			return nil, err
		}
		res.XP = &xp
		s.notifier.Notify(NotifyBossDefeated, "Boss Defeated!",
			fmt.Sprintf("%s falls! +%d XP, +%d coins, +%d gems.", b.Name, b.RewardXP, b.RewardCoins, b.RewardGems))
		s.log.Info("boss defeated", zap.String("boss", b.Name),
			zap.Int("reward_xp", b.RewardXP), zap.Int("reward_coins", b.RewardCoins))
	}
	return res, nil
}

func nonZero(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}
