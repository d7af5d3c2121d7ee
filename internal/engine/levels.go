package engine

import "math"

const (
	// BaseXP, GrowthRate and Exponent define the level curve:
	// XP_req(level) = floor(BaseXP * (1 + (level-1)*GrowthRate)^Exponent)
	BaseXP     = 100.0
	GrowthRate = 0.08
	Exponent   = 1.5

	// MaxLevel caps progression. XP beyond the level-99 threshold keeps
	// accumulating but no longer raises the level.
	MaxLevel = 99

	// SkillPointsPerLevel is granted for every level gained.
	SkillPointsPerLevel = 3
)

// XPRequiredForLevel returns the XP needed to go from level-1 to level.
// Level 1 is the starting level and requires 0 XP.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return int(math.Floor(BaseXP * math.Pow(1+float64(level-1)*GrowthRate, Exponent)))
}

// CumulativeXPForLevel returns the total XP needed to reach the given
// level from a fresh hero.
func CumulativeXPForLevel(level int) int {
	if level > MaxLevel {
		level = MaxLevel
	}
	total := 0
	for i := 2; i <= level; i++ {
		total += XPRequiredForLevel(i)
	}
	return total
}

// LevelForTotalXP returns the highest level L in [1, MaxLevel] such that
// CumulativeXPForLevel(L) <= totalXP.
func LevelForTotalXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}
	level := 1
	total := 0
	for l := 2; l <= MaxLevel; l++ {
		total += XPRequiredForLevel(l)
		if total > totalXP {
			break
		}
		level = l
	}
	return level
}

// DifficultyMultiplier scales coin and habit rewards by hero level.
// Matches the decade-band table from the reward design: the 1.9 step is
// intentionally absent, levels 90+ jump straight to 2.0.
func DifficultyMultiplier(level int) float64 {
	switch {
	case level < 10:
		return 1.0
	case level < 20:
		return 1.1
	case level < 30:
		return 1.2
	case level < 40:
		return 1.3
	case level < 50:
		return 1.4
	case level < 60:
		return 1.5
	case level < 70:
		return 1.6
	case level < 80:
		return 1.7
	case level < 90:
		return 1.8
	default:
		return 2.0
	}
}

// Tier names, one per 10-level band.
var tierNames = []string{
	"Novice", "Apprentice", "Adept", "Expert", "Master",
	"Grandmaster", "Champion", "Legend", "Mythic", "Transcendent",
}

// TierForLevel returns the cosmetic tier name for a level.
func TierForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	idx := level / 10
	if idx >= len(tierNames) {
		idx = len(tierNames) - 1
	}
	return tierNames[idx]
}

// Progress describes how far into the current level a hero is.
type Progress struct {
	XPToNext        int
	PercentComplete float64
	CurrentLevelXP  int
}

// ProgressToNextLevel computes level-local progress for display. At
// MaxLevel the hero is reported as 100% complete with nothing to go.
func ProgressToNextLevel(totalXP int, level int) Progress {
	if level >= MaxLevel {
		return Progress{XPToNext: 0, PercentComplete: 100, CurrentLevelXP: totalXP - CumulativeXPForLevel(MaxLevel)}
	}
	required := XPRequiredForLevel(level + 1)
	currentLevelXP := totalXP - CumulativeXPForLevel(level)
	percent := float64(currentLevelXP) / float64(required) * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	toNext := required - currentLevelXP
	if toNext < 0 {
		toNext = 0
	}
	return Progress{XPToNext: toNext, PercentComplete: percent, CurrentLevelXP: currentLevelXP}
}
