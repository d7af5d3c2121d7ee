package engine

import "math"

// Reward constants for non-task actions.
const (
	JournalEntryXP    = 25
	JournalEntryCoins = 5
	WeeklyReviewXP    = 150

	baseTaskCoins   = 5.0
	habitBaseXP     = 15.0
	habitStreakStep = 2
	habitStreakCap  = 50

	pomodoroBaseXP       = 20.0
	pomodoroSessionBonus = 5
)

// TaskXP returns the flat XP reward for a one-time task. Task XP does
// not scale with hero level; levels scale coins and habit XP instead.
func TaskXP(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 20
	case DifficultyMedium:
		return 40
	case DifficultyHard:
		return 60
	default:
		return 0
	}
}

func coinFactor(d Difficulty) float64 {
	switch d {
	case DifficultyEasy:
		return 1.0
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	default:
		return 0
	}
}

// TaskCoins returns the coin reward for a task, scaled by hero level.
func TaskCoins(d Difficulty, heroLevel int) int {
	return int(math.Floor(baseTaskCoins * coinFactor(d) * DifficultyMultiplier(heroLevel)))
}

// HabitXP rewards recurring-task completions. The streak bonus grows by
// 2 XP per consecutive day and caps at 50.
func HabitXP(streakDays int, heroLevel int) int {
	if streakDays < 0 {
		streakDays = 0
	}
	bonus := streakDays * habitStreakStep
	if bonus > habitStreakCap {
		bonus = habitStreakCap
	}
	return int(math.Floor((habitBaseXP + float64(bonus)) * DifficultyMultiplier(heroLevel)))
}

// BossBaseDamage is the raw damage a completed task deals to the weekly
// boss before resistances apply.
func BossBaseDamage(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 25
	case DifficultyMedium:
		return 50
	case DifficultyHard:
		return 100
	default:
		return 0
	}
}

// PomodoroXP rewards a finished focus session. Consecutive sessions in
// one sitting earn a growing bonus.
func PomodoroXP(sessionCount int, heroLevel int) int {
	if sessionCount < 1 {
		sessionCount = 1
	}
	bonus := (sessionCount - 1) * pomodoroSessionBonus
	return int(math.Floor((pomodoroBaseXP + float64(bonus)) * DifficultyMultiplier(heroLevel)))
}
