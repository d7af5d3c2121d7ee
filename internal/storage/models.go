package storage

import "time"

// Hero is the singleton progression aggregate. Level is never stored;
// the engine derives it from XP on every read.
type Hero struct {
	Key            string
	XP             int
	SkillPoints    int
	Coins          int
	Gems           int
	Health         int
	MaxHealth      int
	Streak         int
	LongestStreak  int
	TasksCompleted int
	LastLogin      time.Time
	Debuffs        []Debuff
	Inventory      []string

	// Rapid journal-deletion tracking (anti-farming penalty window).
	JournalDeletions    int
	LastJournalDeletion *time.Time
}

// Debuff is the persisted form of an active debuff (JSON column on the
// hero row).
type Debuff struct {
	Kind     string `json:"kind"`
	Duration int    `json:"duration"`
}

type Task struct {
	ID            int64
	Title         string
	Category      string
	Difficulty    string
	Type          string
	Completed     bool
	XP            int
	Coins         int
	Streak        int
	LastCompleted *time.Time
	CreatedAt     time.Time
}

// TaskCompletion records one completion award so it can be audited and
// undone.
type TaskCompletion struct {
	ID           int64
	TaskID       int64
	CompletedAt  time.Time
	XPAwarded    int
	CoinsAwarded int
	StreakBefore int
}

// Boss is the weekly HP-pool singleton. Resistances map task categories
// to damage divisors (<1 weakness, >1 resistance).
type Boss struct {
	Key          string
	Code         string
	Name         string
	Week         string
	CurrentHP    int
	MaxHP        int
	Resistances  map[string]float64
	RewardXP     int
	RewardCoins  int
	RewardGems   int
	LastDefeated *string
}

type Dungeon struct {
	ID             int64
	Title          string
	Difficulty     int
	XP             int
	Completed      bool
	StartTime      *time.Time
	CompletionTime *time.Time
	TimeTaken      *int64
	CreatedAt      time.Time
}

type DungeonChallenge struct {
	ID        int64
	DungeonID int64
	Position  int
	Title     string
	Completed bool
}

type JournalEntry struct {
	ID        int64
	Content   string
	Mood      *string
	CreatedAt time.Time
}

type WeeklyReview struct {
	ID        int64
	ISOWeek   string
	Content   string
	CreatedAt time.Time
}

// Redemption is one use of a shop reward, kept for rate limiting.
type Redemption struct {
	ID         int64
	RewardID   string
	RedeemedAt time.Time
}

// CustomReward is a user-defined shop entry; built-in rewards live in
// code and are never persisted.
type CustomReward struct {
	ID           int64
	Title        string
	CoinCost     int
	GemCost      int
	RedeemLimit  int
	RedeemPeriod string
}

// AchievementUnlock marks a built-in achievement as earned.
type AchievementUnlock struct {
	ID         string
	UnlockedAt time.Time
}

// QuestTemplateState tracks unlock/accept status per built-in template.
type QuestTemplateState struct {
	Code   string
	Status string
}
