package engine

import "strings"

type Category string

const (
	CategoryHealth      Category = "Health"
	CategoryCareer      Category = "Career"
	CategoryLearning    Category = "Learning"
	CategorySocial      Category = "Social"
	CategoryFinance     Category = "Finance"
	CategoryHobbies     Category = "Hobbies"
	CategoryMindfulness Category = "Mindfulness"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryCareer, CategoryLearning, CategorySocial,
		CategoryFinance, CategoryHobbies, CategoryMindfulness:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory Category = CategoryHobbies

// ParseCategory parses user input to a Category.
func ParseCategory(input string) Category {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "health", "fitness":
		return CategoryHealth
	case "career", "work":
		return CategoryCareer
	case "learning", "study":
		return CategoryLearning
	case "social", "friends":
		return CategorySocial
	case "finance", "money":
		return CategoryFinance
	case "hobbies", "hobby", "fun":
		return CategoryHobbies
	case "mindfulness", "mind", "meditation":
		return CategoryMindfulness
	default:
		return DefaultCategory
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyNone   Difficulty = "N/A"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyNone:
		return true
	default:
		return false
	}
}

func ParseDifficulty(input string) Difficulty {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "easy":
		return DifficultyEasy
	case "medium", "med":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	case "n/a", "na", "none":
		return DifficultyNone
	default:
		return DifficultyEasy
	}
}

// TaskType distinguishes one-shot quests from recurring ones. Recurring
// tasks keep a streak and reset to incomplete at daily rollover.
type TaskType string

const (
	TaskOneTime TaskType = "One-time"
	TaskDaily   TaskType = "Daily"
	TaskWeekly  TaskType = "Weekly"
	TaskMonthly TaskType = "Monthly"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskOneTime, TaskDaily, TaskWeekly, TaskMonthly:
		return true
	default:
		return false
	}
}

// IsRecurring reports whether the type carries streak bookkeeping.
func (t TaskType) IsRecurring() bool {
	return t == TaskDaily || t == TaskWeekly || t == TaskMonthly
}

func ParseTaskType(input string) TaskType {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "daily":
		return TaskDaily
	case "weekly":
		return TaskWeekly
	case "monthly":
		return TaskMonthly
	default:
		return TaskOneTime
	}
}
