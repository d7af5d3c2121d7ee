package engine

// NotifyKind tags a notification for the UI layer.
type NotifyKind string

const (
	NotifyLevelUp           NotifyKind = "level-up"
	NotifyDamageTaken       NotifyKind = "damage-taken"
	NotifyExhaustion        NotifyKind = "exhaustion"
	NotifyInsufficientFunds NotifyKind = "insufficient-funds"
	NotifyRewardRedeemed    NotifyKind = "reward-redeemed"
	NotifyBossDefeated      NotifyKind = "boss-defeated"
	NotifyQuestAdded        NotifyKind = "quest-added"
	NotifyAchievement       NotifyKind = "achievement"
	NotifyDungeonCleared    NotifyKind = "dungeon-cleared"
)

// Notifier receives fire-and-forget notifications triggered by state
// transitions. Implementations must not block; the engine never waits on
// or inspects the result of a notification.
type Notifier interface {
	Notify(kind NotifyKind, title, message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(NotifyKind, string, string) {}

// NopNotifier discards all notifications.
func NopNotifier() Notifier { return nopNotifier{} }
