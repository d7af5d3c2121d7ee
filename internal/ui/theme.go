package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Odyssey theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconHeart   = "❤️"
	IconCoin    = "🪙"
	IconGem     = "💎"
	IconFlame   = "🔥"
	IconSword   = "⚔️"
	IconCastle  = "🏰"
	IconScroll  = "📜"
	IconLoop    = "🔁"
	IconShop    = "🛒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TypeIcon picks a marker for a quest's recurrence.
func TypeIcon(taskType string) string {
	switch taskType {
	case "Daily", "Weekly", "Monthly":
		return IconLoop
	default:
		return IconQuest
	}
}

// DoneText renders a completion state.
func DoneText(completed bool) string {
	if completed {
		return Good.Render("done")
	}
	return Warn.Render("pending")
}

// HealthText colors a health readout by how close to exhaustion it is.
func HealthText(health, maxHealth int) string {
	s := fmt.Sprintf("%d/%d", health, maxHealth)
	switch {
	case health <= maxHealth/4:
		return Bad.Render(s)
	case health <= maxHealth/2:
		return Warn.Render(s)
	default:
		return Good.Render(s)
	}
}
