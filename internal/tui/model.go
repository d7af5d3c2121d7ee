package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"odyssey/internal/engine"
	"odyssey/internal/storage"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	hero  *storage.Hero
	boss  *storage.Boss
	tasks []storage.Task

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	hero  *storage.Hero
	boss  *storage.Boss
	tasks []storage.Task
	err   error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		h, err := m.svc.Hero(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		b, err := m.svc.EnsureWeeklyBoss(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.Tasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{hero: h, boss: b, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.hero = msg.hero
		m.boss = msg.boss
		m.tasks = msg.tasks
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		line := fmt.Sprintf("Completed %d: +%d XP, +%d coins", msg.id, msg.res.XPAwarded, msg.res.CoinsAwarded)
		if msg.res.XP.LevelUp {
			line += fmt.Sprintf(" (level %d → %d)", msg.res.XP.LevelBefore, msg.res.XP.LevelAfter)
		}
		if msg.res.Boss != nil && msg.res.Boss.Defeated {
			line += " — boss defeated!"
		}
		m.lastLog = line
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %d…", t.ID)
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.hero == nil {
		return "Odyssey — loading…"
	}
	lvl := engine.HeroLevel(m.hero)
	prog := engine.ProgressToNextLevel(m.hero.XP, lvl)
	bar := progressBar(prog.CurrentLevelXP, prog.CurrentLevelXP+prog.XPToNext, 30)
	return fmt.Sprintf("Odyssey | Level %d %s | XP %d %s", lvl, engine.TierForLevel(lvl), m.hero.XP, bar)
}

func (m boardModel) renderSidebar() string {
	if m.hero == nil {
		return "Hero\n\nLoading…"
	}
	lines := []string{"Hero"}
	lines = append(lines, fmt.Sprintf("- HP %d/%d %s", m.hero.Health, m.hero.MaxHealth,
		progressBar(m.hero.Health, m.hero.MaxHealth, 14)))
	lines = append(lines, fmt.Sprintf("- Coins %d  Gems %d", m.hero.Coins, m.hero.Gems))
	lines = append(lines, fmt.Sprintf("- Streak %d (best %d)", m.hero.Streak, m.hero.LongestStreak))
	lines = append(lines, fmt.Sprintf("- Skill points %d", m.hero.SkillPoints))
	if m.boss != nil {
		lines = append(lines, "")
		lines = append(lines, "Weekly Boss")
		lines = append(lines, "- "+m.boss.Name)
		if m.boss.LastDefeated != nil {
			lines = append(lines, "- defeated!")
		} else {
			lines = append(lines, fmt.Sprintf("- HP %d/%d %s", m.boss.CurrentHP, m.boss.MaxHP,
				progressBar(m.boss.CurrentHP, m.boss.MaxHP, 14)))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Quest Log")
	if len(m.tasks) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		kind := ""
		if engine.TaskType(t.Type).IsRecurring() {
			kind = fmt.Sprintf("[%s] ", t.Type)
		}
		extra := fmt.Sprintf("(xp=%d", t.XP)
		if t.Streak > 0 {
			extra += fmt.Sprintf(", streak=%d", t.Streak)
		}
		extra += ")"
		out = append(out, fmt.Sprintf("%s%s %s%d %s %s", cursor, mark, kind, t.ID, t.Title, extra))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
