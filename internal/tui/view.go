package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/feeder/internal/tui/components/feedpanel"
	"github.com/julianstephens/feeder/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateFeed:
		content = docStyle.Render(feedpanel.Render(m.session.Snapshot()))
	case StateSchedule:
		content = docStyle.Render(m.slots.View())
	case StateHistory:
		content = docStyle.Render(m.history.View())
	case StateEditTime:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StateEditTime {
		active = StateSchedule
	}

	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	snap := m.session.Snapshot()
	next, at := m.session.NextAt()
	until := time.Until(at).Truncate(time.Minute)

	lines := []string{
		titleStyle.Render("Pet Feeder"),
		fmt.Sprintf("Next feeding: %s at %s (in %s)", next.Label, utils.FormatTimeOfDay(next.Time), formatWait(until)),
		"Current feed: " + feedpanel.Summary(snap),
	}
	if rows := m.session.History(); len(rows) > 0 {
		last := rows[len(rows)-1]
		lines = append(lines, fmt.Sprintf("Last fed: %s %s", last.Date, last.Time))
	} else {
		lines = append(lines, mutedStyle.Render("No feedings recorded yet."))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return dangerStyle.Render("  " + m.status)
	}
	return successStyle.Render("  " + m.status)
}

// formatWait renders d as "2h15m" or "40m"
func formatWait(d time.Duration) string {
	if d < time.Minute {
		return "under a minute"
	}
	h := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh%02dm", h, mins)
}
