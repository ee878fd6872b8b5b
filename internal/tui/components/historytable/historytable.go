package historytable

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/feeder/internal/history"
)

const (
	dateWidth = 14
	timeWidth = 12
)

type Model struct {
	table table.Model
	empty bool
}

func New(rows []history.Row, height int) Model {
	columns := []table.Column{
		{Title: "Date", Width: dateWidth},
		{Title: "Time", Width: timeWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(toRows(rows)),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t, empty: len(rows) == 0}
}

func toRows(rows []history.Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{r.Date, r.Time}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.empty {
		return "\n  No feedings recorded yet."
	}
	return m.table.View()
}

func (m *Model) SetHeight(height int) {
	m.table.SetHeight(max(height, 3))
}
