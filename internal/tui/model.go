// Package tui is the terminal control panel for a feeding session.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/session"
	"github.com/julianstephens/feeder/internal/tui/components/historytable"
	"github.com/julianstephens/feeder/internal/tui/components/slotlist"
)

type SessionState = constants.SessionState

const (
	StateHome     = constants.StateHome
	StateFeed     = constants.StateFeed
	StateSchedule = constants.StateSchedule
	StateHistory  = constants.StateHistory
	StateEditTime = constants.StateEditTime
)

var tabTitles = []string{"Home", "Feed", "Schedule", "History"}

// TimeFormModel backs the feeding time form
type TimeFormModel struct {
	Slot models.SlotID
	Time string
}

type Model struct {
	session  *session.Session
	state    SessionState
	keys     KeyMap
	help     help.Model
	slots    slotlist.Model
	history  historytable.Model
	form     *huh.Form
	timeForm *TimeFormModel
	status   string
	failed   bool
	quitting bool
	width    int
	height   int
}

func NewModel(s *session.Session) Model {
	snap := s.Snapshot()
	return Model{
		session: s,
		state:   StateHome,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		slots:   slotlist.New(snap, 0, 0),
		history: historytable.New(s.History(), 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateFeed:
		keys = append(keys, m.keys.ToggleMode, m.keys.Feed)
		if m.session.Mode() == models.ModeManual {
			keys = append(keys, m.keys.Less, m.keys.More)
		}
	case StateSchedule:
		keys = append(keys, m.keys.Edit)
	case StateEditTime:
		keys = []key.Binding{m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case StateFeed:
		actions = []key.Binding{m.keys.ToggleMode, m.keys.Small, m.keys.Medium, m.keys.Large, m.keys.Feed}
		if m.session.Mode() == models.ModeManual {
			actions = append(actions, m.keys.Less, m.keys.More, m.keys.LessCoarse, m.keys.MoreCoarse)
		}
	case StateSchedule:
		actions = []key.Binding{m.keys.Edit}
	case StateEditTime:
		actions = []key.Binding{m.keys.Cancel}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
