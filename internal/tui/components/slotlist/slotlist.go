package slotlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/feeder/internal/session"
)

// EditSlotMsg asks the parent to open the editor for a slot
type EditSlotMsg struct {
	Slot session.Slot
}

type Item struct {
	Slot session.Slot
	Next bool
}

func (i Item) Title() string {
	if i.Slot.Editing {
		return "✎ " + i.Slot.Label
	}
	return i.Slot.Label
}

func (i Item) Description() string {
	desc := i.Slot.Time
	if i.Next {
		desc += " | next"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Slot.Label }

type KeyMap struct {
	Edit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit time"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(snap session.Snapshot, width, height int) Model {
	l := list.New(items(snap), list.NewDefaultDelegate(), width, height)
	l.Title = "Feeding Times"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit}
	}
	return Model{list: l, keys: keys}
}

func items(snap session.Snapshot) []list.Item {
	out := make([]list.Item, len(snap.Schedule))
	for i, s := range snap.Schedule {
		out[i] = Item{Slot: s, Next: s.ID == snap.Next}
	}
	return out
}

// SetSnapshot refreshes the rows, keeping the cursor position
func (m *Model) SetSnapshot(snap session.Snapshot) {
	m.list.SetItems(items(snap))
}

// Selected returns the highlighted slot
func (m Model) Selected() (session.Slot, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Slot, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Edit) {
		if slot, ok := m.Selected(); ok {
			return m, func() tea.Msg { return EditSlotMsg{Slot: slot} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
