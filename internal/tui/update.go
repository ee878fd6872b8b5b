package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/feed"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/session"
	"github.com/julianstephens/feeder/internal/tui/components/slotlist"
	"github.com/julianstephens/feeder/internal/utils"
)

const coarseStepGrams = 10

// chrome is the height taken by tabs, status and help
const chrome = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.slots.SetSize(msg.Width-4, msg.Height-chrome)
		m.history.SetHeight(msg.Height - chrome - 2)
	}

	if m.state == StateEditTime {
		return m.updateEditTime(msg)
	}

	switch msg := msg.(type) {
	case slotlist.EditSlotMsg:
		cmd := m.openEditor(msg.Slot)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		}

		switch m.state {
		case StateFeed:
			return m.updateFeed(msg)
		case StateSchedule:
			var cmd tea.Cmd
			m.slots, cmd = m.slots.Update(msg)
			return m, cmd
		case StateHistory:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleMode):
		mode := models.ModeAutomatic
		if m.session.Mode() == models.ModeAutomatic {
			mode = models.ModeManual
		}
		m.apply(session.SetMode{Mode: mode})
	case key.Matches(msg, m.keys.Less):
		m.nudge(-constants.AmountStepGrams)
	case key.Matches(msg, m.keys.More):
		m.nudge(constants.AmountStepGrams)
	case key.Matches(msg, m.keys.LessCoarse):
		m.nudge(-coarseStepGrams)
	case key.Matches(msg, m.keys.MoreCoarse):
		m.nudge(coarseStepGrams)
	case key.Matches(msg, m.keys.Small):
		m.apply(session.SelectPreset{Preset: models.PresetSmall})
	case key.Matches(msg, m.keys.Medium):
		m.apply(session.SelectPreset{Preset: models.PresetMedium})
	case key.Matches(msg, m.keys.Large):
		m.apply(session.SelectPreset{Preset: models.PresetLarge})
	case key.Matches(msg, m.keys.Feed):
		m.apply(session.Feed{})
	}
	return m, nil
}

// nudge moves the manual slider by delta, stopping at the ends of the range
func (m *Model) nudge(delta int) {
	m.apply(session.SetAmount{Grams: feed.ClampAmount(m.session.AmountGrams() + delta)})
}

func (m *Model) openEditor(slot session.Slot) tea.Cmd {
	res, ok := m.apply(session.OpenEditor{Slot: slot.ID})
	if !ok {
		return nil
	}
	m.timeForm = &TimeFormModel{Slot: slot.ID, Time: res.Initial.String()}
	m.form = NewTimeForm(slot.Label, m.timeForm)
	m.state = StateEditTime
	return m.form.Init()
}

func (m Model) updateEditTime(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Cancel) {
		m.cancelEdit()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if !m.commitEdit() {
			// Stay in the form so the user can correct the time or press esc
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.cancelEdit()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) commitEdit() bool {
	t, err := utils.ParseAnyTime(m.timeForm.Time)
	if err != nil {
		m.setError(err)
		return false
	}
	res, ok := m.apply(session.Commit{Time: t})
	if !ok {
		return false
	}
	m.status = fmt.Sprintf("%s set to %s", res.Slot.Label(), utils.FormatTimeOfDay(t))
	m.closeForm()
	return true
}

func (m *Model) cancelEdit() {
	m.apply(session.Cancel{})
	m.status = "Edit cancelled"
	m.closeForm()
}

func (m *Model) closeForm() {
	m.form = nil
	m.timeForm = nil
	m.state = StateSchedule
}

// apply runs a command on the session and records the outcome in the status line
func (m *Model) apply(cmd session.Command) (session.Result, bool) {
	res, err := m.session.Apply(context.Background(), cmd)
	if err != nil {
		m.setError(err)
		return res, false
	}
	m.failed = false
	m.status = res.Message
	m.slots.SetSnapshot(m.session.Snapshot())
	return res, true
}

func (m *Model) setError(err error) {
	m.failed = true
	m.status = err.Error()
}
