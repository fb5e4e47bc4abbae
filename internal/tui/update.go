package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daymood/internal/tui/components/habits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.habitsModel.SetSize(msg.Width-4, max(msg.Height-18, 4))
		return m, nil

	case tea.FocusMsg:
		return m, m.refresh()

	case summaryMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.summary = msg.summary
		m.loaded = true
		m.habitsModel.SetHabits(msg.summary.Habits)
		return m, nil

	case savedMsg:
		m.err = msg.err
		m.status = ""
		if msg.err == nil {
			m.status = msg.status
		}
		return m, m.refresh()

	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm, m.habitTitles())
		m.state = StateAddHabit
		return m, m.form.Init()

	case habits.ToggleHabitMsg:
		return m, m.toggleHabit(msg.Title)
	}

	switch m.state {
	case StateMood, StateAddHabit:
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		case key.Matches(msg, m.keys.Mood):
			m.moodForm = &MoodFormModel{}
			m.form = NewMoodForm(m.moodForm)
			m.state = StateMood
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.habitsModel, cmd = m.habitsModel.Update(msg)
	return m, cmd
}

// updateForm drives the active huh form and saves on completion.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateToday
		m.form = nil
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
		switch m.state {
		case StateMood:
			cmds = append(cmds, m.recordMood(m.moodForm.Mood))
		case StateAddHabit:
			cmds = append(cmds, m.addHabit(strings.TrimSpace(m.habitForm.Title)))
		}
		m.state = StateToday
		m.form = nil
	case huh.StateAborted:
		m.state = StateToday
		m.form = nil
	}
	return m, tea.Batch(cmds...)
}
