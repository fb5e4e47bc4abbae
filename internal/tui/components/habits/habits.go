package habits

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daymood/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	Title string
}

type Item struct {
	Status models.HabitStatus
}

func (i Item) Title() string {
	if i.Status.Done {
		return "✓ " + i.Status.Title
	}
	return "○ " + i.Status.Title
}

func (i Item) Description() string {
	if i.Status.Done {
		return "done today"
	}
	return "not done yet"
}

func (i Item) FilterValue() string { return i.Status.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(statuses []models.HabitStatus, width, height int) Model {
	l := list.New(toItems(statuses), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle}
	}

	return Model{list: l, keys: keys}
}

// SetHabits replaces the items, keeping the cursor where possible.
func (m *Model) SetHabits(statuses []models.HabitStatus) {
	idx := m.list.Index()
	m.list.SetItems(toItems(statuses))
	if idx < len(statuses) {
		m.list.Select(idx)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.HabitStatus, bool) {
	i, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.HabitStatus{}, false
	}
	return i.Status, true
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{Title: s.Title} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No habits yet. Press 'a' to add one."
	}
	return m.list.View()
}

func toItems(statuses []models.HabitStatus) []list.Item {
	items := make([]list.Item, len(statuses))
	for i, s := range statuses {
		items[i] = Item{Status: s}
	}
	return items
}
