package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/records"
	"github.com/julianstephens/daymood/internal/tui/components/habits"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateMood
	StateAddHabit
)

// Options wires the model to storage. Guard wraps every write, typically
// with the single-writer lock; nil runs writes directly.
type Options struct {
	Store *records.Store
	Day   func() models.DayKey
	Guard func(func() error) error
}

// summaryMsg carries a fresh projection of the day.
type summaryMsg struct {
	summary models.DaySummary
	err     error
}

// savedMsg reports the outcome of a write.
type savedMsg struct {
	status string
	err    error
}

// Model is the Today screen. summary is a cache of what the store returned
// on the last refresh and is rebuilt after every write and on focus.
type Model struct {
	opts        Options
	state       SessionState
	keys        KeyMap
	help        help.Model
	habitsModel habits.Model
	form        *huh.Form
	moodForm    *MoodFormModel
	habitForm   *HabitFormModel
	summary     models.DaySummary
	loaded      bool
	status      string
	err         error
	quitting    bool
	width       int
	height      int
}

func NewModel(opts Options) Model {
	if opts.Guard == nil {
		opts.Guard = func(fn func() error) error { return fn() }
	}
	return Model{
		opts:        opts,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(nil, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m Model) refresh() tea.Cmd {
	store, day := m.opts.Store, m.opts.Day()
	return func() tea.Msg {
		summary, err := store.Today(context.Background(), day)
		return summaryMsg{summary: summary, err: err}
	}
}

func (m Model) save(status string, fn func(ctx context.Context) error) tea.Cmd {
	guard := m.opts.Guard
	return func() tea.Msg {
		err := guard(func() error { return fn(context.Background()) })
		if err != nil {
			logger.Warn("Save failed", "error", err)
		}
		return savedMsg{status: status, err: err}
	}
}

func (m Model) recordMood(mood models.Mood) tea.Cmd {
	store, day := m.opts.Store, m.opts.Day()
	return m.save(fmt.Sprintf("Recorded %s", mood), func(ctx context.Context) error {
		return store.RecordMood(ctx, day, mood)
	})
}

func (m Model) toggleHabit(title string) tea.Cmd {
	store, day := m.opts.Store, m.opts.Day()
	return m.save("Updated "+title, func(ctx context.Context) error {
		_, err := store.ToggleHabit(ctx, day, title)
		return err
	})
}

func (m Model) addHabit(title string) tea.Cmd {
	store := m.opts.Store
	return m.save("Added "+title, func(ctx context.Context) error {
		return store.AddHabit(ctx, title)
	})
}

func (m Model) habitTitles() []string {
	titles := make([]string, len(m.summary.Habits))
	for i, h := range m.summary.Habits {
		titles[i] = h.Title
	}
	return titles
}

// Run starts the program on the alternate screen with focus reporting so
// returning to the terminal refreshes the view.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
