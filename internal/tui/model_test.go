package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/records"
	"github.com/julianstephens/daymood/internal/storage"
	"github.com/julianstephens/daymood/internal/tui/components/habits"
)

const testDay = models.DayKey("2024-06-01")

func setupTestModel(t *testing.T) (Model, *records.Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	if err := mem.Init(); err != nil {
		t.Fatalf("failed to init memory store: %v", err)
	}
	store := records.New(mem)
	if err := store.SetHabitList(context.Background(), []string{"Reading", "Fitness"}); err != nil {
		t.Fatalf("failed to seed habits: %v", err)
	}
	m := NewModel(Options{
		Store: store,
		Day:   func() models.DayKey { return testDay },
	})
	return m, store, mem
}

// drain runs cmd and feeds resulting messages back into the model until no
// command remains. Batches are not expected here.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return m
		}
		next, nextCmd := m.Update(msg)
		m = next.(Model)
		cmd = nextCmd
	}
	return m
}

func TestInitLoadsSummary(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	if !m.loaded {
		t.Fatal("model not loaded after Init")
	}
	if len(m.summary.Habits) != 2 || m.habitsModel.Len() != 2 {
		t.Errorf("habits = %d (list %d), want 2", len(m.summary.Habits), m.habitsModel.Len())
	}
	if !strings.Contains(m.View(), "Habits 0/2") {
		t.Errorf("View() missing habit count:\n%s", m.View())
	}
}

func TestRecordMoodRefreshes(t *testing.T) {
	m, store, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	m = drain(t, m, m.recordMood(models.Mood(4)))

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.summary.LatestMood == nil || *m.summary.LatestMood != 4 {
		t.Errorf("LatestMood = %v, want 4", m.summary.LatestMood)
	}
	if got := store.MoodEntries(context.Background(), testDay); len(got) != 1 {
		t.Errorf("stored entries = %v, want 1", got)
	}
	if m.summary.Distribution[4] != 100 {
		t.Errorf("Distribution = %v", m.summary.Distribution)
	}
}

func TestToggleHabitMessage(t *testing.T) {
	m, store, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	next, cmd := m.Update(habits.ToggleHabitMsg{Title: "Reading"})
	m = drain(t, next.(Model), cmd)

	if got := store.HabitCompletion(context.Background(), testDay); len(got) != 1 || got[0] != "Reading" {
		t.Errorf("HabitCompletion() = %v, want [Reading]", got)
	}
	if m.summary.CompletedCount() != 1 {
		t.Errorf("CompletedCount() = %d, want 1", m.summary.CompletedCount())
	}
}

func TestToggleKeyUsesSelection(t *testing.T) {
	m, store, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = drain(t, next.(Model), cmd)

	if got := store.HabitCompletion(context.Background(), testDay); len(got) != 1 || got[0] != "Reading" {
		t.Errorf("HabitCompletion() = %v, want [Reading]", got)
	}
}

func TestAddHabitDuplicateShowsMessage(t *testing.T) {
	m, store, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	m = drain(t, m, m.addHabit("Reading"))

	if !errors.Is(m.err, records.ErrDuplicateHabit) {
		t.Fatalf("err = %v, want ErrDuplicateHabit", m.err)
	}
	if !strings.Contains(m.View(), "Habit already exists") {
		t.Errorf("View() missing duplicate message:\n%s", m.View())
	}
	list, _ := store.HabitList(context.Background())
	if len(list) != 2 {
		t.Errorf("HabitList() = %v, want unchanged", list)
	}
}

func TestWriteFailureKeepsStoredState(t *testing.T) {
	m, store, mem := setupTestModel(t)
	m = drain(t, m, m.Init())
	m = drain(t, m, m.recordMood(models.Mood(2)))

	mem.FailWrites = true
	m = drain(t, m, m.recordMood(models.Mood(0)))

	if !errors.Is(m.err, records.ErrStorageWrite) {
		t.Fatalf("err = %v, want ErrStorageWrite", m.err)
	}
	if m.summary.Entries != 1 {
		t.Errorf("Entries = %d, want 1 (view must match storage)", m.summary.Entries)
	}
	if got := store.MoodEntries(context.Background(), testDay); len(got) != 1 || got[0] != 2 {
		t.Errorf("stored entries = %v, want [2]", got)
	}
}

func TestGuardWrapsWrites(t *testing.T) {
	m, _, _ := setupTestModel(t)
	calls := 0
	m.opts.Guard = func(fn func() error) error {
		calls++
		return fn()
	}
	m = drain(t, m, m.recordMood(models.Mood(1)))
	if calls != 1 {
		t.Errorf("guard called %d times, want 1", calls)
	}
}

func TestFocusRefreshesFromStore(t *testing.T) {
	m, store, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	// Another process writes while the screen is in the background.
	if err := store.RecordMood(context.Background(), testDay, 3); err != nil {
		t.Fatal(err)
	}
	next, cmd := m.Update(tea.FocusMsg{})
	m = drain(t, next.(Model), cmd)

	if m.summary.Entries != 1 {
		t.Errorf("Entries = %d after focus, want 1", m.summary.Entries)
	}
}

func TestMoodKeyOpensForm(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = drain(t, m, m.Init())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m = next.(Model)
	if m.state != StateMood || m.form == nil {
		t.Fatalf("state = %v, form = %v; want mood form", m.state, m.form)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.state != StateToday || m.form != nil {
		t.Errorf("esc did not close the form")
	}
}

func TestQuitKey(t *testing.T) {
	m, _, _ := setupTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).quitting || cmd == nil {
		t.Error("q did not quit")
	}
}

func TestOnboardingHabits(t *testing.T) {
	fm := OnboardingFormModel{
		Presets: []string{"Work", "Reading"},
		Custom:  " Journal, ,Reading,Stretch ",
	}
	got := fm.Habits()
	want := []string{"Work", "Reading", "Journal", "Stretch"}
	if len(got) != len(want) {
		t.Fatalf("Habits() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Habits()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
