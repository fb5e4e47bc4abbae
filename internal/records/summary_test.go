package records

import (
	"context"
	"testing"

	"github.com/julianstephens/daymood/internal/models"
)

func TestToday(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	day := models.DayKey("2024-01-05")

	_ = store.SetUserName(ctx, "Alex")
	_ = store.SetHabitList(ctx, []string{"Fitness", "Reading", "Meditation"})
	_ = store.SetHabitCompletion(ctx, day, []string{"Reading", "Removed habit"})
	_ = store.RecordMood(ctx, day, 1)
	_ = store.RecordMood(ctx, day, 3)

	summary, err := store.Today(ctx, day)
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}

	if summary.UserName != "Alex" {
		t.Errorf("UserName = %q, want Alex", summary.UserName)
	}
	if summary.Entries != 2 {
		t.Errorf("Entries = %d, want 2", summary.Entries)
	}
	if summary.LatestMood == nil || *summary.LatestMood != 3 {
		t.Errorf("LatestMood = %v, want 3", summary.LatestMood)
	}
	if summary.Distribution != (models.MoodDistribution{0, 50, 0, 50, 0}) {
		t.Errorf("Distribution = %v", summary.Distribution)
	}

	want := []models.HabitStatus{
		{Title: "Fitness", Done: false},
		{Title: "Reading", Done: true},
		{Title: "Meditation", Done: false},
	}
	if len(summary.Habits) != len(want) {
		t.Fatalf("Habits = %v, want %v", summary.Habits, want)
	}
	for i := range want {
		if summary.Habits[i] != want[i] {
			t.Errorf("Habits[%d] = %v, want %v", i, summary.Habits[i], want[i])
		}
	}
	if summary.CompletedCount() != 1 {
		t.Errorf("CompletedCount() = %d, want 1", summary.CompletedCount())
	}

	// The stale completion is left in storage.
	if got := store.HabitCompletion(ctx, day); len(got) != 2 {
		t.Errorf("stale completion was purged: %v", got)
	}
}

func TestTodayEmpty(t *testing.T) {
	store, _ := setupTestStore(t)

	summary, err := store.Today(context.Background(), "2024-01-05")
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if summary.UserName != "" || summary.Entries != 0 || summary.LatestMood != nil || len(summary.Habits) != 0 {
		t.Errorf("Today() on empty store = %+v", summary)
	}
}

func TestTrends(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	_ = store.SetHabitList(ctx, []string{"Fitness"})
	_ = store.RecordMood(ctx, "2024-01-04", 4)
	_ = store.RecordMood(ctx, "2024-01-06", 0)
	_ = store.RecordMood(ctx, "2024-01-06", 4)
	_ = store.RecordMood(ctx, "2024-01-06", 4)
	_ = store.RecordMood(ctx, "2024-01-09", 2) // outside range
	_ = store.SetHabitCompletion(ctx, "2024-01-05", []string{"Fitness"})

	trends, err := store.Trends(ctx, "2024-01-04", "2024-01-06")
	if err != nil {
		t.Fatalf("Trends() error = %v", err)
	}
	if len(trends.Days) != 3 {
		t.Fatalf("Trends() returned %d days, want 3", len(trends.Days))
	}
	if trends.Entries != 4 {
		t.Errorf("Entries = %d, want 4", trends.Entries)
	}
	if trends.Overall != (models.MoodDistribution{25, 0, 0, 0, 75}) {
		t.Errorf("Overall = %v", trends.Overall)
	}
	if trends.Days[1].Day != "2024-01-05" || trends.Days[1].Entries != 0 || !trends.Days[1].Habits[0].Done {
		t.Errorf("middle day = %+v", trends.Days[1])
	}
	if trends.Days[2].Distribution != (models.MoodDistribution{33, 0, 0, 0, 67}) {
		t.Errorf("last day distribution = %v", trends.Days[2].Distribution)
	}

	if _, err := store.Trends(ctx, "2024-01-06", "2024-01-04"); err == nil {
		t.Error("Trends() with reversed range should fail")
	}
}

func TestTrendsCanceled(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Trends(ctx, "2024-01-01", "2024-01-03"); err == nil {
		t.Error("Trends() with canceled context should fail")
	}
}
