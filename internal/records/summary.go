package records

import (
	"context"

	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/utils"
)

// Today builds the projection a "today" view renders. Completions for titles
// that are no longer in the habit list are ignored, not purged.
func (s *Store) Today(ctx context.Context, day models.DayKey) (models.DaySummary, error) {
	if err := ctx.Err(); err != nil {
		return models.DaySummary{}, err
	}

	habits, err := s.HabitList(ctx)
	if err != nil {
		return models.DaySummary{}, err
	}
	summary, _ := s.summarize(ctx, day, habits)
	summary.UserName, _ = s.UserName(ctx)
	return summary, nil
}

// summarize projects one day against habits and also returns the raw entries.
func (s *Store) summarize(ctx context.Context, day models.DayKey, habits []string) (models.DaySummary, []models.Mood) {
	entries := s.MoodEntries(ctx, day)
	done := s.HabitCompletion(ctx, day)

	summary := models.DaySummary{
		Day:          day,
		Distribution: Distribution(entries),
		Entries:      len(entries),
		Habits:       make([]models.HabitStatus, 0, len(habits)),
	}
	if n := len(entries); n > 0 {
		latest := entries[n-1]
		summary.LatestMood = &latest
	}
	for _, h := range habits {
		summary.Habits = append(summary.Habits, models.HabitStatus{
			Title: h,
			Done:  contains(done, h),
		})
	}
	return summary, entries
}

// Trends summarizes every day in from..to inclusive and the mood
// distribution across all entries in the range.
func (s *Store) Trends(ctx context.Context, from, to models.DayKey) (models.Trends, error) {
	days, err := utils.DayRange(from, to)
	if err != nil {
		return models.Trends{}, err
	}

	habits, err := s.HabitList(ctx)
	if err != nil {
		return models.Trends{}, err
	}

	trends := models.Trends{
		From: from,
		To:   to,
		Days: make([]models.DaySummary, 0, len(days)),
	}
	var all []models.Mood
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return models.Trends{}, err
		}
		summary, entries := s.summarize(ctx, day, habits)
		all = append(all, entries...)
		trends.Days = append(trends.Days, summary)
	}
	trends.Overall = Distribution(all)
	trends.Entries = len(all)
	return trends, nil
}
