package models

// MoodDistribution holds the rounded percentage of entries at each level.
// Levels are rounded independently, so the total may differ from 100.
type MoodDistribution [MoodLevels]int

// Map returns the distribution keyed by mood index.
func (d MoodDistribution) Map() map[Mood]int {
	out := make(map[Mood]int, MoodLevels)
	for i, pct := range d {
		out[Mood(i)] = pct
	}
	return out
}

// HabitStatus is one habit projected onto a day.
type HabitStatus struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// DaySummary is the read-only projection a screen renders for one day.
type DaySummary struct {
	Day          DayKey           `json:"day"`
	UserName     string           `json:"user_name,omitempty"`
	Distribution MoodDistribution `json:"distribution"`
	Entries      int              `json:"entries"`
	LatestMood   *Mood            `json:"latest_mood,omitempty"`
	Habits       []HabitStatus    `json:"habits"`
}

// CompletedCount returns how many projected habits are done.
func (s DaySummary) CompletedCount() int {
	n := 0
	for _, h := range s.Habits {
		if h.Done {
			n++
		}
	}
	return n
}

// Trends covers an inclusive range of days.
type Trends struct {
	From    DayKey           `json:"from"`
	To      DayKey           `json:"to"`
	Days    []DaySummary     `json:"days"`
	Overall MoodDistribution `json:"overall"`
	Entries int              `json:"entries"`
}
