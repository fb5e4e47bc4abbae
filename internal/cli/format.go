package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daymood/internal/models"
)

const barWidth = 20

// FormatDistribution renders one line per mood level with a bar scaled to
// the percentage.
func FormatDistribution(dist models.MoodDistribution) string {
	var b strings.Builder
	for _, m := range models.AllMoods() {
		pct := dist[m]
		filled := pct * barWidth / 100
		fmt.Fprintf(&b, "  %s %-5s %s%s %3d%%\n",
			m.Symbol(), m.Label(),
			strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled),
			pct)
	}
	return b.String()
}

// FormatHabit renders a habit status line.
func FormatHabit(h models.HabitStatus) string {
	if h.Done {
		return "✓ " + h.Title
	}
	return "○ " + h.Title
}

// FormatEntries renders a day's moods as symbols in submission order.
func FormatEntries(entries []models.Mood) string {
	if len(entries) == 0 {
		return "(none)"
	}
	parts := make([]string, len(entries))
	for i, m := range entries {
		parts[i] = m.Symbol()
	}
	return strings.Join(parts, " ")
}
