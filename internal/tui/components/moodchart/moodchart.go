// Package moodchart renders a mood distribution as horizontal bars.
package moodchart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daymood/internal/models"
)

// Level colors run from red (awful) to green (great).
var levelColors = [models.MoodLevels]lipgloss.Color{"196", "208", "220", "113", "42"}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle = lipgloss.NewStyle().Width(6)
	pctStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Right)
)

// Render draws one bar per level, width cells wide at 100%.
func Render(dist models.MoodDistribution, width int) string {
	if width < 1 {
		width = 1
	}
	rows := make([]string, 0, models.MoodLevels)
	for _, m := range models.AllMoods() {
		pct := dist[m]
		filled := pct * width / 100
		bar := lipgloss.NewStyle().Foreground(levelColors[m]).Render(strings.Repeat("█", filled)) +
			emptyStyle.Render(strings.Repeat("░", width-filled))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			m.Symbol()+" ",
			labelStyle.Render(m.Label()),
			bar,
			pctStyle.Render(fmt.Sprintf("%d%%", pct)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
