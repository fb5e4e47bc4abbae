package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/julianstephens/daymood/internal/errors"
	"github.com/julianstephens/daymood/internal/tui/components/moodchart"
)

const chartWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil && m.state != StateToday {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if !m.loaded {
		if m.err != nil {
			b.WriteString(dangerStyle.Render(apperrors.UserMessage(m.err)))
		} else {
			b.WriteString(subtleStyle.Render("Loading..."))
		}
		return docStyle.Render(b.String())
	}

	b.WriteString(sectionStyle.Render("Mood"))
	b.WriteString("\n")
	if m.summary.LatestMood != nil {
		b.WriteString(fmt.Sprintf("Latest: %s  ", *m.summary.LatestMood))
	} else {
		b.WriteString("No check-ins yet  ")
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("(%d today)", m.summary.Entries)))
	b.WriteString("\n")
	b.WriteString(moodchart.Render(m.summary.Distribution, chartWidth))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Habits %d/%d", m.summary.CompletedCount(), len(m.summary.Habits))))
	b.WriteString("\n")
	b.WriteString(m.habitsModel.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(dangerStyle.Render(apperrors.UserMessage(m.err)))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(successStyle.Render("✓ " + m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) header() string {
	title := "daymood"
	if m.summary.UserName != "" {
		title = "Hi, " + m.summary.UserName
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(title),
		" ",
		subtleStyle.Render(m.summary.Day.String()),
	)
}
