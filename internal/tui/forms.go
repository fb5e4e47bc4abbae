package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/models"
)

type MoodFormModel struct {
	Mood models.Mood
}

// NewMoodForm asks for one mood, best first as on the check-in screen.
func NewMoodForm(fm *MoodFormModel) *huh.Form {
	moods := models.AllMoods()
	options := make([]huh.Option[models.Mood], 0, len(moods))
	for i := len(moods) - 1; i >= 0; i-- {
		options = append(options, huh.NewOption(moods[i].String(), moods[i]))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling?").
				Options(options...).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

type HabitFormModel struct {
	Title string
}

// NewHabitForm validates against existing so a duplicate is caught before
// it reaches the store.
func NewHabitForm(fm *HabitFormModel, existing []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				CharLimit(constants.MaxHabitTitleLen).
				Value(&fm.Title).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("habit title cannot be empty")
					}
					for _, h := range existing {
						if h == s {
							return fmt.Errorf("habit already exists")
						}
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

type OnboardingFormModel struct {
	Name    string
	Presets []string
	Custom  string
}

// Habits merges the selected presets with the comma-separated custom titles,
// dropping blanks and repeats.
func (fm OnboardingFormModel) Habits() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		out = append(out, t)
	}
	for _, p := range fm.Presets {
		add(p)
	}
	for _, c := range strings.Split(fm.Custom, ",") {
		add(c)
	}
	return out
}

func NewOnboardingForm(fm *OnboardingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter your name")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick habits to track").
				Options(huh.NewOptions(constants.DefaultHabits...)...).
				Value(&fm.Presets),
			huh.NewInput().
				Title("Other habits (comma separated)").
				Value(&fm.Custom),
		),
	).WithTheme(huh.ThemeDracula())
}
