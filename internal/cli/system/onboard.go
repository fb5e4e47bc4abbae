package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/records"
	"github.com/julianstephens/daymood/internal/tui"
)

type OnboardCmd struct {
	Name    string   `help:"Display name. Skips the interactive form when set."`
	Habits  []string `help:"Habit titles (comma separated)." sep:","`
	Presets bool     `help:"Track every preset habit."`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	fm := tui.OnboardingFormModel{Name: c.Name}
	if c.Presets {
		fm.Presets = constants.DefaultHabits
	}
	fm.Custom = strings.Join(c.Habits, ",")

	if strings.TrimSpace(c.Name) == "" {
		if err := tui.NewOnboardingForm(&fm).Run(); err != nil {
			return fmt.Errorf("onboarding cancelled: %w", err)
		}
	}

	habits, err := records.CleanHabitList(fm.Habits())
	if err != nil {
		return err
	}
	if strings.TrimSpace(fm.Name) == "" {
		return records.ErrBlankName
	}

	err = ctx.WithLock(func() error {
		if err := ctx.Store.SetUserName(ctx.Ctx(), fm.Name); err != nil {
			return err
		}
		if len(habits) == 0 {
			return nil
		}
		return ctx.Store.SetHabitList(ctx.Ctx(), habits)
	})
	if err != nil {
		return err
	}

	name, _ := ctx.Store.UserName(ctx.Ctx())
	ctx.Printf("✓ Welcome, %s!\n", name)
	if len(habits) > 0 {
		ctx.Printf("  Tracking %d habits: %s\n", len(habits), strings.Join(habits, ", "))
	}
	return nil
}
