package daily

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/records"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a habit to your list."`
	List    HabitListCmd    `cmd:"" help:"List habits and today's completion." default:"1"`
	Presets HabitPresetsCmd `cmd:"" help:"Show the preset habits."`
	Set     HabitSetCmd     `cmd:"" help:"Replace your habit list."`
	Done    HabitDoneCmd    `cmd:"" help:"Mark a habit done for a day."`
	Undo    HabitUndoCmd    `cmd:"" help:"Mark a habit not done for a day."`
}

type HabitAddCmd struct {
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	err := ctx.WithLock(func() error {
		return ctx.Store.AddHabit(ctx.Ctx(), c.Title)
	})
	if err != nil {
		return err
	}
	ctx.Printf("✓ Added habit: %s\n", strings.TrimSpace(c.Title))
	return nil
}

type HabitListCmd struct {
	Date string `help:"Day to show completion for (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	summary, err := ctx.Store.Today(ctx.Ctx(), day)
	if err != nil {
		return err
	}
	if len(summary.Habits) == 0 {
		ctx.Println("No habits yet. Use 'daymood habit add <title>' or 'daymood onboard'.")
		return nil
	}

	ctx.Printf("Habits for %s (%d/%d done)\n\n", day, summary.CompletedCount(), len(summary.Habits))
	for _, h := range summary.Habits {
		ctx.Printf("  %s\n", cli.FormatHabit(h))
	}
	return nil
}

type HabitPresetsCmd struct{}

func (c *HabitPresetsCmd) Run(ctx *cli.Context) error {
	for _, h := range constants.DefaultHabits {
		ctx.Printf("  %s\n", h)
	}
	return nil
}

type HabitSetCmd struct {
	Titles []string `arg:"" help:"Habit titles, in order."`
}

func (c *HabitSetCmd) Run(ctx *cli.Context) error {
	err := ctx.WithLock(func() error {
		return ctx.Store.SetHabitList(ctx.Ctx(), c.Titles)
	})
	if err != nil {
		return err
	}
	ctx.Printf("✓ Habit list updated (%d habits)\n", len(c.Titles))
	return nil
}

type HabitDoneCmd struct {
	Title string `arg:"" help:"Habit title."`
	Date  string `help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	return setDone(ctx, c.Title, c.Date, true)
}

type HabitUndoCmd struct {
	Title string `arg:"" help:"Habit title."`
	Date  string `help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitUndoCmd) Run(ctx *cli.Context) error {
	return setDone(ctx, c.Title, c.Date, false)
}

// setDone toggles title only when its state differs from want, so repeating
// the command is harmless.
func setDone(ctx *cli.Context, title, date string, want bool) error {
	title = strings.TrimSpace(title)
	day, err := ctx.Day(date)
	if err != nil {
		return err
	}

	changed := false
	err = ctx.WithLock(func() error {
		habits, err := ctx.Store.HabitList(ctx.Ctx())
		if err != nil {
			return err
		}
		if !contains(habits, title) {
			return fmt.Errorf("%w: %q", records.ErrUnknownHabit, title)
		}
		if contains(ctx.Store.HabitCompletion(ctx.Ctx(), day), title) == want {
			return nil
		}
		_, err = ctx.Store.ToggleHabit(ctx.Ctx(), day, title)
		changed = err == nil
		return err
	})
	if err != nil {
		return err
	}

	switch {
	case !changed && want:
		ctx.Printf("%s is already done for %s\n", title, day)
	case !changed:
		ctx.Printf("%s is not done for %s\n", title, day)
	case want:
		ctx.Printf("✓ %s done for %s\n", title, day)
	default:
		ctx.Printf("○ %s marked not done for %s\n", title, day)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
