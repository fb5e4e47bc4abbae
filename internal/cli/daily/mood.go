package daily

import (
	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/models"
)

type MoodCmd struct {
	Record MoodRecordCmd `cmd:"" help:"Record a mood check-in."`
	Show   MoodShowCmd   `cmd:"" help:"Show a day's mood distribution." default:"1"`
}

type MoodRecordCmd struct {
	Mood string `arg:"" help:"Mood as index (0-4), label (awful, bad, okay, good, great) or symbol."`
	Date string `help:"Day to record for (YYYY-MM-DD). Defaults to today."`
}

func (c *MoodRecordCmd) Run(ctx *cli.Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}

	err = ctx.WithLock(func() error {
		return ctx.Store.RecordMood(ctx.Ctx(), day, mood)
	})
	if err != nil {
		return err
	}

	ctx.Printf("✓ Recorded %s for %s\n", mood, day)
	return nil
}

type MoodShowCmd struct {
	Date string `help:"Day to show (YYYY-MM-DD). Defaults to today."`
}

func (c *MoodShowCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}

	entries := ctx.Store.MoodEntries(ctx.Ctx(), day)
	ctx.Printf("Mood for %s (%d check-ins)\n\n", day, len(entries))
	ctx.Printf("%s\n", cli.FormatDistribution(ctx.Store.MoodDistribution(ctx.Ctx(), day)))
	ctx.Printf("Entries: %s\n", cli.FormatEntries(entries))
	return nil
}
