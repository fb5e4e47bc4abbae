package daily

import (
	"fmt"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/utils"
)

type TodayCmd struct {
	Date string `help:"Day to summarize (YYYY-MM-DD). Defaults to today."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	summary, err := ctx.Store.Today(ctx.Ctx(), day)
	if err != nil {
		return err
	}

	if summary.UserName != "" {
		ctx.Printf("Hi %s! ", summary.UserName)
	}
	ctx.Printf("Summary for %s\n\n", day)

	if summary.LatestMood != nil {
		ctx.Printf("Mood: %s (%d check-ins)\n", *summary.LatestMood, summary.Entries)
	} else {
		ctx.Println("Mood: no check-ins yet")
	}
	ctx.Printf("%s\n", cli.FormatDistribution(summary.Distribution))

	ctx.Printf("Habits: %d/%d done\n", summary.CompletedCount(), len(summary.Habits))
	for _, h := range summary.Habits {
		ctx.Printf("  %s\n", cli.FormatHabit(h))
	}
	return nil
}

type TrendsCmd struct {
	Days int    `help:"Number of days ending today." default:"7"`
	To   string `help:"Last day of the range (YYYY-MM-DD). Defaults to today."`
}

func (c *TrendsCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 || c.Days > constants.MaxTrendDays {
		return fmt.Errorf("--days must be between 1 and %d", constants.MaxTrendDays)
	}
	end, err := ctx.Day(c.To)
	if err != nil {
		return err
	}
	days, err := utils.LastNDays(end, c.Days)
	if err != nil {
		return err
	}

	trends, err := ctx.Store.Trends(ctx.Ctx(), days[0], days[len(days)-1])
	if err != nil {
		return err
	}

	ctx.Printf("Trends %s to %s (%d check-ins)\n\n", trends.From, trends.To, trends.Entries)
	ctx.Printf("%s\n", cli.FormatDistribution(trends.Overall))
	for _, d := range trends.Days {
		ctx.Printf("  %s  %s  habits %d/%d\n", d.Day, latest(d), d.CompletedCount(), len(d.Habits))
	}
	return nil
}

func latest(d models.DaySummary) string {
	if d.LatestMood == nil {
		return "  "
	}
	return d.LatestMood.Symbol()
}
