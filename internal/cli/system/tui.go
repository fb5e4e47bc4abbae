package system

import (
	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	err := tui.Run(tui.Options{
		Store: ctx.Store,
		Day:   func() models.DayKey { return ctx.Today() },
		Guard: ctx.WithLock,
	})
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	return nil
}
