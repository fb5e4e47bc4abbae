package daily

import (
	"github.com/julianstephens/daymood/internal/cli"
)

type NameCmd struct {
	Set  NameSetCmd  `cmd:"" help:"Set your display name."`
	Show NameShowCmd `cmd:"" help:"Show your display name." default:"1"`
}

type NameSetCmd struct {
	Name string `arg:"" help:"Display name."`
}

func (c *NameSetCmd) Run(ctx *cli.Context) error {
	err := ctx.WithLock(func() error {
		return ctx.Store.SetUserName(ctx.Ctx(), c.Name)
	})
	if err != nil {
		return err
	}
	name, _ := ctx.Store.UserName(ctx.Ctx())
	ctx.Printf("✓ Name set to %s\n", name)
	return nil
}

type NameShowCmd struct{}

func (c *NameShowCmd) Run(ctx *cli.Context) error {
	name, ok := ctx.Store.UserName(ctx.Ctx())
	if !ok {
		ctx.Println("No name set. Use 'daymood name set <name>' or 'daymood onboard'.")
		return nil
	}
	ctx.Println(name)
	return nil
}
