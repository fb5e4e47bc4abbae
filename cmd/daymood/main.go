package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/cli/backups"
	"github.com/julianstephens/daymood/internal/cli/daily"
	"github.com/julianstephens/daymood/internal/cli/system"
	"github.com/julianstephens/daymood/internal/config"
	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/errors"
	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file (.db or .json) or PostgreSQL connection string. Passwords must NOT be embedded; use DAYMOOD_DB_CONNECTION, the OS keyring or .pgpass." type:"string" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr."`
	TZ      string `name:"tz" help:"IANA timezone that decides where a day begins." default:"Local"`

	Init    system.InitCmd    `cmd:"" help:"Initialize daymood storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Onboard system.OnboardCmd `cmd:"" help:"Set your name and pick habits."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive Today screen." default:"1"`
	Name    daily.NameCmd     `cmd:"" help:"Manage your display name."`
	Mood    daily.MoodCmd     `cmd:"" help:"Record and review mood check-ins."`
	Habit   daily.HabitCmd    `cmd:"" help:"Manage habits and daily completion."`
	Today   daily.TodayCmd    `cmd:"" help:"Show today's summary."`
	Trends  daily.TrendsCmd   `cmd:"" help:"Show mood and habits over recent days."`
	Backup  backups.BackupCmd `cmd:"" help:"Manage database backups."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// noLoad lists commands that run before, or without, loaded storage.
var noLoad = []string{"init", "doctor", "keyring", "habit presets"}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily mood check-ins and habit tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	settings, err := config.Resolve(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: settings.Dir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	loc, err := utils.LoadLocation(CLI.TZ)
	if err != nil {
		errors.Fatal(err)
	}
	logger.Debug("Resolved storage", "backend", settings.Backend, "dir", settings.Dir, "tz", loc)

	provider := settings.Provider()
	appCtx := cli.NewContext(provider, settings.Dir, loc)

	if needsLoad(ctx.Command()) {
		if err := provider.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if cerr := provider.Close(); cerr != nil {
		logger.Warn("Failed to close storage", "error", cerr)
	}
	errors.Fatal(err)
}

func needsLoad(command string) bool {
	for _, c := range noLoad {
		if strings.HasPrefix(command, c) {
			return false
		}
	}
	return true
}
