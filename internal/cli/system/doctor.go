package system

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/keyring"
	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/models"
)

type DoctorCmd struct{}

type check struct {
	name string
	// warnOnly checks never fail the run.
	warnOnly bool
	run      func(*cli.Context) error
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	reachable := true
	if err := checkReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n   Error: %v\n", err)
		reachable = false
	} else {
		ctx.Printf("✓ Storage reachable: OK\n")
	}

	checks := []check{
		{name: "Schema version", run: checkSchemaVersion},
		{name: "Stored values", run: checkStoredValues},
		{name: "Backups present", warnOnly: true, run: checkBackups},
	}
	hasError := !reachable
	for _, c := range checks {
		if !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
		}
	}

	if err := checkClock(ctx); err != nil {
		ctx.Printf("❌ Clock/timezone: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Clock/timezone: OK (today is %s in %s)\n", ctx.Today(), ctx.Location)
	}

	if keyring.IsAvailable() {
		ctx.Printf("✓ OS keyring: OK\n")
	} else {
		ctx.Printf("⚠ OS keyring: WARNING\n   not available; use %s for PostgreSQL\n", constants.EnvDBConnection)
	}

	if path := logger.Path(); path != "" {
		ctx.Printf("  Log file: %s\n", path)
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkReachable(ctx *cli.Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Provider.Keys(ctx.Ctx(), constants.KeyUserName); err != nil {
		return fmt.Errorf("failed to query storage: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Provider.(migrator)
	if !ok {
		return nil
	}
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind %d, run 'daymood migrate'", current, latest)
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than supported version %d", current, latest)
	}
	return nil
}

// checkStoredValues decodes every key the application owns. The store itself
// falls back to defaults on bad values, so this is where they surface.
func checkStoredValues(ctx *cli.Context) error {
	keys, err := ctx.Provider.Keys(ctx.Ctx(), "")
	if err != nil {
		return err
	}

	var problems []string
	for _, k := range keys {
		raw, ok, err := ctx.Provider.Get(ctx.Ctx(), k)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", k, err))
			continue
		}
		if !ok {
			continue
		}
		if err := validateValue(k, raw); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", k, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d invalid value(s):\n   - %s", len(problems), strings.Join(problems, "\n   - "))
	}
	return nil
}

func validateValue(key, raw string) error {
	switch {
	case key == constants.KeyUserName:
		var name string
		return json.Unmarshal([]byte(raw), &name)
	case key == constants.KeyUserHabits:
		var titles []string
		if err := json.Unmarshal([]byte(raw), &titles); err != nil {
			return err
		}
		seen := make(map[string]bool, len(titles))
		for _, t := range titles {
			if seen[t] {
				return fmt.Errorf("duplicate habit %q", t)
			}
			seen[t] = true
		}
		return nil
	case strings.HasPrefix(key, constants.MoodKeyPrefix):
		if _, err := models.ParseDayKey(strings.TrimPrefix(key, constants.MoodKeyPrefix)); err != nil {
			return err
		}
		var entries []models.Mood
		return json.Unmarshal([]byte(raw), &entries)
	case strings.HasPrefix(key, constants.HabitsKeyPrefix):
		if _, err := models.ParseDayKey(strings.TrimPrefix(key, constants.HabitsKeyPrefix)); err != nil {
			return err
		}
		var titles []string
		return json.Unmarshal([]byte(raw), &titles)
	default:
		return fmt.Errorf("unknown key")
	}
}

func checkBackups(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return nil
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s, run 'daymood backup create'", mgr.Dir())
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if ctx.Location == nil {
		return fmt.Errorf("no timezone configured")
	}
	return nil
}
