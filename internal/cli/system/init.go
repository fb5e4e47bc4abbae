package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/config"
	"github.com/julianstephens/daymood/internal/storage"
	"github.com/julianstephens/daymood/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing database file before initialization."`
	Source string `help:"Database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	return ctx.WithLock(func() error {
		if c.Force {
			if err := c.reset(ctx); err != nil {
				return err
			}
		}

		if err := ctx.Provider.Init(); err != nil {
			return err
		}
		ctx.Printf("Initialized daymood storage at: %s\n", ctx.Provider.GetConfigPath())

		if c.Source != "" {
			ctx.Printf("Copying data from: %s\n", c.Source)
			n, err := c.copyFrom(ctx)
			if err != nil {
				return fmt.Errorf("copy failed: %w", err)
			}
			ctx.Printf("Copied %d keys\n", n)
		}
		return nil
	})
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Provider.(*postgres.Store); ok {
		return fmt.Errorf("--force is only supported for file-based storage")
	}

	dbPath := ctx.Provider.GetConfigPath()
	if c.Source != "" {
		if absDB, err := filepath.Abs(dbPath); err == nil {
			dbPath = absDB
		}
		if absSrc, err := filepath.Abs(c.Source); err == nil && absSrc == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Provider.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// copyFrom copies every key from the source store. Values are opaque strings,
// so any backend can feed any other.
func (c *InitCmd) copyFrom(ctx *cli.Context) (int, error) {
	settings, err := config.Resolve(c.Source)
	if err != nil {
		return 0, err
	}
	source := settings.Provider()
	if err := source.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return copyKeys(ctx, source, ctx.Provider)
}

func copyKeys(ctx *cli.Context, from, to storage.Provider) (int, error) {
	keys, err := from.Keys(ctx.Ctx(), "")
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		v, ok, err := from.Get(ctx.Ctx(), k)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", k, err)
		}
		if !ok {
			continue
		}
		if err := to.Set(ctx.Ctx(), k, v); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", k, err)
		}
	}
	return len(keys), nil
}

type MigrateCmd struct{}

// migrator is implemented by the SQL-backed providers.
type migrator interface {
	SchemaVersion() (current, latest int, err error)
	Migrate() (int, error)
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Provider.(migrator)
	if !ok {
		ctx.Println("This storage backend has no schema to migrate.")
		return nil
	}
	return ctx.WithLock(func() error {
		n, err := m.Migrate()
		if err != nil {
			return err
		}
		current, _, err := m.SchemaVersion()
		if err != nil {
			return err
		}
		if n == 0 {
			ctx.Printf("Schema is up to date (version %d)\n", current)
			return nil
		}
		ctx.Printf("✓ Applied %d migration(s), schema version %d\n", n, current)
		return nil
	})
}
