package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/daymood/internal/backup"
	"github.com/julianstephens/daymood/internal/lock"
	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/records"
	"github.com/julianstephens/daymood/internal/storage"
	"github.com/julianstephens/daymood/internal/storage/sqlite"
	"github.com/julianstephens/daymood/internal/utils"
)

type Context struct {
	Provider  storage.Provider
	Store     *records.Store
	Clock     utils.Clock
	Location  *time.Location
	ConfigDir string
	Out       io.Writer
	In        io.Reader
}

// NewContext wires a records.Store over provider with the system clock.
func NewContext(provider storage.Provider, configDir string, loc *time.Location) *Context {
	return &Context{
		Provider:  provider,
		Store:     records.New(provider),
		Clock:     utils.SystemClock{},
		Location:  loc,
		ConfigDir: configDir,
		Out:       os.Stdout,
		In:        os.Stdin,
	}
}

// Ctx is the context for storage calls made by one command.
func (c *Context) Ctx() context.Context {
	return context.Background()
}

// Today is the current DayKey in the configured timezone.
func (c *Context) Today() models.DayKey {
	return utils.Today(c.Clock, c.Location)
}

// Day resolves an optional --date flag.
func (c *Context) Day(date string) (models.DayKey, error) {
	return utils.ResolveDay(strings.TrimSpace(date), c.Clock, c.Location)
}

// WithLock runs fn while holding the single-writer lock.
func (c *Context) WithLock(fn func() error) error {
	l, err := lock.Acquire(c.ConfigDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()
	return fn()
}

// BackupManager returns a manager for the SQLite database, or false for
// backends that are not a local SQLite file.
func (c *Context) BackupManager() (*backup.Manager, bool) {
	if _, ok := c.Provider.(*sqlite.Store); !ok {
		return nil, false
	}
	return backup.NewManager(c.Provider.GetConfigPath()), true
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, ok := c.BackupManager()
	if !ok {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}
