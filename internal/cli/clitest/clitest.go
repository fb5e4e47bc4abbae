// Package clitest builds command contexts for tests.
package clitest

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/daymood/internal/cli"
	"github.com/julianstephens/daymood/internal/records"
	"github.com/julianstephens/daymood/internal/storage"
	"github.com/julianstephens/daymood/internal/utils"
)

// NewContext returns a Context over provider with a fixed clock in UTC,
// a temp config dir and captured output.
func NewContext(t testing.TB, provider storage.Provider, now time.Time) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &cli.Context{
		Provider:  provider,
		Store:     records.New(provider),
		Clock:     utils.FixedClock(now),
		Location:  time.UTC,
		ConfigDir: t.TempDir(),
		Out:       out,
		In:        strings.NewReader(""),
	}, out
}
