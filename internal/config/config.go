// Package config turns the global flags and environment into a storage
// backend choice.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/keyring"
	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/storage"
	"github.com/julianstephens/daymood/internal/storage/postgres"
	"github.com/julianstephens/daymood/internal/storage/sqlite"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendJSON     Backend = "json"
	BackendPostgres Backend = "postgres"
)

// keyringLookup is swapped in tests.
var keyringLookup = keyring.GetConnectionString

// Settings is the resolved storage location.
type Settings struct {
	Backend Backend
	// Target is a file path for SQLite and JSON, a connection string for
	// PostgreSQL.
	Target string
	// Dir holds logs, the lock file and the optional .env file.
	Dir string
}

// Resolve picks the backend for the --config value. An explicit PostgreSQL
// URL wins; otherwise, when the flag was left at its default, a connection
// string from DAYMOOD_DB_CONNECTION or the OS keyring is used before falling
// back to the local SQLite file.
func Resolve(configFlag string) (Settings, error) {
	configFlag = strings.TrimSpace(configFlag)
	if configFlag == "" {
		configFlag = constants.DefaultConfigPath
	}

	if postgres.IsConnString(configFlag) || strings.Contains(configFlag, "host=") {
		return postgresSettings(configFlag, "flag")
	}

	path, err := ExpandPath(configFlag)
	if err != nil {
		return Settings{}, err
	}
	dir := filepath.Dir(path)
	if err := LoadEnv(dir); err != nil {
		return Settings{}, err
	}

	if configFlag == constants.DefaultConfigPath {
		if connStr := os.Getenv(constants.EnvDBConnection); connStr != "" {
			return postgresSettings(connStr, constants.EnvDBConnection)
		}
		if connStr, err := keyringLookup(); err == nil && connStr != "" {
			return postgresSettings(connStr, "keyring")
		} else if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup skipped", "error", err)
		}
	}

	backend := BackendSQLite
	if strings.EqualFold(filepath.Ext(path), ".json") {
		backend = BackendJSON
	}
	return Settings{Backend: backend, Target: path, Dir: dir}, nil
}

// postgresSettings validates connStr. Passwords are only refused on the
// command line; the environment and keyring are where they are meant to live.
func postgresSettings(connStr, source string) (Settings, error) {
	err := postgres.ValidateConnString(connStr)
	if err != nil && (source == "flag" || !errors.Is(err, postgres.ErrEmbeddedCredentials)) {
		return Settings{}, fmt.Errorf("connection string from %s: %w", source, err)
	}
	dir, err := DefaultDir()
	if err != nil {
		return Settings{}, err
	}
	return Settings{Backend: BackendPostgres, Target: connStr, Dir: dir}, nil
}

// Provider builds the storage.Provider for s. It is not loaded.
func (s Settings) Provider() storage.Provider {
	switch s.Backend {
	case BackendPostgres:
		return postgres.New(s.Target)
	case BackendJSON:
		return storage.NewJSONStore(s.Target)
	default:
		return sqlite.New(s.Target)
	}
}

// DefaultDir is the directory of the default database file.
func DefaultDir() (string, error) {
	path, err := ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// ExpandPath replaces a leading ~ with the home directory and makes the
// result absolute.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// LoadEnv reads dir/.env if present. Variables already set in the process
// environment are not overridden.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, constants.EnvFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("Loaded environment file", "path", path)
	return nil
}
