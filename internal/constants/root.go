package constants

const (
	AppName            = "daymood"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daymood/daymood.db"
	Version            = "v0.1.0"

	// EnvDBConnection holds a PostgreSQL connection string when set.
	EnvDBConnection = "DAYMOOD_DB_CONNECTION"
	// EnvFileName is loaded from the config directory before flags are resolved.
	EnvFileName = ".env"

	// DateFormat is the DayKey layout (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxTrendDays bounds a single trends query
	MaxTrendDays = 366
	// DefaultTrendDays is used when no range is given
	DefaultTrendDays = 7

	// MaxHabitTitleLen is measured in runes
	MaxHabitTitleLen = 64

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daymood-"
	BackupFileSuffix = ".db"

	// Lock constants
	LockFileName = "daymood.lock"

	// Log rotation
	LogDirName    = "logs"
	LogMaxSizeMB  = 5
	LogMaxFiles   = 3
	LogMaxAgeDays = 30
)

// Persisted key space. These strings are part of the storage format.
const (
	KeyUserName     = "userName"
	KeyUserHabits   = "userHabits"
	MoodKeyPrefix   = "mood:"
	HabitsKeyPrefix = "habits:"
)

// DefaultHabits are offered during onboarding.
var DefaultHabits = []string{
	"Work",
	"Fitness",
	"Reading",
	"Meditation",
	"Nature",
	"Cook",
	"Shopping",
	"Movies",
}
