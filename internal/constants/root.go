package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "feeder"
	DefaultConfigDir  = "~/.config/feeder"
	DefaultServerAddr = "127.0.0.1:8080"
	Version           = "v0.1.0"

	// TimeFormat is the 24-hour input format for feeding times (HH:MM)
	TimeFormat = "15:04"

	// DisplayTimeFormat is the 12-hour format feeding times are rendered in (HH:MM AM)
	DisplayTimeFormat = "03:04 PM"

	// Lock constants
	LockfileName = "feeder.lock"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "feeder.log"
)

// Session States. The first four are the top-level tabs, in display order.
const (
	StateHome SessionState = iota
	StateFeed
	StateSchedule
	StateHistory
	StateEditTime
)

// Config constants
const (
	ConfigFileName   = "config"
	ConfigFileType   = "yaml"
	ConfigEnvPrefix  = "FEEDER"
	ConfigDirEnv     = "FEEDER_CONFIG_DIR"
	DefaultHistoryDB = "history.db"
)
