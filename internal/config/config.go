// Package config loads feeder settings from config.yaml and FEEDER_* variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/julianstephens/feeder/internal/constants"
)

const (
	KeyDebug           = "debug"
	KeyServerAddr      = "server.addr"
	KeyHistorySource   = "history.source"
	KeyHistoryDBPath   = "history.db_path"
	KeyScheduleInitial = "schedule.initial"
)

// defaultConfigYAML is written to config.yaml on first run
const defaultConfigYAML = `# feeder configuration
# Every key can be overridden with FEEDER_<SECTION>_<KEY>, e.g. FEEDER_SERVER_ADDR.

debug: false

server:
  addr: 127.0.0.1:8080

history:
  # static: built-in sample feedings; sqlite: read the feedings table of db_path
  source: static
  # relative paths resolve against the config directory
  db_path: history.db

schedule:
  # fixed: 08:00, 12:00, 18:00; clock: every slot starts at the current time
  initial: fixed
`

// Config is the resolved configuration
type Config struct {
	Dir             string
	Debug           bool
	ServerAddr      string
	HistorySource   string
	HistoryDBPath   string
	ScheduleInitial string
}

var userHomeDirFunc = os.UserHomeDir

// ResolveDir picks the config directory: flag, then FEEDER_CONFIG_DIR,
// then $XDG_CONFIG_HOME/feeder, then ~/.config/feeder.
func ResolveDir(flagDir string) (string, error) {
	dir := flagDir
	if dir == "" {
		dir = os.Getenv(constants.ConfigDirEnv)
	}
	if dir == "" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dir = filepath.Join(xdg, constants.AppName)
		}
	}
	if dir == "" {
		dir = constants.DefaultConfigDir
	}
	return expandHome(dir)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}
	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Load reads config.yaml from dir, creating the directory and a default
// file first if needed. A missing config.yaml is not an error.
func Load(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyServerAddr, constants.DefaultServerAddr)
	v.SetDefault(KeyHistorySource, constants.HistorySourceStatic)
	v.SetDefault(KeyHistoryDBPath, constants.DefaultHistoryDB)
	v.SetDefault(KeyScheduleInitial, constants.ScheduleInitialFixed)
	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType(constants.ConfigFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(constants.ConfigEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Dir:             dir,
		Debug:           v.GetBool(KeyDebug),
		ServerAddr:      v.GetString(KeyServerAddr),
		HistorySource:   strings.ToLower(v.GetString(KeyHistorySource)),
		ScheduleInitial: strings.ToLower(v.GetString(KeyScheduleInitial)),
	}

	dbPath, err := expandHome(v.GetString(KeyHistoryDBPath))
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}
	cfg.HistoryDBPath = dbPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enumerated values
func (c *Config) Validate() error {
	switch c.HistorySource {
	case constants.HistorySourceStatic, constants.HistorySourceSQLite:
	default:
		return fmt.Errorf("invalid %s %q: use %s or %s", KeyHistorySource, c.HistorySource,
			constants.HistorySourceStatic, constants.HistorySourceSQLite)
	}
	switch c.ScheduleInitial {
	case constants.ScheduleInitialFixed, constants.ScheduleInitialClock:
	default:
		return fmt.Errorf("invalid %s %q: use %s or %s", KeyScheduleInitial, c.ScheduleInitial,
			constants.ScheduleInitialFixed, constants.ScheduleInitialClock)
	}
	if strings.TrimSpace(c.ServerAddr) == "" {
		return fmt.Errorf("%s must not be empty", KeyServerAddr)
	}
	return nil
}

func ensureDefaultConfigFile(dir string) error {
	path := filepath.Join(dir, constants.ConfigFileName+"."+constants.ConfigFileType)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
