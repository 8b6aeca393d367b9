// Package config loads the stehauf configuration from a TOML file with
// sensible defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Timer         TimerConfig        `toml:"timer"`
	Storage       StorageConfig      `toml:"storage"`
	Notifications NotificationConfig `toml:"notifications"`
	Holidays      HolidayConfig      `toml:"holidays"`
	Log           LogConfig          `toml:"log"`
}

type TimerConfig struct {
	// SessionMinutes and CooldownMinutes are independent knobs even though
	// both default to 15.
	SessionMinutes  int `toml:"session_minutes"`
	CooldownMinutes int `toml:"cooldown_minutes"`
	DailyGoal       int `toml:"daily_goal"`
}

type StorageConfig struct {
	// DBPath is the SQLite file location. Empty selects the in-memory store.
	DBPath string `toml:"db_path"`
}

type NotificationConfig struct {
	SystemNotify bool `toml:"system_notify"`
}

type HolidayConfig struct {
	Enabled     bool   `toml:"enabled"`
	CountryCode string `toml:"country_code"`
}

type LogConfig struct {
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			SessionMinutes:  15,
			CooldownMinutes: 15,
			DailyGoal:       4,
		},
		Storage: StorageConfig{
			DBPath: "~/.local/share/stehauf/stehauf.db",
		},
		Notifications: NotificationConfig{
			SystemNotify: true,
		},
		Holidays: HolidayConfig{
			Enabled:     true,
			CountryCode: "DE",
		},
		Log: LogConfig{
			Path:       "~/.local/share/stehauf/stehauf.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stehauf", "config.toml")
}

// Load reads the config from STEHAUF_CONFIG or the default location.
// A `.env` file in the working directory is honored for the environment
// overrides before the config file is resolved.
func Load() (*LoadResult, error) {
	_ = godotenv.Load()

	path := os.Getenv("STEHAUF_CONFIG")
	if path == "" {
		path = defaultConfigPath()
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path. A missing file yields the
// defaults. Unknown keys produce warnings, not errors, so an old binary
// tolerates a newer config.
func LoadFrom(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	result := &LoadResult{Config: cfg}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applyEnv(&result.Config)
			return result, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	knownTopLevel := map[string]bool{
		"timer":         true,
		"storage":       true,
		"notifications": true,
		"holidays":      true,
		"log":           true,
	}
	for key := range raw {
		if !knownTopLevel[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key))
		}
	}

	// Decoding into the defaults-prefilled struct only touches keys present
	// in the file, so absent keys keep their default values.
	if _, err := toml.Decode(string(data), &result.Config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnv(&result.Config)

	if err := validate(&result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("STEHAUF_DB_PATH"); ok {
		cfg.Storage.DBPath = v
	}
}

func validate(cfg *Config) error {
	if cfg.Timer.SessionMinutes <= 0 {
		return fmt.Errorf("timer.session_minutes must be positive, got %d", cfg.Timer.SessionMinutes)
	}
	if cfg.Timer.CooldownMinutes <= 0 {
		return fmt.Errorf("timer.cooldown_minutes must be positive, got %d", cfg.Timer.CooldownMinutes)
	}
	if cfg.Timer.DailyGoal < 0 {
		return fmt.Errorf("timer.daily_goal must not be negative, got %d", cfg.Timer.DailyGoal)
	}
	if cc := cfg.Holidays.CountryCode; len(cc) != 2 {
		return fmt.Errorf("holidays.country_code must be a two-letter code, got %q", cc)
	}
	return nil
}
