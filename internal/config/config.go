package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Config holds the application configuration.
type Config struct {
	Use24Hour bool `json:"use_24_hour"` // parse and display clock times as 17:00 instead of 5:00pm
	UTC       bool `json:"utc"`         // anchor "now" and render instants in UTC instead of local time
}

// Default returns the configuration used before anything is saved:
// 12-hour clock, local time.
func Default() Config {
	return Config{}
}

// Location returns the zone instants are evaluated in.
func (c Config) Location() *time.Location {
	if c.UTC {
		return time.UTC
	}
	return time.Local
}

// ModeName returns "24" or "12".
func (c Config) ModeName() string {
	if c.Use24Hour {
		return "24"
	}
	return "12"
}

// ErrCorrupt is wrapped by Load when the config file is not valid JSON.
var ErrCorrupt = errors.New("config file is corrupt")

// configDir returns the config directory path.
// Exported as a var for testing.
var configDir = defaultConfigDir

func defaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "timecalc")
}

func configPath() string {
	return filepath.Join(configDir(), "config.json")
}

func lockPath() string {
	return configPath() + ".lock"
}

// Exists returns true if a config file has been saved.
func Exists() bool {
	_, err := os.Stat(configPath())
	return err == nil
}

// Load reads the config file. Returns default config if file doesn't exist.
func Load() (Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w: %w", ErrCorrupt, err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp := configPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, configPath())
}

// Update loads the config, applies fn and saves the result while holding
// an exclusive file lock, so concurrent invocations never lose a write.
// A corrupt config file is replaced by defaults before fn runs; any other
// read error is returned and the file is left alone.
func Update(fn func(*Config) error) (Config, error) {
	if err := os.MkdirAll(configDir(), 0o700); err != nil {
		return Config{}, err
	}

	lock := flock.New(lockPath())
	if err := lock.Lock(); err != nil {
		return Config{}, fmt.Errorf("lock config: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	cfg, err := Load()
	if errors.Is(err, ErrCorrupt) {
		cfg = Default()
	} else if err != nil {
		return Config{}, err
	}
	if err := fn(&cfg); err != nil {
		return Config{}, err
	}
	if err := Save(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
