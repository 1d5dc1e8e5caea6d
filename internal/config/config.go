package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the planfetch configuration. The converter itself takes no
// configuration; only the acquisition tool does.
type Config struct {
	// PlansURL is the trip-plans page to open; the interactive sign-in
	// happens there.
	PlansURL string `yaml:"plans_url"`

	// APIMatch is the substring identifying the itinerary API response to
	// capture.
	APIMatch string `yaml:"api_match"`

	// OutputPath is where the captured itinerary JSON is written.
	OutputPath string `yaml:"output_path"`

	// RefreshCron, if set, re-captures on a cron schedule (e.g. "@daily").
	// Empty means a single capture.
	RefreshCron string `yaml:"refresh"`

	// Headless runs the browser without a window. Sign-in is interactive,
	// so this only makes sense with a pre-authenticated profile.
	Headless bool `yaml:"headless"`

	// TimeoutSeconds bounds one capture, including the manual sign-in.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		PlansURL:       "https://disneyworld.co.uk/plans/",
		APIMatch:       "wdw-itinerary-api/api/v1/guests",
		OutputPath:     "my_plans.json",
		RefreshCron:    "",
		Headless:       false,
		TimeoutSeconds: 300,
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.PlansURL == "" {
		c.PlansURL = def.PlansURL
	}
	if c.APIMatch == "" {
		c.APIMatch = def.APIMatch
	}
	if c.OutputPath == "" {
		c.OutputPath = def.OutputPath
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist: create parent directory if needed, write
//     a default config with 0600 perms, and return the defaults.
//   - If the file exists: read YAML, unmarshal, normalize defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// The file sits alongside a logged-in browser profile, so it keeps the
// restrictive permissions: parent dir 0700, file 0600, written atomically
// via a temp file + rename.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".planfetch-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
