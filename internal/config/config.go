// Package config resolves jjlf settings from defaults, an optional TOML file
// and JJLF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

const appName = "jjlf"

// Config holds everything a build run needs to locate its inputs and outputs.
type Config struct {
	// DataDir holds the card catalog cache. Empty means GetDataDir().
	DataDir string `toml:"data_dir" env:"JJLF_DATA_DIR"`

	// ChangesDir is scanned for change files.
	ChangesDir string `toml:"changes_dir" env:"JJLF_CHANGES_DIR" validate:"required"`

	// DeployDir receives the rendered .conf files.
	DeployDir string `toml:"deploy_dir" env:"JJLF_DEPLOY_DIR" validate:"required"`

	Format   FormatConfig   `toml:"format"`
	Provider ProviderConfig `toml:"provider"`
	Log      LogConfig      `toml:"log"`
}

// FormatConfig names the files that make up the format's history.
type FormatConfig struct {
	// Prefix is the format tag used in list names, e.g. "jj2".
	Prefix string `toml:"prefix" env:"JJLF_FORMAT_PREFIX" validate:"required,excludes=/"`

	// HistoryPrefix selects change files that belong to the main history.
	HistoryPrefix string `toml:"history_prefix" env:"JJLF_HISTORY_PREFIX" validate:"required,excludes=/"`

	// JuniorPrefix selects the optional Junior Royale change file.
	JuniorPrefix string `toml:"junior_prefix" env:"JJLF_JUNIOR_PREFIX" validate:"required,excludes=/"`

	// ActiveLists are deployed next to the previews instead of into archive/.
	ActiveLists []string `toml:"active_lists" env:"JJLF_ACTIVE_LISTS" envSeparator:","`
}

// ProviderConfig points at the upstream card-data provider.
type ProviderConfig struct {
	CardInfoURL       string  `toml:"card_info_url" env:"JJLF_CARD_INFO_URL" validate:"required,url"`
	CardSetsURL       string  `toml:"card_sets_url" env:"JJLF_CARD_SETS_URL" validate:"required,url"`
	RequestsPerSecond float64 `toml:"requests_per_second" env:"JJLF_REQUESTS_PER_SECOND" validate:"gt=0"`
	UserAgent         string  `toml:"user_agent" env:"JJLF_USER_AGENT"`
}

// LogConfig controls the slog handler installed by the CLI.
type LogConfig struct {
	Level string `toml:"level" env:"JJLF_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	return &Config{
		ChangesDir: filepath.Join("data", "banlist", "changes"),
		DeployDir:  filepath.Join("..", "ygo-jj2-edopro-lflists"),
		Format: FormatConfig{
			Prefix:        "jj2",
			HistoryPrefix: "jj2-",
			JuniorPrefix:  "jr-",
			ActiveLists:   []string{"jj2-2002-p0"},
		},
		Provider: ProviderConfig{
			CardInfoURL:       "https://db.ygoprodeck.com/api/v7/cardinfo.php?misc=yes",
			CardSetsURL:       "https://db.ygoprodeck.com/api/v7/cardsets.php",
			RequestsPerSecond: 10,
			UserAgent:         appName,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when it
// does not exist) and the environment. An empty path means GetConfigPath().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = GetConfigPath()
	}

	//nolint:gosec // G304: path is chosen by the operator
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DBPath returns the catalog cache database location for this configuration.
func (c *Config) DBPath() string {
	dir := c.DataDir
	if dir == "" {
		dir = GetDataDir()
	}
	return filepath.Join(dir, "catalog.db")
}

// GetDataDir resolves the base directory for cached data. JJLF_DATA_DIR wins,
// then the XDG data home, then ~/.local/share.
func GetDataDir() string {
	if explicit := os.Getenv("JJLF_DATA_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appName)
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, appName)
}

// GetConfigPath returns the default config file location under the XDG config home.
func GetConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}
