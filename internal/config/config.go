package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "RUNMENU_CONFIG"

// ValidThemeNames lists the theme families the styles package knows about
var ValidThemeNames = []string{"default", "none", "nord"}

// ValidThemeModes lists the accepted values for theme.mode
var ValidThemeModes = []string{"auto", "light", "dark"}

// ThemeConfig selects the colour palette
type ThemeConfig struct {
	Name string `toml:"name"` // theme family, empty means "default"
	Mode string `toml:"mode"` // light/dark variant, empty means "auto"
}

// Config holds the runmenu configuration
type Config struct {
	Theme ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme: ThemeConfig{Name: "default", Mode: "auto"},
	}
}

// Path returns the config file location, honouring RUNMENU_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "runmenu", "config.toml"), nil
}

// Load reads the config from Path().
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path.
// Returns error only if the file exists but is invalid.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks theme name and mode against the known values.
func (c Config) Validate() error {
	if c.Theme.Name != "" && !slices.Contains(ValidThemeNames, c.Theme.Name) {
		return fmt.Errorf("invalid theme.name %q (available: %s)",
			c.Theme.Name, strings.Join(ValidThemeNames, ", "))
	}
	if c.Theme.Mode != "" && !slices.Contains(ValidThemeModes, c.Theme.Mode) {
		return fmt.Errorf("invalid theme.mode %q (available: %s)",
			c.Theme.Mode, strings.Join(ValidThemeModes, ", "))
	}
	return nil
}
