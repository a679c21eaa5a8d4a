// ABOUTME: Configuration management for the full-page pager
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the pager options
type Config struct {
	ShowNav      bool   `toml:"show_nav"`       // Build and sync the navigation dots
	DelayMS      int    `toml:"delay_ms"`       // Throttle/debounce window in milliseconds
	Animate      bool   `toml:"animate"`        // Slide between pages instead of cutting
	OnPageChange string `toml:"on_page_change"` // Shell command run after every page change
}

// Delay returns the rate limiter window
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/fullpage/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./fullpage.toml"); err == nil {
		return "./fullpage.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./fullpage.toml"
	}

	return filepath.Join(home, ".config", "fullpage", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist, returns default config. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default pager configuration
func DefaultConfig() Config {
	return Config{
		ShowNav:      true,
		DelayMS:      1200,
		Animate:      true,
		OnPageChange: "",
	}
}
