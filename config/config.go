package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/aokblast/sicxeasm/object"
)

// Config is the assembler's ambient configuration.
type Config struct {
	Assembler struct {
		TextRecordBudget int `toml:"text_record_budget"`
	} `toml:"assembler"`

	Listing struct {
		ShowSourceColumn bool `toml:"show_source_column"`
		AddressWidth     int  `toml:"address_width"`
		ColorOutput      bool `toml:"color_output"`
	} `toml:"listing"`

	API struct {
		Port       int `toml:"port"`
		SessionTTL int `toml:"session_ttl"` // seconds
	} `toml:"api"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Assembler.TextRecordBudget = object.DefaultBudget

	cfg.Listing.ShowSourceColumn = true
	cfg.Listing.AddressWidth = 8
	cfg.Listing.ColorOutput = false

	cfg.API.Port = 8080
	cfg.API.SessionTTL = 3600

	return cfg
}

// Validate checks knobs that have a hard ceiling imposed by the object
// format: a Text record's budget must never exceed 0x1D.
func (c *Config) Validate() error {
	if c.Assembler.TextRecordBudget <= 0 || c.Assembler.TextRecordBudget > object.DefaultBudget {
		return fmt.Errorf("assembler.text_record_budget must be in (0, 0x%X], got %d", object.DefaultBudget, c.Assembler.TextRecordBudget)
	}
	if c.Listing.AddressWidth < 1 {
		return fmt.Errorf("listing.address_width must be positive, got %d", c.Listing.AddressWidth)
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port out of range: %d", c.API.Port)
	}
	return nil
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "sicxeasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "sicxeasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file
// yields defaults, not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
