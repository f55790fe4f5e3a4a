package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aokblast/sicxeasm/object"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Assembler.TextRecordBudget != object.DefaultBudget {
		t.Errorf("Expected TextRecordBudget=0x%X, got 0x%X", object.DefaultBudget, cfg.Assembler.TextRecordBudget)
	}
	if !cfg.Listing.ShowSourceColumn {
		t.Error("Expected ShowSourceColumn=true")
	}
	if cfg.Listing.AddressWidth != 8 {
		t.Errorf("Expected AddressWidth=8, got %d", cfg.Listing.AddressWidth)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected Port=8080, got %d", cfg.API.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected path to end with config.toml, got %s", path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Assembler.TextRecordBudget = 0x10
	cfg.Listing.ColorOutput = true
	cfg.API.Port = 9090

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Assembler.TextRecordBudget != 0x10 {
		t.Errorf("expected TextRecordBudget=0x10, got 0x%X", loaded.Assembler.TextRecordBudget)
	}
	if !loaded.Listing.ColorOutput {
		t.Error("expected ColorOutput=true")
	}
	if loaded.API.Port != 9090 {
		t.Errorf("expected Port=9090, got %d", loaded.API.Port)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on a missing file: %v", err)
	}
	if cfg.Assembler.TextRecordBudget != object.DefaultBudget {
		t.Error("expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[assembler]
text_record_budget = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error when loading invalid TOML")
	}
}

func TestLoadRejectsOutOfRangeBudget(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "toobig.toml")

	toml := `
[assembler]
text_record_budget = 200

[listing]
address_width = 8

[api]
port = 8080
`
	if err := os.WriteFile(configPath, []byte(toml), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected validation error for a budget over object.DefaultBudget")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}
