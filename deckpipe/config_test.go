package deckpipe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.defaults()
	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("max file size: got %d", cfg.MaxFileSize)
	}
	if len(cfg.Aliases) == 0 {
		t.Error("expected built-in alias table")
	}
	if cfg.Logger == nil {
		t.Error("expected default logger")
	}
}

func TestConfigDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := Config{
		MaxFileSize: 1024,
		Aliases:     []AliasEntry{{Alias: "acme", Entity: "ACME"}},
	}
	cfg.defaults()
	if cfg.MaxFileSize != 1024 {
		t.Errorf("max file size overwritten: %d", cfg.MaxFileSize)
	}
	if len(cfg.Aliases) != 1 || cfg.Aliases[0].Entity != "ACME" {
		t.Errorf("aliases overwritten: %+v", cfg.Aliases)
	}
}

func TestLoadConfigFile(t *testing.T) {
	yaml := `max_file_size: 1048576
aliases:
  - alias: acme
    entity: ACME
  - alias: acme corp
    entity: ACME Corporation
`
	path := filepath.Join(t.TempDir(), "deckrep.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxFileSize != 1048576 {
		t.Errorf("max file size: got %d", cfg.MaxFileSize)
	}
	if len(cfg.Aliases) != 2 || cfg.Aliases[0].Alias != "acme" || cfg.Aliases[1].Entity != "ACME Corporation" {
		t.Errorf("aliases: %+v", cfg.Aliases)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("aliases: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
