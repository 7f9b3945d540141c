// CLAUDE:SUMMARY Configuration struct, default alias table, and YAML loader for the deckpipe engine.
package deckpipe

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasEntry maps one spelling of an entity name to its canonical form.
// Entries are evaluated in order; the first hit wins, so keep more
// specific aliases before generic ones.
type AliasEntry struct {
	Alias  string `yaml:"alias"`
	Entity string `yaml:"entity"`
}

// Config configures the deck extraction engine.
type Config struct {
	// MaxFileSize is the maximum deck size ParseFile accepts (default: 50 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// Aliases is the ordered title-slide alias table. Empty means the
	// built-in table.
	Aliases []AliasEntry `json:"aliases" yaml:"aliases"`

	// Logger for debug/warn messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 50 * 1024 * 1024
	}
	if len(c.Aliases) == 0 {
		c.Aliases = defaultAliases()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// defaultAliases returns the built-in alias table. Aliases are stored
// case-folded; resolution lowercases its input before comparing.
func defaultAliases() []AliasEntry {
	return []AliasEntry{
		{Alias: "daff", Entity: "DAFF"},
		{Alias: "agriculture", Entity: "DAFF"},
		{Alias: "ato", Entity: "ATO"},
		{Alias: "taxation", Entity: "ATO"},
		{Alias: "services australia", Entity: "Services Australia"},
		{Alias: "home affairs", Entity: "Home Affairs"},
		{Alias: "defence", Entity: "Defence"},
		{Alias: "defense", Entity: "Defence"},
		{Alias: "health", Entity: "Health"},
		{Alias: "education", Entity: "Education"},
		{Alias: "finance", Entity: "Finance"},
		{Alias: "industry", Entity: "DISR"},
		{Alias: "disr", Entity: "DISR"},
	}
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
