// Package config reads and writes the per-user kickoff configuration. The
// file lives under the user's home directory and stores identity details
// and API keys so they are entered once, not per project.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	// Dir is the configuration directory under $HOME.
	Dir = ".kickoff"
	// FileName is the configuration file inside Dir.
	FileName = "config.toml"
)

// placeholderMarker appears in every value that the user has not filled in.
const placeholderMarker = "YOUR_"

// User identifies the developer running the tool.
type User struct {
	Name           string `toml:"name"`
	Email          string `toml:"email"`
	GitHubUsername string `toml:"github_username"`
}

// Config is the persisted user configuration.
type Config struct {
	User    User              `toml:"user"`
	APIKeys map[string]string `toml:"api_keys"`
}

// DefaultPath returns the configuration file path under the home directory.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, Dir, FileName), nil
}

// Default returns a configuration populated with placeholder values.
func Default() *Config {
	return &Config{
		User: User{Name: "Your Name", Email: "you@example.com"},
		APIKeys: map[string]string{
			"gemini":    "YOUR_GEMINI_API_KEY_HERE",
			"anthropic": "YOUR_ANTHROPIC_API_KEY_HERE",
			"notion":    "YOUR_NOTION_API_KEY_HERE",
			"github":    "YOUR_GITHUB_PAT_HERE",
		},
	}
}

// Load reads the configuration at path. If the file does not exist it is
// created with placeholder values and created=true is returned, so the
// caller can tell the user to edit it before a first real run.
func Load(path string) (cfg *Config, created bool, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		cfg = Default()
		if err := Save(path, cfg); err != nil {
			return nil, false, err
		}
		return cfg, true, nil
	}

	cfg = &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, false, fmt.Errorf("%s does not match the required format: %w", path, err)
	}
	if cfg.APIKeys == nil {
		cfg.APIKeys = map[string]string{}
	}
	return cfg, false, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// IsPlaceholder reports whether v is an unedited placeholder value.
func IsPlaceholder(v string) bool {
	return v == "" || strings.Contains(v, placeholderMarker)
}

// KeyFor maps an environment variable name used in MCP server descriptors
// to its api_keys entry: GEMINI_API_KEY -> gemini,
// GITHUB_PERSONAL_ACCESS_TOKEN -> github.
func KeyFor(envVar string) string {
	k := strings.TrimSuffix(envVar, "_PERSONAL_ACCESS_TOKEN")
	k = strings.TrimSuffix(k, "_API_KEY")
	return strings.ToLower(k)
}

// APIKey returns the configured value for the given environment variable
// name, and whether it is a real (non-placeholder) value.
func (c *Config) APIKey(envVar string) (string, bool) {
	v, ok := c.APIKeys[KeyFor(envVar)]
	if !ok || IsPlaceholder(v) {
		return "", false
	}
	return v, true
}
