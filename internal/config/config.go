package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitas/gitas/internal/platform"
)

const (
	ConfigDirName  = "gitas"
	ConfigFileName = "accounts.json"
)

// GetConfigDir returns the path to the gitas config directory.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(base, ConfigDirName), nil
}

// GetConfigPath returns the path to the accounts file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// CreateConfigDir creates the gitas config directory.
func CreateConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return platform.MkdirSecure(configDir)
}

// NewConfig creates a new empty config.
func NewConfig() *Config {
	return &Config{Accounts: []Account{}}
}

// LoadConfig loads the config from file. A missing or unreadable file
// yields an empty config rather than an error.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(configPath), nil
}

// LoadConfigFrom loads the config from an explicit path. Corrupt content
// is treated the same as a missing file: an empty account list.
func LoadConfigFrom(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file is corrupt, starting empty: %v\n", err)
		return NewConfig()
	}
	if cfg.Accounts == nil {
		cfg.Accounts = []Account{}
	}
	return &cfg
}

// SaveConfig saves the config to file as a full overwrite.
func SaveConfig(cfg *Config) error {
	if err := CreateConfigDir(); err != nil {
		return err
	}
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(cfg, configPath)
}

// SaveConfigTo saves the config to an explicit path.
func SaveConfigTo(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := platform.CreateFileSecure(path, append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// FindAccountIndex finds an account by its identity key (username, alias).
// Returns -1 when no account matches.
func (c *Config) FindAccountIndex(username, alias string) int {
	for i := range c.Accounts {
		if c.Accounts[i].Username == username && c.Accounts[i].Alias == alias {
			return i
		}
	}
	return -1
}

// FindAccount finds an account by username, alias, or "username:alias".
func (c *Config) FindAccount(identifier string) *Account {
	for i := range c.Accounts {
		a := &c.Accounts[i]
		if a.Username == identifier {
			return a
		}
		if a.Alias != "" && (a.Alias == identifier || a.Username+":"+a.Alias == identifier) {
			return a
		}
	}
	return nil
}

// UpsertAccount replaces the account that shares the new account's
// (username, alias) key, or appends when none matches. Returns true when
// an existing entry was replaced.
func (c *Config) UpsertAccount(account Account) bool {
	if idx := c.FindAccountIndex(account.Username, account.Alias); idx >= 0 {
		c.Accounts[idx] = account
		return true
	}
	c.Accounts = append(c.Accounts, account)
	return false
}

// RemoveAccount removes the account at the given index.
func (c *Config) RemoveAccount(index int) {
	if index < 0 || index >= len(c.Accounts) {
		return
	}
	c.Accounts = append(c.Accounts[:index], c.Accounts[index+1:]...)
}
