package cmd

import (
	"os"

	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/git"
	"github.com/gitas/gitas/internal/identity"
)

// autoInit initializes the gitas config directory automatically on first use.
func autoInit() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Silently initialize
	if err := config.CreateConfigDir(); err != nil {
		return err
	}
	return config.SaveConfig(config.NewConfig())
}

func fetchIdentity(client git.Client) identity.Identity {
	return identity.Fetch(client)
}
