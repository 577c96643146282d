package cmd

import (
	"fmt"
	"os"

	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/git"
	"github.com/gitas/gitas/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all configured accounts",
	Long:    `Display all configured accounts without entering the interactive view. Suitable for scripts.`,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Auto-initialize if needed
	if err := autoInit(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ui.PrintAccounts(os.Stdout, cfg.Accounts, fetchIdentity(git.Client{}))
	return nil
}
