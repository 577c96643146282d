package cmd

import (
	"fmt"
	"os"

	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/git"
	"github.com/gitas/gitas/internal/secret"
	"github.com/gitas/gitas/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const version = "0.4.0"

var accountFlag string

var rootCmd = &cobra.Command{
	Use:     "gitas",
	Short:   "GitHub Account Switch — manage multiple git identities",
	Long:    `Switch between multiple git author identities (name, email, credentials) per repository or globally, from an interactive account list.`,
	Version: version,
	Example: `  gitas              # interactive account list
  gitas add          # add a new account
  gitas git clone https://github.com/org/repo.git
  gitas -a work git push`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&accountFlag, "account", "a", "", "Account username or alias (skip interactive selection for git)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed or not in PATH")
	}

	// Auto-initialize if needed
	if err := autoInit(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gitClient := git.Client{}

	// Interactive view needs a real terminal; fall back to a plain
	// listing when stdout is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stdin.Fd()) {
		ui.PrintAccounts(os.Stdout, cfg.Accounts, fetchIdentity(gitClient))
		return nil
	}

	screen := ui.NewScreen()
	defer screen.Close()

	view := ui.NewListView(screen, cfg, gitClient, secret.Keyring{}, version)
	return view.Run()
}
