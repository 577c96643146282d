package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/secret"
	"github.com/gitas/gitas/internal/ui"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var gitCmd = &cobra.Command{
	Use:   "git <args...>",
	Short: "Run any git command as a specific account",
	Long: `Run an arbitrary git command with the selected account's identity
injected via -c flags, plus an ephemeral credential helper when a token
is stored for the account.`,
	Example: `  gitas git clone https://github.com/org/repo.git
  gitas -a work git push --force-with-lease`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGit,
}

func init() {
	// Everything after the first positional arg belongs to git.
	gitCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(gitCmd)
}

func runGit(cmd *cobra.Command, args []string) error {
	// Auto-initialize if needed
	if err := autoInit(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	account, err := resolveAccount(cfg, accountFlag)
	if err != nil {
		return err
	}

	gitArgs := []string{
		"-c", "user.name=" + account.Username,
		"-c", "user.email=" + account.Email,
	}

	token, _ := (secret.Keyring{}).Get(account.Username, account.Alias)
	if token != "" {
		// Reset any configured helpers, then inject an ephemeral one that
		// answers with this account's credentials.
		gitArgs = append(gitArgs,
			"-c", "credential.helper=",
			"-c", fmt.Sprintf(`credential.helper=!f() { echo "username=%s"; echo "password=%s"; }; f`, account.Username, token),
		)
	} else {
		ui.Warning(fmt.Sprintf("No token found for %s. Git may prompt for authentication.", account.Username))
	}
	gitArgs = append(gitArgs, args...)

	fmt.Printf("  ↷ git %s as %s <%s>\n\n", shellquote.Join(args...), account.Username, account.Email)

	run := exec.Command("git", gitArgs...)
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	if err := run.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("failed to execute git: %w", err)
	}
	return nil
}

// resolveAccount finds an account by identifier (username, alias or
// "username:alias"), or falls back to an interactive selection.
func resolveAccount(cfg *config.Config, identifier string) (config.Account, error) {
	if len(cfg.Accounts) == 0 {
		return config.Account{}, fmt.Errorf("no accounts configured\nRun: gitas add")
	}

	if identifier != "" {
		account := cfg.FindAccount(identifier)
		if account == nil {
			return config.Account{}, fmt.Errorf("no account matching '%s'", identifier)
		}
		return *account, nil
	}

	index, err := ui.PromptAccountSelect("Run as", cfg.Accounts)
	if err != nil {
		return config.Account{}, err
	}
	return cfg.Accounts[index], nil
}
