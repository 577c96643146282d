package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/github"
	"github.com/gitas/gitas/internal/secret"
	"github.com/gitas/gitas/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new git account",
	Long:  `Add a new git account, either by entering the details manually or through a GitHub browser login.`,
	Example: `  gitas add   # then pick Manual Input or GitHub Browser Login`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Auto-initialize if needed
	if err := autoInit(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("\nAdd Git Account")
	fmt.Println()

	method, err := ui.PromptAuthMethod()
	if err != nil {
		return cancelOrError(err)
	}

	if method == 1 {
		return addGitHub(cfg)
	}
	return addManual(cfg)
}

func addManual(cfg *config.Config) error {
	account, token, err := ui.PromptManualAccount()
	if err != nil {
		return cancelOrError(err)
	}

	proceed, err := confirmOverwrite(cfg, account)
	if err != nil || !proceed {
		return err
	}

	store := secret.Keyring{}
	if token != "" {
		if err := store.Set(account.Username, account.Alias, token); err != nil {
			ui.Warning(err.Error())
		}
	} else {
		// An empty token on overwrite clears any previously stored one.
		store.Delete(account.Username, account.Alias)
	}

	return saveUpsert(cfg, account)
}

func addGitHub(cfg *config.Config) error {
	result, ok := github.Login()
	if !ok {
		return fmt.Errorf("GitHub login failed")
	}

	fmt.Printf("  Authenticated as: %s <%s>\n", result.Login, result.Email)

	alias, err := ui.PromptAlias()
	if err != nil {
		return cancelOrError(err)
	}

	account := config.Account{
		Username: result.Login,
		Email:    result.Email,
		Alias:    alias,
		// Host left empty: browser login always targets github.com
	}

	proceed, err := confirmOverwrite(cfg, account)
	if err != nil || !proceed {
		return err
	}

	if err := (secret.Keyring{}).Set(account.Username, account.Alias, result.Token); err != nil {
		ui.Warning(err.Error())
	}

	return saveUpsert(cfg, account)
}

// confirmOverwrite asks before replacing an account that already exists
// under the same (username, alias) key. Returns false when the user
// declines, in which case nothing is changed.
func confirmOverwrite(cfg *config.Config, account config.Account) (bool, error) {
	if cfg.FindAccountIndex(account.Username, account.Alias) < 0 {
		return true, nil
	}
	confirmed, err := ui.PromptOverwrite(account.Username, account.Alias)
	if err != nil {
		return false, cancelOrError(err)
	}
	if !confirmed {
		fmt.Println("\nCancelled.")
		return false, nil
	}
	return true, nil
}

func saveUpsert(cfg *config.Config, account config.Account) error {
	replaced := cfg.UpsertAccount(account)
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	if replaced {
		ui.Success(fmt.Sprintf("Account '%s' updated successfully", account.Username))
	} else {
		ui.Success(fmt.Sprintf("Account '%s' added successfully", account.Username))
	}
	return nil
}

// cancelOrError maps a prompt interrupt (Ctrl-C) to a clean cancel.
func cancelOrError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		fmt.Println("\nCancelled.")
		return nil
	}
	return err
}
