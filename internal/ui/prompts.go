package ui

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gitas/gitas/internal/config"
)

// Prompts for the add-account flow. These run in normal cooked mode,
// before any raw-mode view is entered.

// PromptAuthMethod asks how the new account should be created.
// Returns the selected index: 0 for manual input, 1 for browser login.
func PromptAuthMethod() (int, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Authentication Method",
		Options: []string{"Manual Input", "GitHub Browser Login"},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return 0, err
	}
	if choice == "GitHub Browser Login" {
		return 1, nil
	}
	return 0, nil
}

// PromptManualAccount collects a full account plus an optional token.
func PromptManualAccount() (config.Account, string, error) {
	var account config.Account

	usernamePrompt := &survey.Input{
		Message: "Username:",
		Help:    "The git author and credential username (e.g. johndoe)",
	}
	if err := survey.AskOne(usernamePrompt, &account.Username, survey.WithValidator(survey.Required)); err != nil {
		return account, "", err
	}

	emailPrompt := &survey.Input{
		Message: "Email:",
		Help:    "Email for git commits (e.g. john@example.com)",
	}
	emailValidator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			if !isValidEmail(str) {
				return fmt.Errorf("invalid email format")
			}
		}
		return nil
	}
	if err := survey.AskOne(emailPrompt, &account.Email, survey.WithValidator(survey.Required), survey.WithValidator(emailValidator)); err != nil {
		return account, "", err
	}

	alias, err := PromptAlias()
	if err != nil {
		return account, "", err
	}
	account.Alias = alias

	var token string
	tokenPrompt := &survey.Password{
		Message: "Token/PAT (optional, press Enter to skip):",
		Help:    "Personal access token stored in the system keychain",
	}
	if err := survey.AskOne(tokenPrompt, &token); err != nil {
		return account, "", err
	}

	host := config.DefaultHost
	hostPrompt := &survey.Input{
		Message: "Host:",
		Default: config.DefaultHost,
	}
	if err := survey.AskOne(hostPrompt, &host); err != nil {
		return account, "", err
	}
	if host != config.DefaultHost {
		account.Host = host
	}

	return account, token, nil
}

// PromptAlias asks for an optional disambiguating alias.
func PromptAlias() (string, error) {
	var alias string
	prompt := &survey.Input{
		Message: "Alias (optional, press Enter to skip):",
		Help:    "Label disambiguating accounts that share a username (e.g. work)",
	}
	if err := survey.AskOne(prompt, &alias); err != nil {
		return "", err
	}
	return alias, nil
}

// PromptOverwrite confirms replacing an account that already exists under
// the same (username, alias) key.
func PromptOverwrite(username, alias string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Account '%s' (alias: %s) already exists. Overwrite?", username, orNone(alias)),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// PromptAccountSelect picks one configured account interactively.
func PromptAccountSelect(message string, accounts []config.Account) (int, error) {
	labels := make([]string, len(accounts))
	for i, a := range accounts {
		labels[i] = a.Label()
	}

	var index int
	prompt := &survey.Select{
		Message: message,
		Options: labels,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, err
	}
	return index, nil
}

// isValidEmail checks if email format is valid
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
