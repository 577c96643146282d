package ui

import (
	"fmt"
	"io"

	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/identity"
)

// PrintAccounts prints the account list in a plain, pipe-friendly format.
// Used when stdout is not a terminal and by the list subcommand.
func PrintAccounts(w io.Writer, accounts []config.Account, id identity.Identity) {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts configured yet.")
		fmt.Fprintln(w, "\nAdd your first account with: gitas add")
		return
	}

	fmt.Fprintln(w, "\nConfigured accounts:")
	fmt.Fprintln(w)

	for _, account := range accounts {
		indicator := " "
		scope := ""
		switch {
		case id.HasLocal() && id.LocalName == account.Username && id.LocalEmail == account.Email:
			indicator = "→"
			scope = "local"
		case id.GlobalName == account.Username && id.GlobalEmail == account.Email:
			indicator = "→"
			scope = "global"
		}

		name := account.Username
		if account.Alias != "" {
			name += ":" + account.Alias
		}

		fmt.Fprintf(w, "%s %-25s %-30s %s\n", indicator, name, "<"+account.Email+">", scope)
	}

	fmt.Fprintln(w)
}
