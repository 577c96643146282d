package secret

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const serviceName = "gitas"

// MakeKey builds the keychain entry key for an account. Accounts sharing
// a username are disambiguated by alias.
func MakeKey(username, alias string) string {
	if alias != "" {
		return username + "::" + alias
	}
	return username
}

// Keyring stores account tokens in the system keychain.
type Keyring struct{}

// Set stores a token for the account.
func (Keyring) Set(username, alias, token string) error {
	if err := keyring.Set(serviceName, MakeKey(username, alias), token); err != nil {
		return fmt.Errorf("failed to store token in keychain: %w", err)
	}
	return nil
}

// Get retrieves the token for the account. A missing entry and a keychain
// failure both read as "no token"; only the failure is logged.
func (Keyring) Get(username, alias string) (string, bool) {
	token, err := keyring.Get(serviceName, MakeKey(username, alias))
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read token from keychain: %v\n", err)
		}
		return "", false
	}
	return token, true
}

// Delete removes the token for the account. Best-effort: the entry may
// not exist.
func (Keyring) Delete(username, alias string) {
	_ = keyring.Delete(serviceName, MakeKey(username, alias))
}
