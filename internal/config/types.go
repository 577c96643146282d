package config

// DefaultHost is the git host assumed when an account has none stored.
const DefaultHost = "github.com"

// Account represents one configured git identity. The secret token is not
// stored here; it lives in the system keychain keyed by username and alias.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Alias    string `json:"alias,omitempty"` // Optional label disambiguating accounts that share a username
	Host     string `json:"host,omitempty"`  // Empty means github.com; the default is never stored
}

// Config represents the gitas configuration. Account order is meaningful:
// it is the display order of the interactive list.
type Config struct {
	Accounts []Account `json:"accounts"`
}

// HostOrDefault returns the account's host, falling back to github.com.
func (a Account) HostOrDefault() string {
	if a.Host == "" {
		return DefaultHost
	}
	return a.Host
}

// Label returns the display label for an account, e.g. "bob:work <b@w.com>".
func (a Account) Label() string {
	if a.Alias != "" {
		return a.Username + ":" + a.Alias + " <" + a.Email + ">"
	}
	return a.Username + " <" + a.Email + ">"
}
