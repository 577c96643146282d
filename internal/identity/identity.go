package identity

import (
	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/git"
)

// AliasKey is the custom git config key gitas uses to record which alias
// an identity was switched with, distinct from the standard identity keys.
const AliasKey = "gitas.alias"

// ConfigGetter reads a single git config value in a scope.
type ConfigGetter interface {
	ConfigGet(key, scope string) (string, bool)
}

// Identity is a point-in-time view of the git author configuration.
// Empty fields are unset. It is re-fetched on demand and never cached
// beyond one render cycle.
type Identity struct {
	GlobalName  string
	GlobalEmail string
	GlobalAlias string
	LocalName   string
	LocalEmail  string
	LocalAlias  string
}

// Fetch reads the current global and local identity from git config.
func Fetch(src ConfigGetter) Identity {
	get := func(key, scope string) string {
		val, _ := src.ConfigGet(key, scope)
		return val
	}
	return Identity{
		GlobalName:  get("user.name", git.ScopeGlobal),
		GlobalEmail: get("user.email", git.ScopeGlobal),
		GlobalAlias: get(AliasKey, git.ScopeGlobal),
		LocalName:   get("user.name", git.ScopeLocal),
		LocalEmail:  get("user.email", git.ScopeLocal),
		LocalAlias:  get(AliasKey, git.ScopeLocal),
	}
}

// HasLocal reports whether any local identity is configured.
func (id Identity) HasLocal() bool {
	return id.LocalName != "" || id.LocalEmail != ""
}

// Unmanaged is a name/email pair found in git config but absent from the
// configured accounts.
type Unmanaged struct {
	Name  string
	Email string
	Scope string
}

// ComputeUnmanaged returns identities present in git's global or local
// config that no account covers. Accounts match on (username, email);
// a local identity that coincides with the global one is suppressed.
func ComputeUnmanaged(id Identity, accounts []config.Account) []Unmanaged {
	managed := func(name, email string) bool {
		for _, a := range accounts {
			if a.Username == name && a.Email == email {
				return true
			}
		}
		return false
	}

	var unmanaged []Unmanaged

	if id.GlobalName != "" && id.GlobalEmail != "" && !managed(id.GlobalName, id.GlobalEmail) {
		unmanaged = append(unmanaged, Unmanaged{Name: id.GlobalName, Email: id.GlobalEmail, Scope: "global"})
	}

	if id.LocalName != "" && id.LocalEmail != "" {
		listed := len(unmanaged) > 0 &&
			unmanaged[0].Name == id.LocalName && unmanaged[0].Email == id.LocalEmail
		if !managed(id.LocalName, id.LocalEmail) && !listed {
			unmanaged = append(unmanaged, Unmanaged{Name: id.LocalName, Email: id.LocalEmail, Scope: "local"})
		}
	}

	return unmanaged
}
