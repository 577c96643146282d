package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Configuration scopes. ScopeEffective is the value git would actually
// resolve, with local overriding global.
const (
	ScopeLocal     = "local"
	ScopeGlobal    = "global"
	ScopeEffective = "effective"
)

// Client wraps invocations of the git binary.
type Client struct{}

// IsInstalled checks if git is installed
func IsInstalled() bool {
	cmd := exec.Command("git", "--version")
	return cmd.Run() == nil
}

// ConfigGet reads a git config value in the given scope. Returns false
// when the key is unset or empty.
func (Client) ConfigGet(key, scope string) (string, bool) {
	args := []string{"config"}
	if flag := scopeFlag(scope); flag != "" {
		args = append(args, flag)
	}
	args = append(args, "--get", key)

	output, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", false
	}
	val := strings.TrimSpace(string(output))
	if val == "" {
		return "", false
	}
	return val, true
}

// ConfigSet writes a git config value. A failure here means the identity
// switch cannot be upheld, so the error propagates to the caller.
func (Client) ConfigSet(key, value, scope string) error {
	flag := scopeFlag(scope)
	if flag == "" {
		flag = "--global"
	}
	cmd := exec.Command("git", "config", flag, key, value)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config %s failed: %s: %w", key, strings.TrimSpace(string(output)), err)
	}
	return nil
}

// ConfigUnset removes a git config key. Best-effort: the key may not exist.
func (Client) ConfigUnset(key, scope string) {
	flag := scopeFlag(scope)
	if flag == "" {
		flag = "--global"
	}
	exec.Command("git", "config", flag, "--unset", key).Run()
}

// Toplevel returns the root of the repository containing the working
// directory, if any.
func (Client) Toplevel() (string, bool) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", false
	}
	val := strings.TrimSpace(string(output))
	if val == "" {
		return "", false
	}
	return val, true
}

// HelperWarning reports a hazard in the effective credential.helper
// configuration: an unset helper means git will not store tokens at all,
// and the cache helper forgets them when it expires.
func (c Client) HelperWarning() (string, bool) {
	helper, ok := c.ConfigGet("credential.helper", ScopeEffective)
	if !ok {
		return "No credential.helper set. Git may not store your tokens.", true
	}
	if strings.Contains(helper, "cache") {
		return fmt.Sprintf("credential.helper is set to '%s'. Tokens may not persist.", helper), true
	}
	return "", false
}

func scopeFlag(scope string) string {
	switch scope {
	case ScopeLocal:
		return "--local"
	case ScopeGlobal:
		return "--global"
	default:
		return ""
	}
}
