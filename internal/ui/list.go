package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gitas/gitas/internal/config"
	"github.com/gitas/gitas/internal/git"
	"github.com/gitas/gitas/internal/identity"
)

// GitClient is the slice of git behavior the list view needs.
type GitClient interface {
	ConfigGet(key, scope string) (string, bool)
	ConfigSet(key, value, scope string) error
	ConfigUnset(key, scope string)
	Toplevel() (string, bool)
	CredentialApprove(username, token, host, url string)
	CredentialReject(host string)
	HelperWarning() (string, bool)
}

// SecretStore holds account tokens keyed by (username, alias).
type SecretStore interface {
	Set(username, alias, token string) error
	Get(username, alias string) (string, bool)
	Delete(username, alias string)
}

// ListView is the interactive account list. It owns the config for the
// duration of the session: cursor movement, switching, editing and
// deleting all run synchronously between key presses, and every mutation
// is persisted before the loop continues.
type ListView struct {
	screen    *Screen
	frame     *Frame
	cfg       *config.Config
	git       GitClient
	secrets   SecretStore
	version   string
	id        identity.Identity
	unmanaged []identity.Unmanaged
	cursor    int

	save    func(*config.Config) error
	holdFor func(statusLines int) time.Duration
}

// NewListView builds the interactive list over an open screen.
func NewListView(s *Screen, cfg *config.Config, g GitClient, secrets SecretStore, version string) *ListView {
	v := &ListView{
		screen:  s,
		frame:   NewFrame(s),
		cfg:     cfg,
		git:     g,
		secrets: secrets,
		version: version,
		save:    config.SaveConfig,
		holdFor: func(statusLines int) time.Duration {
			if statusLines > 3 {
				return 2500 * time.Millisecond
			}
			return 1500 * time.Millisecond
		},
	}
	v.refresh()
	return v
}

// Run drives the key loop until the user quits. The frame is cleared on
// every exit path; restoring the terminal itself is the screen's job.
func (v *ListView) Run() error {
	defer v.frame.Clear()

	v.render()

	for {
		key, err := v.screen.ReadKey()
		if err != nil {
			return nil
		}

		switch {
		case key.Code == KeyUp || key.Rune == 'k':
			v.moveCursor(-1)
			v.render()
		case key.Code == KeyDown || key.Rune == 'j':
			v.moveCursor(1)
			v.render()
		case key.Code == KeyEnter:
			switched, err := v.handleSwitch()
			if err != nil {
				return err
			}
			if switched {
				v.refresh()
			}
			v.render()
		case key.Code == KeyBackspace || key.Code == KeyDelete:
			if v.handleDelete() {
				v.refresh()
			}
			v.render()
		case key.Rune == 'e':
			if v.handleEdit() {
				v.refresh()
			}
			v.render()
		case key.Rune == 'q' || key.Code == KeyEsc || key.Code == KeyCtrlC:
			return nil
		}
	}
}

// refresh re-fetches the git identity snapshot and recomputes the
// unmanaged rows. The cursor is clamped in case the combined list shrank.
func (v *ListView) refresh() {
	v.id = identity.Fetch(v.git)
	v.unmanaged = identity.ComputeUnmanaged(v.id, v.cfg.Accounts)

	total := len(v.cfg.Accounts) + len(v.unmanaged)
	if total == 0 {
		v.cursor = 0
	} else if v.cursor >= total {
		v.cursor = total - 1
	}
}

func (v *ListView) moveCursor(delta int) {
	total := len(v.cfg.Accounts) + len(v.unmanaged)
	if total == 0 {
		v.cursor = 0
		return
	}
	v.cursor = ((v.cursor+delta)%total + total) % total
}

// onAccount reports whether the cursor rests on an account row; rows
// over unmanaged identities are view-only.
func (v *ListView) onAccount() bool {
	return v.cursor < len(v.cfg.Accounts)
}

func (v *ListView) render() {
	v.frame.Render(v.buildFrame())
}

func (v *ListView) buildFrame() []string {
	frame := []string{""}
	frame = append(frame, fmt.Sprintf("  %s %s %s",
		bold("GITAS"), dim("(GitHub Account Switch)"), dim("v"+v.version)))
	frame = append(frame, "  "+dim("↑↓ select · Enter switch · e edit · Backspace remove · q quit"))
	frame = append(frame, "")

	maxWidth := v.screen.Width() - 4

	nameWidth := len("Username")
	emailWidth := len("Email")
	for _, a := range v.cfg.Accounts {
		if n := rawNameLen(a); n > nameWidth {
			nameWidth = n
		}
		if n := len(a.Email) + 2; n > emailWidth {
			emailWidth = n
		}
	}
	for _, u := range v.unmanaged {
		if n := len(u.Name); n > nameWidth {
			nameWidth = n
		}
		if n := len(u.Email) + 2; n > emailWidth {
			emailWidth = n
		}
	}

	frame = append(frame, fmt.Sprintf("    %s  %s  %s",
		dim(pad("Username", nameWidth)), dim(pad("Email", emailWidth)), dim("Scope")))

	sepLen := nameWidth + emailWidth + 10
	if sepLen > maxWidth {
		sepLen = maxWidth
	}
	separator := "  " + dim(strings.Repeat("─", sepLen))
	frame = append(frame, separator)

	if len(v.cfg.Accounts) == 0 && len(v.unmanaged) == 0 {
		frame = append(frame, "  "+dim("No accounts found."))
	} else {
		for i, account := range v.cfg.Accounts {
			frame = append(frame, v.formatAccountLine(i, account, nameWidth, emailWidth))
		}
		for i, u := range v.unmanaged {
			frame = append(frame, v.formatUnmanagedLine(i, u, nameWidth, emailWidth))
		}
	}

	frame = append(frame, separator)
	frame = append(frame, "")
	return frame
}

func (v *ListView) formatAccountLine(index int, account config.Account, nameWidth, emailWidth int) string {
	isGlobal := v.id.GlobalName == account.Username &&
		v.id.GlobalEmail == account.Email &&
		v.id.GlobalAlias == account.Alias
	isLocal := v.id.HasLocal() &&
		v.id.LocalName == account.Username &&
		v.id.LocalEmail == account.Email &&
		v.id.LocalAlias == account.Alias

	pointer := " "
	if index == v.cursor {
		pointer = yellowBold(">")
	}

	marker := dim("○")
	scope := ""
	displayName := account.Username
	switch {
	case isLocal:
		marker = greenBold("●")
		scope = green("local")
		displayName = greenBold(account.Username)
	case isGlobal:
		marker = cyanBold("●")
		scope = cyan("global")
		displayName = cyanBold(account.Username)
	}
	if account.Alias != "" {
		displayName += dim(":" + account.Alias)
	}

	namePad := strings.Repeat(" ", max(0, nameWidth-rawNameLen(account)))
	email := "<" + account.Email + ">"
	emailPad := strings.Repeat(" ", max(0, emailWidth-len(email)))

	return fmt.Sprintf("%s %s %s%s  %s%s  %s",
		pointer, marker, displayName, namePad, dim(email), emailPad, scope)
}

func (v *ListView) formatUnmanagedLine(index int, u identity.Unmanaged, nameWidth, emailWidth int) string {
	pointer := " "
	if len(v.cfg.Accounts)+index == v.cursor {
		pointer = yellowBold(">")
	}

	namePad := strings.Repeat(" ", max(0, nameWidth-len(u.Name)))
	email := "<" + u.Email + ">"
	emailPad := strings.Repeat(" ", max(0, emailWidth-len(email)))

	return fmt.Sprintf("%s %s %s%s  %s%s  %s %s",
		pointer, yellowBold("●"), yellow(u.Name), namePad,
		dim(email), emailPad, yellow(u.Scope), dim("(unmanaged)"))
}

// handleSwitch runs the scope menu and applies the identity switch. The
// returned bool drives the identity refresh; the error is fatal (a git
// config write failed, so the switch guarantee cannot be upheld).
func (v *ListView) handleSwitch() (bool, error) {
	if !v.onAccount() {
		return false, nil
	}
	account := v.cfg.Accounts[v.cursor]

	localLabel := "local"
	if path, ok := v.git.Toplevel(); ok {
		localLabel = "local " + dim("("+path+")")
	}
	items := []string{"global", localLabel, dim("Cancel")}

	prompt := fmt.Sprintf("Switch to '%s'. Apply to", cyan(account.Username))
	selection, ok := Select(v.screen, prompt, items, 0)
	if !ok || selection > 1 {
		return false, nil
	}

	scope := git.ScopeGlobal
	if selection == 1 {
		scope = git.ScopeLocal
	}
	if err := v.applySwitch(account, scope); err != nil {
		return false, err
	}
	return true, nil
}

func (v *ListView) applySwitch(account config.Account, scope string) error {
	if err := v.git.ConfigSet("user.name", account.Username, scope); err != nil {
		return err
	}
	if err := v.git.ConfigSet("user.email", account.Email, scope); err != nil {
		return err
	}

	if account.Alias != "" {
		if err := v.git.ConfigSet(identity.AliasKey, account.Alias, scope); err != nil {
			return err
		}
	} else {
		v.git.ConfigUnset(identity.AliasKey, scope)
	}

	// Pin the helper to this username so a previously cached token for a
	// different account on the same host cannot stick.
	host := account.HostOrDefault()
	credKey := fmt.Sprintf("credential.https://%s.username", host)
	if err := v.git.ConfigSet(credKey, account.Username, scope); err != nil {
		return err
	}

	var status []string

	token, _ := v.secrets.Get(account.Username, account.Alias)
	if token != "" {
		url := ""
		if scope == git.ScopeLocal {
			url, _ = v.git.ConfigGet("remote.origin.url", git.ScopeLocal)
			if url != "" {
				if err := v.git.ConfigSet("credential.useHttpPath", "true", git.ScopeLocal); err != nil {
					return err
				}
			}
		}

		if warning, ok := v.git.HelperWarning(); ok {
			status = append(status, "  "+yellow("⚠")+" "+warning)
		}

		// Reject first: a stale credential for the host would otherwise
		// shadow the one we are about to approve.
		v.git.CredentialReject(host)
		v.git.CredentialApprove(account.Username, token, host, url)
	} else {
		status = append(status, fmt.Sprintf("  %s No token found for %s. Git may prompt for authentication.",
			yellow("⚠"), cyan(account.Username)))
	}

	status = append(status, "")
	status = append(status, fmt.Sprintf("%s   Switched to '%s' (%s)",
		green("✔"), cyan(account.Username), green(scope)))

	ShowStatus(v.screen, status, v.holdFor(len(status)))
	return nil
}

// handleDelete removes the account under the cursor together with its
// keychain entry. The two deletions are not transactional, but both are
// always attempted.
func (v *ListView) handleDelete() bool {
	if !v.onAccount() {
		return false
	}
	account := v.cfg.Accounts[v.cursor]

	prompt := fmt.Sprintf("Remove account '%s'?", yellow(account.Username))
	confirmed, ok := Confirm(v.screen, prompt, false)
	if !ok || !confirmed {
		return false
	}

	v.secrets.Delete(account.Username, account.Alias)
	v.cfg.RemoveAccount(v.cursor)
	v.persist()

	if v.cursor >= len(v.cfg.Accounts) && v.cursor > 0 {
		v.cursor--
	}
	return true
}

// handleEdit runs the field-edit menu over an in-memory draft. Nothing
// is persisted, and no secret is touched, until Save Changes is chosen.
func (v *ListView) handleEdit() bool {
	if !v.onAccount() {
		return false
	}

	draft := v.cfg.Accounts[v.cursor]
	original := draft
	token, _ := v.secrets.Get(original.Username, original.Alias)

	for {
		tokenDisplay := "none"
		if token != "" {
			tokenDisplay = "*******"
		}
		items := []string{
			dim(pad("Username:", 10)) + " " + draft.Username,
			dim(pad("Email:", 10)) + " " + draft.Email,
			dim(pad("Alias:", 10)) + " " + orNone(draft.Alias),
			dim(pad("Host:", 10)) + " " + draft.HostOrDefault(),
			dim(pad("Token:", 10)) + " " + tokenDisplay,
			green("Save Changes"),
			dim("Cancel"),
		}

		selection, ok := Select(v.screen, "Edit Account", items, 0)
		if !ok {
			return false
		}

		switch selection {
		case 0:
			if val, ok := Input(v.screen, "New Username", draft.Username); ok && val != "" {
				draft.Username = val
			}
		case 1:
			if val, ok := Input(v.screen, "New Email", draft.Email); ok && val != "" {
				draft.Email = val
			}
		case 2:
			if val, ok := Input(v.screen, "New Alias", draft.Alias); ok {
				draft.Alias = val
			}
		case 3:
			if val, ok := Input(v.screen, "New Host", draft.HostOrDefault()); ok {
				if val == config.DefaultHost {
					val = ""
				}
				draft.Host = val
			}
		case 4:
			if val, ok := Password(v.screen, "New Token/PAT"); ok {
				token = val
			}
		case 5:
			// The secret key is derived from (username, alias): when either
			// changed, drop the entry under the original key first so no
			// orphan is left behind.
			if original.Username != draft.Username || original.Alias != draft.Alias {
				v.secrets.Delete(original.Username, original.Alias)
			}
			if token != "" {
				if err := v.secrets.Set(draft.Username, draft.Alias, token); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			} else {
				v.secrets.Delete(draft.Username, draft.Alias)
			}

			v.cfg.Accounts[v.cursor] = draft
			v.persist()
			return true
		case 6:
			return false
		}
	}
}

func (v *ListView) persist() {
	if err := v.save(v.cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
	}
}

func rawNameLen(a config.Account) int {
	n := len(a.Username)
	if a.Alias != "" {
		n += len(a.Alias) + 1
	}
	return n
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
