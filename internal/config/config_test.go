package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.json"))
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	if len(cfg.Accounts) != 0 {
		t.Errorf("expected empty accounts, got %d", len(cfg.Accounts))
	}
}

func TestLoadConfigFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfigFrom(path)
	if len(cfg.Accounts) != 0 {
		t.Errorf("corrupt file should load as empty, got %d accounts", len(cfg.Accounts))
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	cfg := &Config{Accounts: []Account{
		{Username: "alice", Email: "a@x.com"},
		{Username: "bob", Email: "b@y.com", Alias: "work", Host: "gitlab.com"},
	}}

	if err := SaveConfigTo(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded := LoadConfigFrom(path)
	if len(loaded.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(loaded.Accounts))
	}
	if loaded.Accounts[0] != cfg.Accounts[0] || loaded.Accounts[1] != cfg.Accounts[1] {
		t.Errorf("roundtrip mismatch: %+v", loaded.Accounts)
	}
}

func TestOptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(Account{Username: "alice", Email: "a@x.com"})
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"alias", "host"} {
		if strings.Contains(string(data), field) {
			t.Errorf("empty %s should be omitted, got %s", field, data)
		}
	}
}

func TestFindAccountIndex(t *testing.T) {
	cfg := &Config{Accounts: []Account{
		{Username: "bob", Email: "b@x.com"},
		{Username: "bob", Email: "b@w.com", Alias: "work"},
	}}

	tests := []struct {
		username, alias string
		want            int
	}{
		{"bob", "", 0},
		{"bob", "work", 1},
		{"bob", "home", -1},
		{"alice", "", -1},
	}
	for _, tt := range tests {
		if got := cfg.FindAccountIndex(tt.username, tt.alias); got != tt.want {
			t.Errorf("FindAccountIndex(%q, %q) = %d, want %d", tt.username, tt.alias, got, tt.want)
		}
	}
}

func TestFindAccount(t *testing.T) {
	cfg := &Config{Accounts: []Account{
		{Username: "alice", Email: "a@x.com"},
		{Username: "bob", Email: "b@w.com", Alias: "work"},
	}}

	tests := []struct {
		identifier string
		want       string // username of the match, empty for no match
	}{
		{"alice", "alice"},
		{"bob", "bob"},
		{"work", "bob"},
		{"bob:work", "bob"},
		{"charlie", ""},
	}
	for _, tt := range tests {
		got := cfg.FindAccount(tt.identifier)
		if tt.want == "" {
			if got != nil {
				t.Errorf("FindAccount(%q) = %+v, want nil", tt.identifier, got)
			}
			continue
		}
		if got == nil || got.Username != tt.want {
			t.Errorf("FindAccount(%q) = %+v, want username %q", tt.identifier, got, tt.want)
		}
	}
}

func TestUpsertAccount(t *testing.T) {
	cfg := NewConfig()

	if replaced := cfg.UpsertAccount(Account{Username: "bob", Email: "b@x.com"}); replaced {
		t.Error("first upsert should append, not replace")
	}
	if replaced := cfg.UpsertAccount(Account{Username: "bob", Email: "new@x.com"}); !replaced {
		t.Error("second upsert with same key should replace")
	}

	if len(cfg.Accounts) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(cfg.Accounts))
	}
	if cfg.Accounts[0].Email != "new@x.com" {
		t.Errorf("expected latest field values, got %+v", cfg.Accounts[0])
	}

	// A different alias is a different identity key.
	cfg.UpsertAccount(Account{Username: "bob", Email: "w@x.com", Alias: "work"})
	if len(cfg.Accounts) != 2 {
		t.Errorf("aliased account should append, got %d entries", len(cfg.Accounts))
	}
}

func TestRemoveAccount(t *testing.T) {
	cfg := &Config{Accounts: []Account{
		{Username: "a", Email: "a@x.com"},
		{Username: "b", Email: "b@x.com"},
		{Username: "c", Email: "c@x.com"},
	}}

	cfg.RemoveAccount(1)
	if len(cfg.Accounts) != 2 || cfg.Accounts[0].Username != "a" || cfg.Accounts[1].Username != "c" {
		t.Errorf("unexpected accounts after removal: %+v", cfg.Accounts)
	}

	cfg.RemoveAccount(5) // out of range is a no-op
	if len(cfg.Accounts) != 2 {
		t.Errorf("out-of-range removal should be a no-op")
	}
}

func TestHostOrDefault(t *testing.T) {
	if got := (Account{}).HostOrDefault(); got != "github.com" {
		t.Errorf("HostOrDefault() = %q, want github.com", got)
	}
	if got := (Account{Host: "gitlab.com"}).HostOrDefault(); got != "gitlab.com" {
		t.Errorf("HostOrDefault() = %q, want gitlab.com", got)
	}
}

func TestLabel(t *testing.T) {
	if got := (Account{Username: "bob", Email: "b@x.com"}).Label(); got != "bob <b@x.com>" {
		t.Errorf("Label() = %q", got)
	}
	if got := (Account{Username: "bob", Email: "b@x.com", Alias: "work"}).Label(); got != "bob:work <b@x.com>" {
		t.Errorf("Label() = %q", got)
	}
}
