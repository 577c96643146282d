package secret

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestMakeKey(t *testing.T) {
	tests := []struct {
		username, alias, want string
	}{
		{"bob", "", "bob"},
		{"bob", "work", "bob::work"},
	}
	for _, tt := range tests {
		if got := MakeKey(tt.username, tt.alias); got != tt.want {
			t.Errorf("MakeKey(%q, %q) = %q, want %q", tt.username, tt.alias, got, tt.want)
		}
	}
}

func TestKeyringRoundtrip(t *testing.T) {
	keyring.MockInit()
	store := Keyring{}

	if err := store.Set("bob", "work", "tok123"); err != nil {
		t.Fatal(err)
	}

	token, ok := store.Get("bob", "work")
	if !ok || token != "tok123" {
		t.Errorf("Get = (%q, %v), want (tok123, true)", token, ok)
	}

	// The aliased entry must not shadow the bare one.
	if _, ok := store.Get("bob", ""); ok {
		t.Error("Get without alias should miss the aliased entry")
	}

	store.Delete("bob", "work")
	if _, ok := store.Get("bob", "work"); ok {
		t.Error("token should be gone after Delete")
	}

	// Deleting a nonexistent entry is best-effort, not a panic.
	store.Delete("nobody", "")
}
