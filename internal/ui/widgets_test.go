package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestSelectNavigation(t *testing.T) {
	items := []string{"one", "two", "three"}

	tests := []struct {
		name string
		keys []string
		want int
		ok   bool
	}{
		{"default confirmed", []string{keyEnter}, 0, true},
		{"down moves", []string{keyDown, keyEnter}, 1, true},
		{"up wraps to last", []string{keyUp, keyEnter}, 2, true},
		{"down wraps to first", []string{keyDown, keyDown, keyDown, keyEnter}, 0, true},
		{"j moves down", []string{"j", keyEnter}, 1, true},
		{"k wraps up", []string{"k", keyEnter}, 2, true},
		{"esc cancels", []string{keyDown, keyEsc}, 0, false},
		{"q cancels", []string{"q"}, 0, false},
		{"ctrl-c cancels", []string{keyCtrlC}, 0, false},
		{"eof cancels", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(script(tt.keys...), &bytes.Buffer{})
			got, ok := Select(s, "Pick", items, 0)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Select = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSelectDefaultIndex(t *testing.T) {
	s := newScreen(script(keyEnter), &bytes.Buffer{})
	got, ok := Select(s, "Pick", []string{"a", "b", "c"}, 2)
	if !ok || got != 2 {
		t.Errorf("Select = (%d, %v), want (2, true)", got, ok)
	}

	// An out-of-range default falls back to the first item.
	s = newScreen(script(keyEnter), &bytes.Buffer{})
	got, ok = Select(s, "Pick", []string{"a", "b"}, 9)
	if !ok || got != 0 {
		t.Errorf("Select = (%d, %v), want (0, true)", got, ok)
	}
}

func TestSelectClearsItselfOnExit(t *testing.T) {
	var out bytes.Buffer
	s := newScreen(script(keyEnter), &out)
	Select(s, "Pick", []string{"a", "b"}, 0)

	// Prompt plus two items were painted; dismissal moves back over the
	// three lines and wipes them.
	if !strings.Contains(out.String(), "\x1b[3A\x1b[0J") {
		t.Error("menu should leave no trace once dismissed")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		defaultYes bool
		want, ok   bool
	}{
		{"y", []string{"y"}, false, true, true},
		{"upper Y", []string{"Y"}, false, true, true},
		{"n", []string{"n"}, true, false, true},
		{"enter takes default true", []string{keyEnter}, true, true, true},
		{"enter takes default false", []string{keyEnter}, false, false, true},
		{"esc cancels", []string{keyEsc}, true, false, false},
		{"ctrl-c cancels", []string{keyCtrlC}, true, false, false},
		{"other keys ignored", []string{"x", "z", "y"}, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := newScreen(script(tt.keys...), &out)
			got, ok := Confirm(s, "Sure?", tt.defaultYes)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Confirm = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConfirmHint(t *testing.T) {
	var out bytes.Buffer
	Confirm(newScreen(script(keyEnter), &out), "Sure?", true)
	if !strings.Contains(stripANSI(out.String()), "[Y/n]") {
		t.Error("default-yes confirm should show [Y/n]")
	}

	out.Reset()
	Confirm(newScreen(script(keyEnter), &out), "Sure?", false)
	if !strings.Contains(stripANSI(out.String()), "[y/N]") {
		t.Error("default-no confirm should show [y/N]")
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		name string
		def  string
		keys []string
		want string
		ok   bool
	}{
		{"commit default", "abc", []string{keyEnter}, "abc", true},
		{"append", "ab", []string{"c", "d", keyEnter}, "abcd", true},
		{"backspace", "abc", []string{keyBS, keyEnter}, "ab", true},
		{"backspace on empty", "", []string{keyBS, "x", keyEnter}, "x", true},
		{"ctrl-u clears", "abc", []string{keyCtrlU, "z", keyEnter}, "z", true},
		{"esc cancels", "abc", []string{"d", keyEsc}, "", false},
		{"ctrl-c cancels", "abc", []string{keyCtrlC}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(script(tt.keys...), &bytes.Buffer{})
			got, ok := Input(s, "Value", tt.def)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Input = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInputCursorVisibility(t *testing.T) {
	var out bytes.Buffer
	Input(newScreen(script(keyEnter), &out), "Value", "")

	got := out.String()
	show := strings.Index(got, "\x1b[?25h")
	hide := strings.LastIndex(got, "\x1b[?25l")
	if show < 0 || hide < 0 || hide < show {
		t.Error("cursor should be shown for the duration of input and hidden on exit")
	}
}

func TestPasswordMasksEcho(t *testing.T) {
	var out bytes.Buffer
	s := newScreen(script("s", "3", "c", keyEnter), &out)

	got, ok := Password(s, "Token")
	if !ok || got != "s3c" {
		t.Fatalf("Password = (%q, %v), want (s3c, true)", got, ok)
	}

	plain := stripANSI(out.String())
	if strings.Contains(plain, "s3c") {
		t.Error("password must never be echoed literally")
	}
	if !strings.Contains(plain, "***") {
		t.Error("expected one mask character per typed rune")
	}
}

func TestPasswordStartsEmpty(t *testing.T) {
	s := newScreen(script(keyEnter), &bytes.Buffer{})
	got, ok := Password(s, "Token")
	if !ok || got != "" {
		t.Errorf("Password = (%q, %v), want empty commit", got, ok)
	}
}

func TestShowStatus(t *testing.T) {
	var out bytes.Buffer
	s := newScreen(script(), &out)

	ShowStatus(s, []string{"one", "two"}, 0)

	got := out.String()
	plain := stripANSI(got)
	if !strings.Contains(plain, "one") || !strings.Contains(plain, "two") {
		t.Error("status lines missing from output")
	}
	// The banner clears exactly the two lines it printed.
	if n := countOccurrences(got, "\x1b[2A"); n != 2 {
		t.Errorf("expected 2 move-up-by-2 sequences (clear and reposition), got %d", n)
	}
	if n := countOccurrences(got, "\x1b[2K"); n != 2 {
		t.Errorf("expected 2 line clears, got %d", n)
	}
}
