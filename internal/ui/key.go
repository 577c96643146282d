package ui

import (
	"unicode"
	"unicode/utf8"
)

// KeyCode identifies a decoded key press.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyCtrlC
	KeyCtrlU
)

// Key is one decoded terminal key press. Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// parseKey decodes the raw bytes of a single key press. Raw mode delivers
// escape sequences in one read, so a lone ESC byte is the Esc key itself.
func parseKey(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}

	if b[0] == 0x1b {
		if len(b) >= 3 && b[1] == '[' {
			switch b[2] {
			case 'A':
				return Key{Code: KeyUp}
			case 'B':
				return Key{Code: KeyDown}
			case '3':
				if len(b) >= 4 && b[3] == '~' {
					return Key{Code: KeyDelete}
				}
			}
			return Key{}
		}
		return Key{Code: KeyEsc}
	}

	switch b[0] {
	case '\r', '\n':
		return Key{Code: KeyEnter}
	case 0x7f, 0x08:
		return Key{Code: KeyBackspace}
	case 0x03:
		return Key{Code: KeyCtrlC}
	case 0x15:
		return Key{Code: KeyCtrlU}
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Key{}
	}
	if !unicode.IsPrint(r) {
		return Key{}
	}
	return Key{Code: KeyRune, Rune: r}
}
