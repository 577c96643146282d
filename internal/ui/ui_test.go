package ui

import (
	"io"
	"regexp"
	"strings"
)

// Common key byte sequences as a raw terminal delivers them.
const (
	keyUp    = "\x1b[A"
	keyDown  = "\x1b[B"
	keyDel   = "\x1b[3~"
	keyEnter = "\r"
	keyEsc   = "\x1b"
	keyBS    = "\x7f"
	keyCtrlC = "\x03"
	keyCtrlU = "\x15"
)

// keyScript is a reader that delivers one key press per Read call,
// mimicking how a terminal in raw mode hands over input, then EOF.
type keyScript struct {
	events []string
	pos    int
}

func script(keys ...string) *keyScript {
	return &keyScript{events: keys}
}

func (k *keyScript) Read(p []byte) (int, error) {
	if k.pos >= len(k.events) {
		return 0, io.EOF
	}
	n := copy(p, k.events[k.pos])
	k.pos++
	return n, nil
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z~]`)

// stripANSI removes escape sequences, leaving only printable content.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func countOccurrences(s, sub string) int {
	return strings.Count(s, sub)
}
