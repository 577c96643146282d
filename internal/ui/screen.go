package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// Screen owns the terminal for the duration of an interactive view. It
// holds the raw-mode and cursor-visibility state, so it must be closed on
// every exit path; Close is idempotent for that reason. Output is
// buffered and only hits the terminal on Flush.
type Screen struct {
	in     io.Reader
	out    *bufio.Writer
	fd     int
	state  *term.State
	closed bool
}

// NewScreen puts the terminal into raw input mode and hides the cursor.
// Raw mode is best-effort: if it cannot be enabled the view still runs,
// just with degraded input handling.
func NewScreen() *Screen {
	fd := int(os.Stdin.Fd())
	s := &Screen{
		in:  os.Stdin,
		out: bufio.NewWriter(colorable.NewColorableStdout()),
		fd:  fd,
	}
	if state, err := term.MakeRaw(fd); err == nil {
		s.state = state
	}
	s.HideCursor()
	s.Flush()
	return s
}

// newScreen builds a screen over arbitrary reader/writer pairs without
// touching terminal modes. Used by tests.
func newScreen(in io.Reader, out io.Writer) *Screen {
	return &Screen{in: in, out: bufio.NewWriter(out), fd: -1}
}

// Close restores cursor visibility and the previous terminal mode.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.ShowCursor()
	s.Flush()
	if s.state != nil {
		term.Restore(s.fd, s.state)
		s.state = nil
	}
}

// Width returns the terminal width in columns, defaulting to 80.
func (s *Screen) Width() int {
	if s.fd >= 0 {
		if w, _, err := term.GetSize(s.fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// ReadKey blocks until the next key press and decodes it. This is the
// only suspension point in the interactive view.
func (s *Screen) ReadKey() (Key, error) {
	buf := make([]byte, 64)
	for {
		n, err := s.in.Read(buf)
		if err != nil {
			return Key{}, err
		}
		if key := parseKey(buf[:n]); key.Code != KeyNone {
			return key, nil
		}
	}
}

// HideCursor hides the terminal cursor.
func (s *Screen) HideCursor() {
	s.out.WriteString("\x1b[?25l")
}

// ShowCursor makes the terminal cursor visible.
func (s *Screen) ShowCursor() {
	s.out.WriteString("\x1b[?25h")
}

// MoveUp moves the cursor up n lines.
func (s *Screen) MoveUp(n int) {
	if n > 0 {
		fmt.Fprintf(s.out, "\x1b[%dA", n)
	}
}

// ClearLine clears the current line and returns the cursor to column 0.
func (s *Screen) ClearLine() {
	s.out.WriteString("\r\x1b[2K")
}

// ClearToEnd clears from the cursor to the end of the screen.
func (s *Screen) ClearToEnd() {
	s.out.WriteString("\x1b[0J")
}

// WriteString writes text without a line terminator.
func (s *Screen) WriteString(text string) {
	s.out.WriteString(text)
}

// WriteLine writes text followed by an explicit CRLF. Raw mode disables
// output post-processing, so a bare newline would not return the carriage.
func (s *Screen) WriteLine(text string) {
	s.out.WriteString(text)
	s.out.WriteString("\r\n")
}

// Flush writes all buffered output to the terminal. Painting once per
// logical frame is what keeps the view flicker-free.
func (s *Screen) Flush() {
	s.out.Flush()
}
