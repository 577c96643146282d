package ui

import (
	"time"
)

// Widgets consume decoded key presses from the screen and clean up their
// own lines before returning, so the caller's frame is untouched. Every
// widget treats Esc and Ctrl-C as a local cancel, reported through the
// second return value, never as a process signal.

// Select shows an arrow-key menu below the cursor and returns the chosen
// index. Up/k and Down/j move with wraparound, Enter confirms, Esc/q
// cancels.
func Select(s *Screen, prompt string, items []string, defaultIndex int) (int, bool) {
	frame := NewFrame(s)
	pos := defaultIndex
	if pos < 0 || pos >= len(items) {
		pos = 0
	}

	for {
		lines := make([]string, 0, len(items)+1)
		lines = append(lines, "  "+prompt)
		for i, item := range items {
			if i == pos {
				lines = append(lines, "  "+yellowBold(">")+" "+item)
			} else {
				lines = append(lines, "    "+item)
			}
		}
		frame.Render(lines)

		key, err := s.ReadKey()
		if err != nil {
			frame.Clear()
			return 0, false
		}
		switch {
		case key.Code == KeyUp || key.Rune == 'k':
			if pos == 0 {
				pos = len(items) - 1
			} else {
				pos--
			}
		case key.Code == KeyDown || key.Rune == 'j':
			pos = (pos + 1) % len(items)
		case key.Code == KeyEnter:
			frame.Clear()
			return pos, true
		case key.Code == KeyEsc || key.Code == KeyCtrlC || key.Rune == 'q':
			frame.Clear()
			return 0, false
		}
	}
}

// Confirm asks a yes/no question on a single line. Enter takes the
// default, reflected in the [Y/n] hint.
func Confirm(s *Screen, prompt string, defaultYes bool) (bool, bool) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	s.WriteLine("  " + prompt + " " + dim(hint))
	s.Flush()

	done := func() {
		s.MoveUp(1)
		s.ClearLine()
		s.Flush()
	}

	for {
		key, err := s.ReadKey()
		if err != nil {
			done()
			return false, false
		}
		switch {
		case key.Rune == 'y' || key.Rune == 'Y':
			done()
			return true, true
		case key.Rune == 'n' || key.Rune == 'N':
			done()
			return false, true
		case key.Code == KeyEnter:
			done()
			return defaultYes, true
		case key.Code == KeyEsc || key.Code == KeyCtrlC || key.Rune == 'q':
			done()
			return false, false
		}
	}
}

// Input reads a free-form line pre-filled with a default value. Backspace
// deletes, Ctrl-U clears the buffer, Enter commits, Esc cancels.
func Input(s *Screen, prompt, defaultValue string) (string, bool) {
	return lineInput(s, prompt, defaultValue, false)
}

// Password reads a line echoing one mask character per typed rune.
func Password(s *Screen, prompt string) (string, bool) {
	return lineInput(s, prompt, "", true)
}

func lineInput(s *Screen, prompt, initial string, masked bool) (string, bool) {
	value := []rune(initial)

	// The cursor stays visible while the user types.
	s.ShowCursor()

	done := func() {
		s.ClearLine()
		s.HideCursor()
		s.Flush()
	}

	for {
		echo := string(value)
		if masked {
			echo = maskRunes(len(value))
		}
		s.ClearLine()
		s.WriteString("  " + prompt + ": " + echo)
		s.Flush()

		key, err := s.ReadKey()
		if err != nil {
			done()
			return "", false
		}
		switch key.Code {
		case KeyEnter:
			done()
			return string(value), true
		case KeyEsc, KeyCtrlC:
			done()
			return "", false
		case KeyBackspace:
			if len(value) > 0 {
				value = value[:len(value)-1]
			}
		case KeyCtrlU:
			value = value[:0]
		case KeyRune:
			value = append(value, key.Rune)
		}
	}
}

func maskRunes(n int) string {
	mask := make([]byte, n)
	for i := range mask {
		mask[i] = '*'
	}
	return string(mask)
}

// ShowStatus prints the given lines, holds them for the duration, then
// clears exactly those lines. Consumes no key events.
func ShowStatus(s *Screen, lines []string, hold time.Duration) {
	for _, line := range lines {
		s.WriteLine(line)
	}
	s.Flush()

	time.Sleep(hold)
	clearLines(s, len(lines))
}

// clearLines erases the n lines directly above the cursor and puts the
// cursor back where those lines began.
func clearLines(s *Screen, n int) {
	if n == 0 {
		return
	}
	s.MoveUp(n)
	for i := 0; i < n; i++ {
		s.ClearLine()
		s.WriteLine("")
	}
	s.MoveUp(n)
	s.Flush()
}
