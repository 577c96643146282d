package ui

// Frame is a differential renderer over a region of the terminal. Each
// Render overwrites the previous frame in place instead of clearing and
// redrawing, which is what prevents visible flicker, especially on
// Windows terminals. Nested prompts create their own Frame below the
// parent's and clear it when dismissed.
type Frame struct {
	s    *Screen
	prev int
}

// NewFrame creates a renderer positioned at the cursor's current line.
func NewFrame(s *Screen) *Frame {
	return &Frame{s: s}
}

// Render paints the given lines over the previous frame. When the new
// frame is shorter, the surplus lines are cleared individually and the
// cursor moves back over them so it always rests just below the frame.
func (f *Frame) Render(lines []string) {
	f.s.MoveUp(f.prev)

	for _, line := range lines {
		f.s.ClearLine()
		f.s.WriteLine(line)
	}

	if len(lines) < f.prev {
		extra := f.prev - len(lines)
		for i := 0; i < extra; i++ {
			f.s.ClearLine()
			f.s.WriteLine("")
		}
		f.s.MoveUp(extra)
	}

	// Mop up stale content left below by a taller nested prompt.
	f.s.ClearToEnd()

	f.s.Flush()
	f.prev = len(lines)
}

// Clear removes the last painted frame entirely. Used when a view or
// nested prompt is dismissed.
func (f *Frame) Clear() {
	if f.prev == 0 {
		return
	}
	f.s.MoveUp(f.prev)
	f.s.ClearToEnd()
	f.s.Flush()
	f.prev = 0
}
