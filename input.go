package canopy

// Input is a line-editing widget. It attaches to a Text window through the
// window's data slot and keeps the window's string showing the slice of the
// buffer around the cursor. Without a window the input still edits, but
// nothing is visible and the arrow keys are ignored.
type Input struct {
	window *Text
	limit  int
	buf    []rune
	cursor int
	scroll int
}

// NewInput creates an input holding at most limit runes, attached to w.
// A nil window is allowed.
func NewInput(limit int, w *Text) *Input {
	in := &Input{window: w, limit: limit}
	if w != nil {
		w.SetData(in)
	}
	return in
}

// String returns the full buffer contents.
func (in *Input) String() string {
	return string(in.buf)
}

// SetString replaces the buffer contents, cursor at the end.
func (in *Input) SetString(s string) {
	in.buf = []rune(s)
	if in.limit > 0 && len(in.buf) > in.limit {
		in.buf = in.buf[:in.limit]
	}
	in.cursor = len(in.buf)
	in.scroll = 0
	in.sync()
}

// HandleKey edits the buffer and reports whether the key was consumed.
func (in *Input) HandleKey(key Key) bool {
	switch {
	case key == KeyLeft:
		if in.window == nil {
			return false
		}
		if in.cursor > 0 {
			in.cursor--
		}

	case key == KeyRight:
		if in.window == nil {
			return false
		}
		if in.cursor < len(in.buf) {
			in.cursor++
		}

	case key == KeyCtrlH || key == KeyDel:
		if in.cursor > 0 {
			in.buf = append(in.buf[:in.cursor-1], in.buf[in.cursor:]...)
			in.cursor--
		}

	case key == KeyCtrlD:
		in.buf = in.buf[:0]
		in.cursor = 0
		in.scroll = 0

	case key >= ' ' && key < KeyDel:
		if in.limit > 0 && len(in.buf) >= in.limit {
			return true
		}
		in.buf = append(in.buf, 0)
		copy(in.buf[in.cursor+1:], in.buf[in.cursor:])
		in.buf[in.cursor] = rune(key)
		in.cursor++

	default:
		return false
	}

	in.sync()
	return true
}

// sync rewrites the attached window's string with the visible slice of the
// buffer, keeping the cursor in view of the window's resolved width.
func (in *Input) sync() {
	if in.window == nil {
		return
	}

	w := in.window.Rect().W
	if w <= 0 {
		in.window.SetString(string(in.buf))
		return
	}

	if in.cursor < in.scroll {
		in.scroll = in.cursor
	}
	if in.cursor > in.scroll+w {
		in.scroll = in.cursor - w
	}
	if in.scroll > len(in.buf) {
		in.scroll = len(in.buf)
	}

	end := min(in.scroll+w, len(in.buf))
	in.window.SetString(string(in.buf[in.scroll:end]))
}

// Destroy detaches the widget from its window; the host calls it before
// destroying the window itself.
func (in *Input) Destroy() {
	if in.window != nil {
		if in.window.Data() == in {
			in.window.SetData(nil)
		}
		in.window = nil
	}
	in.buf = nil
	in.cursor = 0
	in.scroll = 0
}
