package canopy

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen is a Surface backed by a real terminal through tcell: raw mode, no
// echo, keypad decoding and color setup are the driver's problem. Failures
// are reported once, at startup; the toolkit does not retry or degrade.
type Screen struct {
	ts tcell.Screen
}

// NewScreen initializes the terminal and returns a live surface. The caller
// owns it and must call Fini to restore the terminal.
func NewScreen() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("canopy: create screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("canopy: init screen: %w", err)
	}
	if ts.Colors() == 0 {
		ts.Fini()
		return nil, errors.New("canopy: terminal has no color support")
	}
	return &Screen{ts: ts}, nil
}

// Size implements Surface.
func (s *Screen) Size() (int, int) {
	return s.ts.Size()
}

// Open implements Surface.
func (s *Screen) Open(r Rect) (Region, error) {
	return &screenRegion{ts: s.ts, r: r}, nil
}

// HideCursor implements Surface.
func (s *Screen) HideCursor() {
	s.ts.HideCursor()
}

// Show implements Surface.
func (s *Screen) Show() error {
	s.ts.Show()
	return nil
}

// Fini implements Surface.
func (s *Screen) Fini() {
	s.ts.Fini()
}

// PollKey implements KeyPoller: it blocks for the next key press, reporting
// KeyResize for terminal resizes and false once the screen is finished.
func (s *Screen) PollKey() (Key, bool) {
	for {
		switch ev := s.ts.PollEvent().(type) {
		case *tcell.EventKey:
			return translateKey(ev), true
		case *tcell.EventResize:
			s.ts.Sync()
			return KeyResize, true
		case nil:
			return 0, false
		}
	}
}

func translateKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune())
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEsc
	case tcell.KeyBackspace:
		return KeyCtrlH
	case tcell.KeyBackspace2:
		return KeyDel
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	default:
		// Control keys carry their terminal codes.
		return Key(ev.Key())
	}
}

type screenRegion struct {
	ts     tcell.Screen
	r      Rect
	closed bool
}

func (sr *screenRegion) Move(r Rect) { sr.r = r }

func (sr *screenRegion) Clear() {
	sr.fill(' ', tcell.StyleDefault)
}

func (sr *screenRegion) Fill(st Style) {
	sr.fill(' ', tcellStyle(st))
}

func (sr *screenRegion) fill(ch rune, st tcell.Style) {
	for dy := 0; dy < sr.r.H; dy++ {
		for dx := 0; dx < sr.r.W; dx++ {
			sr.ts.SetContent(sr.r.X+dx, sr.r.Y+dy, ch, nil, st)
		}
	}
}

func (sr *screenRegion) Put(x, y int, ch rune, st Style) {
	if x < 0 || y < 0 || x >= sr.r.W || y >= sr.r.H {
		return
	}
	sr.ts.SetContent(sr.r.X+x, sr.r.Y+y, ch, nil, tcellStyle(st))
}

// Commit is a no-op: tcell batches cell writes until Show.
func (sr *screenRegion) Commit() {}

func (sr *screenRegion) Close() {
	if sr.closed {
		return
	}
	sr.closed = true
	sr.Clear()
}

func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault
	if s.FG != ColorNone {
		st = st.Foreground(tcell.PaletteColor(s.FG.Term()))
	}
	if s.BG != ColorNone {
		st = st.Background(tcell.PaletteColor(s.BG.Term()))
	}
	return st
}
