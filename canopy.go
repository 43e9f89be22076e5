// Package canopy is a windowing toolkit for character-cell terminals: a
// tree of rectangular panes with declarative geometry, word wrapping,
// bordered containers and color inheritance, resolved and repainted in full
// on every pass onto a pluggable surface.
package canopy

import "errors"

// ErrNoSurface reports that a root context was created without a surface.
var ErrNoSurface = errors.New("canopy: no surface")

// EventFunc handles a key delivered to the root context, after every window
// and menu hook has declined it.
type EventFunc func(t *TUI, key Key) bool

// Config declares a root context.
type Config struct {
	// Color is the initial active color pair, inherited by any window
	// channel left as ColorNone.
	Color Style

	// Event is the root event hook.
	Event EventFunc
}

// TUI is the root context: it owns the top-level windows and menus, tracks
// the focused window and the active menu, and drives resolution and
// rendering against its surface.
type TUI struct {
	surface Surface
	w, h    int

	windows []Window
	menus   []*Menu

	menu  *Menu
	focus Window

	style   Style
	event   EventFunc
	running bool
}

// New creates a root context rendering onto surface. The terminal size is
// captured now and refreshed on every render pass.
func New(surface Surface, cfg Config) (*TUI, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	w, h := surface.Size()
	return &TUI{
		surface: surface,
		w:       w,
		h:       h,
		style:   cfg.Color,
		event:   cfg.Event,
		running: true,
	}, nil
}

// Size returns the terminal dimensions captured by the last render pass.
func (t *TUI) Size() (w, h int) { return t.w, t.h }

// Windows returns the top-level window sequence.
func (t *TUI) Windows() []Window { return t.windows }

// NewParent creates a top-level parent window.
func (t *TUI) NewParent(cfg ParentConfig) *Parent {
	p := newParent(t, cfg)
	t.windows = append(t.windows, p)
	return p
}

// NewText creates a top-level text window.
func (t *TUI) NewText(cfg TextConfig) *Text {
	w := newText(t, cfg)
	t.windows = append(t.windows, w)
	return w
}

// SetMenu activates m, rendering its windows above all top-level windows.
// Passing nil deactivates the current menu.
func (t *TUI) SetMenu(m *Menu) { t.menu = m }

// Menu returns the active menu, nil if none.
func (t *TUI) Menu() *Menu { return t.menu }

// Focus gives w the input focus. Dispatch starts at the focused window.
func (t *TUI) Focus(w Window) { t.focus = w }

// Focused returns the window holding input focus, nil if none.
func (t *TUI) Focused() Window { return t.focus }

// Running reports whether the run loop should keep going.
func (t *TUI) Running() bool { return t.running }

// Stop makes Running report false; Run returns after the current pass.
func (t *TUI) Stop() { t.running = false }

// Dispatch delivers a key: first to the focused window and its ancestors,
// then to the active menu's hook, then to the root hook. It stops at the
// first hook that consumes the key and reports whether any did.
func (t *TUI) Dispatch(key Key) bool {
	for w := t.focus; w != nil; {
		b := w.base()
		if b.event != nil && b.event(w, key) {
			return true
		}
		if b.parent == nil {
			break
		}
		w = b.parent
	}
	if t.menu != nil && t.menu.event != nil && t.menu.event(t.menu, key) {
		return true
	}
	if t.event != nil && t.event(t, key) {
		return true
	}
	return false
}

// KeyPoller is implemented by surfaces that can deliver key presses, such
// as Screen. PollKey blocks for the next key and reports false when the
// surface is finished.
type KeyPoller interface {
	PollKey() (Key, bool)
}

// Run drives the host loop: an initial render, then one dispatch and one
// full resolve-and-render pass per key, until Stop is called or the surface
// stops delivering keys. The surface must implement KeyPoller.
func (t *TUI) Run() error {
	poller, ok := t.surface.(KeyPoller)
	if !ok {
		return errors.New("canopy: surface cannot poll keys")
	}

	if err := t.Render(); err != nil {
		return err
	}

	for t.running {
		key, ok := poller.PollKey()
		if !ok {
			break
		}

		if key != KeyResize {
			t.Dispatch(key)
		}

		if !t.running {
			break
		}

		if err := t.Render(); err != nil {
			return err
		}
	}

	return nil
}

// Destroy tears down every menu and top-level window. The context must not
// be used afterwards; the surface itself is left to its owner.
func (t *TUI) Destroy() {
	for len(t.menus) > 0 {
		t.menus[0].Destroy()
	}
	for len(t.windows) > 0 {
		t.windows[0].Destroy()
	}
	t.menu = nil
	t.focus = nil
}
