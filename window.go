package canopy

// Pos anchors a block along an axis: a parent's children along its cross
// axis, or a text window's wrapped lines along the vertical.
type Pos uint8

const (
	PosStart Pos = iota
	PosCenter
	PosEnd
)

// Align distributes children along a parent's main axis. Start, center and
// end pack the children as a single block; between, around and evenly
// spread them with classic flex-distribution gap semantics.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignBetween
	AlignAround
	AlignEvenly
)

// Border is a parent window's optional frame. Active controls whether the
// border is drawn and reserves space, independent of the rest of the
// configuration: a parent may hold border colors but keep them inactive.
type Border struct {
	Active bool
	Color  Style
	Dashed bool
}

// WindowEventFunc handles a key delivered to a window. It returns whether
// the key was consumed; an unconsumed key propagates to the next hook.
type WindowEventFunc func(w Window, key Key) bool

// Window is a node in the window tree: either a *Parent or a *Text.
type Window interface {
	// Name returns the identifying name given at creation.
	Name() string

	// Visible reports whether the window takes part in layout and painting.
	Visible() bool
	SetVisible(v bool)

	// Geom returns the declared geometry; SetGeom replaces it. The change
	// takes effect on the next resolve-and-render pass.
	Geom() Geom
	SetGeom(g Geom)

	// Rect returns the absolute rect computed by the most recent resolution
	// pass. It is a cache, not authoritative between passes.
	Rect() Rect

	// Style returns the window's declared colors.
	Style() Style
	SetStyle(s Style)

	// Parent returns the owning parent window, nil for top-level windows.
	Parent() *Parent

	// TUI returns the owning root context.
	TUI() *TUI

	// Data is an opaque slot for collaborator state, such as an input
	// widget's buffer.
	Data() any
	SetData(v any)

	// Destroy tears down the window's subtree, releases its backing surface
	// region and detaches it from its owner. The window must not be used
	// afterwards.
	Destroy()

	base() *windowBase
}

// windowBase carries the attributes shared by both window kinds.
type windowBase struct {
	name    string
	visible bool
	geom    Geom
	rect    Rect
	style   Style
	event   WindowEventFunc
	parent  *Parent
	menu    *Menu
	tui     *TUI
	data    any
	region  Region
}

func (b *windowBase) Name() string      { return b.name }
func (b *windowBase) Visible() bool     { return b.visible }
func (b *windowBase) SetVisible(v bool) { b.visible = v }
func (b *windowBase) Geom() Geom        { return b.geom }
func (b *windowBase) SetGeom(g Geom)    { b.geom = g }
func (b *windowBase) Rect() Rect        { return b.rect }
func (b *windowBase) Style() Style      { return b.style }
func (b *windowBase) SetStyle(s Style)  { b.style = s }
func (b *windowBase) Parent() *Parent   { return b.parent }
func (b *windowBase) TUI() *TUI         { return b.tui }
func (b *windowBase) Data() any         { return b.data }
func (b *windowBase) SetData(v any)     { b.data = v }
func (b *windowBase) base() *windowBase { return b }

// release closes the backing surface region and drops focus if held.
func (b *windowBase) release() {
	if b.region != nil {
		b.region.Close()
		b.region = nil
	}
	if b.tui != nil && b.tui.focus != nil && b.tui.focus.base() == b {
		b.tui.focus = nil
	}
}

// detach removes the window from its owner's sequence.
func (b *windowBase) detach() {
	switch {
	case b.parent != nil:
		b.parent.children = removeWindow(b.parent.children, b)
		b.parent = nil
	case b.menu != nil:
		b.menu.windows = removeWindow(b.menu.windows, b)
		b.menu = nil
	case b.tui != nil:
		b.tui.windows = removeWindow(b.tui.windows, b)
	}
}

func removeWindow(ws []Window, b *windowBase) []Window {
	for i, w := range ws {
		if w.base() == b {
			return append(ws[:i], ws[i+1:]...)
		}
	}
	return ws
}

// Text is a leaf window owning a string, wrapped and anchored inside its
// resolved rect. The string may contain inline style escape sequences,
// which occupy no cells.
type Text struct {
	windowBase
	raw   string
	plain string
	pos   Pos
	align Align
}

// TextConfig declares a text window.
type TextConfig struct {
	Name   string
	String string
	Rect   Geom
	Color  Style
	Event  WindowEventFunc
	Hidden bool

	// Pos anchors the wrapped block vertically.
	Pos Pos

	// Align is the declared horizontal distribution mode. It is accepted
	// but not wired into per-line placement, which always centers.
	// TODO: decide whether start/end placement should be honored here.
	Align Align
}

// String returns the raw source string, escapes included.
func (t *Text) String() string { return t.raw }

// SetString replaces the text content. The plain-text cache is refreshed.
func (t *Text) SetString(s string) {
	t.raw = s
	t.plain = ExtractText(s)
}

// Plain returns the cached visible text with escapes stripped.
func (t *Text) Plain() string { return t.plain }

// Pos returns the vertical anchor.
func (t *Text) Pos() Pos { return t.pos }

// SetPos sets the vertical anchor.
func (t *Text) SetPos(p Pos) { t.pos = p }

// Destroy implements Window.
func (t *Text) Destroy() {
	t.release()
	t.detach()
	t.plain = ""
}

// Parent is a container window owning an ordered sequence of children laid
// out along one axis.
type Parent struct {
	windowBase
	children []Window
	vertical bool
	border   Border
	padding  bool
	inflated bool
	pos      Pos
	align    Align
}

// ParentConfig declares a parent window.
type ParentConfig struct {
	Name   string
	Rect   Geom
	Color  Style
	Event  WindowEventFunc
	Hidden bool

	// Border is drawn inside the resolved rect when Active.
	Border Border

	// Vertical selects the layout axis for children.
	Vertical bool

	// Padding insets the content rect by one cell on every side.
	Padding bool

	// Inflated claims the owning parent's entire content area, overriding
	// position anchors.
	Inflated bool

	// Pos anchors children along the cross axis.
	Pos Pos

	// Align distributes children along the main axis.
	Align Align
}

// Children returns the ordered child sequence. Insertion order is the
// z-order tiebreak: later children paint over earlier ones.
func (p *Parent) Children() []Window { return p.children }

// Vertical reports the layout axis.
func (p *Parent) Vertical() bool { return p.vertical }

// Border returns the border configuration.
func (p *Parent) Border() Border { return p.border }

// SetBorder replaces the border configuration.
func (p *Parent) SetBorder(b Border) { p.border = b }

// Destroy implements Window. Children are destroyed first, then the
// parent's own surface region is released.
func (p *Parent) Destroy() {
	for len(p.children) > 0 {
		p.children[0].Destroy()
	}
	p.release()
	p.detach()
}

// NewParent creates a parent window owned by p, appended to its children.
func (p *Parent) NewParent(cfg ParentConfig) *Parent {
	c := newParent(p.tui, cfg)
	c.parent = p
	p.children = append(p.children, c)
	return c
}

// NewText creates a text window owned by p, appended to its children.
func (p *Parent) NewText(cfg TextConfig) *Text {
	c := newText(p.tui, cfg)
	c.parent = p
	p.children = append(p.children, c)
	return c
}

func newParent(t *TUI, cfg ParentConfig) *Parent {
	return &Parent{
		windowBase: windowBase{
			name:    cfg.Name,
			visible: !cfg.Hidden,
			geom:    cfg.Rect,
			style:   cfg.Color,
			event:   cfg.Event,
			tui:     t,
		},
		border:   cfg.Border,
		vertical: cfg.Vertical,
		padding:  cfg.Padding,
		inflated: cfg.Inflated,
		pos:      cfg.Pos,
		align:    cfg.Align,
	}
}

func newText(t *TUI, cfg TextConfig) *Text {
	w := &Text{
		windowBase: windowBase{
			name:    cfg.Name,
			visible: !cfg.Hidden,
			geom:    cfg.Rect,
			style:   cfg.Color,
			event:   cfg.Event,
			tui:     t,
		},
		pos:   cfg.Pos,
		align: cfg.Align,
	}
	w.SetString(cfg.String)
	return w
}
