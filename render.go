package canopy

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Render resolves the whole tree from the current configuration and
// terminal size, then paints it. Top-level windows paint in reverse
// declaration order, so the first declared window ends up visually on top
// where rects overlap; within a parent, children paint in declared order,
// later children on top. Both orderings are part of the visual contract.
func (t *TUI) Render() error {
	t.w, t.h = t.surface.Size()
	t.resolve()

	t.surface.HideCursor()

	for i := len(t.windows) - 1; i >= 0; i-- {
		if err := t.renderWindow(t.windows[i], t.style); err != nil {
			return err
		}
	}

	if t.menu != nil {
		for i := len(t.menu.windows) - 1; i >= 0; i-- {
			if err := t.renderWindow(t.menu.windows[i], t.style); err != nil {
				return err
			}
		}
	}

	return t.surface.Show()
}

func (t *TUI) renderWindow(w Window, active Style) error {
	if !w.Visible() {
		return nil
	}

	b := w.base()
	if b.rect.Empty() {
		return nil
	}

	// Backing regions are opened on first render, not at creation.
	if b.region == nil {
		reg, err := t.surface.Open(b.rect)
		if err != nil {
			return fmt.Errorf("canopy: open region for %q: %w", b.name, err)
		}
		b.region = reg
	} else {
		b.region.Move(b.rect)
	}

	switch w := w.(type) {
	case *Text:
		return t.renderText(w, active)
	case *Parent:
		return t.renderParent(w, active)
	}
	return nil
}

func (t *TUI) renderParent(p *Parent, active Style) error {
	reg := p.region
	reg.Clear()

	style := p.style.Inherit(active)
	reg.Fill(style)

	if p.border.Active {
		// Unset border channels inherit from the window's fill.
		drawBorder(reg, p.rect.W, p.rect.H, p.border.Dashed, p.border.Color.Inherit(style))
	}

	for _, c := range p.children {
		if err := t.renderWindow(c, style); err != nil {
			return err
		}
	}

	reg.Commit()
	return nil
}

func (t *TUI) renderText(w *Text, active Style) error {
	reg := w.region
	reg.Clear()

	style := w.style.Inherit(active)
	reg.Fill(style)

	w.plain = ExtractText(w.raw)
	if w.plain == "" {
		reg.Commit()
		return nil
	}

	rect := w.rect

	h, err := HeightForWidth(w.plain, rect.W)
	if err != nil {
		return fmt.Errorf("canopy: window %q: %w", w.name, err)
	}
	ws, err := LineWidths(w.plain, h)
	if err != nil {
		return fmt.Errorf("canopy: window %q: %w", w.name, err)
	}

	// Per-character placement over the raw string, skipping escapes. Each
	// line is centered within the box; the block is anchored vertically by
	// the window's Pos. The declared horizontal Align is not applied here.
	yShift := int(w.pos) * (rect.H - h) / 2

	line := 0
	lineW := 0
	y := 0

	rs := []rune(w.raw)
	for i := 0; i < len(rs); i++ {
		r := rs[i]

		if r == escIntroducer {
			for i < len(rs) && rs[i] != escTerminator {
				i++
			}
			continue
		}

		if r == ' ' && lineW == 0 {
			// Leading spaces are not drawn.
			continue
		}

		if line < len(ws) && lineW >= ws[line] {
			// The break character is consumed, not drawn.
			line++
			lineW = 0
			y++
			continue
		}

		if line >= len(ws) {
			break
		}

		xShift := (rect.W - ws[line]) / 2
		reg.Put(xShift+lineW, yShift+y, r, style)
		lineW += runewidth.RuneWidth(r)
	}

	reg.Commit()
	return nil
}

// Box-drawing runes for borders.
const (
	boxHorizontal       = '─'
	boxVertical         = '│'
	boxTopLeft          = '┌'
	boxTopRight         = '┐'
	boxBottomLeft       = '└'
	boxBottomRight      = '┘'
	boxDashedHorizontal = '╌'
	boxDashedVertical   = '╎'
)

// drawBorder draws a single-cell frame just inside the region. Regions
// smaller than 2x2 have no room for one.
func drawBorder(reg Region, w, h int, dashed bool, style Style) {
	if w < 2 || h < 2 {
		return
	}

	hr, vr := boxHorizontal, boxVertical
	if dashed {
		hr, vr = boxDashedHorizontal, boxDashedVertical
	}

	reg.Put(0, 0, boxTopLeft, style)
	reg.Put(w-1, 0, boxTopRight, style)
	reg.Put(0, h-1, boxBottomLeft, style)
	reg.Put(w-1, h-1, boxBottomRight, style)

	for i := 1; i < w-1; i++ {
		reg.Put(i, 0, hr, style)
		reg.Put(i, h-1, hr, style)
	}
	for i := 1; i < h-1; i++ {
		reg.Put(0, i, vr, style)
		reg.Put(w-1, i, vr, style)
	}
}
