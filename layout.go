package canopy

// Geometry resolution is a single pre-order traversal: a parent's rect is
// fully resolved before any child rect is computed, because auto and fill
// sizing is expressed relative to the parent's resolved content rect.
// Resolution is a pure function of the declared tree and terminal size; it
// is recomputed from scratch on every pass, so resizes and content changes
// are handled uniformly.

// resolve recomputes absolute rects for every visible top-level window and,
// if a menu is active, its windows.
func (t *TUI) resolve() {
	screen := Rect{W: t.w, H: t.h}
	for _, w := range t.windows {
		resolveTop(w, screen)
	}
	if t.menu != nil {
		for _, w := range t.menu.windows {
			resolveTop(w, screen)
		}
	}
}

// resolveTop places a top-level window against the full terminal rect.
// Top-level windows do not take part in flow distribution: auto and fill
// sizes claim the full extent, auto positions resolve to the near edge.
func resolveTop(w Window, screen Rect) {
	if !w.Visible() {
		return
	}

	b := w.base()
	g := b.geom

	if p, ok := w.(*Parent); ok && p.inflated {
		b.rect = screen
		resolveChildren(p)
		return
	}

	b.rect = Rect{
		W: topSize(g.W, screen.W),
		H: topSize(g.H, screen.H),
		X: screen.X + offset(g.X, screen.W),
		Y: screen.Y + offset(g.Y, screen.H),
	}

	if p, ok := w.(*Parent); ok {
		resolveChildren(p)
	}
}

func topSize(d Dim, extent int) int {
	if d.IsFixed() {
		return clamp0(d.Value())
	}
	return extent
}

// offset interprets an explicit coordinate: non-negative values are
// relative to the near edge, negative values to the far edge, so -1 is
// always one cell from the far edge regardless of parent size.
func offset(d Dim, extent int) int {
	if v := d.Value(); v < 0 {
		return extent + v
	}
	return d.Value()
}

func clamp0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// resolveChildren computes each child's absolute rect inside p's content
// rect, then recurses.
func resolveChildren(p *Parent) {
	content := p.contentRect()
	vertical := p.vertical

	mainExt, crossExt := content.W, content.H
	if vertical {
		mainExt, crossExt = content.H, content.W
	}

	type item struct {
		w     Window
		main  int
		cross int
		fill  bool
	}

	items := make([]item, 0, len(p.children))
	used := 0
	fills := 0

	for _, c := range p.children {
		if !c.Visible() {
			continue
		}

		// An inflated child is pinned to the full content area and does
		// not take part in the flow.
		if cp, ok := c.(*Parent); ok && cp.inflated {
			cp.rect = content
			resolveChildren(cp)
			continue
		}

		g := c.Geom()
		mainDim, crossDim := g.W, g.H
		if vertical {
			mainDim, crossDim = g.H, g.W
		}

		it := item{w: c}

		switch {
		case mainDim.IsFixed():
			it.main = clamp0(mainDim.Value())
		case mainDim.IsFill():
			it.fill = true
		default:
			// Auto: a text child derives its extent from content; a
			// parent child takes a share of the remaining space.
			if tx, ok := c.(*Text); ok {
				it.main = textMain(tx, vertical, crossDim, crossExt)
			} else {
				it.fill = true
			}
		}

		if it.fill {
			fills++
		} else {
			used += it.main
		}
		items = append(items, it)
	}

	// Fill children split the remaining main-axis space equally; the
	// division remainder goes one cell at a time to the earliest ones.
	if fills > 0 {
		remaining := clamp0(mainExt - used)
		share := remaining / fills
		extra := remaining % fills
		for i := range items {
			if items[i].fill {
				items[i].main = share
				if extra > 0 {
					items[i].main++
					extra--
				}
			}
		}
	}

	// Cross-axis extents, now that every main extent is known.
	for i := range items {
		c := items[i].w
		g := c.Geom()
		crossDim := g.H
		if vertical {
			crossDim = g.W
		}

		switch {
		case crossDim.IsFixed():
			items[i].cross = clamp0(crossDim.Value())
		case crossDim.IsFill():
			items[i].cross = crossExt
		default:
			if tx, ok := c.(*Text); ok {
				items[i].cross = textCross(tx, vertical, items[i].main)
			} else {
				items[i].cross = crossExt
			}
		}
	}

	total := 0
	for _, it := range items {
		total += it.main
	}
	lead, gap, extra := mainFlow(p.align, mainExt-total, len(items))

	at := lead
	for i := range items {
		it := &items[i]
		b := it.w.base()

		mainPos := at
		crossPos := anchor(p.pos, crossExt, it.cross)
		at += it.main + gap
		if i < extra {
			at++
		}

		var r Rect
		if vertical {
			r = Rect{X: content.X + crossPos, Y: content.Y + mainPos, W: it.cross, H: it.main}
		} else {
			r = Rect{X: content.X + mainPos, Y: content.Y + crossPos, W: it.main, H: it.cross}
		}

		// Explicit offsets override flow placement on their axis.
		g := it.w.Geom()
		if g.X.IsFixed() {
			r.X = content.X + offset(g.X, content.W)
		}
		if g.Y.IsFixed() {
			r.Y = content.Y + offset(g.Y, content.H)
		}

		b.rect = r

		if cp, ok := it.w.(*Parent); ok {
			resolveChildren(cp)
		}
	}
}

// contentRect is the resolved rect minus border thickness and padding.
// Insets come out before any child placement and clamp at zero size.
func (p *Parent) contentRect() Rect {
	r := p.rect
	if p.border.Active {
		r = r.Inset(1)
	}
	if p.padding {
		r = r.Inset(1)
	}
	return r
}

// textMain derives a text child's main-axis extent: the minimal box along
// the layout axis given the cross-axis budget.
func textMain(t *Text, vertical bool, crossDim Dim, crossExt int) int {
	budget := crossExt
	if crossDim.IsFixed() {
		budget = clamp0(crossDim.Value())
	}
	if budget < 1 {
		budget = 1
	}

	if vertical {
		h, err := HeightForWidth(t.plain, budget)
		if err != nil {
			// Unwrappable at this width; rendering reports the failure.
			return 1
		}
		return h
	}

	w, _ := WidthForHeight(t.plain, budget)
	return w
}

// textCross derives the complementary extent once the main extent is known.
func textCross(t *Text, vertical bool, main int) int {
	if main < 1 {
		main = 1
	}

	if vertical {
		w, _ := WidthForHeight(t.plain, main)
		return w
	}

	h, err := HeightForWidth(t.plain, main)
	if err != nil {
		return 1
	}
	return h
}

// mainFlow turns an align mode into a leading offset and a uniform gap for
// n children sharing free cells of slack. For between, the gap division's
// remainder goes one cell at a time to the earliest gaps (extra), so the
// last child always ends flush with the far content edge.
func mainFlow(align Align, free, n int) (lead, gap, extra int) {
	free = clamp0(free)

	switch align {
	case AlignCenter:
		lead = free / 2
	case AlignEnd:
		lead = free
	case AlignBetween:
		if n > 1 {
			gap = free / (n - 1)
			extra = free % (n - 1)
		}
	case AlignAround:
		if n > 0 {
			gap = free / n
			lead = gap / 2
		}
	case AlignEvenly:
		gap = free / (n + 1)
		lead = gap
	}

	return lead, gap, extra
}

// anchor places a block of the given size along an axis of the given
// extent.
func anchor(pos Pos, extent, size int) int {
	switch pos {
	case PosCenter:
		return (extent - size) / 2
	case PosEnd:
		return extent - size
	}
	return 0
}
