package canopy

import "testing"

func newTestTUI(t *testing.T, w, h int) (*TUI, *BufferSurface) {
	t.Helper()
	surf := NewBufferSurface(w, h)
	tui, err := New(surf, Config{Color: Style{FG: ColorWhite, BG: ColorBlack}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tui, surf
}

func render(t *testing.T, tui *TUI) {
	t.Helper()
	if err := tui.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestResolveTopLevel(t *testing.T) {
	t.Run("inflated claims the screen", func(t *testing.T) {
		tui, _ := newTestTUI(t, 40, 12)
		p := tui.NewParent(ParentConfig{Name: "root", Inflated: true})
		render(t, tui)

		if got, want := p.Rect(), (Rect{X: 0, Y: 0, W: 40, H: 12}); got != want {
			t.Errorf("rect = %+v, want %+v", got, want)
		}
	})

	t.Run("auto spans, auto position is the near edge", func(t *testing.T) {
		tui, _ := newTestTUI(t, 40, 12)
		p := tui.NewParent(ParentConfig{Name: "plain"})
		render(t, tui)

		if got, want := p.Rect(), (Rect{X: 0, Y: 0, W: 40, H: 12}); got != want {
			t.Errorf("rect = %+v, want %+v", got, want)
		}
	})

	t.Run("negative offsets measure from the far edge", func(t *testing.T) {
		tui, _ := newTestTUI(t, 40, 12)
		footer := tui.NewParent(ParentConfig{
			Name: "footer",
			Rect: Geom{W: Fill, H: Fixed(1), Y: Fixed(-1)},
		})
		render(t, tui)

		if got, want := footer.Rect(), (Rect{X: 0, Y: 11, W: 40, H: 1}); got != want {
			t.Errorf("rect = %+v, want %+v", got, want)
		}
	})

	t.Run("fixed rect", func(t *testing.T) {
		tui, _ := newTestTUI(t, 40, 12)
		box := tui.NewParent(ParentConfig{
			Name: "box",
			Rect: Geom{W: Fixed(10), H: Fixed(4), X: Fixed(3), Y: Fixed(2)},
		})
		render(t, tui)

		if got, want := box.Rect(), (Rect{X: 3, Y: 2, W: 10, H: 4}); got != want {
			t.Errorf("rect = %+v, want %+v", got, want)
		}
	})
}

func TestResolveFillShares(t *testing.T) {
	tui, _ := newTestTUI(t, 10, 1)
	p := tui.NewParent(ParentConfig{Name: "row", Inflated: true})

	a := p.NewParent(ParentConfig{Name: "a", Rect: Geom{W: Fill}})
	b := p.NewParent(ParentConfig{Name: "b", Rect: Geom{W: Fill}})
	c := p.NewParent(ParentConfig{Name: "c", Rect: Geom{W: Fill}})
	render(t, tui)

	// 10 cells over three fills: the remainder cell goes to the earliest.
	if got := a.Rect(); got.W != 4 || got.X != 0 {
		t.Errorf("a = %+v, want W=4 X=0", got)
	}
	if got := b.Rect(); got.W != 3 || got.X != 4 {
		t.Errorf("b = %+v, want W=3 X=4", got)
	}
	if got := c.Rect(); got.W != 3 || got.X != 7 {
		t.Errorf("c = %+v, want W=3 X=7", got)
	}
}

func TestResolveFillAroundFixed(t *testing.T) {
	tui, _ := newTestTUI(t, 10, 1)
	p := tui.NewParent(ParentConfig{Name: "row", Inflated: true})

	fixed := p.NewParent(ParentConfig{Name: "fixed", Rect: Geom{W: Fixed(4)}})
	fill := p.NewParent(ParentConfig{Name: "fill", Rect: Geom{W: Fill}})
	render(t, tui)

	if got := fixed.Rect(); got.W != 4 {
		t.Errorf("fixed = %+v, want W=4", got)
	}
	if got := fill.Rect(); got.W != 6 || got.X != 4 {
		t.Errorf("fill = %+v, want W=6 X=4", got)
	}
}

func TestResolveAlign(t *testing.T) {
	makeRow := func(t *testing.T, align Align, widths ...int) (*TUI, []*Parent) {
		t.Helper()
		tui, _ := newTestTUI(t, 20, 1)
		p := tui.NewParent(ParentConfig{Name: "row", Inflated: true, Align: align})
		kids := make([]*Parent, len(widths))
		for i, w := range widths {
			kids[i] = p.NewParent(ParentConfig{Rect: Geom{W: Fixed(w)}})
		}
		render(t, tui)
		return tui, kids
	}

	checkX := func(t *testing.T, kids []*Parent, want ...int) {
		t.Helper()
		for i, k := range kids {
			if got := k.Rect().X; got != want[i] {
				t.Errorf("child %d at x=%d, want %d", i, got, want[i])
			}
		}
	}

	t.Run("start", func(t *testing.T) {
		_, kids := makeRow(t, AlignStart, 2, 2, 2)
		checkX(t, kids, 0, 2, 4)
	})

	t.Run("center", func(t *testing.T) {
		_, kids := makeRow(t, AlignCenter, 2, 2, 2)
		checkX(t, kids, 7, 9, 11)
	})

	t.Run("end", func(t *testing.T) {
		_, kids := makeRow(t, AlignEnd, 2, 2, 2)
		checkX(t, kids, 14, 16, 18)
	})

	t.Run("between", func(t *testing.T) {
		// widths 1,2,3 in 20: 14 free cells split into two gaps of 7.
		_, kids := makeRow(t, AlignBetween, 1, 2, 3)
		checkX(t, kids, 0, 8, 17)
	})

	t.Run("between remainder keeps last flush", func(t *testing.T) {
		// 15 free cells over two gaps: the spare cell widens the first gap
		// so the last child still ends at the far content edge.
		tui, _ := newTestTUI(t, 21, 1)
		p := tui.NewParent(ParentConfig{Name: "row", Inflated: true, Align: AlignBetween})
		a := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(1)}})
		b := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(2)}})
		c := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(3)}})
		render(t, tui)

		if a.Rect().X != 0 || b.Rect().X != 9 || c.Rect().X != 18 {
			t.Errorf("positions: a.X=%d b.X=%d c.X=%d, want 0, 9, 18",
				a.Rect().X, b.Rect().X, c.Rect().X)
		}
		if end := c.Rect().X + c.Rect().W; end != 21 {
			t.Errorf("last child ends at %d, want flush with 21", end)
		}
	})

	t.Run("around", func(t *testing.T) {
		tui, _ := newTestTUI(t, 10, 1)
		p := tui.NewParent(ParentConfig{Name: "row", Inflated: true, Align: AlignAround})
		a := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(2)}})
		b := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(2)}})
		render(t, tui)
		// free=6, gap=3, lead=1.
		if a.Rect().X != 1 || b.Rect().X != 6 {
			t.Errorf("around: a.X=%d b.X=%d, want 1 and 6", a.Rect().X, b.Rect().X)
		}
	})

	t.Run("evenly", func(t *testing.T) {
		tui, _ := newTestTUI(t, 10, 1)
		p := tui.NewParent(ParentConfig{Name: "row", Inflated: true, Align: AlignEvenly})
		a := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(2)}})
		b := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(2)}})
		render(t, tui)
		// free=6, three gaps of 2.
		if a.Rect().X != 2 || b.Rect().X != 6 {
			t.Errorf("evenly: a.X=%d b.X=%d, want 2 and 6", a.Rect().X, b.Rect().X)
		}
	})
}

func TestResolveCrossAnchor(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		wantY int
	}{
		{"start", PosStart, 0},
		{"center", PosCenter, 2},
		{"end", PosEnd, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tui, _ := newTestTUI(t, 10, 5)
			p := tui.NewParent(ParentConfig{Name: "row", Inflated: true, Pos: tt.pos})
			c := p.NewParent(ParentConfig{Rect: Geom{W: Fixed(3), H: Fixed(1)}})
			render(t, tui)

			if got := c.Rect().Y; got != tt.wantY {
				t.Errorf("child Y = %d, want %d", got, tt.wantY)
			}
		})
	}
}

func TestResolveExplicitOffsetsOverrideFlow(t *testing.T) {
	tui, _ := newTestTUI(t, 20, 10)
	p := tui.NewParent(ParentConfig{Name: "col", Inflated: true, Vertical: true})

	p.NewParent(ParentConfig{Name: "first", Rect: Geom{H: Fixed(3)}})
	title := p.NewText(TextConfig{
		Name:   "title",
		String: "hi",
		Rect:   Geom{W: Fixed(5), H: Fixed(1), X: Fixed(1), Y: Fixed(0)},
	})
	render(t, tui)

	// Flow would place the title at Y=3; the explicit offsets pin it.
	if got, want := title.Rect(), (Rect{X: 1, Y: 0, W: 5, H: 1}); got != want {
		t.Errorf("title = %+v, want %+v", got, want)
	}
}

func TestResolveContentInsets(t *testing.T) {
	t.Run("border and padding inset by one each", func(t *testing.T) {
		tui, _ := newTestTUI(t, 10, 10)
		p := tui.NewParent(ParentConfig{
			Name:    "box",
			Rect:    Geom{W: Fixed(10), H: Fixed(10)},
			Border:  Border{Active: true},
			Padding: true,
		})
		inner := p.NewParent(ParentConfig{Name: "inner", Inflated: true})
		render(t, tui)

		if got, want := inner.Rect(), (Rect{X: 2, Y: 2, W: 6, H: 6}); got != want {
			t.Errorf("inner = %+v, want %+v", got, want)
		}
	})

	t.Run("insets clamp at zero", func(t *testing.T) {
		tui, _ := newTestTUI(t, 10, 10)
		p := tui.NewParent(ParentConfig{
			Name:   "tiny",
			Rect:   Geom{W: Fixed(2), H: Fixed(2)},
			Border: Border{Active: true},
		})
		inner := p.NewParent(ParentConfig{Name: "inner", Rect: Geom{W: Fill, H: Fill}})
		render(t, tui)

		if !inner.Rect().Empty() {
			t.Errorf("inner = %+v, want empty", inner.Rect())
		}
	})
}

func TestResolveTextAutoSizing(t *testing.T) {
	t.Run("vertical parent derives height then width", func(t *testing.T) {
		tui, _ := newTestTUI(t, 5, 10)
		p := tui.NewParent(ParentConfig{Name: "col", Inflated: true, Vertical: true})
		tx := p.NewText(TextConfig{Name: "t", String: "a bb ccc dddd"})
		render(t, tui)

		r := tx.Rect()
		if r.H != 3 {
			t.Errorf("height = %d, want 3", r.H)
		}
		if r.W != 4 {
			t.Errorf("width = %d, want 4", r.W)
		}
	})

	t.Run("horizontal parent derives width then height", func(t *testing.T) {
		tui, _ := newTestTUI(t, 20, 3)
		p := tui.NewParent(ParentConfig{Name: "row", Inflated: true})
		tx := p.NewText(TextConfig{Name: "t", String: "a bb ccc dddd"})
		render(t, tui)

		r := tx.Rect()
		if r.W != 4 {
			t.Errorf("width = %d, want 4", r.W)
		}
		if r.H != 3 {
			t.Errorf("height = %d, want 3", r.H)
		}
	})
}

func TestResolveInvisibleSkipped(t *testing.T) {
	tui, _ := newTestTUI(t, 10, 1)
	p := tui.NewParent(ParentConfig{Name: "row", Inflated: true})

	hidden := p.NewParent(ParentConfig{Name: "hidden", Rect: Geom{W: Fixed(4)}, Hidden: true})
	shown := p.NewParent(ParentConfig{Name: "shown", Rect: Geom{W: Fixed(4)}})
	render(t, tui)

	if got := shown.Rect().X; got != 0 {
		t.Errorf("shown.X = %d, want 0: hidden sibling must not take space", got)
	}
	_ = hidden
}

func TestResolveDeterministic(t *testing.T) {
	tui, _ := newTestTUI(t, 30, 10)
	root := tui.NewParent(ParentConfig{Name: "root", Inflated: true, Border: Border{Active: true}})
	a := root.NewParent(ParentConfig{Name: "a", Rect: Geom{W: Fill}})
	b := a.NewText(TextConfig{Name: "b", String: "some wrapped words here"})
	c := root.NewText(TextConfig{Name: "c", String: "tail"})

	render(t, tui)
	first := []Rect{root.Rect(), a.Rect(), b.Rect(), c.Rect()}

	render(t, tui)
	second := []Rect{root.Rect(), a.Rect(), b.Rect(), c.Rect()}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rect %d changed between identical passes: %+v vs %+v", i, first[i], second[i])
		}
	}
}
