package canopy

type dimKind uint8

const (
	dimAuto dimKind = iota
	dimFixed
	dimFill
)

// Dim is a single declared dimension or coordinate: Fixed(n), Auto, or
// Fill. The zero value is Auto, meaning the resolver decides. A negative
// Fixed coordinate is measured from the far edge, so Fixed(-1) is always
// one cell from the right or bottom regardless of parent size.
type Dim struct {
	kind dimKind
	n    int
}

// Fixed declares an explicit dimension in cells.
func Fixed(n int) Dim {
	return Dim{kind: dimFixed, n: n}
}

// Auto lets the resolver derive the dimension from content or remaining
// space. Fill claims the parent's full extent on a cross axis, or an equal
// share of remaining space on the main axis.
var (
	Auto = Dim{kind: dimAuto}
	Fill = Dim{kind: dimFill}
)

// IsAuto reports whether the resolver decides this dimension.
func (d Dim) IsAuto() bool { return d.kind == dimAuto }

// IsFill reports whether this dimension claims remaining space.
func (d Dim) IsFill() bool { return d.kind == dimFill }

// IsFixed reports whether this dimension is explicit.
func (d Dim) IsFixed() bool { return d.kind == dimFixed }

// Value returns the explicit value of a Fixed dimension, 0 otherwise.
func (d Dim) Value() int {
	if d.kind == dimFixed {
		return d.n
	}
	return 0
}

// Geom is a window's declared geometry. The zero value leaves everything
// to the resolver.
type Geom struct {
	W, H Dim
	X, Y Dim
}

// Rect is an absolute box in terminal cells, produced by the resolver.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rect by n cells on every side, clamping at zero size.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
