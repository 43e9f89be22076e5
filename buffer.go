package canopy

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with inherit-everything style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// Buffer is a 2D grid of cells. It backs BufferSurface for headless
// rendering and tests.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given dimensions, filled with blanks.
func NewBuffer(width, height int) *Buffer {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether the coordinates fall inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates, a blank if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set writes the cell at the given coordinates. Out-of-bounds writes are
// dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// Fill fills the whole buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets the buffer to blanks.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular area with the given cell.
func (b *Buffer) FillRect(r Rect, c Cell) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			b.Set(r.X+dx, r.Y+dy, c)
		}
	}
}

// Line returns the runes of row y as a string, trailing spaces trimmed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	line := make([]rune, 0, b.width)
	last := -1
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		line = append(line, r)
		if r != ' ' {
			last = len(line)
		}
	}
	if last < 0 {
		return ""
	}
	return string(line[:last])
}

// String returns the buffer contents row by row, for tests and debugging.
// Trailing spaces are preserved.
func (b *Buffer) String() string {
	out := make([]rune, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			out = append(out, r)
		}
		if y < b.height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Resize grows or shrinks the buffer, preserving content where it fits.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}

	minW := min(width, b.width)
	minH := min(height, b.height)
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = cells
	b.width = width
	b.height = height
}
