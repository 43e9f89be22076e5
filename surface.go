package canopy

// Surface is the opaque terminal-drawing service a root context renders
// onto. Windows are backed by regions opened on the surface; the renderer
// is the only writer.
type Surface interface {
	// Size returns the current surface dimensions in cells.
	Size() (w, h int)

	// Open allocates a backing region for a window at the given rect.
	Open(r Rect) (Region, error)

	// HideCursor hides the terminal cursor for the duration of a pass.
	HideCursor()

	// Show makes everything committed during the pass visible.
	Show() error

	// Fini releases the surface and restores the terminal.
	Fini()
}

// Region is one window's slice of a surface. Coordinates are relative to
// the region's origin; writes outside its bounds are dropped.
type Region interface {
	// Move repositions and resizes the region for the current pass.
	Move(r Rect)

	// Clear blanks the region.
	Clear()

	// Fill paints the whole region with spaces in the given style.
	Fill(s Style)

	// Put draws one glyph.
	Put(x, y int, ch rune, s Style)

	// Commit finishes the region's part of the pass.
	Commit()

	// Close releases the region. The region must not be used afterwards.
	Close()
}

// BufferSurface is a Surface rendering into an in-memory Buffer. It backs
// tests and headless rendering, and counts the regions it hands out so
// lifecycle behavior is observable.
type BufferSurface struct {
	buf    *Buffer
	opened int
	closed int
}

// NewBufferSurface creates a headless surface of the given dimensions.
func NewBufferSurface(w, h int) *BufferSurface {
	return &BufferSurface{buf: NewBuffer(w, h)}
}

// Buffer exposes the underlying cell grid.
func (s *BufferSurface) Buffer() *Buffer { return s.buf }

// Opened returns how many regions have been opened.
func (s *BufferSurface) Opened() int { return s.opened }

// Closed returns how many regions have been closed.
func (s *BufferSurface) Closed() int { return s.closed }

// Resize changes the surface dimensions, as a terminal resize would.
func (s *BufferSurface) Resize(w, h int) {
	s.buf.Resize(w, h)
}

// Size implements Surface.
func (s *BufferSurface) Size() (int, int) {
	return s.buf.Width(), s.buf.Height()
}

// Open implements Surface.
func (s *BufferSurface) Open(r Rect) (Region, error) {
	s.opened++
	return &bufferRegion{s: s, r: r}, nil
}

// HideCursor implements Surface.
func (s *BufferSurface) HideCursor() {}

// Show implements Surface.
func (s *BufferSurface) Show() error { return nil }

// Fini implements Surface.
func (s *BufferSurface) Fini() {}

type bufferRegion struct {
	s      *BufferSurface
	r      Rect
	closed bool
}

func (br *bufferRegion) Move(r Rect) { br.r = r }

func (br *bufferRegion) Clear() {
	br.s.buf.FillRect(br.r, EmptyCell())
}

func (br *bufferRegion) Fill(st Style) {
	br.s.buf.FillRect(br.r, Cell{Rune: ' ', Style: st})
}

func (br *bufferRegion) Put(x, y int, ch rune, st Style) {
	if x < 0 || y < 0 || x >= br.r.W || y >= br.r.H {
		return
	}
	br.s.buf.Set(br.r.X+x, br.r.Y+y, Cell{Rune: ch, Style: st})
}

func (br *bufferRegion) Commit() {}

func (br *bufferRegion) Close() {
	if br.closed {
		return
	}
	br.closed = true
	br.Clear()
	br.s.closed++
}
