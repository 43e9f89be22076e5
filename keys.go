package canopy

// Key is a single decoded key press delivered by the surface driver. Values
// below 256 are the raw terminal codes; the named function keys above use
// out-of-band values.
type Key int

// Control and editing keys used by the run loop and collaborators.
const (
	KeyCtrlC Key = 3
	KeyCtrlD Key = 4
	KeyCtrlH Key = 8
	KeyTab   Key = 9
	KeyEnter Key = 10
	KeyCtrlS Key = 19
	KeyCtrlZ Key = 26
	KeyEsc   Key = 27
	KeyDel   Key = 127
)

// Function keys, outside the byte range.
const (
	KeyDown Key = 258 + iota
	KeyUp
	KeyLeft
	KeyRight
	KeyResize Key = 410
)
