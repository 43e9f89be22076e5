package canopy

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrCannotWrap reports that text cannot be wrapped into the given box:
// either a single word is wider than the wrap width, or explicit newlines
// force more lines than the height budget allows.
var ErrCannotWrap = errors.New("canopy: text cannot be wrapped")

// Inline style escapes run from the introducer up to and including the
// terminator and occupy no cells.
const (
	escIntroducer = '\x1b'
	escTerminator = 'm'
)

// ExtractText strips inline style escape sequences from s, leaving only the
// visible characters. Extraction is idempotent.
func ExtractText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	skip := false
	for _, r := range s {
		if skip {
			if r == escTerminator {
				skip = false
			}
			continue
		}
		if r == escIntroducer {
			skip = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HeightForWidth returns the number of lines text occupies when wrapped to
// maxW cells. A line breaks at an explicit newline, or when it would
// overflow maxW, in which case the scan rewinds to the most recent space so
// words are never split. If no space is available to break at, the text
// cannot be wrapped at this width and ErrCannotWrap is returned.
func HeightForWidth(text string, maxW int) (int, error) {
	if maxW < 1 {
		return 0, ErrCannotWrap
	}

	rs := []rune(text)

	h := 1
	lineW := 0
	space := 0
	lastSpace := 0

	for i := 0; i < len(rs); i++ {
		r := rs[i]

		if r == ' ' {
			space = i
		}

		switch {
		case r == '\n':
			lineW = 0
			h++

		case lineW+runewidth.RuneWidth(r) > maxW:
			lineW = 0
			h++

			// No space since the last break: the word itself is too wide.
			if space == lastSpace {
				return 0, ErrCannotWrap
			}

			i = space
			lastSpace = space

		default:
			lineW += runewidth.RuneWidth(r)
		}
	}

	return h, nil
}

// WidthForHeight finds the minimum width at which text wraps into at most
// maxH lines, binary-searching the width domain. Candidate widths that
// cannot wrap push the search toward larger widths. If even the text's full
// width needs more than maxH lines, the full width is returned together
// with ErrCannotWrap.
func WidthForHeight(text string, maxH int) (int, error) {
	left := 1
	right := runewidth.StringWidth(text)
	if right < 1 {
		right = 1
	}

	minW := right
	found := false

	for left <= right {
		mid := (left + right) / 2

		h, err := HeightForWidth(text, mid)

		if err != nil || h > maxH {
			left = mid + 1
		} else {
			minW = mid
			right = mid - 1
			found = true
		}
	}

	if !found {
		return minW, ErrCannotWrap
	}

	return minW, nil
}

// LineWidths returns the width used by each line when text is wrapped at
// the minimal width satisfying maxH, replaying the same break scan as
// HeightForWidth. The partial word carried to the next line and the space
// that triggered the break are not counted in the broken line's width.
func LineWidths(text string, maxH int) ([]int, error) {
	maxW, err := WidthForHeight(text, maxH)
	if err != nil {
		return nil, err
	}

	h, err := HeightForWidth(text, maxW)
	if err != nil {
		return nil, err
	}

	rs := []rune(text)
	ws := make([]int, h)

	lineIdx := 0
	lineW := 0
	space := 0

	for i := 0; i < len(rs) && lineIdx < h; i++ {
		r := rs[i]

		if r == ' ' {
			space = i
		}

		switch {
		case r == ' ' && lineW == 0:
			// Leading spaces take no width.

		case r == '\n':
			ws[lineIdx] = lineW
			lineIdx++
			lineW = 0

		case lineW+runewidth.RuneWidth(r) > maxW:
			// Full line minus the partial word and its leading space.
			keep := lineW
			if space < i {
				keep = lineW - runesWidth(rs[space+1:i]) - 1
			}
			ws[lineIdx] = keep
			lineIdx++
			lineW = 0

			i = space

		default:
			lineW += runewidth.RuneWidth(r)
		}

		if i+1 == len(rs) && lineIdx < h {
			ws[lineIdx] = lineW
		}
	}

	return ws, nil
}

func runesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}
