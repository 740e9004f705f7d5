package render

const (
	headerRows  = 2
	minCardRows = 5
	minCardCols = 24
	maxCardCols = 72

	buttonWidth  = 3
	controlGap   = 2
	dotWidth     = 1
	activeDotW   = 2
	prevGlyph    = "‹"
	nextGlyph    = "›"
	dotGlyph     = "•"
	activeGlyph  = "━"
	defaultWidth = 80
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// LayoutSpec are the inputs of Compute.
type LayoutSpec struct {
	Width      int
	Height     int
	Count      int
	Active     int
	FooterRows int
}

// Layout places every region of the screen. The renderer and the mouse
// hit-testing both read it, so clicks land where glyphs are drawn.
type Layout struct {
	Width    int
	Height   int
	Card     Rect
	Controls int
	Prev     Rect
	Next     Rect
	Dots     []Rect
	Status   int
	Footer   int
}

// Compute lays out a screen: header, card, a blank row, the controls row,
// the status row and the footer.
func Compute(in LayoutSpec) Layout {
	width := in.Width
	if width <= 0 {
		width = defaultWidth
	}
	footer := in.FooterRows
	if footer < 1 {
		footer = 1
	}

	cardRows := in.Height - headerRows - 3 - footer
	if cardRows < minCardRows {
		cardRows = minCardRows
	}
	cardCols := width - 4
	if cardCols > maxCardCols {
		cardCols = maxCardCols
	}
	if cardCols < minCardCols {
		cardCols = min(width, minCardCols)
	}

	l := Layout{
		Width:  width,
		Height: in.Height,
		Card:   Rect{X: (width - cardCols) / 2, Y: headerRows, W: cardCols, H: cardRows},
	}
	l.Controls = l.Card.Y + l.Card.H + 1
	l.Status = l.Controls + 1
	l.Footer = l.Status + 1

	if in.Count <= 0 {
		return l
	}

	dotsWidth := in.Count - 1
	for i := 0; i < in.Count; i++ {
		dotsWidth += dotCells(i == in.Active)
	}
	total := 2*buttonWidth + 2*controlGap + dotsWidth
	x := max(0, (width-total)/2)

	l.Prev = Rect{X: x, Y: l.Controls, W: buttonWidth, H: 1}
	x += buttonWidth + controlGap
	l.Dots = make([]Rect, in.Count)
	for i := range l.Dots {
		w := dotCells(i == in.Active)
		l.Dots[i] = Rect{X: x, Y: l.Controls, W: w, H: 1}
		x += w + 1
	}
	x += controlGap - 1
	l.Next = Rect{X: x, Y: l.Controls, W: buttonWidth, H: 1}
	return l
}

// DotAt returns the index of the dot under (x, y).
func (l Layout) DotAt(x, y int) (int, bool) {
	for i, r := range l.Dots {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

func dotCells(active bool) int {
	if active {
		return activeDotW
	}
	return dotWidth
}
