package platform

// Attr is a cell text attribute bitmask
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Scale returns the color multiplied by f, clamped to [0,1]
func (c RGB) Scale(f float64) RGB {
	if f <= 0 {
		return RGB{}
	}
	if f >= 1 {
		return c
	}
	return RGB{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f)}
}

// Cell is one character cell of a frame
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Frame is a row-major cell grid: Cells[y*Width+x]
type Frame struct {
	Width, Height int
	Cells         []Cell
}

// NewFrame allocates a frame of the given dimensions
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Cells: make([]Cell, width*height)}
}

// Clear fills every cell with a space on bg
func (f *Frame) Clear(bg RGB) {
	blank := Cell{Rune: ' ', Bg: bg}
	for i := range f.Cells {
		f.Cells[i] = blank
	}
}

// At returns the cell at (x, y); out of bounds yields the zero Cell
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Set writes a cell, ignoring out-of-bounds coordinates
func (f *Frame) Set(x, y int, ch rune, fg, bg RGB, attr Attr) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
}

// Fill paints a rectangle with spaces on bg, clipped to the frame
func (f *Frame) Fill(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			f.Set(col, row, ' ', RGB{}, bg, AttrNone)
		}
	}
}

// Text writes s starting at (x, y) on a single row, clipped to the frame.
// Returns the column after the last written rune.
func (f *Frame) Text(x, y int, s string, fg, bg RGB, attr Attr) int {
	for _, r := range s {
		f.Set(x, y, r, fg, bg, attr)
		x++
	}
	return x
}

// Box draws a single-line border around the rectangle and fills its interior
func (f *Frame) Box(x, y, w, h int, fg, bg RGB) {
	if w < 2 || h < 2 {
		return
	}
	f.Fill(x+1, y+1, w-2, h-2, bg)
	for col := x + 1; col < x+w-1; col++ {
		f.Set(col, y, '─', fg, bg, AttrNone)
		f.Set(col, y+h-1, '─', fg, bg, AttrNone)
	}
	for row := y + 1; row < y+h-1; row++ {
		f.Set(x, row, '│', fg, bg, AttrNone)
		f.Set(x+w-1, row, '│', fg, bg, AttrNone)
	}
	f.Set(x, y, '┌', fg, bg, AttrNone)
	f.Set(x+w-1, y, '┐', fg, bg, AttrNone)
	f.Set(x, y+h-1, '└', fg, bg, AttrNone)
	f.Set(x+w-1, y+h-1, '┘', fg, bg, AttrNone)
}
