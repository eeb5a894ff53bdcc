// Package video holds the software framebuffer the drawers render into,
// the melt transition between two screens, and the Display contract
// presenters implement.
package video

// Palette indices understood by every presenter.
const (
	ColorBlack uint8 = iota
	ColorGray
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorBrown
	ColorPurple
	ColorCyan
	ColorDarkGreen
	ColorDarkRed
	NumColors
)

// Screen is a palette-indexed framebuffer. Caption is a line of text a
// presenter shows alongside the image.
type Screen struct {
	Width, Height int
	Pix           []uint8
	Caption       string
}

// NewScreen allocates a cleared screen.
func NewScreen(width, height int) *Screen {
	return &Screen{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the pixel at (x, y); out of range reads return ColorBlack.
func (s *Screen) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return ColorBlack
	}
	return s.Pix[y*s.Width+x]
}

// Set writes a pixel, ignoring out of range coordinates.
func (s *Screen) Set(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	s.Pix[y*s.Width+x] = c
}

// Fill paints the whole screen.
func (s *Screen) Fill(c uint8) {
	for i := range s.Pix {
		s.Pix[i] = c
	}
}

// Rect paints the clipped rectangle [x0, x1) x [y0, y1).
func (s *Screen) Rect(x0, y0, x1, y1 int, c uint8) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.Width), min(y1, s.Height)
	for y := y0; y < y1; y++ {
		row := s.Pix[y*s.Width : (y+1)*s.Width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// Line draws a clipped line with Bresenham's algorithm.
func (s *Screen) Line(x0, y0, x1, y1 int, c uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// CopyFrom copies the pixels and caption of o, which must be the same size.
func (s *Screen) CopyFrom(o *Screen) {
	copy(s.Pix, o.Pix)
	s.Caption = o.Caption
}

// Clone returns a copy of s.
func (s *Screen) Clone() *Screen {
	c := NewScreen(s.Width, s.Height)
	c.CopyFrom(s)
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Display presents finished frames.
type Display interface {
	Present(s *Screen) error
}

// Discard is a Display that only counts frames.
type Discard struct {
	Frames int
}

func (d *Discard) Present(*Screen) error {
	d.Frames++
	return nil
}
