package video

import "github.com/udisondev/retrogo/internal/random"

// Melt is the column melt transition: the start screen slides down in
// columns of uneven speed, uncovering the end screen.
type Melt struct {
	start, end *Screen
	y          []int
	active     bool
}

// Start captures the screen being left and seeds the column offsets.
func (m *Melt) Start(from *Screen, rng *random.Stream) {
	m.start = from.Clone()
	m.y = make([]int, from.Width)
	m.y[0] = -(rng.Byte() % 16)
	for i := 1; i < len(m.y); i++ {
		r := rng.Byte()%3 - 1
		m.y[i] = min(max(m.y[i-1]+r, -15), 0)
	}
	m.active = true
}

// End captures the screen being entered.
func (m *Melt) End(to *Screen) {
	m.end = to.Clone()
}

// Active reports whether a transition is in progress.
func (m *Melt) Active() bool {
	return m.active
}

// Do advances the melt by tics steps and composes the result into dst.
// It returns true once every column has left the screen.
func (m *Melt) Do(dst *Screen, tics int) bool {
	if !m.active {
		return true
	}

	done := true
	for range tics {
		for i := range m.y {
			switch {
			case m.y[i] < 0:
				m.y[i]++
				done = false
			case m.y[i] < dst.Height:
				dy := 8
				if m.y[i] < 16 {
					dy = m.y[i] + 1
				}
				m.y[i] = min(m.y[i]+dy, dst.Height)
				done = false
			}
		}
	}

	for x := range dst.Width {
		off := max(m.y[x], 0)
		for y := range dst.Height {
			if y < off {
				dst.Pix[y*dst.Width+x] = m.end.Pix[y*dst.Width+x]
			} else {
				dst.Pix[y*dst.Width+x] = m.start.Pix[(y-off)*dst.Width+x]
			}
		}
	}
	dst.Caption = m.end.Caption

	if done {
		m.active = false
		m.start, m.end = nil, nil
	}
	return done
}
