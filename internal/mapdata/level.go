// Package mapdata describes level geometry and thing placements.
package mapdata

import (
	"github.com/udisondev/retrogo/internal/fixed"
)

// Thing option bits.
const (
	ThingEasy      = 1
	ThingNormal    = 2
	ThingHard      = 4
	ThingAmbush    = 8
	ThingNotSingle = 16
)

// Thing is a map editor placement.
type Thing struct {
	X       int16 `yaml:"x"`
	Y       int16 `yaml:"y"`
	Angle   int16 `yaml:"angle"`
	Type    int16 `yaml:"type"`
	Options int16 `yaml:"options"`
}

// Box is an axis-aligned bounding box in map coordinates.
type Box struct {
	Left, Bottom, Right, Top fixed.Fixed
}

// Contains reports whether (x, y) lies inside b (edges inclusive).
func (b Box) Contains(x, y fixed.Fixed) bool {
	return x >= b.Left && x <= b.Right && y >= b.Bottom && y <= b.Top
}

// Intersects reports whether the two boxes overlap.
func (b Box) Intersects(o Box) bool {
	return b.Left < o.Right && b.Right > o.Left && b.Bottom < o.Top && b.Top > o.Bottom
}

// Sector is a region with uniform floor and ceiling.
type Sector struct {
	ID            int
	Bounds        Box
	FloorHeight   fixed.Fixed
	CeilingHeight fixed.Fixed
	FloorSky      bool
	CeilingSky    bool
	Liquid        bool
	HeightSec     int         // index of a deep water control sector, -1 when none
	Friction      fixed.Fixed // 0 means the default friction
}

// LineFlags are line behaviour bits.
type LineFlags uint16

const (
	LineBlocking      LineFlags = 1
	LineBlockMonsters LineFlags = 2
)

// Line is a wall segment between a front and an optional back sector.
type Line struct {
	ID             int
	X1, Y1, X2, Y2 fixed.Fixed
	Dx, Dy         fixed.Fixed
	Front, Back    *Sector
	Flags          LineFlags
	Box            Box
}

// NewLine builds a line from its end points and derives the deltas and box.
func NewLine(id int, x1, y1, x2, y2 fixed.Fixed, front, back *Sector, flags LineFlags) *Line {
	l := &Line{
		ID: id, X1: x1, Y1: y1, X2: x2, Y2: y2,
		Dx: x2 - x1, Dy: y2 - y1,
		Front: front, Back: back, Flags: flags,
	}
	l.Box = Box{
		Left: min(x1, x2), Right: max(x1, x2),
		Bottom: min(y1, y2), Top: max(y1, y2),
	}
	return l
}

// PointOnSide returns 0 for the front side and 1 for the back side.
func (l *Line) PointOnSide(x, y fixed.Fixed) int {
	if l.Dx == 0 {
		if x <= l.X1 {
			return b2i(l.Dy > 0)
		}
		return b2i(l.Dy < 0)
	}
	if l.Dy == 0 {
		if y <= l.Y1 {
			return b2i(l.Dx < 0)
		}
		return b2i(l.Dx > 0)
	}
	dx := x - l.X1
	dy := y - l.Y1
	left := fixed.Mul(l.Dy>>fixed.FracBits, dx)
	right := fixed.Mul(dy, l.Dx>>fixed.FracBits)
	if right < left {
		return 0
	}
	return 1
}

// BoxOnSide returns 0 or 1 when the box is entirely on one side, -1 when
// the line crosses it.
func (l *Line) BoxOnSide(b Box) int {
	var p1, p2 int
	switch {
	case l.Dy == 0:
		p1 = b2i(b.Top > l.Y1)
		p2 = b2i(b.Bottom > l.Y1)
		if l.Dx < 0 {
			p1 ^= 1
			p2 ^= 1
		}
	case l.Dx == 0:
		p1 = b2i(b.Right < l.X1)
		p2 = b2i(b.Left < l.X1)
		if l.Dy < 0 {
			p1 ^= 1
			p2 ^= 1
		}
	case (l.Dy ^ l.Dx) >= 0:
		p1 = l.PointOnSide(b.Left, b.Top)
		p2 = l.PointOnSide(b.Right, b.Bottom)
	default:
		p1 = l.PointOnSide(b.Right, b.Top)
		p2 = l.PointOnSide(b.Left, b.Bottom)
	}
	if p1 == p2 {
		return p1
	}
	return -1
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Level is a loaded map.
type Level struct {
	Name    string
	Sectors []*Sector
	Lines   []*Line
	Things  []Thing
}

// SectorAt returns the innermost sector containing (x, y). Sectors declared
// later are nested inside earlier ones. Points outside every sector resolve
// to the first sector.
func (lv *Level) SectorAt(x, y fixed.Fixed) *Sector {
	for i := len(lv.Sectors) - 1; i >= 0; i-- {
		if lv.Sectors[i].Bounds.Contains(x, y) {
			return lv.Sectors[i]
		}
	}
	if len(lv.Sectors) == 0 {
		return nil
	}
	return lv.Sectors[0]
}
