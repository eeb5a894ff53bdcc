// Package world links mobjs into level geometry: the sector lookup, the
// blockmap used for proximity searches, and the collision checks that
// movement relies on.
package world

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
)

var ErrEmptyLevel = errors.New("level has no sectors")

// World is the spatial index of one loaded level. It implements
// mobj.Collision, mobj.Spatial and mobj.Sprites.
type World struct {
	level *mapdata.Level
	mobjs *mobj.Level

	originX, originY fixed.Fixed
	width, height    int32
	blocks           []Block

	// line dedupe for block walks spanning several blocks
	validCount int32
	lineValid  []int32

	tm moveState

	info.SpriteTable

	// OnTouchSpecial is called when a mobj that can pick things up moves
	// onto a special. The callback may remove the special.
	OnTouchSpecial func(special, toucher *mobj.Mobj)
}

// New builds the blockmap for lv.
func New(lv *mapdata.Level) (*World, error) {
	if len(lv.Sectors) == 0 {
		return nil, fmt.Errorf("build world %q: %w", lv.Name, ErrEmptyLevel)
	}

	bounds := lv.Sectors[0].Bounds
	for _, s := range lv.Sectors[1:] {
		bounds = union(bounds, s.Bounds)
	}
	for _, ln := range lv.Lines {
		bounds = union(bounds, ln.Box)
	}

	w := &World{
		level:     lv,
		originX:   bounds.Left,
		originY:   bounds.Bottom,
		lineValid: make([]int32, len(lv.Lines)),
	}
	w.width = int32(bounds.Right-bounds.Left)>>BlockShift + 1
	w.height = int32(bounds.Top-bounds.Bottom)>>BlockShift + 1

	w.blocks = make([]Block, w.width*w.height)

	for i, ln := range lv.Lines {
		x0, y0, x1, y1 := w.blockRange(ln.Box.Left, ln.Box.Bottom, ln.Box.Right, ln.Box.Top)
		for by := y0; by <= y1; by++ {
			for bx := x0; bx <= x1; bx++ {
				if lineTouchesBlock(ln, w.blockBox(bx, by)) {
					b := &w.blocks[by*w.width+bx]
					b.lines = append(b.lines, int32(i))
				}
			}
		}
	}

	slog.Debug("blockmap built",
		"level", lv.Name,
		"width", w.width,
		"height", w.height,
		"lines", len(lv.Lines))

	return w, nil
}

// Bind attaches the mobj level whose damage and state machine collisions
// drive. It must be called before the first move.
func (w *World) Bind(l *mobj.Level) {
	w.mobjs = l
}

// Level returns the geometry the world was built from.
func (w *World) Level() *mapdata.Level {
	return w.level
}

// Size returns the blockmap dimensions in blocks.
func (w *World) Size() (width, height int32) {
	return w.width, w.height
}

// GetBlock returns the block at the given indices, or nil outside the blockmap.
func (w *World) GetBlock(bx, by int32) *Block {
	if !w.IsValidBlock(bx, by) {
		return nil
	}
	return &w.blocks[by*w.width+bx]
}

// PointInSector returns the sector containing (x, y).
func (w *World) PointInSector(x, y fixed.Fixed) *mapdata.Sector {
	return w.level.SectorAt(x, y)
}

// SetThingPosition links m into its sector and, unless it is
// MFNoBlockmap, into the block containing its centre.
func (w *World) SetThingPosition(m *mobj.Mobj) {
	m.Sector = w.level.SectorAt(m.X, m.Y)
	m.BlockCell = -1
	if m.Flags&info.MFNoBlockmap != 0 {
		return
	}

	bx, by := w.CoordToBlock(m.X, m.Y)
	if !w.IsValidBlock(bx, by) {
		if mobj.IsDebugEnabled() {
			slog.Debug("mobj outside blockmap", "type", m.Type, "x", m.X.ToInt(), "y", m.Y.ToInt())
		}
		return
	}
	m.BlockCell = by*w.width + bx
	w.blocks[m.BlockCell].add(m)
}

// UnsetThingPosition unlinks m from the blockmap.
func (w *World) UnsetThingPosition(m *mobj.Mobj) {
	if m.BlockCell >= 0 && int(m.BlockCell) < len(w.blocks) {
		w.blocks[m.BlockCell].remove(m)
	}
	m.BlockCell = -1
}

// ForEachMobjInBox visits every blockmap-linked mobj whose block overlaps
// the box grown by MaxRadius. Returning false stops the walk.
func (w *World) ForEachMobjInBox(box mapdata.Box, fn func(*mobj.Mobj) bool) bool {
	x0, y0, x1, y1 := w.blockRange(box.Left-MaxRadius, box.Bottom-MaxRadius, box.Right+MaxRadius, box.Top+MaxRadius)
	for bx := x0; bx <= x1; bx++ {
		for by := y0; by <= y1; by++ {
			for _, m := range slices.Clone(w.blocks[by*w.width+bx].mobjs) {
				if !fn(m) {
					return false
				}
			}
		}
	}
	return true
}

// forEachLineInBox visits each line of the blocks covering box once.
func (w *World) forEachLineInBox(box mapdata.Box, fn func(*mapdata.Line) bool) bool {
	w.validCount++
	x0, y0, x1, y1 := w.blockRange(box.Left, box.Bottom, box.Right, box.Top)
	for bx := x0; bx <= x1; bx++ {
		for by := y0; by <= y1; by++ {
			for _, i := range w.blocks[by*w.width+bx].lines {
				if w.lineValid[i] == w.validCount {
					continue
				}
				w.lineValid[i] = w.validCount
				if !fn(w.level.Lines[i]) {
					return false
				}
			}
		}
	}
	return true
}

func (w *World) blockBox(bx, by int32) mapdata.Box {
	left := w.originX + fixed.Fixed(bx<<BlockShift)
	bottom := w.originY + fixed.Fixed(by<<BlockShift)
	return mapdata.Box{
		Left:   left,
		Bottom: bottom,
		Right:  left + fixed.Fixed(1<<BlockShift),
		Top:    bottom + fixed.Fixed(1<<BlockShift),
	}
}

func union(a, b mapdata.Box) mapdata.Box {
	return mapdata.Box{
		Left:   min(a.Left, b.Left),
		Bottom: min(a.Bottom, b.Bottom),
		Right:  max(a.Right, b.Right),
		Top:    max(a.Top, b.Top),
	}
}

// lineTouchesBlock reports whether ln passes through the block box. Axis
// aligned lines always touch every block their box covers.
func lineTouchesBlock(ln *mapdata.Line, b mapdata.Box) bool {
	if ln.Dx == 0 || ln.Dy == 0 {
		return true
	}
	return ln.BoxOnSide(b) == -1
}
