package world

import "github.com/udisondev/retrogo/internal/fixed"

// Blockmap constants
const (
	// BlockShift converts fixed map coordinates to block indices
	// (2^7 = 128 map units per block)
	BlockShift = fixed.FracBits + 7

	// BlockSize is the side of a block in map units
	BlockSize = 1 << (BlockShift - fixed.FracBits)

	// MaxRadius is the largest mobj radius; thing searches widen their
	// box by it because mobjs are linked only in the block of their centre
	MaxRadius = 32 * fixed.FracUnit

	// StepHeight is the tallest ledge a walker can climb
	StepHeight = 24 * fixed.FracUnit
)

// CoordToBlock converts a map coordinate to block indices relative to
// the blockmap origin.
func (w *World) CoordToBlock(x, y fixed.Fixed) (bx, by int32) {
	bx = int32(x-w.originX) >> BlockShift
	by = int32(y-w.originY) >> BlockShift
	return bx, by
}

// IsValidBlock checks if block indices are inside the blockmap
func (w *World) IsValidBlock(bx, by int32) bool {
	return bx >= 0 && bx < w.width && by >= 0 && by < w.height
}

// BlockToCoord converts block indices to the map coordinate of the block centre
func (w *World) BlockToCoord(bx, by int32) (x, y fixed.Fixed) {
	x = w.originX + fixed.Fixed(bx<<BlockShift) + fixed.Fixed(BlockSize/2)<<fixed.FracBits
	y = w.originY + fixed.Fixed(by<<BlockShift) + fixed.Fixed(BlockSize/2)<<fixed.FracBits
	return x, y
}

// blockRange returns the clamped block rectangle covering the box.
func (w *World) blockRange(left, bottom, right, top fixed.Fixed) (x0, y0, x1, y1 int32) {
	x0, y0 = w.CoordToBlock(left, bottom)
	x1, y1 = w.CoordToBlock(right, top)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, w.width-1)
	y1 = min(y1, w.height-1)
	return x0, y0, x1, y1
}
