package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
)

// fakeWorld is a single open sector with scriptable collision results.
type fakeWorld struct {
	sector *mapdata.Sector

	friction    fixed.Fixed
	blocked     bool
	blockLine   *mapdata.Line
	ceilingLine *mapdata.Line
	occupied    bool

	aimSlope  fixed.Fixed
	aimTarget *Mobj

	tryMoves int
	slides   int
	torques  int
	unlinked int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		sector: &mapdata.Sector{
			Bounds:        mapdata.Box{Left: -4096 * fixed.FracUnit, Bottom: -4096 * fixed.FracUnit, Right: 4096 * fixed.FracUnit, Top: 4096 * fixed.FracUnit},
			FloorHeight:   0,
			CeilingHeight: 128 * fixed.FracUnit,
			HeightSec:     -1,
		},
		friction: OrigFriction,
	}
}

func (w *fakeWorld) TryMove(m *Mobj, x, y fixed.Fixed, dropoff bool) bool {
	w.tryMoves++
	if w.blocked {
		return false
	}
	m.X, m.Y = x, y
	return true
}

func (w *fakeWorld) CheckPosition(m *Mobj, x, y fixed.Fixed) bool { return !w.occupied }
func (w *fakeWorld) SlideMove(m *Mobj)                            { w.slides++ }

func (w *fakeWorld) AimLineAttack(m *Mobj, angle fixed.Angle, distance fixed.Fixed) (fixed.Fixed, *Mobj) {
	return w.aimSlope, w.aimTarget
}

func (w *fakeWorld) BlockLine() *mapdata.Line {
	if !w.blocked {
		return nil
	}
	return w.blockLine
}

func (w *fakeWorld) CeilingLine() *mapdata.Line          { return w.ceilingLine }
func (w *fakeWorld) Friction(m *Mobj) fixed.Fixed        { return w.friction }
func (w *fakeWorld) CheckOnMobj(m *Mobj) *Mobj           { return nil }
func (w *fakeWorld) ApplyTorque(m *Mobj)                 { w.torques++ }
func (w *fakeWorld) SetThingPosition(m *Mobj)            { m.Sector = w.sector }
func (w *fakeWorld) UnsetThingPosition(m *Mobj)          { w.unlinked++ }
func (w *fakeWorld) Width(s info.SpriteNum) fixed.Fixed  { return 32 * fixed.FracUnit }
func (w *fakeWorld) Height(s info.SpriteNum) fixed.Fixed { return 56 * fixed.FracUnit }

func (w *fakeWorld) PointInSector(x, y fixed.Fixed) *mapdata.Sector {
	return w.sector
}

type fakeSound struct {
	started  []info.Sound
	unlinked int
}

func (s *fakeSound) StartSound(origin *Mobj, sfx info.Sound) { s.started = append(s.started, sfx) }
func (s *fakeSound) UnlinkSound(origin *Mobj)                { s.unlinked++ }

func (s *fakeSound) played(sfx info.Sound) bool {
	for _, v := range s.started {
		if v == sfx {
			return true
		}
	}
	return false
}

func newTestLevel(opts Options) (*Level, *fakeWorld, *fakeSound) {
	w := newFakeWorld()
	snd := &fakeSound{}
	return NewLevel(opts, w, w, snd, w), w, snd
}

// wall returns a vertical wall of the given length whose back side is sec.
func wall(length int32, back *mapdata.Sector) *mapdata.Line {
	return mapdata.NewLine(0, 0, 0, 0, fixed.Int(length), nil, back, mapdata.LineBlocking)
}
