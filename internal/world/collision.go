package world

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
)

// Torque gearing: momentum is scaled by 2^(overdrive-gear).
const (
	overdrive = 6
	maxGear   = 22
)

// moveState holds the results of the last position check.
type moveState struct {
	thing *mobj.Mobj
	x, y  fixed.Fixed
	box   mapdata.Box

	floorZ, ceilingZ, dropoffZ fixed.Fixed

	ceilingLine *mapdata.Line
	blockLine   *mapdata.Line
	openLine    *mapdata.Line // last line that narrowed the opening
}

// BlockLine is the line that blocked the last move, if any.
func (w *World) BlockLine() *mapdata.Line {
	return w.tm.blockLine
}

// CeilingLine is the line that set the ceiling of the last checked position.
func (w *World) CeilingLine() *mapdata.Line {
	return w.tm.ceilingLine
}

// CheckPosition reports whether m fits at (x, y) ignoring height. It
// touches specials and applies missile and skull impact damage on the way.
func (w *World) CheckPosition(m *mobj.Mobj, x, y fixed.Fixed) bool {
	tm := &w.tm
	*tm = moveState{
		thing: m,
		x:     x,
		y:     y,
		box: mapdata.Box{
			Left:   x - m.Radius,
			Bottom: y - m.Radius,
			Right:  x + m.Radius,
			Top:    y + m.Radius,
		},
	}

	sec := w.level.SectorAt(x, y)
	tm.floorZ = sec.FloorHeight
	tm.dropoffZ = sec.FloorHeight
	tm.ceilingZ = sec.CeilingHeight

	if m.Flags&info.MFNoClip != 0 {
		return true
	}

	if !w.ForEachMobjInBox(tm.box, w.checkThing) {
		return false
	}
	return w.forEachLineInBox(tm.box, w.checkLine)
}

func (w *World) checkThing(thing *mobj.Mobj) bool {
	tm := &w.tm
	m := tm.thing

	if thing.Flags&(info.MFSolid|info.MFSpecial|info.MFShootable) == 0 {
		return true
	}
	blockdist := thing.Radius + m.Radius
	if fixed.Abs(thing.X-tm.x) >= blockdist || fixed.Abs(thing.Y-tm.y) >= blockdist {
		return true
	}
	if thing == m {
		return true
	}

	if m.Flags2&info.MF2PassMobj != 0 && thing.Flags&info.MFSpecial == 0 {
		if m.Z >= thing.Z+thing.Height || m.Z+m.Height <= thing.Z {
			return true
		}
	}

	l := w.mobjs

	if m.Flags&info.MFSkullFly != 0 {
		damage := int32(l.Rand.Byte()%8+1) * m.Info.Damage
		l.DamageMobj(thing, m, m, damage)
		m.Flags &^= info.MFSkullFly
		m.MomX, m.MomY, m.MomZ = 0, 0, 0
		l.SetState(m, m.Info.SpawnState)
		return false
	}

	if m.Flags&info.MFMissile != 0 {
		if m.Z > thing.Z+thing.Height || m.Z+m.Height < thing.Z {
			return true
		}
		source := l.Resolve(m.Target)
		if source != nil {
			if thing == source {
				return true
			}
			// no infighting between members of one species
			if source.Type == thing.Type && thing.Type != info.MTPlayer {
				return false
			}
		}
		if thing.Flags&info.MFShootable == 0 {
			return thing.Flags&info.MFSolid == 0
		}
		damage := int32(l.Rand.Byte()%8+1) * m.Info.Damage
		l.DamageMobj(thing, m, source, damage)
		return false
	}

	if thing.Flags&info.MFSpecial != 0 {
		solid := thing.Flags&info.MFSolid != 0
		if m.Flags&info.MFPickup != 0 && w.OnTouchSpecial != nil {
			w.OnTouchSpecial(thing, m)
		}
		return !solid
	}

	return thing.Flags&info.MFSolid == 0
}

func (w *World) checkLine(ln *mapdata.Line) bool {
	tm := &w.tm
	m := tm.thing

	if !tm.box.Intersects(ln.Box) || ln.BoxOnSide(tm.box) != -1 {
		return true
	}

	if ln.Back == nil {
		tm.blockLine = ln
		return false
	}
	if m.Flags&info.MFMissile == 0 {
		if ln.Flags&mapdata.LineBlocking != 0 {
			tm.blockLine = ln
			return false
		}
		if ln.Flags&mapdata.LineBlockMonsters != 0 && m.Player == nil {
			tm.blockLine = ln
			return false
		}
	}

	top, bottom, low := opening(ln)
	if top < tm.ceilingZ {
		tm.ceilingZ = top
		tm.ceilingLine = ln
		tm.openLine = ln
	}
	if bottom > tm.floorZ {
		tm.floorZ = bottom
		tm.openLine = ln
	}
	if low < tm.dropoffZ {
		tm.dropoffZ = low
	}
	return true
}

// opening returns the gap a two-sided line leaves: its top, its bottom and
// the lower of the two floors.
func opening(ln *mapdata.Line) (top, bottom, low fixed.Fixed) {
	f, b := ln.Front, ln.Back
	top = min(f.CeilingHeight, b.CeilingHeight)
	bottom = max(f.FloorHeight, b.FloorHeight)
	low = min(f.FloorHeight, b.FloorHeight)
	return top, bottom, low
}

// TryMove moves m to (x, y) if it fits, relinking it and updating its
// floor, ceiling and dropoff heights. dropoff allows stepping off ledges
// higher than StepHeight.
func (w *World) TryMove(m *mobj.Mobj, x, y fixed.Fixed, dropoff bool) bool {
	if !w.CheckPosition(m, x, y) {
		return false
	}

	tm := &w.tm
	if m.Flags&info.MFNoClip == 0 {
		blocked := tm.ceilingZ-tm.floorZ < m.Height
		if m.Flags&info.MFTeleport == 0 {
			blocked = blocked ||
				tm.ceilingZ-m.Z < m.Height ||
				tm.floorZ-m.Z > StepHeight
		}
		if !blocked && !dropoff && m.Flags&(info.MFDropoff|info.MFFloat) == 0 {
			blocked = tm.floorZ-tm.dropoffZ > StepHeight
		}
		if blocked {
			if tm.blockLine == nil {
				tm.blockLine = tm.openLine
			}
			return false
		}
	}

	w.UnsetThingPosition(m)
	m.FloorZ = tm.floorZ
	m.CeilingZ = tm.ceilingZ
	m.DropoffZ = tm.dropoffZ
	m.X = x
	m.Y = y
	w.SetThingPosition(m)
	return true
}

// SlideMove slides a blocked mobj along the wall that stopped it. When no
// wall is known or the slide fails it tries each axis on its own.
func (w *World) SlideMove(m *mobj.Mobj) {
	if ln := w.tm.blockLine; ln != nil {
		mx, my := slideAlong(ln, m.MomX, m.MomY)
		if (mx != 0 || my != 0) && w.TryMove(m, m.X+mx, m.Y+my, true) {
			m.MomX, m.MomY = mx, my
			return
		}
	}

	switch {
	case w.TryMove(m, m.X, m.Y+m.MomY, true):
		m.MomX = 0
	case w.TryMove(m, m.X+m.MomX, m.Y, true):
		m.MomY = 0
	default:
		m.MomX, m.MomY = 0, 0
	}
}

// slideAlong projects the momentum onto the line direction.
func slideAlong(ln *mapdata.Line, mx, my fixed.Fixed) (fixed.Fixed, fixed.Fixed) {
	switch {
	case ln.Dy == 0:
		return mx, 0
	case ln.Dx == 0:
		return 0, my
	}
	lineAngle := fixed.PointToAngle(0, 0, ln.Dx, ln.Dy)
	delta := fixed.PointToAngle(0, 0, mx, my) - lineAngle
	length := fixed.Mul(fixed.ApproxDistance(mx, my), delta.Cos())
	return fixed.Mul(length, lineAngle.Cos()), fixed.Mul(length, lineAngle.Sin())
}

// Vertical aim limits.
const (
	topSlope    = 100 * fixed.FracUnit / 160
	bottomSlope = -100 * fixed.FracUnit / 160
)

// AimLineAttack finds the nearest shootable mobj within distance along
// angle that is not hidden behind a wall, and the slope to aim at it.
func (w *World) AimLineAttack(m *mobj.Mobj, angle fixed.Angle, distance fixed.Fixed) (fixed.Fixed, *mobj.Mobj) {
	cos, sin := angle.Cos(), angle.Sin()
	x2 := m.X + fixed.Mul(distance, cos)
	y2 := m.Y + fixed.Mul(distance, sin)
	shootZ := m.Z + m.Height>>1 + 8*fixed.FracUnit

	var (
		target *mobj.Mobj
		slope  fixed.Fixed
		best   = distance
	)
	box := mapdata.Box{Left: min(m.X, x2), Bottom: min(m.Y, y2), Right: max(m.X, x2), Top: max(m.Y, y2)}
	w.ForEachMobjInBox(box, func(t *mobj.Mobj) bool {
		if t == m || t.Flags&info.MFShootable == 0 {
			return true
		}
		dx, dy := t.X-m.X, t.Y-m.Y
		along := fixed.Mul(dx, cos) + fixed.Mul(dy, sin)
		if along <= 0 || along >= best {
			return true
		}
		if fixed.Abs(fixed.Mul(dy, cos)-fixed.Mul(dx, sin)) > t.Radius {
			return true
		}
		top := fixed.Div(t.Z+t.Height-shootZ, along)
		bottom := fixed.Div(t.Z-shootZ, along)
		if top < bottomSlope || bottom > topSlope {
			return true
		}
		if w.sightBlocked(m.X, m.Y, t.X, t.Y) {
			return true
		}
		top = min(top, topSlope)
		bottom = max(bottom, bottomSlope)
		slope = (top + bottom) / 2
		target = t
		best = along
		return true
	})
	return slope, target
}

// CheckSight reports whether no wall or closed door stands between the
// centres of from and to.
func (w *World) CheckSight(from, to *mobj.Mobj) bool {
	return !w.sightBlocked(from.X, from.Y, to.X, to.Y)
}

// sightBlocked reports whether a one-sided or closed line crosses the segment.
func (w *World) sightBlocked(x1, y1, x2, y2 fixed.Fixed) bool {
	box := mapdata.Box{Left: min(x1, x2), Bottom: min(y1, y2), Right: max(x1, x2), Top: max(y1, y2)}
	blocked := false
	w.forEachLineInBox(box, func(ln *mapdata.Line) bool {
		if ln.PointOnSide(x1, y1) == ln.PointOnSide(x2, y2) {
			return true
		}
		if segmentSide(x1, y1, x2, y2, ln.X1, ln.Y1) == segmentSide(x1, y1, x2, y2, ln.X2, ln.Y2) {
			return true
		}
		if ln.Back == nil {
			blocked = true
			return false
		}
		if top, bottom, _ := opening(ln); top <= bottom {
			blocked = true
			return false
		}
		return true
	})
	return blocked
}

func segmentSide(x1, y1, x2, y2, px, py fixed.Fixed) bool {
	cross := int64(px-x1)*int64(y2-y1) - int64(py-y1)*int64(x2-x1)
	return cross > 0
}

// Friction returns the friction of the floor under m. Airborne mobjs get
// the default.
func (w *World) Friction(m *mobj.Mobj) fixed.Fixed {
	if m.Sector != nil && m.Sector.Friction != 0 && m.Z <= m.FloorZ {
		return m.Sector.Friction
	}
	return mobj.OrigFriction
}

// CheckOnMobj returns the solid mobj that m would overlap after applying
// its vertical momentum.
func (w *World) CheckOnMobj(m *mobj.Mobj) *mobj.Mobj {
	z := m.Z + m.MomZ
	box := mapdata.Box{Left: m.X - m.Radius, Bottom: m.Y - m.Radius, Right: m.X + m.Radius, Top: m.Y + m.Radius}
	var on *mobj.Mobj
	w.ForEachMobjInBox(box, func(t *mobj.Mobj) bool {
		if t == m || t.Flags&info.MFSolid == 0 {
			return true
		}
		blockdist := t.Radius + m.Radius
		if fixed.Abs(t.X-m.X) >= blockdist || fixed.Abs(t.Y-m.Y) >= blockdist {
			return true
		}
		if z > t.Z+t.Height || z+m.Height < t.Z {
			return true
		}
		on = t
		return false
	})
	return on
}

// ApplyTorque pushes a mobj whose centre hangs over a ledge away from the
// pivot lines it straddles. Each tic spent falling shifts up a gear and
// weakens the push so the mobj settles.
func (w *World) ApplyTorque(m *mobj.Mobj) {
	wasFalling := m.Flags2&info.MF2Falling != 0
	box := mapdata.Box{Left: m.X - m.Radius, Bottom: m.Y - m.Radius, Right: m.X + m.Radius, Top: m.Y + m.Radius}

	w.forEachLineInBox(box, func(ln *mapdata.Line) bool {
		if ln.Back == nil || !box.Intersects(ln.Box) || ln.BoxOnSide(box) != -1 {
			return true
		}

		dist := fixed.Fixed((ln.Dx>>fixed.FracBits)*(m.Y>>fixed.FracBits) -
			(ln.Dy>>fixed.FracBits)*(m.X>>fixed.FracBits) -
			(ln.Dx>>fixed.FracBits)*(ln.Y1>>fixed.FracBits) +
			(ln.Dy>>fixed.FracBits)*(ln.X1>>fixed.FracBits))

		var over bool
		if dist < 0 {
			over = ln.Front.FloorHeight < m.Z && ln.Back.FloorHeight >= m.Z
		} else {
			over = ln.Back.FloorHeight < m.Z && ln.Front.FloorHeight >= m.Z
		}
		if !over {
			return true
		}

		x, y := fixed.Abs(ln.Dx), fixed.Abs(ln.Dy)
		if y > x {
			x, y = y, x
		}
		y = fixed.PointToAngle(0, 0, x, y).Cos()

		if m.Gear < overdrive {
			y <<= overdrive - m.Gear
		} else {
			y >>= m.Gear - overdrive
		}
		dist = fixed.Div(fixed.Mul(dist, y), x)

		px := fixed.Mul(ln.Dy, dist)
		py := fixed.Mul(ln.Dx, dist)
		for d := fixed.Mul(px, px) + fixed.Mul(py, py); d > 4*fixed.FracUnit && m.Gear < maxGear; d >>= 1 {
			m.Gear++
			px >>= 1
			py >>= 1
		}
		m.MomX -= px
		m.MomY += py
		return true
	})

	if m.MomX|m.MomY != 0 {
		m.Flags2 |= info.MF2Falling
	} else {
		m.Flags2 &^= info.MF2Falling
	}
	if !wasFalling && m.Flags2&info.MF2Falling == 0 {
		m.Gear = 0
	} else if m.Gear < maxGear {
		m.Gear++
	}
}
