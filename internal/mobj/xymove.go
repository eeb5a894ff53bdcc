package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
)

// XYMovement integrates horizontal momentum, then applies friction.
// Moves longer than MaxMove/2 are split into halves so fast mobjs cannot
// pass through thin walls.
func (l *Level) XYMovement(m *Mobj) {
	player := m.Player
	flags := m.Flags
	flags2 := m.Flags2
	corpse := flags&info.MFCorpse != 0 && m.Type != info.MTBarrel

	if m.MomX == 0 && m.MomY == 0 {
		if flags&info.MFSkullFly != 0 {
			// the skull slammed into something
			m.Flags &^= info.MFSkullFly
			m.MomZ = 0
			l.SetState(m, m.Info.SpawnState)
		}
		return
	}

	if flags2&info.MF2SmokeTrail != 0 {
		l.puffCount++
		if l.puffCount > 2 {
			l.SpawnSmokeTrail(m.X, m.Y, m.Z, m.Angle)
		}
	}

	m.MomX = fixed.Clamp(-MaxMove, m.MomX, MaxMove)
	m.MomY = fixed.Clamp(-MaxMove, m.MomY, MaxMove)

	xmove, ymove := m.MomX, m.MomY
	for {
		var ptryx, ptryy fixed.Fixed
		if xmove > MaxMove/2 || ymove > MaxMove/2 || xmove < -MaxMove/2 || ymove < -MaxMove/2 {
			ptryx = m.X + xmove/2
			ptryy = m.Y + ymove/2
			xmove >>= 1
			ymove >>= 1
		} else {
			ptryx = m.X + xmove
			ptryy = m.Y + ymove
			xmove, ymove = 0, 0
		}

		if !l.coll.TryMove(m, ptryx, ptryy, true) && !m.removed {
			if !l.blockedMove(m, player, flags) {
				return
			}
		}
		if m.removed {
			return
		}
		if xmove == 0 && ymove == 0 {
			break
		}
	}

	// no friction for missiles or charging skulls
	if flags&(info.MFMissile|info.MFSkullFly) != 0 {
		return
	}

	// no friction in the air
	if m.Z > m.FloorZ && m.Flags2&info.MF2OnMobj == 0 {
		return
	}

	if corpse && flags&info.MFNoBlood == 0 && m.Blood != info.BloodNone &&
		l.Options.CorpsesSlide && l.Options.CorpsesSmearBlood &&
		(m.MomX != 0 || m.MomY != 0) && m.BloodSplats > 0 &&
		l.Options.BloodSplatsMax > 0 && m.Nudge == 0 {
		l.smearBlood(m)
	}

	// keep sliding when hanging over a step with some momentum
	if (corpse || flags2&info.MF2Falling != 0) &&
		(m.MomX > fixed.FracUnit/4 || m.MomX < -fixed.FracUnit/4 ||
			m.MomY > fixed.FracUnit/4 || m.MomY < -fixed.FracUnit/4) &&
		m.Sector != nil && m.FloorZ != m.Sector.FloorHeight {
		return
	}

	body := player != nil && player.Mo == m
	idle := !body || (player.Cmd.ForwardMove == 0 && player.Cmd.SideMove == 0)

	switch {
	case m.MomX > -StopSpeed && m.MomX < StopSpeed &&
		m.MomY > -StopSpeed && m.MomY < StopSpeed && idle:
		if body && m.State >= info.SPlayRun1 && m.State < info.SPlayRun1+4 {
			l.SetState(m, info.SPlay)
		}
		m.MomX, m.MomY = 0, 0
		if body {
			player.MomX, player.MomY = 0, 0
		}

	case flags2&info.MF2FeetAreClipped != 0 && corpse && player == nil:
		m.MomX = fixed.Mul(m.MomX, WaterFriction)
		m.MomY = fixed.Mul(m.MomY, WaterFriction)

	default:
		friction := l.coll.Friction(m)
		m.MomX = fixed.Mul(m.MomX, friction)
		m.MomY = fixed.Mul(m.MomY, friction)

		// view bob always decays at the normal rate, even on ice
		if body {
			player.MomX = fixed.Mul(player.MomX, OrigFriction)
			player.MomY = fixed.Mul(player.MomY, OrigFriction)
		}
	}
}

// blockedMove reacts to a failed TryMove. It returns false when m was
// removed or exploded and movement must stop.
func (l *Level) blockedMove(m *Mobj, player *Player, flags info.Flags) bool {
	blockline := l.coll.BlockLine()

	switch {
	case flags&info.MFMissile == 0 && player == nil && blockline != nil &&
		m.Z <= m.FloorZ && l.coll.Friction(m) > OrigFriction:
		bounce(m, blockline)

	case player != nil:
		l.coll.SlideMove(m)

	case flags&info.MFMissile != 0:
		if hitsSky(l.coll.CeilingLine(), m) || hitsSky(blockline, m) {
			if m.Type == info.MTBFG {
				l.startSound(m, m.Info.DeathSound)
			}
			l.Remove(m)
			return false
		}
		l.ExplodeMissile(m)
		return false

	default:
		m.MomX, m.MomY = 0, 0
	}
	return true
}

// bounce reflects m's momentum off ln. Under gravity the component
// perpendicular to the wall is halved. The integer arithmetic wraps like
// the reference engine's so demos stay in sync.
func bounce(m *Mobj, ln *mapdata.Line) {
	dx := int32(ln.Dx >> fixed.FracBits)
	dy := int32(ln.Dy >> fixed.FracBits)
	den := dx*dx + dy*dy
	if den == 0 {
		m.MomX, m.MomY = 0, 0
		return
	}

	r := fixed.Fixed((dx*int32(m.MomX) + dy*int32(m.MomY)) / den)
	x := fixed.Mul(r, ln.Dx)
	y := fixed.Mul(r, ln.Dy)

	m.MomX = x*2 - m.MomX
	m.MomY = y*2 - m.MomY

	if m.Flags&info.MFNoGravity == 0 {
		m.MomX = (m.MomX + x) / 2
		m.MomY = (m.MomY + y) / 2
	}
}

// hitsSky reports whether a missile at m's height passed into the sky
// above ln's back sector.
func hitsSky(ln *mapdata.Line, m *Mobj) bool {
	return ln != nil && ln.Back != nil && ln.Back.CeilingSky && m.Z > ln.Back.CeilingHeight
}

func (l *Level) smearBlood(m *Mobj) {
	radius := int(l.sprites.Width(m.Sprite)>>fixed.FracBits) >> 1
	n := min(int((fixed.Abs(m.MomX)+fixed.Abs(m.MomY))>>(fixed.FracBits-2)), 8)

	for range n {
		if m.BloodSplats == 0 {
			break
		}
		fx := m.X + fixed.Fixed(l.Cosmetic.Int(-radius, radius)<<fixed.FracBits)
		fy := m.Y + fixed.Fixed(l.Cosmetic.Int(-radius, radius)<<fixed.FracBits)
		if sec := l.spatial.PointInSector(fx, fy); sec != nil && sec.FloorHeight == m.FloorZ {
			l.SpawnBloodSplat(fx, fy, m.Blood, m.FloorZ, m)
		}
	}
}
