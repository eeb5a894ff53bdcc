package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
)

// CheckMissileSpawn nudges a fresh missile half a tic forward and explodes
// it on the spot if it starts inside a wall.
func (l *Level) CheckMissileSpawn(th *Mobj) {
	th.Tics = max(1, th.Tics-int32(l.Rand.Byte()&3))

	th.X += th.MomX >> 1
	th.Y += th.MomY >> 1
	th.Z += th.MomZ >> 1

	if !l.coll.TryMove(th, th.X, th.Y, false) && !th.removed {
		l.ExplodeMissile(th)
	}
}

// SpawnMissile fires a missile of type t from source at dest.
func (l *Level) SpawnMissile(source, dest *Mobj, t info.MobjType) *Mobj {
	z := source.Z + 32*fixed.FracUnit
	if l.footClipped(source) {
		z -= FootClipSize
	}

	th := l.Spawn(source.X, source.Y, z, t)
	l.startSound(th, th.Info.SeeSound)
	th.Target = source.Handle()

	an := fixed.PointToAngle(source.X, source.Y, dest.X, dest.Y)
	if dest.Flags&info.MFFuzz != 0 {
		an += fixed.Angle(l.Rand.Spread() << 20)
	}
	th.Angle = an

	speed := th.Info.Speed
	th.MomX = fixed.Mul(speed, an.Cos())
	th.MomY = fixed.Mul(speed, an.Sin())

	dist := fixed.Fixed(1)
	if speed != 0 {
		dist = max(1, fixed.ApproxDistance(dest.X-source.X, dest.Y-source.Y)/speed)
	}
	th.MomZ = (dest.Z - source.Z) / dist

	l.CheckMissileSpawn(th)
	return th
}

// SpawnPlayerMissile fires a missile of type t along source's facing,
// auto-aiming at a shootable mobj slightly left or right if one is found.
func (l *Level) SpawnPlayerMissile(source *Mobj, t info.MobjType) *Mobj {
	const aimRange = 16 * 64 * fixed.FracUnit

	an := source.Angle
	slope, target := l.coll.AimLineAttack(source, an, aimRange)
	if target == nil {
		an += 1 << 26
		slope, target = l.coll.AimLineAttack(source, an, aimRange)
		if target == nil {
			an -= 2 << 26
			slope, target = l.coll.AimLineAttack(source, an, aimRange)
		}
		if target == nil {
			an = source.Angle
			slope = 0
		}
	}

	z := source.Z + 32*fixed.FracUnit
	if l.footClipped(source) {
		z -= FootClipSize
	}

	th := l.Spawn(source.X, source.Y, z, t)
	l.noiseAlert(source, source)
	l.startSound(th, th.Info.SeeSound)

	th.Target = source.Handle()
	th.Angle = an
	th.MomX = fixed.Mul(th.Info.Speed, an.Cos())
	th.MomY = fixed.Mul(th.Info.Speed, an.Sin())
	th.MomZ = fixed.Mul(th.Info.Speed, slope)

	if t == info.MTRocket && l.Options.RocketTrails {
		th.Flags2 |= info.MF2SmokeTrail
		l.puffCount = 0
		th.Nudge = 1
	}

	l.CheckMissileSpawn(th)
	return th
}

func (l *Level) footClipped(m *Mobj) bool {
	return m.Flags2&info.MF2FeetAreClipped != 0 && m.Sector != nil &&
		m.Sector.HeightSec == -1 && l.Options.LiquidClip
}
