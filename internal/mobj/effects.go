package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
)

// SpawnPuff spawns a bullet puff. A puff from a melee attack skips the
// spark frames.
func (l *Level) SpawnPuff(x, y, z fixed.Fixed, angle fixed.Angle) *Mobj {
	th := l.Spawn(x, y, z+fixed.Fixed(l.Rand.Spread()<<10), info.MTPuff)
	th.MomZ = fixed.FracUnit
	th.Tics = max(1, th.Tics-int32(l.Rand.Byte()&3))
	th.Angle = angle
	if l.Cosmetic.Bit() == 1 {
		th.Flags2 |= info.MF2Mirrored
	}

	if l.AttackRange == MeleeRange {
		l.SetState(th, info.SPuff3)
	}
	return th
}

// SpawnSmokeTrail spawns one puff of rocket smoke.
func (l *Level) SpawnSmokeTrail(x, y, z fixed.Fixed, angle fixed.Angle) *Mobj {
	th := l.Spawn(x, y, z+fixed.Fixed(l.Rand.Spread()<<10), info.MTTrail)
	th.MomZ = fixed.FracUnit / 2
	th.Tics = max(1, th.Tics-int32(l.Rand.Byte()&3))
	th.Angle = angle
	if l.Cosmetic.Bit() == 1 {
		th.Flags2 |= info.MF2Mirrored
	}
	return th
}

// SpawnBlood sprays damage/4+1 blood particles from target, fanned out
// around the direction opposite to angle. Light hits skip the first frames.
func (l *Level) SpawnBlood(x, y, z fixed.Fixed, angle fixed.Angle, damage int32, target *Mobj) {
	minz := target.Z
	maxz := minz + l.sprites.Height(target.Sprite)
	angle += fixed.Ang180

	for i := damage>>2 + 1; i > 0; i-- {
		th := l.newMobj(x, y, info.MTBlood)
		th.Blood = target.Blood
		if l.Cosmetic.Bit() == 1 {
			th.Flags2 |= info.MF2Mirrored
		}

		st := th.Info.SpawnState
		s := &l.states[st]
		th.State = st
		th.Tics = max(1, s.Tics-int32(l.Rand.Byte()&3))
		th.Sprite = s.Sprite
		th.Frame = s.Frame

		l.spatial.SetThingPosition(th)
		if th.Sector != nil {
			th.FloorZ = th.Sector.FloorHeight
			th.CeilingZ = th.Sector.CeilingHeight
		}
		th.DropoffZ = th.FloorZ
		th.Z = fixed.Clamp(minz, z+fixed.Fixed(l.Rand.Spread()<<10), maxz)
		th.OldX, th.OldY, th.OldZ = th.X, th.Y, th.Z

		th.node = l.thinkers.Add(th)

		th.MomX = fixed.Mul(fixed.Fixed(i)*fixed.FracUnit/4, angle.Cos())
		th.MomY = fixed.Mul(fixed.Fixed(i)*fixed.FracUnit/4, angle.Sin())
		th.MomZ = fixed.FracUnit * fixed.Fixed(2+i/6)

		th.Angle = angle
		th.OldAngle = angle
		angle += fixed.Angle(int32(l.Rand.Spread()) * 0xb60b60)

		if damage <= 12 && l.states[th.State].Next != info.SNull {
			l.SetState(th, l.states[th.State].Next)
		}
		if damage < 9 && l.states[th.State].Next != info.SNull {
			l.SetState(th, l.states[th.State].Next)
		}
	}
}

// SpawnBloodSplat leaves a splat on the floor at (x, y) unless the floor
// there is liquid, sky, or higher than maxHeight. A splat credited to
// target uses up one of its remaining splats.
func (l *Level) SpawnBloodSplat(x, y fixed.Fixed, blood info.BloodColor, maxHeight fixed.Fixed, target *Mobj) {
	if len(l.splats) >= l.Options.BloodSplatsMax {
		return
	}

	sec := l.spatial.PointInSector(x, y)
	if sec == nil || sec.Liquid || sec.FloorHeight > maxHeight || sec.FloorSky {
		return
	}

	splat := BloodSplat{
		X:      x,
		Y:      y,
		Frame:  int32(l.Cosmetic.Int(0, 7)),
		Blood:  blood,
		Sector: sec,
	}
	if l.Cosmetic.Bit() == 1 {
		splat.Flags |= SplatMirrored
	}
	if blood == info.BloodFuzzy {
		splat.Flags |= SplatFuzz
	}
	l.splats = append(l.splats, splat)

	if target != nil && target.BloodSplats > 0 {
		target.BloodSplats--
	}
}

// SpawnMoreBlood pools splats around a corpse placed by the map.
func (l *Level) SpawnMoreBlood(m *Mobj) {
	radius := int(l.sprites.Width(m.Sprite)>>fixed.FracBits)>>1 + 12
	n := l.Cosmetic.Int(50, 100) + radius
	x, y := m.X, m.Y

	if m.Flags&info.MFSpawnCeiling == 0 {
		x += fixed.Fixed(l.Cosmetic.Int(-radius/3, radius/3) << fixed.FracBits)
		y += fixed.Fixed(l.Cosmetic.Int(-radius/3, radius/3) << fixed.FracBits)
	}

	for range n {
		if m.BloodSplats == 0 {
			break
		}
		an := l.Cosmetic.Int(0, fixed.FineAngles-1)
		fx := x + fixed.Mul(fixed.Fixed(l.Cosmetic.Int(0, radius)<<fixed.FracBits), fixed.FineCosine(an))
		fy := y + fixed.Mul(fixed.Fixed(l.Cosmetic.Int(0, radius)<<fixed.FracBits), fixed.FineSine(an))
		l.SpawnBloodSplat(fx, fy, m.Blood, m.FloorZ, m)
	}
}
