package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
)

// ExplosionDamage is the radius and peak damage of an exploding barrel or rocket.
const ExplosionDamage = 128

// registerDefaultActions installs the actions the core can run on its own.
// Look, Chase and BFGSpray need line of sight and stay unset until a caller
// registers them.
func (l *Level) registerDefaultActions() {
	l.actions[info.ActionFaceTarget] = actionFaceTarget
	l.actions[info.ActionPain] = actionPain
	l.actions[info.ActionScream] = actionScream
	l.actions[info.ActionXScream] = actionXScream
	l.actions[info.ActionPlayerScream] = actionPlayerScream
	l.actions[info.ActionFall] = actionFall
	l.actions[info.ActionExplode] = actionExplode
	l.actions[info.ActionPosAttack] = actionPosAttack
	l.actions[info.ActionTroopAttack] = actionTroopAttack
	l.actions[info.ActionSkullAttack] = actionSkullAttack
}

func actionFaceTarget(l *Level, m *Mobj) {
	t := l.Resolve(m.Target)
	if t == nil {
		return
	}
	m.Flags &^= info.MFAmbush
	m.Angle = fixed.PointToAngle(m.X, m.Y, t.X, t.Y)
	if t.Flags&info.MFFuzz != 0 {
		m.Angle += fixed.Angle(l.Rand.Spread() << 21)
	}
}

func actionPain(l *Level, m *Mobj) {
	l.startSound(m, m.Info.PainSound)
}

func actionScream(l *Level, m *Mobj) {
	l.startSound(m, m.Info.DeathSound)
}

func actionXScream(l *Level, m *Mobj) {
	l.startSound(m, info.SfxSlop)
}

func actionPlayerScream(l *Level, m *Mobj) {
	sfx := info.SfxPlayerDeath
	if m.Health < -50 {
		sfx = info.SfxPlayerXDeath
	}
	l.startSound(m, sfx)
}

func actionFall(l *Level, m *Mobj) {
	m.Flags &^= info.MFSolid
}

func actionExplode(l *Level, m *Mobj) {
	source := l.Resolve(m.Target)
	l.RadiusAttack(m, source, ExplosionDamage)
}

// RadiusAttack damages every shootable mobj within damage units of spot.
func (l *Level) RadiusAttack(spot, source *Mobj, damage int32) {
	var hit []*Mobj
	l.Each(func(t *Mobj) bool {
		if t.Flags&info.MFShootable != 0 && t != spot {
			hit = append(hit, t)
		}
		return true
	})

	for _, t := range hit {
		dx := fixed.Abs(t.X - spot.X)
		dy := fixed.Abs(t.Y - spot.Y)
		dist := max(max(dx, dy)-t.Radius, 0).ToInt()
		if dist >= damage {
			continue
		}
		l.DamageMobj(t, spot, source, damage-dist)
	}
}

func actionPosAttack(l *Level, m *Mobj) {
	if l.Resolve(m.Target) == nil {
		return
	}
	actionFaceTarget(l, m)

	angle := m.Angle
	l.AttackRange = MissileRange
	slope, _ := l.coll.AimLineAttack(m, angle, MissileRange)
	l.startSound(m, info.SfxPistol)

	angle += fixed.Angle(l.Rand.Spread() << 20)
	damage := int32(l.Rand.Byte()%5+1) * 3
	_, hit := l.coll.AimLineAttack(m, angle, MissileRange)
	if hit == nil {
		return
	}

	z := m.Z + m.Height>>1 + fixed.Mul(slope, fixed.ApproxDistance(hit.X-m.X, hit.Y-m.Y))
	if hit.Flags&info.MFNoBlood != 0 || hit.Blood == info.BloodNone {
		l.SpawnPuff(hit.X, hit.Y, z, angle)
	} else {
		l.SpawnBlood(hit.X, hit.Y, z, angle, damage, hit)
	}
	l.DamageMobj(hit, m, m, damage)
}

func actionTroopAttack(l *Level, m *Mobj) {
	t := l.Resolve(m.Target)
	if t == nil {
		return
	}
	actionFaceTarget(l, m)

	if l.checkMeleeRange(m, t) {
		damage := int32(l.Rand.Byte()%8+1) * 3
		l.DamageMobj(t, m, m, damage)
		return
	}
	l.SpawnMissile(m, t, info.MTTroopShot)
}

func actionSkullAttack(l *Level, m *Mobj) {
	t := l.Resolve(m.Target)
	if t == nil {
		return
	}
	m.Flags |= info.MFSkullFly
	l.startSound(m, m.Info.AttackSound)
	actionFaceTarget(l, m)

	m.MomX = fixed.Mul(SkullSpeed, m.Angle.Cos())
	m.MomY = fixed.Mul(SkullSpeed, m.Angle.Sin())

	dist := max(fixed.ApproxDistance(t.X-m.X, t.Y-m.Y)/SkullSpeed, 1)
	m.MomZ = (t.Z + t.Height>>1 - m.Z) / dist
}

func (l *Level) checkMeleeRange(m, t *Mobj) bool {
	dist := fixed.ApproxDistance(t.X-m.X, t.Y-m.Y)
	return dist < MeleeRange-20*fixed.FracUnit+t.Info.Radius
}
