package mobj

import (
	"log/slog"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
)

// DamageMobj applies damage to target. inflictor is what touched the
// target (a projectile, a puff origin) and source is who is responsible;
// either may be nil for environmental damage.
func (l *Level) DamageMobj(target, inflictor, source *Mobj, damage int32) {
	if target.removed || target.Flags&info.MFShootable == 0 || target.Health <= 0 {
		return
	}

	if target.Flags&info.MFSkullFly != 0 {
		target.MomX, target.MomY, target.MomZ = 0, 0, 0
	}

	if p := target.Player; p != nil && !target.IsVoodooDoll() {
		if p.Invulnerability > 0 && damage < 1000 {
			return
		}
		if l.Options.Skill == SkillBaby {
			damage >>= 1
		}
		if p.Armor > 0 {
			saved := min(damage/3, p.Armor)
			p.Armor -= saved
			damage -= saved
		}
		p.Health -= damage
		if p.Health < 0 {
			p.Health = 0
		}
		p.DamageCount += damage
		if p.DamageCount > 100 {
			p.DamageCount = 100
		}
	}

	// push the target away from the inflictor
	if inflictor != nil && target.Flags&info.MFNoClip == 0 && target.Info.Mass > 0 {
		an := fixed.PointToAngle(inflictor.X, inflictor.Y, target.X, target.Y)
		thrust := fixed.Fixed(damage) * (fixed.FracUnit >> 3) * 100 / fixed.Fixed(target.Info.Mass)
		target.MomX += fixed.Mul(thrust, an.Cos())
		target.MomY += fixed.Mul(thrust, an.Sin())
	}

	target.Health -= damage
	if target.Health <= 0 {
		l.KillMobj(source, target)
		return
	}

	if int32(l.Rand.Byte()) < target.Info.PainChance && target.Flags&info.MFSkullFly == 0 {
		target.Flags |= info.MFJustHit
		l.SetState(target, target.Info.PainState)
	}

	target.ReactionTime = 0
	if source != nil && source != target && !source.removed {
		target.Target = source.Handle()
		if target.State == target.Info.SpawnState && target.Info.SeeState != info.SNull {
			l.SetState(target, target.Info.SeeState)
		}
	}
}

// KillMobj turns target into a corpse.
func (l *Level) KillMobj(source, target *Mobj) {
	target.Flags &^= info.MFShootable | info.MFFloat | info.MFSkullFly
	if target.Type != info.MTSkull {
		target.Flags &^= info.MFNoGravity
	}
	target.Flags |= info.MFCorpse | info.MFDropoff
	target.Flags2 &^= info.MF2PassMobj
	target.Height >>= 2

	if target.Flags&info.MFCountKill != 0 {
		l.Stats.Kills++
	}

	if p := target.Player; p != nil && !target.IsVoodooDoll() {
		target.Flags &^= info.MFSolid
		p.State = PlayerDead
	}

	if IsDebugEnabled() {
		slog.Debug("mobj killed", "type", target.Type, "by_source", source != nil)
	}

	st := target.Info.DeathState
	if target.Health < -target.Info.SpawnHealth && target.Info.XDeathState != info.SNull {
		st = target.Info.XDeathState
	}
	if !l.SetState(target, st) {
		return
	}

	target.Tics -= int32(l.Rand.Byte() & 3)
	if target.Tics < 1 {
		target.Tics = 1
	}
}
