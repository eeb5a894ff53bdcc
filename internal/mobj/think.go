package mobj

import (
	"log/slog"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
)

// Think runs one tic of m: movement, liquid and power-up bobbing, ledge
// torque, then state countdown or the nightmare respawn check.
func (l *Level) Think(m *Mobj) {
	flags := m.Flags
	player := m.Player

	if player == nil || player.Mo != m {
		m.Interp = true
		m.OldX, m.OldY, m.OldZ = m.X, m.Y, m.Z
		m.OldAngle = m.Angle
	}

	if l.Options.Freeze && player == nil {
		return
	}

	if m.Nudge > 0 {
		m.Nudge--
	}

	if m.MomX != 0 || m.MomY != 0 || flags&info.MFSkullFly != 0 {
		l.XYMovement(m)
		if m.removed {
			return
		}
	}

	sector := m.Sector
	if sector != nil && !sector.Liquid {
		m.Flags2 &^= info.MF2FeetAreClipped
	}
	flags2 := m.Flags2

	switch {
	case flags2&info.MF2FeetAreClipped != 0 && flags2&info.MF2NoLiquidBob == 0 &&
		sector != nil && m.Z <= sector.FloorHeight && m.MomZ == 0 &&
		sector.HeightSec == -1 && l.Options.LiquidBob:
		m.Z += liquidBobDiffs[(m.FloatBob+l.Time)&63]

	case flags2&info.MF2FloatBob != 0 && l.Options.FloatBob:
		m.Z = fixed.Clamp(m.FloorZ, m.Z+floatBobDiffs[(m.FloatBob+l.Time)&63], m.CeilingZ)

	case m.Z != m.FloorZ || m.MomZ != 0:
		if flags2&info.MF2PassMobj != 0 {
			l.passMobjZ(m, player)
		} else {
			l.ZMovement(m)
		}
		if m.removed {
			return
		}

	case m.MomX == 0 && m.MomY == 0 && !m.sentient():
		// hanging off a ledge: push it off
		if flags&info.MFNoGravity == 0 && flags2&info.MF2FloatBob == 0 &&
			((m.Health <= 0 && m.Z-m.DropoffZ > 2*fixed.FracUnit) ||
				(flags&info.MFCountKill != 0 && m.Z-m.DropoffZ > 24*fixed.FracUnit)) {
			l.coll.ApplyTorque(m)
		} else {
			m.Flags2 &^= info.MF2Falling
			m.Gear = 0
		}
	}

	if m.Tics != -1 {
		m.Tics--
		if m.Tics == 0 {
			if m.State == info.SNull {
				return
			}
			l.SetState(m, l.states[m.State].Next)
		}
		return
	}

	if flags&info.MFCountKill != 0 && (l.Options.Skill == SkillNightmare || l.Options.RespawnMonsters) {
		m.MoveCount++
		if m.MoveCount >= NightmareDelay && l.Time&31 == 0 && l.Rand.Byte() <= 4 {
			l.NightmareRespawn(m)
		}
	}
}

func (l *Level) passMobjZ(m *Mobj, player *Player) {
	onmo := l.coll.CheckOnMobj(m)
	if onmo == nil {
		l.ZMovement(m)
		m.Flags2 &^= info.MF2OnMobj
		return
	}
	if player == nil {
		return
	}

	if m.MomZ < -Gravity*8 {
		player.DeltaViewHeight = m.MomZ >> 3
		if m.MomZ < -23*fixed.FracUnit {
			l.noiseAlert(m, m)
		}
	}
	if top := onmo.Z + onmo.Height; top-m.Z <= 24*fixed.FracUnit {
		player.ViewHeight -= top - m.Z
		player.DeltaViewHeight = (ViewHeight - player.ViewHeight) >> 3
		m.Z = top
		m.Flags2 |= info.MF2OnMobj
	}
	m.MomZ = 0
}

// NightmareRespawn replaces a dead monster with a fresh one at its spawn
// point, unless something is standing there.
func (l *Level) NightmareRespawn(m *Mobj) {
	sp := m.SpawnPoint
	x := fixed.Int(int32(sp.X))
	y := fixed.Int(int32(sp.Y))

	// a spawn point at the origin means the thing had none
	if x == 0 && y == 0 {
		x, y = m.X, m.Y
	}

	if !l.coll.CheckPosition(m, x, y) {
		return
	}

	var floor fixed.Fixed
	if m.Sector != nil {
		floor = m.Sector.FloorHeight
	}
	fog := l.Spawn(m.X, m.Y, floor, info.MTTFog)
	fog.Angle = m.Angle
	l.startSound(fog, info.SfxTeleport)

	floor = 0
	if sec := l.spatial.PointInSector(x, y); sec != nil {
		floor = sec.FloorHeight
	}
	fog = l.Spawn(x, y, floor, info.MTTFog)
	fog.Angle = snapAngle(sp.Angle)
	l.startSound(fog, info.SfxTeleport)

	z := OnFloorZ
	if m.Info.Flags&info.MFSpawnCeiling != 0 {
		z = OnCeilingZ
	}
	mo := l.Spawn(x, y, z, m.Type)
	mo.SpawnPoint = sp
	mo.Angle = snapAngle(sp.Angle)
	mo.Flags &^= info.MFCountKill
	if sp.Options&mapdata.ThingAmbush != 0 {
		mo.Flags |= info.MFAmbush
	}
	mo.ReactionTime = 18

	if IsDebugEnabled() {
		slog.Debug("nightmare respawn", "type", m.Type, "x", x.ToInt(), "y", y.ToInt())
	}
	l.Remove(m)
}
