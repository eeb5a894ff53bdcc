package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
)

// ZMovement integrates vertical momentum, applies gravity and clips m
// between its floor and ceiling.
func (l *Level) ZMovement(m *Mobj) {
	player := m.Player
	flags := m.Flags

	// smooth step up
	if player != nil && player.Mo == m && m.Z < m.FloorZ {
		player.ViewHeight -= m.FloorZ - m.Z
		player.DeltaViewHeight = (ViewHeight - player.ViewHeight) >> 3
	}

	m.Z += m.MomZ

	// floaters drift towards their target's height
	if (m.Flags^info.MFFloat)&(info.MFFloat|info.MFSkullFly|info.MFInFloat) == 0 {
		if t := l.Resolve(m.Target); t != nil {
			delta := (t.Z + m.Height>>1 - m.Z) * 3
			if fixed.ApproxDistance(m.X-t.X, m.Y-t.Y) < fixed.Abs(delta) {
				if delta < 0 {
					m.Z -= FloatSpeed
				} else {
					m.Z += FloatSpeed
				}
			}
		}
	}

	if m.Z <= m.FloorZ {
		// blood particles become splats the moment they land
		if m.Flags2&info.MF2Blood != 0 {
			if l.Options.BloodSplatsMax > 0 {
				l.SpawnBloodSplat(m.X, m.Y, m.Blood, m.FloorZ, nil)
			}
			l.Remove(m)
			return
		}

		if flags&info.MFSkullFly != 0 {
			m.MomZ = -m.MomZ
		}

		if m.MomZ < 0 {
			if player != nil && m.MomZ < -Gravity*8 {
				// squat after a hard landing
				player.DeltaViewHeight = m.MomZ >> 3
				if m.Health > 0 {
					l.startSound(m, info.SfxOof)
				}
			}
			m.MomZ = 0
		}
		m.Z = m.FloorZ

		if isLiveMissile(m.Flags) {
			l.ExplodeMissile(m)
			return
		}
	} else if flags&info.MFNoGravity == 0 {
		if m.MomZ == 0 {
			m.MomZ = -Gravity
		}
		m.MomZ -= Gravity
	}

	if m.Z+m.Height > m.CeilingZ {
		if flags&info.MFSkullFly != 0 {
			m.MomZ = -m.MomZ
		}
		if m.MomZ > 0 {
			m.MomZ = 0
		}
		m.Z = m.CeilingZ - m.Height

		if isLiveMissile(m.Flags) {
			if m.Sector != nil && m.Sector.CeilingSky {
				if m.Type == info.MTBFG {
					l.startSound(m, m.Info.DeathSound)
				}
				l.Remove(m)
				return
			}
			l.ExplodeMissile(m)
		}
	}
}

// isLiveMissile reports a missile that is not clipping through walls.
func isLiveMissile(f info.Flags) bool {
	return (f^info.MFMissile)&(info.MFMissile|info.MFNoClip) == 0
}
