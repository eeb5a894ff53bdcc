package mobj

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/retrogo/internal/info"
)

// SetState moves m to st, running entry actions and following zero-tic
// states until one with a duration is reached. It returns false if m was
// removed on the way, either by reaching SNull or by an action.
func (l *Level) SetState(m *Mobj, st info.StateNum) bool {
	cycles := 0
	for {
		if st == info.SNull {
			m.State = info.SNull
			l.Remove(m)
			return false
		}

		s := &l.states[st]
		m.State = st
		m.Tics = s.Tics
		m.Sprite = s.Sprite
		m.Frame = s.Frame

		if fn := l.actions[s.Action]; fn != nil {
			fn(l, m)
			if m.removed {
				return false
			}
		}

		st = s.Next
		if m.Tics != 0 {
			break
		}

		cycles++
		if cycles > StateCycleLimit {
			l.fatal(fmt.Errorf("%w: %s stuck at state %d", ErrStateCycle, m.Type, m.State))
			return false
		}
	}

	if IsDebugEnabled() {
		slog.Debug("state change", "type", m.Type, "state", m.State, "tics", m.Tics)
	}
	return true
}

// ExplodeMissile stops a projectile and moves it to its death state.
func (l *Level) ExplodeMissile(m *Mobj) {
	m.MomX, m.MomY, m.MomZ = 0, 0, 0

	if !l.SetState(m, m.Info.DeathState) {
		return
	}

	m.Tics -= int32(l.Rand.Byte() & 3)
	if m.Tics < 1 {
		m.Tics = 1
	}
	m.Flags &^= info.MFMissile

	if m.Type == info.MTRocket {
		m.Flags2 |= info.MF2Translucent
		m.Flags2 &^= info.MF2CastShadow
	}
	l.startSound(m, m.Info.DeathSound)
}
