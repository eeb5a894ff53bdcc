package game

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/world"
)

// Monster senses and movement.
const (
	sightRange   = 2048 * fixed.FracUnit
	hearingRange = 1200 * fixed.FracUnit
	numDirs      = 8
	diagonal     = 47000 // FracUnit * sqrt(2)/2
)

var (
	dirX = [numDirs]fixed.Fixed{fixed.FracUnit, diagonal, 0, -diagonal, -fixed.FracUnit, -diagonal, 0, diagonal}
	dirY = [numDirs]fixed.Fixed{0, diagonal, fixed.FracUnit, diagonal, 0, -diagonal, -fixed.FracUnit, -diagonal}
)

// monsters drives the look and chase states of one level.
type monsters struct {
	level *mobj.Level
	world *world.World
	sound mobj.Sound
}

// registerMonsters installs the look and chase actions on l and lets
// gunfire wake monsters within earshot.
func registerMonsters(l *mobj.Level, w *world.World, snd mobj.Sound) {
	ms := &monsters{level: l, world: w, sound: snd}
	l.RegisterAction(info.ActionLook, ms.look)
	l.RegisterAction(info.ActionChase, ms.chase)
	l.OnNoise = ms.noise
}

// look wakes m when it already holds a live target or can see the player.
func (ms *monsters) look(l *mobj.Level, m *mobj.Mobj) {
	t := l.Resolve(m.Target)
	if t == nil || t.Health <= 0 {
		if l.Player != nil {
			t = l.Player.Mo
		}
		if t == nil || !ms.canSee(m, t) {
			return
		}
		m.Target = t.Handle()
	}

	ms.startSound(m, m.Info.SeeSound)
	l.SetState(m, m.Info.SeeState)
}

// canSee reports whether t stands in front of m, or within melee range, with
// nothing blocking the view.
func (ms *monsters) canSee(m, t *mobj.Mobj) bool {
	if t.Health <= 0 {
		return false
	}
	dist := fixed.ApproxDistance(t.X-m.X, t.Y-m.Y)
	if dist > sightRange {
		return false
	}
	if dist > mobj.MeleeRange {
		an := fixed.PointToAngle(m.X, m.Y, t.X, t.Y) - m.Angle
		if an > fixed.Ang90 && an < fixed.Ang270 {
			return false
		}
	}
	return ms.world.CheckSight(m, t)
}

// chase walks m toward its target and starts an attack when in range.
func (ms *monsters) chase(l *mobj.Level, m *mobj.Mobj) {
	if m.ReactionTime > 0 {
		m.ReactionTime--
	}

	t := l.Resolve(m.Target)
	if t == nil || t.Health <= 0 || t.Flags&info.MFShootable == 0 {
		m.Target = mobj.Handle{}
		l.SetState(m, m.Info.SpawnState)
		return
	}

	if m.Flags&info.MFJustAttacked != 0 {
		m.Flags &^= info.MFJustAttacked
		ms.newChaseDir(l, m, t)
		return
	}

	if m.Info.MeleeState != info.SNull && ms.inMeleeRange(m, t) {
		ms.startSound(m, m.Info.AttackSound)
		l.SetState(m, m.Info.MeleeState)
		return
	}

	if m.Info.MissileState != info.SNull && (m.MoveCount == 0 || l.Options.Skill == mobj.SkillNightmare) &&
		ms.checkMissileRange(l, m, t) {
		l.SetState(m, m.Info.MissileState)
		m.Flags |= info.MFJustAttacked
		return
	}

	m.MoveCount--
	if m.MoveCount < 0 || !ms.step(m, dirOf(m.Angle)) {
		ms.newChaseDir(l, m, t)
	}

	if l.Rand.Byte() < 3 {
		ms.startSound(m, m.Info.ActiveSound)
	}
}

func (ms *monsters) inMeleeRange(m, t *mobj.Mobj) bool {
	dist := fixed.ApproxDistance(t.X-m.X, t.Y-m.Y)
	return dist < mobj.MeleeRange-20*fixed.FracUnit+t.Info.Radius && ms.world.CheckSight(m, t)
}

// checkMissileRange rolls against distance: far targets are shot at less
// often.
func (ms *monsters) checkMissileRange(l *mobj.Level, m, t *mobj.Mobj) bool {
	if m.ReactionTime > 0 || !ms.world.CheckSight(m, t) {
		return false
	}
	if m.Flags&info.MFJustHit != 0 {
		m.Flags &^= info.MFJustHit
		return true
	}

	dist := fixed.ApproxDistance(t.X-m.X, t.Y-m.Y) - 64*fixed.FracUnit
	if m.Info.MeleeState == info.SNull {
		dist -= 128 * fixed.FracUnit
	}
	d := min(max(dist.ToInt(), 0), 200)
	return int32(l.Rand.Byte()) >= d
}

// step moves m one speed unit in dir, keeping walkers on the floor.
func (ms *monsters) step(m *mobj.Mobj, dir int) bool {
	x := m.X + fixed.Mul(m.Info.Speed, dirX[dir])
	y := m.Y + fixed.Mul(m.Info.Speed, dirY[dir])
	if !ms.world.TryMove(m, x, y, false) {
		return false
	}
	if m.Flags&info.MFFloat == 0 {
		m.Z = m.FloorZ
	}
	return true
}

// newChaseDir picks the first walkable direction, trying the one toward t
// first, then its neighbours in a random order and never turning straight
// back unless nothing else is free.
func (ms *monsters) newChaseDir(l *mobj.Level, m, t *mobj.Mobj) {
	want := dirOf(fixed.PointToAngle(m.X, m.Y, t.X, t.Y))
	back := (dirOf(m.Angle) + numDirs/2) % numDirs

	sign := 1
	if l.Rand.Bit() == 1 {
		sign = -1
	}
	order := [numDirs]int{want}
	for i := 1; i < numDirs; i++ {
		off := (i + 1) / 2
		if i%2 == 0 {
			off = -off
		}
		order[i] = (want + sign*off + numDirs) % numDirs
	}

	for _, d := range order {
		if d == back {
			continue
		}
		if ms.try(l, m, d) {
			return
		}
	}
	if ms.try(l, m, back) {
		return
	}
	m.MoveCount = 0
}

func (ms *monsters) try(l *mobj.Level, m *mobj.Mobj, dir int) bool {
	if !ms.step(m, dir) {
		return false
	}
	m.Angle = fixed.Ang45 * fixed.Angle(dir)
	m.MoveCount = int32(l.Rand.Byte() & 15)
	return true
}

// noise gives every idle monster within earshot of emitter a target.
func (ms *monsters) noise(target, emitter *mobj.Mobj) {
	if target == nil || target.Health <= 0 {
		return
	}
	ms.level.Each(func(m *mobj.Mobj) bool {
		if m.Flags&info.MFCountKill == 0 || m.Health <= 0 || !m.Target.IsZero() {
			return true
		}
		if fixed.ApproxDistance(m.X-emitter.X, m.Y-emitter.Y) <= hearingRange && ms.world.CheckSight(emitter, m) {
			m.Target = target.Handle()
		}
		return true
	})
}

func (ms *monsters) startSound(m *mobj.Mobj, sfx info.Sound) {
	if sfx != info.SfxNone && ms.sound != nil {
		ms.sound.StartSound(m, sfx)
	}
}

func dirOf(a fixed.Angle) int {
	return int((a+fixed.Ang45/2)>>29) % numDirs
}
