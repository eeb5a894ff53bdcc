package mobj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
)

func TestXYMovement_ZeroMomentumIsNoop(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(64*fixed.FracUnit, 32*fixed.FracUnit, OnFloorZ, info.MTPossessed)

	l.XYMovement(m)

	if w.tryMoves != 0 {
		t.Errorf("TryMove calls = %d, want 0", w.tryMoves)
	}
	if m.X != 64*fixed.FracUnit || m.Y != 32*fixed.FracUnit {
		t.Errorf("position = (%d, %d), want unchanged", m.X, m.Y)
	}
}

func TestXYMovement_SplitsFastMoves(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, 32*fixed.FracUnit, info.MTRocket)
	m.MomX = 20 * fixed.FracUnit

	l.XYMovement(m)

	if w.tryMoves != 2 {
		t.Errorf("TryMove calls = %d, want 2", w.tryMoves)
	}
	if m.X != 20*fixed.FracUnit {
		t.Errorf("X = %d, want %d", m.X, 20*fixed.FracUnit)
	}
}

func TestXYMovement_ClampsToMaxMove(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, 32*fixed.FracUnit, info.MTRocket)
	m.MomX = 100 * fixed.FracUnit

	l.XYMovement(m)

	assert.Equal(t, MaxMove, m.MomX)
	assert.Equal(t, MaxMove, m.X)
}

func TestXYMovement_FrictionSettlesToZero(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, OnFloorZ, info.MTPossessed)
	m.MomX = 8 * fixed.FracUnit

	prev := m.MomX
	for i := 0; i < 200 && m.MomX != 0; i++ {
		l.XYMovement(m)
		if m.MomX < 0 {
			t.Fatalf("tic %d: momentum changed sign: %d", i, m.MomX)
		}
		if m.MomX >= prev {
			t.Fatalf("tic %d: momentum %d did not decrease from %d", i, m.MomX, prev)
		}
		prev = m.MomX
	}

	if m.MomX != 0 {
		t.Fatalf("momentum = %d after 200 tics, want 0", m.MomX)
	}
}

func TestXYMovement_StopSpeedSnap(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, OnFloorZ, info.MTPossessed)
	m.MomX = StopSpeed - 1
	m.MomY = -(StopSpeed - 1)

	l.XYMovement(m)

	assert.Zero(t, m.MomX)
	assert.Zero(t, m.MomY)
}

func TestXYMovement_NoFrictionInAirOrForMissiles(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())

	air := l.Spawn(0, 0, 64*fixed.FracUnit, info.MTPossessed)
	air.MomX = 4 * fixed.FracUnit
	l.XYMovement(air)
	assert.Equal(t, 4*fixed.FracUnit, air.MomX)

	rocket := l.Spawn(0, 0, OnFloorZ, info.MTRocket)
	rocket.MomX = 4 * fixed.FracUnit
	l.XYMovement(rocket)
	assert.Equal(t, 4*fixed.FracUnit, rocket.MomX)
}

func TestXYMovement_WaterFrictionForCorpses(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, OnFloorZ, info.MTDeadPossessed)
	m.Flags2 |= info.MF2FeetAreClipped
	m.MomX = 4 * fixed.FracUnit

	l.XYMovement(m)

	assert.Equal(t, fixed.Mul(4*fixed.FracUnit, WaterFriction), m.MomX)
}

func TestXYMovement_BouncesOffIcyWall(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	w.friction = 0xf900
	w.blocked = true
	w.blockLine = wall(128, nil)

	m := l.Spawn(0, 0, OnFloorZ, info.MTPossessed)
	m.Flags |= info.MFNoGravity
	m.MomX = fixed.FracUnit
	m.MomY = fixed.FracUnit / 2

	l.XYMovement(m)

	// friction is applied after the bounce
	assert.Equal(t, fixed.Mul(-fixed.FracUnit, w.friction), m.MomX)
	assert.Equal(t, fixed.Mul(fixed.FracUnit/2, w.friction), m.MomY)
}

func TestBounce_HalvesPerpendicularUnderGravity(t *testing.T) {
	m := &Mobj{MomX: fixed.FracUnit}
	bounce(m, wall(128, nil))

	assert.Equal(t, -fixed.FracUnit/2, m.MomX)
	assert.Zero(t, m.MomY)
}

func TestXYMovement_BlockedMonsterStops(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	w.blocked = true
	w.blockLine = wall(128, nil)

	m := l.Spawn(0, 0, OnFloorZ, info.MTPossessed)
	m.MomX = 4 * fixed.FracUnit

	l.XYMovement(m)

	assert.Zero(t, m.MomX)
	assert.Zero(t, m.MomY)
}

func TestXYMovement_BlockedPlayerSlides(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	w.blocked = true

	m := l.SpawnPlayer(mapdata.Thing{X: 0, Y: 0})
	m.MomX = 4 * fixed.FracUnit
	l.XYMovement(m)

	assert.Equal(t, 1, w.slides)
}

func TestXYMovement_PlayerStopsRunning(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.SpawnPlayer(mapdata.Thing{})
	l.SetState(m, info.SPlayRun2)
	m.MomX = StopSpeed / 2
	l.Player.MomX = fixed.FracUnit

	l.XYMovement(m)

	assert.Equal(t, info.SPlay, m.State)
	assert.Zero(t, l.Player.MomX)
}

func TestXYMovement_VoodooDollKeepsPlayerRunning(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	body := l.SpawnPlayer(mapdata.Thing{})
	l.SetState(body, info.SPlayRun2)
	l.Player.MomX = fixed.FracUnit

	doll := l.Spawn(0, 0, OnFloorZ, info.MTPlayer)
	doll.Player = l.Player
	doll.MomX = StopSpeed / 2

	l.XYMovement(doll)

	assert.Zero(t, doll.MomX)
	assert.Equal(t, info.SPlayRun2, body.State)
	assert.Equal(t, fixed.FracUnit, l.Player.MomX)
}

func TestXYMovement_MissileIntoSkyIsRemoved(t *testing.T) {
	sky := &mapdata.Sector{CeilingHeight: 64 * fixed.FracUnit, CeilingSky: true, HeightSec: -1}

	tests := []struct {
		name      string
		typ       info.MobjType
		wantSound bool
	}{
		{"rocket", info.MTRocket, false},
		{"bfg", info.MTBFG, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, w, snd := newTestLevel(DefaultOptions())
			w.blocked = true
			w.ceilingLine = wall(128, sky)

			m := l.Spawn(0, 0, 100*fixed.FracUnit, tt.typ)
			m.MomX = 4 * fixed.FracUnit
			l.XYMovement(m)

			assert.True(t, m.Removed())
			assert.NotEqual(t, m.Info.DeathState, m.State, "must not enter the death state")
			assert.Equal(t, tt.wantSound, snd.played(m.Info.DeathSound))
		})
	}
}

func TestXYMovement_MissileExplodesOnWall(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	w.blocked = true
	w.blockLine = wall(128, nil)

	m := l.Spawn(0, 0, 32*fixed.FracUnit, info.MTRocket)
	m.MomX = 4 * fixed.FracUnit
	l.XYMovement(m)

	assert.False(t, m.Removed())
	assert.Equal(t, info.SExplode1, m.State)
}

func TestXYMovement_SkullStopsCharging(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, 32*fixed.FracUnit, info.MTSkull)
	m.Flags |= info.MFSkullFly
	m.MomZ = fixed.FracUnit

	l.XYMovement(m)

	assert.Zero(t, m.Flags&info.MFSkullFly)
	assert.Zero(t, m.MomZ)
	assert.Equal(t, info.SSkullStnd, m.State)
}

func TestZMovement_Gravity(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, 64*fixed.FracUnit, info.MTPossessed)

	l.ZMovement(m)
	assert.Equal(t, -2*Gravity, m.MomZ)

	l.ZMovement(m)
	assert.Equal(t, -3*Gravity, m.MomZ)
	assert.Equal(t, 64*fixed.FracUnit-2*Gravity, m.Z)
}

func TestZMovement_LandsOnFloor(t *testing.T) {
	l, w, _ := newTestLevel(DefaultOptions())
	w.sector.FloorHeight = 16 * fixed.FracUnit

	m := l.Spawn(0, 0, 20*fixed.FracUnit, info.MTPossessed)
	m.MomZ = -10 * fixed.FracUnit
	l.ZMovement(m)

	assert.Equal(t, 16*fixed.FracUnit, m.Z)
	assert.Zero(t, m.MomZ)
}

func TestZMovement_HardLandingSquats(t *testing.T) {
	l, _, snd := newTestLevel(DefaultOptions())
	m := l.SpawnPlayer(mapdata.Thing{})
	m.Z = 4 * fixed.FracUnit
	m.MomZ = -12 * fixed.FracUnit

	l.ZMovement(m)

	assert.Equal(t, m.FloorZ, m.Z)
	assert.Equal(t, (-12*fixed.FracUnit)>>3, l.Player.DeltaViewHeight)
	assert.True(t, snd.played(info.SfxOof))
}

func TestZMovement_CeilingClamp(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, 60*fixed.FracUnit, info.MTSkull)
	m.MomZ = 40 * fixed.FracUnit

	l.ZMovement(m)

	assert.Equal(t, m.CeilingZ-m.Height, m.Z)
	assert.Zero(t, m.MomZ)
}

func TestZMovement_MissileIntoSkyCeilingIsRemoved(t *testing.T) {
	l, w, snd := newTestLevel(DefaultOptions())
	w.sector.CeilingSky = true

	m := l.Spawn(0, 0, 100*fixed.FracUnit, info.MTRocket)
	m.MomZ = 30 * fixed.FracUnit
	l.ZMovement(m)

	assert.True(t, m.Removed())
	assert.False(t, snd.played(info.SfxBarrelExplode))
}

func TestZMovement_MissileHitsFloor(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	m := l.Spawn(0, 0, 4*fixed.FracUnit, info.MTRocket)
	m.MomZ = -10 * fixed.FracUnit

	l.ZMovement(m)

	assert.Equal(t, info.SExplode1, m.State)
	assert.Zero(t, m.Z)
}

func TestZMovement_FloaterDriftsToTarget(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	target := l.Spawn(16*fixed.FracUnit, 0, OnFloorZ, info.MTPossessed)
	m := l.Spawn(0, 0, 64*fixed.FracUnit, info.MTSkull)
	m.Target = target.Handle()

	l.ZMovement(m)

	assert.Equal(t, 64*fixed.FracUnit-FloatSpeed, m.Z)
}

func TestZMovement_BloodBecomesSplat(t *testing.T) {
	l, _, _ := newTestLevel(DefaultOptions())
	target := l.Spawn(0, 0, OnFloorZ, info.MTPossessed)
	l.SpawnBlood(0, 0, 2*fixed.FracUnit, 0, 3, target)

	var drops []*Mobj
	l.Each(func(m *Mobj) bool {
		if m.Type == info.MTBlood {
			drops = append(drops, m)
		}
		return true
	})
	if len(drops) != 1 {
		t.Fatalf("blood particles = %d, want 1", len(drops))
	}

	for i := 0; i < 100 && !drops[0].Removed(); i++ {
		l.Tick()
	}

	assert.True(t, drops[0].Removed())
	assert.Len(t, l.Splats(), 1)
}
