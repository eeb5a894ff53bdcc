package game

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/sound"
	"github.com/udisondev/retrogo/internal/spawn"
	"github.com/udisondev/retrogo/internal/testutil"
	"github.com/udisondev/retrogo/internal/video"
)

const allSkills = mapdata.ThingEasy | mapdata.ThingNormal | mapdata.ThingHard

var (
	playerStart = mapdata.Thing{X: 100, Y: 100, Type: 1}
	impThing    = mapdata.Thing{X: 600, Y: 600, Angle: 180, Type: 3001, Options: allSkills}
	stimThing   = mapdata.Thing{X: 140, Y: 100, Type: 2011, Options: allSkills}
)

func newTestGame(t *testing.T, opts Options, things ...mapdata.Thing) (*Game, *sound.Recorder) {
	t.Helper()
	lv := testutil.OpenRoom("E1M1", 1024, things...)
	repo := spawn.NewLevelRepository(lv)
	rec := &sound.Recorder{}

	opts.Map = "E1M1"
	opts.Levels = repo
	opts.Things = repo
	opts.Sound = rec
	if opts.Sim == (mobj.Options{}) {
		opts.Sim = mobj.DefaultOptions()
		opts.Sim.Seed = 42
	}
	g, err := New(context.Background(), opts)
	require.NoError(t, err)
	return g, rec
}

func startLevel(t *testing.T, g *Game) {
	t.Helper()
	require.True(t, g.Respond(loop.Event{Type: loop.KeyDown, Key: 'x'}))
	require.NoError(t, g.Ticker())
	require.Equal(t, loop.StateLevel, g.State())
}

func press(g *Game, key int) {
	g.Respond(loop.Event{Type: loop.KeyDown, Key: key})
}

func runTics(t *testing.T, g *Game, n int) {
	t.Helper()
	for range n {
		require.NoError(t, g.Ticker())
	}
}

func TestNew_RequiresRepositories(t *testing.T) {
	_, err := New(context.Background(), Options{})
	assert.Error(t, err)
}

func TestPageTicker_AdvancesPages(t *testing.T) {
	g, _ := newTestGame(t, Options{PageTics: 3}, playerStart)
	assert.Equal(t, loop.StateDemoScreen, g.State())

	runTics(t, g, 3)
	assert.Equal(t, 0, g.page)
	runTics(t, g, 1)
	assert.Equal(t, 1, g.page)
	runTics(t, g, 4)
	assert.Equal(t, 0, g.page)
}

func TestRespond_KeyStartsGame(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart, impThing)
	startLevel(t, g)

	require.NotNil(t, g.PlayerMobj())
	assert.Equal(t, 2, g.Spawns().ThingCount())
	assert.Equal(t, 1, g.Level().Stats.TotalKills)
	assert.Equal(t, int32(1), g.Level().Time)
}

func TestPlayer_ForwardMoves(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)
	mo := g.PlayerMobj()
	x0 := mo.X

	press(g, 'w')
	runTics(t, g, 5)

	assert.Greater(t, mo.X, x0)
	assert.NotEqual(t, info.SPlay, mo.State)
}

func TestPlayer_TurnChangesAngle(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)
	mo := g.PlayerMobj()
	a0 := mo.Angle

	press(g, loop.KeyArrowLeft)
	runTics(t, g, 1)
	assert.Equal(t, a0+640<<16, mo.Angle)
}

func TestPlayer_FireSpendsAmmo(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)

	press(g, ' ')
	runTics(t, g, 1)
	assert.Equal(t, startAmmo-1, g.ammo)

	rockets := 0
	g.Level().Each(func(m *mobj.Mobj) bool {
		if m.Type == info.MTRocket {
			rockets++
		}
		return true
	})
	assert.Equal(t, 1, rockets)

	// held fire waits for the weapon
	runTics(t, g, 2)
	assert.Equal(t, startAmmo-1, g.ammo)
}

func TestPause_FreezesLevel(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)
	time0 := g.Level().Time

	press(g, 'p')
	require.True(t, g.Paused())
	runTics(t, g, 5)
	assert.Equal(t, time0, g.Level().Time)

	press(g, loop.KeyPause)
	runTics(t, g, 1)
	assert.Equal(t, time0+1, g.Level().Time)
}

func TestTouchSpecial(t *testing.T) {
	tests := []struct {
		name    string
		typ     info.MobjType
		health  int32
		taken   bool
		check   func(t *testing.T, g *Game)
		counted bool
	}{
		{"stim heals", info.MTStim, 50, true, func(t *testing.T, g *Game) {
			assert.Equal(t, int32(60), g.Level().Player.Health)
			assert.Equal(t, int32(60), g.PlayerMobj().Health)
		}, false},
		{"stim at full health stays", info.MTStim, 100, false, nil, false},
		{"medikit caps at 100", info.MTMedi, 90, true, func(t *testing.T, g *Game) {
			assert.Equal(t, int32(100), g.Level().Player.Health)
		}, false},
		{"soulsphere exceeds 100", info.MTSoul, 100, true, func(t *testing.T, g *Game) {
			assert.Equal(t, int32(200), g.Level().Player.Health)
		}, true},
		{"armor", info.MTArmor, 100, true, func(t *testing.T, g *Game) {
			assert.Equal(t, int32(greenArmor), g.Level().Player.Armor)
		}, false},
		{"clip", info.MTClip, 100, true, func(t *testing.T, g *Game) {
			assert.Equal(t, startAmmo+10, g.ammo)
		}, false},
		{"invisibility", info.MTIns, 100, true, func(t *testing.T, g *Game) {
			assert.NotZero(t, g.PlayerMobj().Flags&info.MFFuzz)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGame(t, Options{}, playerStart)
			startLevel(t, g)
			p := g.Level().Player
			p.Health = tt.health
			g.PlayerMobj().Health = tt.health

			item := g.Level().Spawn(g.PlayerMobj().X, g.PlayerMobj().Y, mobj.OnFloorZ, tt.typ)
			g.touchSpecial(item, g.PlayerMobj())

			assert.Equal(t, tt.taken, item.Removed())
			if tt.taken {
				assert.Contains(t, rec.Sfx(), info.SfxItemUp)
				assert.Equal(t, int32(bonusAdd), p.BonusCount)
			}
			if tt.counted {
				assert.Equal(t, 1, g.Level().Stats.Items)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestTouchSpecial_WalkingOntoItem(t *testing.T) {
	g, rec := newTestGame(t, Options{}, playerStart, stimThing)
	startLevel(t, g)
	p := g.Level().Player
	p.Health = 50
	g.PlayerMobj().Health = 50

	for range 20 {
		press(g, 'w')
		runTics(t, g, 1)
	}

	assert.Nil(t, g.Spawns().Spawned(1))
	assert.Equal(t, int32(60), p.Health)
	assert.Contains(t, rec.Sfx(), info.SfxItemUp)
}

func TestInvulnerability_BlocksDamage(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)
	p := g.Level().Player
	p.Invulnerability = 10

	g.Level().DamageMobj(g.PlayerMobj(), nil, nil, 50)
	assert.Equal(t, int32(100), p.Health)

	runTics(t, g, 10)
	g.Level().DamageMobj(g.PlayerMobj(), nil, nil, 50)
	assert.Equal(t, int32(50), p.Health)
}

func TestDeadPlayer_UseReborns(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)
	old := g.PlayerMobj()

	g.Level().DamageMobj(old, nil, nil, 1000)
	require.Equal(t, mobj.PlayerDead, g.Level().Player.State)

	press(g, 'u')
	runTics(t, g, 2)

	mo := g.PlayerMobj()
	require.NotNil(t, mo)
	assert.NotSame(t, old, mo)
	assert.Equal(t, mobj.PlayerLive, g.Level().Player.State)
	assert.Equal(t, int32(100), mo.Health)
}

func TestLevelFlow_IntermissionAndFinale(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart, impThing)
	startLevel(t, g)

	imp := g.Spawns().Spawned(1)
	require.NotNil(t, imp)
	g.Level().DamageMobj(imp, nil, g.PlayerMobj(), 1000)

	runTics(t, g, 2)
	require.Equal(t, loop.StateIntermission, g.State())

	press(g, 'x')
	require.Equal(t, loop.StateFinale, g.State())
	assert.False(t, g.Respond(loop.Event{Type: loop.KeyDown, Key: 'x'}))

	runTics(t, g, finaleDelay)
	press(g, 'x')
	assert.Equal(t, loop.StateDemoScreen, g.State())
}

func TestIntermission_TimesOut(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart, impThing)
	startLevel(t, g)
	g.Level().DamageMobj(g.Spawns().Spawned(1), nil, nil, 1000)
	runTics(t, g, 2)
	require.Equal(t, loop.StateIntermission, g.State())

	runTics(t, g, interTics)
	assert.Equal(t, loop.StateFinale, g.State())
}

func TestTicker_ReportsFatal(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	startLevel(t, g)

	g.Level().OnFatal(mobj.ErrStateCycle)
	assert.ErrorIs(t, g.Ticker(), mobj.ErrStateCycle)
}

func TestMenu(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart)
	quit := false
	m := NewMenu(g, func() { quit = true })
	startLevel(t, g)
	time0 := g.Level().Time

	esc := loop.Event{Type: loop.KeyDown, Key: loop.KeyEscape}
	assert.True(t, m.Respond(esc))
	assert.True(t, m.Active())
	assert.True(t, m.Respond(loop.Event{Type: loop.KeyDown, Key: 'w'}))

	runTics(t, g, 3)
	assert.Equal(t, time0, g.Level().Time, "level runs while menu is open")

	s := video.NewScreen(40, 30)
	m.Draw(s)
	assert.Contains(t, s.Caption, "[quit]")

	m.Respond(loop.Event{Type: loop.KeyDown, Key: loop.KeyEnter})
	assert.True(t, quit)
	assert.False(t, m.Active())

	assert.False(t, m.Respond(loop.Event{Type: loop.KeyDown, Key: 'w'}))
}

func TestDemo_RecordAndPlayBack(t *testing.T) {
	var buf bytes.Buffer
	things := []mapdata.Thing{playerStart, impThing, stimThing}

	rec, _ := newTestGame(t, Options{Record: &buf}, things...)
	require.NoError(t, rec.Ticker())
	require.Equal(t, loop.StateLevel, rec.State())
	for i := range 40 {
		press(rec, 'w')
		if i%10 == 0 {
			press(rec, ' ')
		}
		if i > 20 {
			press(rec, loop.KeyArrowLeft)
		}
		require.NoError(t, rec.Ticker())
	}
	require.NoError(t, rec.Close())
	want := rec.PlayerMobj()

	play, _ := newTestGame(t, Options{Play: &buf}, things...)
	assert.True(t, play.PlayingDemo())
	for i := 0; play.PlayingDemo(); i++ {
		require.Less(t, i, 1000, "demo never ended")
		require.NoError(t, play.Ticker())
	}

	got := play.PlayerMobj()
	assert.False(t, play.desynced)
	assert.Equal(t, loop.StateDemoScreen, play.State())
	assert.Equal(t, want.X, got.X)
	assert.Equal(t, want.Y, got.Y)
	assert.Equal(t, want.Angle, got.Angle)
	assert.Equal(t, rec.Level().Time, play.Level().Time)
}

func TestDemo_PlaysBackWithRecordedOptions(t *testing.T) {
	var buf bytes.Buffer
	rec, _ := newTestGame(t, Options{Record: &buf}, playerStart, impThing, stimThing)
	require.NoError(t, rec.Ticker())
	for i := range 30 {
		if i%10 == 0 {
			press(rec, ' ')
		}
		require.NoError(t, rec.Ticker())
	}
	require.NoError(t, rec.Close())

	local := mobj.DefaultOptions()
	local.Seed = 42
	local.RocketTrails = false
	local.FloatBob = false
	local.LiquidClip = false
	play, _ := newTestGame(t, Options{Play: &buf, Sim: local}, playerStart, impThing, stimThing)
	for i := 0; play.PlayingDemo(); i++ {
		require.Less(t, i, 1000, "demo never ended")
		require.NoError(t, play.Ticker())
		if play.level != nil {
			assert.True(t, play.level.Options.RocketTrails, "playback must use the recorded trail option")
		}
	}
	assert.False(t, play.desynced)
}

func TestDemo_DetectsDesync(t *testing.T) {
	var buf bytes.Buffer
	rec, _ := newTestGame(t, Options{Record: &buf}, playerStart)
	runTics(t, rec, 10)
	require.NoError(t, rec.Close())

	play, _ := newTestGame(t, Options{Play: &buf}, playerStart, impThing)
	runTics(t, play, 5)
	assert.True(t, play.desynced)
}

func TestNew_RejectsBadDemo(t *testing.T) {
	lv := testutil.OpenRoom("E1M1", 512, playerStart)
	repo := spawn.NewLevelRepository(lv)
	_, err := New(context.Background(), Options{
		Levels: repo,
		Things: repo,
		Play:   bytes.NewReader([]byte("not a demo")),
	})
	assert.Error(t, err)
}

func TestDraw_EveryState(t *testing.T) {
	g, _ := newTestGame(t, Options{}, playerStart, impThing)
	s := video.NewScreen(64, 40)

	g.Draw(s)
	assert.Contains(t, s.Caption, "press a key")

	startLevel(t, g)
	g.Draw(s)
	assert.Contains(t, s.Caption, "health 100")
	px, py := newMapView(g.geometry, s).point(g.PlayerMobj().X, g.PlayerMobj().Y)
	assert.Equal(t, video.ColorGreen, s.At(px, py))

	g.Level().DamageMobj(g.Spawns().Spawned(1), nil, nil, 1000)
	runTics(t, g, 2)
	g.Draw(s)
	assert.Contains(t, s.Caption, "kills 100%")

	g.enterFinale()
	g.Draw(s)
	assert.Equal(t, "the end", s.Caption)
}

func TestDemo_SingleDemoEnds(t *testing.T) {
	var buf bytes.Buffer
	rec, _ := newTestGame(t, Options{Record: &buf}, playerStart)
	runTics(t, rec, 3)
	require.NoError(t, rec.Close())

	play, _ := newTestGame(t, Options{Play: &buf, SingleDemo: true}, playerStart)
	runTics(t, play, 3)
	assert.ErrorIs(t, play.Ticker(), ErrDemoEnded)
}
