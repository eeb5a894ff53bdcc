// Package game runs the top level game flow on top of the simulation: the
// attract pages, level play with demo recording and playback, the
// intermission and the finale.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/udisondev/retrogo/internal/demo"
	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/sound"
	"github.com/udisondev/retrogo/internal/spawn"
	"github.com/udisondev/retrogo/internal/world"
)

var (
	ErrNoPlayerStart = errors.New("level has no player start")
	// ErrDemoEnded is returned by Ticker when a single demo has finished.
	ErrDemoEnded = errors.New("demo ended")
)

// Ticcmd buttons.
const (
	BtAttack = 1
	BtUse    = 2
)

const (
	DefaultPageTics = 170
	interTics       = 10 * mobj.TicRate
	finaleDelay     = 2 * mobj.TicRate
)

// LevelLoader loads level geometry by map name.
type LevelLoader interface {
	LoadLevel(ctx context.Context, mapName string) (*mapdata.Level, error)
}

// Options configure a Game.
type Options struct {
	Map    string
	Levels LevelLoader
	Things spawn.ThingRepository
	Sim    mobj.Options
	Sound  mobj.Sound

	// PageTics is how long each attract page stays up.
	PageTics int

	// Record starts a game at once and writes its demo to the writer.
	Record io.Writer
	// Play plays the demo read from the reader at once.
	Play io.Reader
	// SingleDemo makes Ticker return ErrDemoEnded once playback finishes.
	SingleDemo bool
}

type action int

const (
	actionNone action = iota
	actionNewGame
	actionPlayDemo
	actionReborn
	actionCompleted
)

// Game implements loop.Game and the game responder.
type Game struct {
	ctx  context.Context
	opts Options

	state   loop.GameState
	action  action
	paused  bool
	gametic int
	page    int
	pagetic int
	tic     int // tics spent in the current intermission or finale

	mapName  string
	geometry *mapdata.Level
	world    *world.World
	level    *mobj.Level
	spawns   *spawn.Manager

	input      input
	menu       *Menu
	ammo       int
	weaponWait int

	recorder *demo.Writer
	playback *demo.Reader
	desynced bool

	fatal error
}

// New creates a game on the attract pages. A demo to record or play is
// started on the first tic.
func New(ctx context.Context, opts Options) (*Game, error) {
	if opts.Levels == nil || opts.Things == nil {
		return nil, errors.New("game needs a level loader and a placement repository")
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.PageTics <= 0 {
		opts.PageTics = DefaultPageTics
	}

	g := &Game{
		ctx:     ctx,
		opts:    opts,
		state:   loop.StateDemoScreen,
		pagetic: opts.PageTics,
		mapName: opts.Map,
		input:   newInput(),
	}

	switch {
	case opts.Play != nil:
		r, err := demo.NewReader(opts.Play)
		if err != nil {
			return nil, fmt.Errorf("opening demo: %w", err)
		}
		g.playback = r
		g.action = actionPlayDemo
	case opts.Record != nil:
		g.action = actionNewGame
	}
	return g, nil
}

// State returns the current game state.
func (g *Game) State() loop.GameState {
	return g.state
}

// Paused reports whether level play is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Level returns the running simulation, nil before the first level.
func (g *Game) Level() *mobj.Level {
	return g.level
}

// World returns the geometry of the running level.
func (g *Game) World() *world.World {
	return g.world
}

// Spawns returns the placement manager of the running level.
func (g *Game) Spawns() *spawn.Manager {
	return g.spawns
}

// PlayerMobj returns the body of the player, nil outside a level.
func (g *Game) PlayerMobj() *mobj.Mobj {
	if g.level == nil || g.level.Player == nil {
		return nil
	}
	return g.level.Player.Mo
}

// PlayingDemo reports whether a demo is being played back.
func (g *Game) PlayingDemo() bool {
	return g.playback != nil
}

// NewGame starts the configured map on the next tic.
func (g *Game) NewGame() {
	g.action = actionNewGame
}

// Ticker runs one game tic.
func (g *Game) Ticker() error {
	if err := g.doAction(); err != nil {
		return err
	}

	switch g.state {
	case loop.StateDemoScreen:
		g.pageTicker()
	case loop.StateLevel:
		if err := g.levelTicker(); err != nil {
			return err
		}
	case loop.StateIntermission:
		g.tic++
		if g.tic >= interTics {
			g.enterFinale()
		}
	case loop.StateFinale:
		g.tic++
	}

	g.gametic++
	return g.fatal
}

func (g *Game) doAction() error {
	a := g.action
	g.action = actionNone

	switch a {
	case actionNewGame:
		g.playback = nil
		if err := g.loadLevel(g.opts.Map, g.opts.Sim); err != nil {
			return err
		}
		if g.opts.Record != nil && g.recorder == nil {
			w, err := demo.NewWriter(g.opts.Record, demo.NewHeader(g.opts.Map, g.opts.Sim))
			if err != nil {
				return err
			}
			g.recorder = w
			slog.Info("demo recording started", "map", g.opts.Map)
		}

	case actionPlayDemo:
		h := g.playback.Header()
		if err := g.loadLevel(h.Map, h.Apply(g.opts.Sim)); err != nil {
			return err
		}
		slog.Info("demo playback started", "map", h.Map, "skill", h.Skill)

	case actionReborn:
		opts := g.level.Options
		if err := g.loadLevel(g.mapName, opts); err != nil {
			return err
		}

	case actionCompleted:
		g.state = loop.StateIntermission
		g.tic = 0
		slog.Info("level completed",
			"map", g.mapName,
			"kills", g.level.Stats.Kills,
			"items", g.level.Stats.Items,
			"time", g.level.Time)
	}
	return nil
}

// loadLevel replaces the running level with a fresh copy of mapName.
func (g *Game) loadLevel(mapName string, opts mobj.Options) error {
	geometry, err := g.opts.Levels.LoadLevel(g.ctx, mapName)
	if err != nil {
		return fmt.Errorf("loading level %s: %w", mapName, err)
	}
	w, err := world.New(geometry)
	if err != nil {
		return err
	}

	if g.level != nil {
		g.level.Clear()
	}

	l := mobj.NewLevel(opts, w, w, g.opts.Sound, w)
	w.Bind(l)
	w.OnTouchSpecial = g.touchSpecial
	registerMonsters(l, w, g.opts.Sound)
	l.OnFatal = func(err error) {
		if g.fatal == nil {
			g.fatal = err
		}
	}

	mgr := spawn.NewManager(g.opts.Things, l)
	if err := mgr.LoadSpawns(g.ctx, mapName); err != nil {
		return err
	}
	if _, err := mgr.SpawnAll(); err != nil {
		return err
	}
	if l.Player.Mo == nil {
		return fmt.Errorf("%s: %w", mapName, ErrNoPlayerStart)
	}

	g.mapName = mapName
	g.geometry = geometry
	g.world = w
	g.level = l
	g.spawns = mgr
	g.state = loop.StateLevel
	g.paused = false
	g.ammo = startAmmo
	g.weaponWait = 0
	g.input.reset()
	return nil
}

func (g *Game) levelTicker() error {
	if g.paused || (g.menu != nil && g.menu.Active() && g.playback == nil) {
		return nil
	}

	var cmd mobj.TicCmd
	var recorded demo.Tic
	if g.playback != nil {
		t, err := g.playback.ReadTic()
		if errors.Is(err, io.EOF) {
			g.endDemo()
			if g.opts.SingleDemo {
				return ErrDemoEnded
			}
			return nil
		}
		if err != nil {
			return err
		}
		recorded = t
		cmd = t.Cmd()
	} else {
		cmd = g.input.build(g.gametic)
	}

	p := g.level.Player
	p.Cmd = cmd
	g.playerThink(p)
	g.level.Tick()
	if g.fatal != nil {
		return g.fatal
	}

	if g.recorder != nil || g.playback != nil {
		digest := g.level.Digest()
		if g.recorder != nil {
			if err := g.recorder.WriteTic(demo.NewTic(cmd, digest)); err != nil {
				return err
			}
		}
		if g.playback != nil && !g.desynced {
			if err := g.playback.Verify(recorded, digest); err != nil {
				slog.Warn("demo out of sync", "error", err, "leveltime", g.level.Time)
				g.desynced = true
			}
		}
	}

	switch {
	case p.State == mobj.PlayerReborn:
		g.action = actionReborn
	case g.level.Stats.TotalKills > 0 && g.level.Stats.Kills >= g.level.Stats.TotalKills:
		g.action = actionCompleted
	}
	return nil
}

// endDemo stops playback and returns to the attract pages.
func (g *Game) endDemo() {
	slog.Info("demo playback finished",
		"tics", g.playback.Tics(),
		"desynced", g.desynced)
	g.playback = nil
	g.desynced = false
	g.startTitle()
}

func (g *Game) startTitle() {
	g.state = loop.StateDemoScreen
	g.page = 0
	g.pagetic = g.opts.PageTics
	g.paused = false
}

// pageTicker counts down the current attract page.
func (g *Game) pageTicker() {
	g.pagetic--
	if g.pagetic < 0 {
		g.page = (g.page + 1) % numPages
		g.pagetic = g.opts.PageTics
	}
}

func (g *Game) enterFinale() {
	g.state = loop.StateFinale
	g.tic = 0
}

// Respond handles game input: pause, player controls and the keys that
// leave the attract pages, intermission and finale.
func (g *Game) Respond(ev loop.Event) bool {
	switch g.state {
	case loop.StateDemoScreen:
		if ev.Type == loop.KeyDown {
			g.NewGame()
			return true
		}

	case loop.StateLevel:
		if ev.Type == loop.KeyDown && (ev.Key == 'p' || ev.Key == loop.KeyPause) {
			g.paused = !g.paused
			slog.Debug("pause toggled", "paused", g.paused)
			return true
		}
		if g.playback != nil {
			if ev.Type == loop.KeyDown {
				g.endDemo()
				return true
			}
			return false
		}
		return g.input.respond(ev, g.gametic)

	case loop.StateIntermission:
		if ev.Type == loop.KeyDown {
			g.enterFinale()
			return true
		}

	case loop.StateFinale:
		if ev.Type == loop.KeyDown && g.tic >= finaleDelay {
			g.startTitle()
			return true
		}
	}
	return false
}

// Close flushes a demo being recorded.
func (g *Game) Close() error {
	if g.recorder == nil {
		return nil
	}
	slog.Info("demo recording finished", "tics", g.recorder.Tics())
	return g.recorder.Flush()
}
