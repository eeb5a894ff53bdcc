package mobj

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/random"
	"github.com/udisondev/retrogo/internal/thinker"
)

// ErrStateCycle is raised when SetState follows too many zero-tic states.
var ErrStateCycle = errors.New("mobj: state cycle")

// Skill is the game difficulty.
type Skill int

const (
	SkillBaby Skill = iota
	SkillEasy
	SkillMedium
	SkillHard
	SkillNightmare
)

// thingBit returns the map thing option bit matching the skill.
func (s Skill) thingBit() int16 {
	switch s {
	case SkillBaby:
		return 1
	case SkillNightmare:
		return 4
	default:
		return 1 << (s - 1)
	}
}

// Options are the gameplay and presentation switches of a level.
type Options struct {
	Skill           Skill
	RespawnMonsters bool
	RespawnItems    bool
	NoMonsters      bool
	Freeze          bool

	// Presentation options. Splats and smearing draw from the cosmetic
	// stream; trails, bobbing, clipping and corpse options change mobjs and
	// must match between recording and playback.
	BloodSplatsMax    int
	CorpsesSlide      bool
	CorpsesSmearBlood bool
	CorpsesMoreBlood  bool
	CorpsesMirrored   bool
	FloatBob          bool
	LiquidBob         bool
	LiquidClip        bool
	RocketTrails      bool

	Seed uint64
}

// DefaultOptions returns the options of a stock single player game.
func DefaultOptions() Options {
	return Options{
		Skill:             SkillMedium,
		BloodSplatsMax:    32768,
		CorpsesSlide:      true,
		CorpsesSmearBlood: true,
		CorpsesMoreBlood:  true,
		CorpsesMirrored:   true,
		FloatBob:          true,
		LiquidBob:         true,
		LiquidClip:        true,
		RocketTrails:      true,
	}
}

// ActionFunc runs when a mobj enters a state carrying the action.
type ActionFunc func(l *Level, m *Mobj)

// Stats are the per-level tallies shown on the intermission screen.
type Stats struct {
	Kills        int
	Items        int
	TotalKills   int
	TotalItems   int
	Barrels      int
	Decorations  int
	MonsterCount [info.NumMobjTypes]int
}

type slot struct {
	m   *Mobj
	gen uint32
}

// Level is the simulation context of one loaded map.
type Level struct {
	Options Options
	Time    int32

	// Rand drives gameplay, Cosmetic drives presentation only.
	Rand     *random.Stream
	Cosmetic *random.Stream

	Player *Player
	Stats  Stats

	// AttackRange is the range of the attack being resolved; a melee
	// range turns spawned puffs into the melee puff.
	AttackRange fixed.Fixed

	// OnNoise is called when a mobj makes a sound monsters can hear.
	OnNoise func(target, emitter *Mobj)
	// OnFatal receives unrecoverable simulation errors. The default panics.
	OnFatal func(err error)

	coll    Collision
	spatial Spatial
	sound   Sound
	sprites Sprites

	states  []info.State
	types   []info.MobjInfo
	actions [info.NumActions]ActionFunc
	doomed  *doomedHash

	thinkers *thinker.List
	slots    []slot
	free     []int32

	items  ItemQueue
	splats []BloodSplat

	puffCount  int
	mirrorPrev int
	prevX      fixed.Fixed
	prevY      fixed.Fixed
	prevZ      fixed.Fixed
	prevBob    int32
}

// NewLevel creates an empty level bound to its collaborators.
func NewLevel(opts Options, coll Collision, spatial Spatial, snd Sound, sprites Sprites) *Level {
	l := &Level{
		Options:  opts,
		Rand:     random.New(opts.Seed),
		Cosmetic: random.New(opts.Seed ^ 0x5bd1e995),
		Player:   &Player{Health: 100, State: PlayerReborn},
		OnFatal:  func(err error) { panic(err) },
		coll:     coll,
		spatial:  spatial,
		sound:    snd,
		sprites:  sprites,
		states:   info.States[:],
		types:    info.MobjInfos[:],
		thinkers: thinker.NewList(),
		slots:    make([]slot, 1, 256), // slot 0 stays empty so zero handles never resolve
	}
	l.registerDefaultActions()
	return l
}

// SetTables replaces the state and type tables, e.g. with patched copies.
// Must be called before anything is spawned.
func (l *Level) SetTables(states []info.State, types []info.MobjInfo) {
	l.states = states
	l.types = types
	l.doomed = nil
}

// State returns the descriptor of s from the level's table.
func (l *Level) State(s info.StateNum) *info.State {
	return &l.states[s]
}

// TypeInfo returns the descriptor of t from the level's table.
func (l *Level) TypeInfo(t info.MobjType) *info.MobjInfo {
	return &l.types[t]
}

// RegisterAction installs fn for state action a, replacing any previous one.
func (l *Level) RegisterAction(a info.Action, fn ActionFunc) {
	l.actions[a] = fn
}

// Resolve returns the mobj h refers to, or nil once it has been removed.
func (l *Level) Resolve(h Handle) *Mobj {
	if h.gen == 0 || int(h.index) >= len(l.slots) {
		return nil
	}
	s := l.slots[h.index]
	if s.gen != h.gen || s.m == nil || s.m.removed {
		return nil
	}
	return s.m
}

// Each calls fn for every live mobj in thinker order until fn returns false.
func (l *Level) Each(fn func(*Mobj) bool) {
	l.thinkers.Each(func(t thinker.Thinker) bool {
		m, ok := t.(*Mobj)
		if !ok {
			return true
		}
		return fn(m)
	})
}

// AddThinker adds a non-mobj thinker, such as a sector mover.
func (l *Level) AddThinker(t thinker.Thinker) *thinker.Node {
	return l.thinkers.Add(t)
}

// RemoveThinker schedules a thinker added by AddThinker for removal.
func (l *Level) RemoveThinker(n *thinker.Node) {
	l.thinkers.Remove(n)
}

// ThinkerCount returns the number of live thinkers.
func (l *Level) ThinkerCount() int {
	return l.thinkers.Count()
}

// Items returns the item respawn queue.
func (l *Level) Items() *ItemQueue {
	return &l.items
}

// Splats returns the floor blood splats spawned so far.
func (l *Level) Splats() []BloodSplat {
	return l.splats
}

// Tick advances the level by one tic.
func (l *Level) Tick() {
	l.thinkers.Run()
	l.RespawnSpecials()
	l.Time++
}

// Clear drops every thinker and splat, used when the level is torn down.
func (l *Level) Clear() {
	l.thinkers.Clear()
	l.slots = l.slots[:1]
	l.free = l.free[:0]
	l.splats = nil
	l.items.Reset()
}

func (l *Level) fatal(err error) {
	slog.Error("simulation halted", "error", err, "leveltime", l.Time)
	l.OnFatal(err)
}

func (l *Level) alloc() *Mobj {
	m := &Mobj{level: l, BlockCell: -1}
	var idx int32
	if n := len(l.free); n > 0 {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		idx = int32(len(l.slots))
		l.slots = append(l.slots, slot{})
	}
	s := &l.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.m = m
	m.self = Handle{index: idx, gen: s.gen}
	return m
}

func (l *Level) release(m *Mobj) {
	idx := m.self.index
	if int(idx) >= len(l.slots) || l.slots[idx].m != m {
		return
	}
	l.slots[idx].m = nil
	l.free = append(l.free, idx)
}

func (l *Level) startSound(m *Mobj, sfx info.Sound) {
	if sfx == info.SfxNone || l.sound == nil {
		return
	}
	l.sound.StartSound(m, sfx)
}

func (l *Level) noiseAlert(target, emitter *Mobj) {
	if l.OnNoise != nil {
		l.OnNoise(target, emitter)
	}
}

func (l *Level) String() string {
	return fmt.Sprintf("level(time=%d thinkers=%d)", l.Time, l.thinkers.Count())
}
