// Package mobj is the map object simulation core: state machine, movement
// integration, spawning and removal of every simulated entity.
//
// All mutation happens on the simulation goroutine. A Level owns every mobj
// it spawned; cross references between mobjs are Handles that stop
// resolving once their target is removed.
package mobj

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/thinker"
)

const (
	TicRate = 35

	MaxMove       = 30 * fixed.FracUnit
	StopSpeed     = fixed.Fixed(0x1000)
	OrigFriction  = fixed.Fixed(0xe800)
	WaterFriction = fixed.Fixed(0xfb00)
	Gravity       = fixed.FracUnit
	FloatSpeed    = 4 * fixed.FracUnit
	ViewHeight    = 41 * fixed.FracUnit
	FootClipSize  = 10 * fixed.FracUnit
	MeleeRange    = 64 * fixed.FracUnit
	MissileRange  = 32 * 64 * fixed.FracUnit
	SkullSpeed    = 20 * fixed.FracUnit
	NormPitch     = 128

	// OnFloorZ and OnCeilingZ are z sentinels for Spawn that place the
	// mobj relative to the containing sector.
	OnFloorZ   = fixed.Fixed(-0x80000000)
	OnCeilingZ = fixed.Fixed(0x7fffffff)

	// StateCycleLimit bounds the zero-tic transitions a single SetState
	// call may follow.
	StateCycleLimit = 1000000

	ItemQueueSize     = 128
	ItemRespawnDelay  = 30 * TicRate
	NightmareDelay    = 12 * TicRate
	CorpseBloodSplats = 512
)

// Handle is a weak reference to a mobj. The zero Handle refers to nothing.
type Handle struct {
	index int32
	gen   uint32
}

// IsZero reports whether h refers to nothing.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Mobj is a simulated map object.
type Mobj struct {
	level *Level
	node  *thinker.Node
	self  Handle

	Type   info.MobjType
	Info   *info.MobjInfo
	X, Y   fixed.Fixed
	Z      fixed.Fixed
	Angle  fixed.Angle
	Radius fixed.Fixed
	Height fixed.Fixed

	MomX, MomY, MomZ fixed.Fixed

	FloorZ, CeilingZ, DropoffZ fixed.Fixed
	Sector                     *mapdata.Sector
	BlockCell                  int32 // spatial index cell, owned by the Spatial implementation

	Flags  info.Flags
	Flags2 info.Flags2

	State  info.StateNum
	Tics   int32
	Sprite info.SpriteNum
	Frame  int32

	Health       int32
	ReactionTime int32
	MoveCount    int32
	Pitch        int32
	Blood        info.BloodColor
	Gear         int32

	Player    *Player
	Target    Handle
	Tracer    Handle
	LastEnemy Handle

	SpawnPoint mapdata.Thing

	// interpolation snapshot taken at the start of each tic
	OldX, OldY, OldZ fixed.Fixed
	OldAngle         fixed.Angle
	Interp           bool

	BloodSplats int32
	Nudge       int32
	FloatBob    int32

	removed bool
}

// Handle returns a weak reference to m.
func (m *Mobj) Handle() Handle {
	return m.self
}

// Removed reports whether m has been removed from the level. Callers that
// triggered collision responses check this before touching m again.
func (m *Mobj) Removed() bool {
	return m.removed
}

// Think runs one tic of m. It is invoked by the level's thinker list.
func (m *Mobj) Think() {
	m.level.Think(m)
}

// Reclaim releases the arena slot once the thinker list has dropped m.
func (m *Mobj) Reclaim() {
	m.level.release(m)
}

// IsVoodooDoll reports whether m is a duplicate player start body.
func (m *Mobj) IsVoodooDoll() bool {
	return m.Player != nil && m.Player.Mo != m
}

func (m *Mobj) sentient() bool {
	return m.Health > 0 && m.Info.SeeState != info.SNull
}

// PlayerState is the lifecycle of the player body.
type PlayerState int

const (
	PlayerLive PlayerState = iota
	PlayerDead
	PlayerReborn
)

// TicCmd is the per-tic input of a player.
type TicCmd struct {
	ForwardMove int8
	SideMove    int8
	AngleTurn   int16
	Buttons     uint8
}

// Player is the control block attached to the player's body.
type Player struct {
	Mo    *Mobj
	State PlayerState
	Cmd   TicCmd

	ViewHeight      fixed.Fixed
	DeltaViewHeight fixed.Fixed
	ViewZ           fixed.Fixed

	// bob momentum, decays with OrigFriction regardless of floor
	MomX, MomY fixed.Fixed

	Health      int32
	Armor       int32
	Refire      int32
	DamageCount int32
	BonusCount  int32

	// power-up tics left
	Invulnerability int32
	Invisibility    int32
}

// Collision validates movement against level geometry and other mobjs.
type Collision interface {
	// TryMove attempts to move m to (x, y), relinking it on success and
	// recording the blocking lines on failure.
	TryMove(m *Mobj, x, y fixed.Fixed, dropoff bool) bool
	// CheckPosition reports whether m would fit at (x, y).
	CheckPosition(m *Mobj, x, y fixed.Fixed) bool
	// SlideMove moves a blocked player along the blocking wall.
	SlideMove(m *Mobj)
	// AimLineAttack returns the vertical slope towards the first shootable
	// mobj along angle, and that mobj (nil if none).
	AimLineAttack(m *Mobj, angle fixed.Angle, distance fixed.Fixed) (fixed.Fixed, *Mobj)
	// BlockLine is the line that blocked the last TryMove, if any.
	BlockLine() *mapdata.Line
	// CeilingLine is the line that lowered the ceiling in the last TryMove.
	CeilingLine() *mapdata.Line
	// Friction returns the floor friction acting on m.
	Friction(m *Mobj) fixed.Fixed
	// CheckOnMobj returns the mobj m is standing on, if any.
	CheckOnMobj(m *Mobj) *Mobj
	// ApplyTorque nudges a mobj hanging over a ledge.
	ApplyTorque(m *Mobj)
}

// Spatial links mobjs into sector and blockmap structures.
type Spatial interface {
	SetThingPosition(m *Mobj)
	UnsetThingPosition(m *Mobj)
	PointInSector(x, y fixed.Fixed) *mapdata.Sector
}

// Sound starts positional sound cues. Calls never block.
type Sound interface {
	StartSound(origin *Mobj, sfx info.Sound)
	UnlinkSound(origin *Mobj)
}

// Sprites answers sprite size queries used to size particle spreads.
type Sprites interface {
	Width(s info.SpriteNum) fixed.Fixed
	Height(s info.SpriteNum) fixed.Fixed
}

// BloodSplat flags.
const (
	SplatMirrored = 1
	SplatFuzz     = 2
)

// BloodSplat is a floor decoration. Splats do not think or collide.
type BloodSplat struct {
	X, Y   fixed.Fixed
	Frame  int32
	Flags  int32
	Blood  info.BloodColor
	Sector *mapdata.Sector
}
