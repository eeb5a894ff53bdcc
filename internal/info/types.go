// Package info holds the static descriptors of the simulation: the state
// table, the per-type mobj descriptors, sound and sprite identifiers.
// Everything here is immutable after package initialisation.
package info

import "github.com/udisondev/retrogo/internal/fixed"

// StateNum indexes States. SNull terminates a chain and removes the mobj.
type StateNum int32

// MobjType indexes MobjInfos.
type MobjType int32

// SpriteNum indexes sprite names.
type SpriteNum int32

// Action identifies the callback run when a state is entered.
type Action int32

const (
	ActionNone Action = iota
	ActionLook
	ActionChase
	ActionFaceTarget
	ActionPain
	ActionScream
	ActionXScream
	ActionPlayerScream
	ActionFall
	ActionExplode
	ActionPosAttack
	ActionTroopAttack
	ActionSkullAttack
	ActionBFGSpray
	NumActions
)

var actionNames = [NumActions]string{
	"none", "look", "chase", "face_target", "pain", "scream", "xscream",
	"player_scream", "fall", "explode", "pos_attack", "troop_attack",
	"skull_attack", "bfg_spray",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// State is one animation/behaviour step.
type State struct {
	Sprite SpriteNum
	Frame  int32
	Tics   int32 // -1 means the state never expires
	Action Action
	Next   StateNum
}

// Flags are the primary behaviour bits of a mobj.
type Flags uint32

const (
	MFSpecial      Flags = 0x00000001 // can be picked up
	MFSolid        Flags = 0x00000002
	MFShootable    Flags = 0x00000004
	MFNoSector     Flags = 0x00000008 // not linked into sector lists
	MFNoBlockmap   Flags = 0x00000010 // not linked into the blockmap
	MFAmbush       Flags = 0x00000020
	MFJustHit      Flags = 0x00000040
	MFJustAttacked Flags = 0x00000080
	MFSpawnCeiling Flags = 0x00000100
	MFNoGravity    Flags = 0x00000200
	MFDropoff      Flags = 0x00000400
	MFPickup       Flags = 0x00000800
	MFNoClip       Flags = 0x00001000
	MFSlide        Flags = 0x00002000
	MFFloat        Flags = 0x00004000
	MFTeleport     Flags = 0x00008000
	MFMissile      Flags = 0x00010000
	MFDropped      Flags = 0x00020000 // dropped by a monster, never respawns
	MFFuzz         Flags = 0x00040000
	MFNoBlood      Flags = 0x00080000
	MFCorpse       Flags = 0x00100000
	MFInFloat      Flags = 0x00200000
	MFCountKill    Flags = 0x00400000
	MFCountItem    Flags = 0x00800000
	MFSkullFly     Flags = 0x01000000 // charging lost soul
	MFNotDMatch    Flags = 0x02000000
	MFTranslation  Flags = 0x0c000000

	MFTransShift = 26
)

// Flags2 are the extended behaviour and presentation bits.
type Flags2 uint32

const (
	MF2Translucent    Flags2 = 0x00000001
	MF2SmokeTrail     Flags2 = 0x00000002
	MF2FeetAreClipped Flags2 = 0x00000004
	MF2NoFootClip     Flags2 = 0x00000008
	MF2NoLiquidBob    Flags2 = 0x00000010
	MF2FloatBob       Flags2 = 0x00000020
	MF2PassMobj       Flags2 = 0x00000040
	MF2OnMobj         Flags2 = 0x00000080
	MF2Falling        Flags2 = 0x00000100
	MF2Blood          Flags2 = 0x00000200 // blood particle, becomes a splat on the floor
	MF2Mirrored       Flags2 = 0x00000400
	MF2CastShadow     Flags2 = 0x00000800
	MF2Decoration     Flags2 = 0x00001000
)

// BloodColor selects the splat palette of a bleeding type.
type BloodColor int32

const (
	BloodNone BloodColor = iota
	BloodRed
	BloodGreen
	BloodBlue
	BloodFuzzy
)

// MobjInfo is the static descriptor of a mobj type.
type MobjInfo struct {
	Name         string
	DoomedNum    int32 // map editor number, -1 when not placeable
	SpawnState   StateNum
	SpawnHealth  int32
	SeeState     StateNum
	SeeSound     Sound
	ReactionTime int32
	AttackSound  Sound
	PainState    StateNum
	PainChance   int32
	PainSound    Sound
	MeleeState   StateNum
	MissileState StateNum
	DeathState   StateNum
	XDeathState  StateNum
	DeathSound   Sound
	Speed        fixed.Fixed
	Radius       fixed.Fixed
	Height       fixed.Fixed
	Mass         int32
	Damage       int32
	ActiveSound  Sound
	Flags        Flags
	Flags2       Flags2
	RaiseState   StateNum
	Frames       int32 // idle frames to randomise the start state over
	Blood        BloodColor
}

// Info returns the descriptor for t.
func (t MobjType) Info() *MobjInfo {
	return &MobjInfos[t]
}

func (t MobjType) String() string {
	if t < 0 || t >= NumMobjTypes {
		return "unknown"
	}
	return MobjInfos[t].Name
}

// Get returns the state for s.
func (s StateNum) Get() *State {
	return &States[s]
}
