package mobj

import (
	"log/slog"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
)

// Editor numbers with special handling in SpawnMapThing.
const (
	ThingPlayer1Start    = 1
	ThingPlayer4Start    = 4
	ThingDeathmatchStart = 11
	ThingAmbientFirst    = 14101
	ThingAmbientLast     = 14164
)

// Spawn creates a mobj of type t at (x, y, z), links it into the level
// and schedules it to think. z may be OnFloorZ or OnCeilingZ.
// The spawn state's action is not run.
func (l *Level) Spawn(x, y, z fixed.Fixed, t info.MobjType) *Mobj {
	m := l.newMobj(x, y, t)
	m.Health = m.Info.SpawnHealth
	if l.Options.Skill != SkillNightmare {
		m.ReactionTime = m.Info.ReactionTime
	}

	// groups of the same type start out of step
	st := m.Info.SpawnState
	if m.Info.Frames > 1 {
		frames := l.Rand.Int(0, int(m.Info.Frames))
		for i := 0; i < frames && l.states[st].Next != info.SNull; i++ {
			st = l.states[st].Next
		}
	}
	s := &l.states[st]
	m.State = st
	m.Tics = s.Tics
	m.Sprite = s.Sprite
	m.Frame = s.Frame

	m.Pitch = NormPitch
	if m.Flags&info.MFShootable != 0 && t != info.MTPlayer && t != info.MTBarrel {
		m.Pitch += int32(l.Cosmetic.Int(-16, 16))
	}

	l.spatial.SetThingPosition(m)
	if m.Sector != nil {
		m.FloorZ = m.Sector.FloorHeight
		m.CeilingZ = m.Sector.CeilingHeight
	}
	m.DropoffZ = m.FloorZ

	// things spawned on the same spot share a bob phase
	if x != l.prevX || y != l.prevY || z != l.prevZ {
		l.prevBob = int32(l.Rand.Byte())
	}
	m.FloatBob = l.prevBob

	switch z {
	case OnFloorZ:
		m.Z = m.FloorZ
	case OnCeilingZ:
		m.Z = m.CeilingZ - m.Height
	default:
		m.Z = z
	}

	m.OldX, m.OldY, m.OldZ = m.X, m.Y, m.Z
	m.OldAngle = m.Angle

	m.node = l.thinkers.Add(m)

	if m.Flags2&info.MF2NoFootClip == 0 && m.Sector != nil && m.Sector.Liquid && m.Sector.HeightSec == -1 {
		m.Flags2 |= info.MF2FeetAreClipped
	}

	l.prevX, l.prevY, l.prevZ = x, y, z
	return m
}

// newMobj allocates a mobj and copies the static attributes of t.
func (l *Level) newMobj(x, y fixed.Fixed, t info.MobjType) *Mobj {
	m := l.alloc()
	m.Type = t
	m.Info = &l.types[t]
	m.X, m.Y = x, y
	m.Radius = m.Info.Radius
	m.Height = m.Info.Height
	m.Flags = m.Info.Flags
	m.Flags2 = m.Info.Flags2
	m.Blood = m.Info.Blood
	return m
}

// SpawnMapThing spawns the mobj described by a map placement. It returns
// nil for placements that are filtered out by skill, game mode or options,
// and for unknown editor numbers, which are logged and skipped.
func (l *Level) SpawnMapThing(th mapdata.Thing, index int) *Mobj {
	switch {
	case th.Type == ThingPlayer1Start:
		return l.SpawnPlayer(th)
	case th.Type > ThingPlayer1Start && th.Type <= ThingPlayer4Start, th.Type == ThingDeathmatchStart:
		return nil
	}

	if th.Options&mapdata.ThingNotSingle != 0 {
		return nil
	}
	if th.Options&l.Options.Skill.thingBit() == 0 {
		return nil
	}
	if int(th.Type) >= ThingAmbientFirst && int(th.Type) <= ThingAmbientLast {
		// ambient music sources need a music system to drive them
		return nil
	}

	t, ok := l.FindDoomedNum(int(th.Type))
	if !ok {
		slog.Warn("unknown thing type",
			"index", index,
			"x", th.X,
			"y", th.Y,
			"type", th.Type)
		return nil
	}

	ti := &l.types[t]
	if ti.Flags&info.MFCountKill != 0 {
		if l.Options.NoMonsters {
			return nil
		}
		l.Stats.TotalKills++
		l.Stats.MonsterCount[t]++
	} else if t == info.MTBarrel {
		l.Stats.Barrels++
	}

	if ti.Flags&info.MFCorpse != 0 && l.Options.NoMonsters {
		return nil
	}

	z := OnFloorZ
	if ti.Flags&info.MFSpawnCeiling != 0 {
		z = OnCeilingZ
	}
	m := l.Spawn(fixed.Int(int32(th.X)), fixed.Int(int32(th.Y)), z, t)
	m.SpawnPoint = th

	if th.Options&mapdata.ThingAmbush != 0 {
		m.Flags |= info.MFAmbush
	}
	flags := m.Flags

	if m.Tics > 0 {
		m.Tics = 1 + int32(l.Rand.Byte())%m.Tics
	}
	if flags&info.MFCountItem != 0 {
		l.Stats.TotalItems++
	}
	m.Angle = fixed.FromDegrees(int32(th.Angle))

	if flags&info.MFCorpse != 0 && l.Options.CorpsesMirrored {
		if r := l.Cosmetic.Int(1, 10); r <= 5+l.mirrorPrev {
			l.mirrorPrev--
			m.Flags2 |= info.MF2Mirrored
		} else {
			l.mirrorPrev++
		}
	}

	if flags&(info.MFShootable|info.MFNoBlood|info.MFSpecial) == 0 &&
		m.Blood != info.BloodNone && l.Options.BloodSplatsMax > 0 {
		m.BloodSplats = CorpseBloodSplats
		if l.Options.CorpsesMoreBlood && m.Sector != nil && !m.Sector.Liquid {
			l.SpawnMoreBlood(m)
		}
	}

	if m.Flags2&info.MF2Decoration != 0 {
		l.Stats.Decorations++
	}
	return m
}

// SpawnPlayer spawns the player's body at a player start. A player marked
// for rebirth gets a fresh control block first.
func (l *Level) SpawnPlayer(th mapdata.Thing) *Mobj {
	p := l.Player
	if p.State == PlayerReborn {
		*p = Player{Health: l.types[info.MTPlayer].SpawnHealth}
	}

	m := l.Spawn(fixed.Int(int32(th.X)), fixed.Int(int32(th.Y)), OnFloorZ, info.MTPlayer)
	m.SpawnPoint = th
	m.Angle = fixed.FromDegrees(int32(th.Angle))
	m.Player = p
	m.Health = p.Health

	p.Mo = m
	p.State = PlayerLive
	p.Refire = 0
	p.DamageCount = 0
	p.BonusCount = 0
	p.ViewHeight = ViewHeight
	p.DeltaViewHeight = 0
	p.ViewZ = m.Z + p.ViewHeight
	m.MomX, m.MomY = 0, 0
	p.MomX, p.MomY = 0, 0
	return m
}

// snapAngle converts a placement angle to the enclosing octant.
func snapAngle(deg int16) fixed.Angle {
	return fixed.Ang45 * fixed.Angle(int32(deg)/45)
}

// doomedHash maps editor numbers to types with chained buckets.
type doomedHash struct {
	first []int32
	next  []int32
}

// FindDoomedNum returns the type placed by editor number n.
func (l *Level) FindDoomedNum(n int) (info.MobjType, bool) {
	if l.doomed == nil {
		l.doomed = buildDoomedHash(l.types)
	}
	size := len(l.types)
	if n < 0 || size == 0 {
		return 0, false
	}

	i := l.doomed.first[n%size]
	for i >= 0 && int(l.types[i].DoomedNum) != n {
		i = l.doomed.next[i]
	}
	if i < 0 {
		return 0, false
	}
	return info.MobjType(i), true
}

func buildDoomedHash(types []info.MobjInfo) *doomedHash {
	h := &doomedHash{
		first: make([]int32, len(types)),
		next:  make([]int32, len(types)),
	}
	for i := range h.first {
		h.first[i] = -1
		h.next[i] = -1
	}
	// later types shadow earlier ones with the same number
	for i, ti := range types {
		if ti.DoomedNum < 0 {
			continue
		}
		b := int(ti.DoomedNum) % len(types)
		h.next[i] = h.first[b]
		h.first[b] = int32(i)
	}
	return h
}
