package mobj

import (
	"log/slog"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
)

// Remove takes m out of the level. Respawnable pickups are queued for
// RespawnSpecials. Handles to m stop resolving immediately; the mobj itself
// is reclaimed once the current thinker sweep has finished.
func (l *Level) Remove(m *Mobj) {
	if m.removed {
		return
	}

	if l.Options.RespawnItems && m.Flags&info.MFSpecial != 0 && m.Flags&info.MFDropped == 0 &&
		m.Type != info.MTInv && m.Type != info.MTIns {
		l.items.Push(m.SpawnPoint, l.Time)
	}

	l.spatial.UnsetThingPosition(m)
	if l.sound != nil {
		l.sound.UnlinkSound(m)
	}

	m.Flags |= info.MFNoSector | info.MFNoBlockmap
	m.Target = Handle{}
	m.Tracer = Handle{}
	m.LastEnemy = Handle{}

	m.removed = true
	l.thinkers.Remove(m.node)
}

// RespawnSpecials brings back the oldest queued item once it has been
// gone for ItemRespawnDelay tics. At most one item returns per tic.
func (l *Level) RespawnSpecials() {
	if !l.Options.RespawnItems {
		return
	}

	e, ok := l.items.Peek()
	if !ok || l.Time-e.Tic < ItemRespawnDelay {
		return
	}
	l.items.Pop()

	th := e.Thing
	x := fixed.Int(int32(th.X))
	y := fixed.Int(int32(th.Y))

	var floor fixed.Fixed
	if sec := l.spatial.PointInSector(x, y); sec != nil {
		floor = sec.FloorHeight
	}
	fog := l.Spawn(x, y, floor, info.MTIFog)
	l.startSound(fog, info.SfxItemBack)

	t, ok := l.FindDoomedNum(int(th.Type))
	if !ok {
		slog.Warn("queued item has unknown type", "type", th.Type, "x", th.X, "y", th.Y)
		return
	}

	z := OnFloorZ
	if l.types[t].Flags&info.MFSpawnCeiling != 0 {
		z = OnCeilingZ
	}
	m := l.Spawn(x, y, z, t)
	m.SpawnPoint = th
	m.Angle = snapAngle(th.Angle)

	if IsDebugEnabled() {
		slog.Debug("item respawned", "type", t, "x", th.X, "y", th.Y)
	}
}
