package world

import (
	"testing"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mobj"
)

func TestSetThingPosition(t *testing.T) {
	w, l := newTestWorld(t)

	imp := spawnAt(l, 650, 256, info.MTTroop)
	if imp.Sector == nil || imp.Sector.ID != 1 {
		t.Fatalf("imp sector = %v, want step sector", imp.Sector)
	}
	if imp.Z != 16*fu {
		t.Errorf("imp.Z = %d, want %d", imp.Z, 16*fu)
	}

	b := w.GetBlock(650>>7, 256>>7)
	if len(b.Mobjs()) != 1 || b.Mobjs()[0] != imp {
		t.Fatalf("block mobjs = %v, want [imp]", b.Mobjs())
	}

	l.Remove(imp)
	if len(b.Mobjs()) != 0 {
		t.Errorf("block mobjs after Remove = %d, want 0", len(b.Mobjs()))
	}
	if imp.BlockCell != -1 {
		t.Errorf("BlockCell after Remove = %d, want -1", imp.BlockCell)
	}
}

func TestNoBlockmapMobjsStayUnlinked(t *testing.T) {
	w, l := newTestWorld(t)

	puff := spawnAt(l, 100, 100, info.MTPuff)
	if puff.BlockCell != -1 {
		t.Errorf("puff BlockCell = %d, want -1", puff.BlockCell)
	}
	if n := len(w.GetBlock(0, 0).Mobjs()); n != 0 {
		t.Errorf("block mobjs = %d, want 0", n)
	}
}

func TestBlockKeepsLinkOrder(t *testing.T) {
	w, l := newTestWorld(t)

	a := spawnAt(l, 20, 20, info.MTClip)
	b := spawnAt(l, 40, 20, info.MTClip)
	c := spawnAt(l, 60, 20, info.MTClip)
	l.Remove(b)

	got := w.GetBlock(0, 0).Mobjs()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("block order = %v, want [a c]", got)
	}
}

func TestTryMove(t *testing.T) {
	tests := []struct {
		name      string
		fromX     int32
		toX       int32
		dropoff   bool
		want      bool
		wantFloor fixed.Fixed
		wantBlock int // line ID, -1 for none
	}{
		{name: "open floor", fromX: 100, toX: 120, want: true, wantFloor: 0, wantBlock: -1},
		{name: "into the west wall", fromX: 40, toX: 15, want: false, wantBlock: 3},
		{name: "up a low step", fromX: 570, toX: 590, want: true, wantFloor: 16 * fu, wantBlock: -1},
		{name: "up a high ledge", fromX: 770, toX: 790, want: false, wantBlock: 6},
		{name: "off the ledge on foot", fromX: 830, toX: 810, want: false, wantBlock: -1},
		{name: "pushed off the ledge", fromX: 830, toX: 810, dropoff: true, want: true, wantFloor: 64 * fu, wantBlock: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, l := newTestWorld(t)
			imp := spawnAt(l, tt.fromX, 256, info.MTTroop)

			got := w.TryMove(imp, fixed.Int(tt.toX), fixed.Int(256), tt.dropoff)
			if got != tt.want {
				t.Fatalf("TryMove() = %v, want %v", got, tt.want)
			}

			if tt.want {
				if imp.X != fixed.Int(tt.toX) {
					t.Errorf("imp.X = %d, want %d", imp.X.ToInt(), tt.toX)
				}
				if imp.FloorZ != tt.wantFloor {
					t.Errorf("imp.FloorZ = %d, want %d", imp.FloorZ, tt.wantFloor)
				}
				return
			}

			if imp.X != fixed.Int(tt.fromX) {
				t.Errorf("blocked imp moved to %d", imp.X.ToInt())
			}
			bl := w.BlockLine()
			switch {
			case tt.wantBlock < 0 && bl != nil:
				t.Errorf("BlockLine() = %d, want nil", bl.ID)
			case tt.wantBlock >= 0 && (bl == nil || bl.ID != tt.wantBlock):
				t.Errorf("BlockLine() = %v, want line %d", bl, tt.wantBlock)
			}
		})
	}
}

func TestTryMoveRelinksBlock(t *testing.T) {
	w, l := newTestWorld(t)
	imp := spawnAt(l, 120, 256, info.MTTroop)
	from := imp.BlockCell

	if !w.TryMove(imp, fixed.Int(140), fixed.Int(256), false) {
		t.Fatal("TryMove() = false, want true")
	}
	if imp.BlockCell == from {
		t.Errorf("BlockCell = %d, want it to change", imp.BlockCell)
	}
	if len(w.blocks[from].Mobjs()) != 0 {
		t.Error("old block still holds the imp")
	}
}

func TestSolidThingsBlock(t *testing.T) {
	w, l := newTestWorld(t)
	a := spawnAt(l, 100, 150, info.MTTroop)
	spawnAt(l, 170, 150, info.MTTroop)

	if !w.CheckPosition(a, fixed.Int(100), fixed.Int(150)) {
		t.Error("CheckPosition() at a free spot = false, want true")
	}
	if w.CheckPosition(a, fixed.Int(135), fixed.Int(150)) {
		t.Error("CheckPosition() overlapping an imp = true, want false")
	}
}

func TestMissileDamagesVictim(t *testing.T) {
	w, l := newTestWorld(t)
	shooter := spawnAt(l, 60, 100, info.MTPossessed)
	victim := spawnAt(l, 150, 100, info.MTTroop)
	rocket := spawnAt(l, 100, 100, info.MTRocket)
	rocket.Target = shooter.Handle()

	if w.TryMove(rocket, fixed.Int(130), fixed.Int(100), false) {
		t.Fatal("TryMove() into the imp = true, want false")
	}
	if victim.Health >= 60 {
		t.Errorf("victim health = %d, want below 60", victim.Health)
	}
}

func TestMissilePassesItsShooter(t *testing.T) {
	w, l := newTestWorld(t)
	shooter := spawnAt(l, 100, 100, info.MTPossessed)
	rocket := spawnAt(l, 100, 100, info.MTRocket)
	rocket.Target = shooter.Handle()

	if !w.TryMove(rocket, fixed.Int(110), fixed.Int(100), false) {
		t.Error("TryMove() through the shooter = false, want true")
	}
	if shooter.Health != 20 {
		t.Errorf("shooter health = %d, want 20", shooter.Health)
	}
}

func TestTouchSpecial(t *testing.T) {
	w, l := newTestWorld(t)
	player := spawnAt(l, 100, 300, info.MTPlayer)
	stim := spawnAt(l, 130, 300, info.MTStim)

	var touched []*mobj.Mobj
	w.OnTouchSpecial = func(special, toucher *mobj.Mobj) {
		if toucher != player {
			t.Errorf("toucher = %v, want player", toucher)
		}
		touched = append(touched, special)
		l.Remove(special)
	}

	if !w.CheckPosition(player, fixed.Int(100), fixed.Int(300)) {
		t.Error("CheckPosition() = false, want true: specials are not solid")
	}
	if len(touched) != 1 || touched[0] != stim {
		t.Errorf("touched = %v, want [stim]", touched)
	}

	// monsters cannot pick things up
	imp := spawnAt(l, 400, 300, info.MTTroop)
	spawnAt(l, 420, 300, info.MTMedi)
	w.CheckPosition(imp, fixed.Int(400), fixed.Int(300))
	if len(touched) != 1 {
		t.Errorf("touched = %d specials, want 1", len(touched))
	}
}

func TestAimLineAttack(t *testing.T) {
	w, l := newTestWorld(t)
	player := spawnAt(l, 200, 256, info.MTPlayer)
	near := spawnAt(l, 400, 256, info.MTTroop)
	spawnAt(l, 500, 256, info.MTTroop)

	slope, target := w.AimLineAttack(player, 0, 1024*fu)
	if target != near {
		t.Fatalf("AimLineAttack() target = %v, want the nearer imp", target)
	}
	if slope < bottomSlope || slope > topSlope {
		t.Errorf("slope = %d, want within [%d, %d]", slope, bottomSlope, topSlope)
	}

	if _, target := w.AimLineAttack(player, fixed.Ang180, 1024*fu); target != nil {
		t.Errorf("AimLineAttack() behind = %v, want nil", target)
	}
	if _, target := w.AimLineAttack(player, 0, 100*fu); target != nil {
		t.Errorf("AimLineAttack() out of range = %v, want nil", target)
	}
}

func TestAimLineAttackBlockedByWall(t *testing.T) {
	w, l := newTestWorld(t)
	player := spawnAt(l, 200, 440, info.MTPlayer)
	spawnAt(l, 400, 440, info.MTTroop)

	if slope, target := w.AimLineAttack(player, 0, 1024*fu); target != nil || slope != 0 {
		t.Errorf("AimLineAttack() through the pillar = (%d, %v), want (0, nil)", slope, target)
	}
}

func TestCheckSight(t *testing.T) {
	w, l := newTestWorld(t)
	player := spawnAt(l, 200, 440, info.MTPlayer)
	hidden := spawnAt(l, 400, 440, info.MTTroop)
	open := spawnAt(l, 400, 200, info.MTTroop)

	if w.CheckSight(player, hidden) {
		t.Error("CheckSight() through the pillar = true, want false")
	}
	if !w.CheckSight(player, open) {
		t.Error("CheckSight() across the room = false, want true")
	}
}

func TestFriction(t *testing.T) {
	w, l := newTestWorld(t)
	w.Level().Sectors[1].Friction = 0xf000

	imp := spawnAt(l, 650, 256, info.MTTroop)
	if got := w.Friction(imp); got != 0xf000 {
		t.Errorf("Friction() on floor = %#x, want 0xf000", got)
	}

	imp.Z += 8 * fu
	if got := w.Friction(imp); got != mobj.OrigFriction {
		t.Errorf("Friction() in the air = %#x, want %#x", got, mobj.OrigFriction)
	}

	other := spawnAt(l, 100, 256, info.MTTroop)
	if got := w.Friction(other); got != mobj.OrigFriction {
		t.Errorf("Friction() on plain floor = %#x, want %#x", got, mobj.OrigFriction)
	}
}

func TestCheckOnMobj(t *testing.T) {
	w, l := newTestWorld(t)
	barrel := spawnAt(l, 400, 100, info.MTBarrel)
	player := spawnAt(l, 400, 100, info.MTPlayer)

	player.Z = 42 * fu
	player.MomZ = -fu
	if got := w.CheckOnMobj(player); got != barrel {
		t.Errorf("CheckOnMobj() = %v, want barrel", got)
	}

	player.Z = 100 * fu
	if got := w.CheckOnMobj(player); got != nil {
		t.Errorf("CheckOnMobj() high above = %v, want nil", got)
	}
}

func TestApplyTorquePushesOffLedge(t *testing.T) {
	w, l := newTestWorld(t)
	corpse := spawnAt(l, 798, 256, info.MTTroop)
	corpse.Z = 64 * fu

	w.ApplyTorque(corpse)

	if corpse.MomX >= 0 {
		t.Errorf("MomX = %d, want negative (towards the lower floor)", corpse.MomX)
	}
	if corpse.MomY != 0 {
		t.Errorf("MomY = %d, want 0", corpse.MomY)
	}
	if corpse.Flags2&info.MF2Falling == 0 {
		t.Error("MF2Falling not set")
	}
	if corpse.Gear != 1 {
		t.Errorf("Gear = %d, want 1", corpse.Gear)
	}
}

func TestApplyTorqueAtRest(t *testing.T) {
	w, l := newTestWorld(t)
	imp := spawnAt(l, 100, 256, info.MTTroop)
	imp.Gear = 5

	w.ApplyTorque(imp)

	if imp.MomX != 0 || imp.MomY != 0 {
		t.Errorf("momentum = (%d, %d), want (0, 0)", imp.MomX, imp.MomY)
	}
	if imp.Gear != 0 {
		t.Errorf("Gear = %d, want 0", imp.Gear)
	}
}

func TestSlideMoveAlongWall(t *testing.T) {
	w, l := newTestWorld(t)
	player := spawnAt(l, 30, 256, info.MTPlayer)
	player.MomX = -20 * fu
	player.MomY = 10 * fu

	if w.TryMove(player, player.X+player.MomX, player.Y+player.MomY, true) {
		t.Fatal("TryMove() into the wall = true, want false")
	}
	w.SlideMove(player)

	if player.X != fixed.Int(30) {
		t.Errorf("player.X = %d, want 30", player.X.ToInt())
	}
	if player.Y <= fixed.Int(256) {
		t.Errorf("player.Y = %d, want it to slide north", player.Y.ToInt())
	}
	if player.MomX != 0 {
		t.Errorf("MomX = %d, want 0", player.MomX)
	}
}
