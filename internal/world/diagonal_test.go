package world

import (
	"testing"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
)

// diagonalWorld builds a 1024x1024 room holding lines. The platform sector
// is referenced only as the back of two-sided lines.
func diagonalWorld(t *testing.T, lines func(room, platform *mapdata.Sector) []*mapdata.Line) (*World, *mobj.Level) {
	t.Helper()
	room := &mapdata.Sector{ID: 0, Bounds: box(0, 0, 1024, 1024), CeilingHeight: 128 * fu, HeightSec: -1}
	platform := &mapdata.Sector{ID: 1, Bounds: box(960, 960, 1024, 1024), FloorHeight: 64 * fu, CeilingHeight: 128 * fu, HeightSec: -1}

	w, err := New(&mapdata.Level{
		Name:    "DIAG",
		Sectors: []*mapdata.Sector{room, platform},
		Lines:   lines(room, platform),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l := mobj.NewLevel(mobj.DefaultOptions(), w, w, nil, w)
	w.Bind(l)
	return w, l
}

func diagLine(id int, x1, y1, x2, y2 int32, front, back *mapdata.Sector) *mapdata.Line {
	return mapdata.NewLine(id, fixed.Int(x1), fixed.Int(y1), fixed.Int(x2), fixed.Int(y2), front, back, 0)
}

// wall45 is the one-sided wall y = x + 200.
func wall45(room, _ *mapdata.Sector) []*mapdata.Line {
	return []*mapdata.Line{diagLine(0, 100, 300, 500, 700, room, nil)}
}

// wallSteep rises 360 over 400: y = 0.9x + 210.
func wallSteep(room, _ *mapdata.Sector) []*mapdata.Line {
	return []*mapdata.Line{diagLine(0, 100, 300, 500, 660, room, nil)}
}

func TestTryMoveDiagonalWall(t *testing.T) {
	tests := []struct {
		name  string
		lines func(room, platform *mapdata.Sector) []*mapdata.Line
		fromX int32
		fromY int32
		toX   int32
		toY   int32
		want  bool
	}{
		{name: "into a 45 degree wall", lines: wall45, fromX: 300, fromY: 450, toX: 290, toY: 470, want: false},
		{name: "along a 45 degree wall", lines: wall45, fromX: 300, fromY: 450, toX: 310, toY: 460, want: true},
		{name: "into a steep wall", lines: wallSteep, fromX: 300, fromY: 430, toX: 290, toY: 450, want: false},
		{name: "away from a steep wall", lines: wallSteep, fromX: 300, fromY: 430, toX: 310, toY: 410, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, l := diagonalWorld(t, tt.lines)
			imp := spawnAt(l, tt.fromX, tt.fromY, info.MTTroop)

			got := w.TryMove(imp, fixed.Int(tt.toX), fixed.Int(tt.toY), false)
			if got != tt.want {
				t.Fatalf("TryMove() = %v, want %v", got, tt.want)
			}
			if !tt.want {
				if bl := w.BlockLine(); bl == nil || bl.ID != 0 {
					t.Errorf("BlockLine() = %v, want line 0", bl)
				}
				if imp.X != fixed.Int(tt.fromX) || imp.Y != fixed.Int(tt.fromY) {
					t.Errorf("blocked imp moved to (%d, %d)", imp.X.ToInt(), imp.Y.ToInt())
				}
			}
		})
	}
}

func TestXYMovementStopsAtDiagonalWall(t *testing.T) {
	_, l := diagonalWorld(t, wall45)
	imp := spawnAt(l, 300, 450, info.MTTroop)

	for range 3 {
		imp.MomX = -10 * fu
		imp.MomY = 10 * fu
		l.XYMovement(imp)
	}

	if side := imp.Y.ToInt() - imp.X.ToInt(); side >= 200-20 {
		t.Errorf("imp at (%d, %d), y-x = %d, want it kept below the wall", imp.X.ToInt(), imp.Y.ToInt(), side)
	}
}

func TestSlideMoveAlongDiagonalWall(t *testing.T) {
	w, l := diagonalWorld(t, wall45)
	player := spawnAt(l, 300, 450, info.MTPlayer)
	player.MomY = 20 * fu

	if w.TryMove(player, player.X, player.Y+player.MomY, true) {
		t.Fatal("TryMove() into the wall = true, want false")
	}
	w.SlideMove(player)

	if player.X <= fixed.Int(300) || player.Y <= fixed.Int(450) {
		t.Errorf("player at (%d, %d), want it moved up the wall", player.X.ToInt(), player.Y.ToInt())
	}
	if side := player.Y.ToInt() - player.X.ToInt(); side >= 200-16 {
		t.Errorf("player y-x = %d, want it kept below the wall", side)
	}
	if player.MomX <= 0 || player.MomY <= 0 {
		t.Errorf("momentum = (%d, %d), want it along the wall", player.MomX, player.MomY)
	}
}

func TestApplyTorqueDiagonalLedge(t *testing.T) {
	tests := []struct {
		name  string
		x1    int32
		y1    int32
		x2    int32
		y2    int32
		cornX int32
		cornY int32
	}{
		// y = x - 400, the corpse hangs just below the line
		{name: "45 degree ledge", x1: 500, y1: 100, x2: 900, y2: 500, cornX: 700, cornY: 290},
		// y = 0.5x - 50
		{name: "shallow ledge", x1: 500, y1: 200, x2: 900, y2: 400, cornX: 700, cornY: 292},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, l := diagonalWorld(t, func(room, platform *mapdata.Sector) []*mapdata.Line {
				return []*mapdata.Line{diagLine(0, tt.x1, tt.y1, tt.x2, tt.y2, room, platform)}
			})
			corpse := spawnAt(l, tt.cornX, tt.cornY, info.MTTroop)
			corpse.Z = 64 * fu

			w.ApplyTorque(corpse)

			if corpse.MomX <= 0 || corpse.MomY >= 0 {
				t.Errorf("momentum = (%d, %d), want it pushed off the ledge (+x, -y)", corpse.MomX, corpse.MomY)
			}
			if corpse.Flags2&info.MF2Falling == 0 {
				t.Error("MF2Falling not set")
			}
		})
	}
}
