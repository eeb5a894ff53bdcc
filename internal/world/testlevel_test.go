package world

import (
	"testing"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
)

const fu = fixed.FracUnit

// testLevel is a 1024x512 room. Going east the floor steps up to 16 at
// x=600, back to 0 at x=700 and up to a 64 high ledge at x=800. A short
// one-sided pillar stands at x=300 near the north wall.
func testLevel() *mapdata.Level {
	room := &mapdata.Sector{ID: 0, Bounds: box(0, 0, 1024, 512), CeilingHeight: 128 * fu, HeightSec: -1}
	step := &mapdata.Sector{ID: 1, Bounds: box(600, 0, 700, 512), FloorHeight: 16 * fu, CeilingHeight: 128 * fu, HeightSec: -1}
	ledge := &mapdata.Sector{ID: 2, Bounds: box(800, 0, 1024, 512), FloorHeight: 64 * fu, CeilingHeight: 128 * fu, HeightSec: -1}

	line := func(id int, x1, y1, x2, y2 int32, front, back *mapdata.Sector) *mapdata.Line {
		return mapdata.NewLine(id, fixed.Int(x1), fixed.Int(y1), fixed.Int(x2), fixed.Int(y2), front, back, 0)
	}

	return &mapdata.Level{
		Name:    "TEST",
		Sectors: []*mapdata.Sector{room, step, ledge},
		Lines: []*mapdata.Line{
			line(0, 0, 0, 1024, 0, room, nil),
			line(1, 1024, 0, 1024, 512, ledge, nil),
			line(2, 1024, 512, 0, 512, room, nil),
			line(3, 0, 512, 0, 0, room, nil),
			line(4, 600, 512, 600, 0, room, step),
			line(5, 700, 512, 700, 0, step, room),
			line(6, 800, 512, 800, 0, room, ledge),
			line(7, 300, 400, 300, 480, room, nil),
		},
	}
}

func box(left, bottom, right, top int32) mapdata.Box {
	return mapdata.Box{Left: fixed.Int(left), Bottom: fixed.Int(bottom), Right: fixed.Int(right), Top: fixed.Int(top)}
}

func newTestWorld(t *testing.T) (*World, *mobj.Level) {
	t.Helper()
	w, err := New(testLevel())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l := mobj.NewLevel(mobj.DefaultOptions(), w, w, nil, w)
	w.Bind(l)
	return w, l
}

func spawnAt(l *mobj.Level, x, y int32, t info.MobjType) *mobj.Mobj {
	return l.Spawn(fixed.Int(x), fixed.Int(y), mobj.OnFloorZ, t)
}
