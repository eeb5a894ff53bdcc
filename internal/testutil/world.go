package testutil

import (
	"testing"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/world"
)

// OpenRoom returns a level with a single size x size room, floor at 0 and
// ceiling at 128, holding things.
func OpenRoom(name string, size int32, things ...mapdata.Thing) *mapdata.Level {
	room := &mapdata.Sector{
		Bounds:        mapdata.Box{Right: fixed.Int(size), Top: fixed.Int(size)},
		CeilingHeight: fixed.Int(128),
		HeightSec:     -1,
	}
	return &mapdata.Level{
		Name:    name,
		Sectors: []*mapdata.Sector{room},
		Things:  things,
	}
}

// NewLevel builds the world for lv and a simulation level bound to it.
func NewLevel(t testing.TB, lv *mapdata.Level, opts mobj.Options, snd mobj.Sound) (*world.World, *mobj.Level) {
	t.Helper()

	w, err := world.New(lv)
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	l := mobj.NewLevel(opts, w, w, snd, w)
	w.Bind(l)
	return w, l
}
