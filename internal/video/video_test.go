package video

import (
	"testing"

	"github.com/udisondev/retrogo/internal/random"
)

func TestScreen_ClipsWrites(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(-1, 0, ColorRed)
	s.Set(4, 0, ColorRed)
	s.Set(0, 3, ColorRed)
	for i, c := range s.Pix {
		if c != ColorBlack {
			t.Fatalf("pixel %d = %d, want untouched", i, c)
		}
	}
	if got := s.At(10, 10); got != ColorBlack {
		t.Errorf("At(out of range) = %d, want %d", got, ColorBlack)
	}
}

func TestScreen_RectAndLine(t *testing.T) {
	s := NewScreen(8, 8)
	s.Rect(-2, -2, 2, 2, ColorGreen)
	if s.At(1, 1) != ColorGreen || s.At(2, 2) != ColorBlack {
		t.Errorf("Rect() painted wrong area")
	}

	s.Fill(ColorBlack)
	s.Line(0, 0, 7, 7, ColorWhite)
	for i := range 8 {
		if s.At(i, i) != ColorWhite {
			t.Errorf("Line() missed (%d,%d)", i, i)
		}
	}
	s.Line(7, 0, 0, 0, ColorRed)
	if s.At(0, 0) != ColorRed || s.At(7, 0) != ColorRed {
		t.Errorf("Line() reversed endpoints not drawn")
	}
}

func TestMelt_ColumnOffsets(t *testing.T) {
	s := NewScreen(64, 40)
	var m Melt
	m.Start(s, random.New(7))

	for i, y := range m.y {
		if y > 0 || y < -15 {
			t.Fatalf("column %d offset = %d, want in [-15, 0]", i, y)
		}
		if i > 0 {
			if d := y - m.y[i-1]; d < -1 || d > 1 {
				t.Fatalf("column %d differs from neighbour by %d", i, d)
			}
		}
	}
}

func TestMelt_CompletesOnEndScreen(t *testing.T) {
	from := NewScreen(16, 24)
	from.Fill(ColorRed)
	to := NewScreen(16, 24)
	to.Fill(ColorBlue)
	to.Caption = "level"

	var m Melt
	m.Start(from, random.New(3))
	m.End(to)

	dst := from.Clone()
	if m.Do(dst, 1) {
		t.Fatal("Do() finished after one tic")
	}
	if dst.At(0, dst.Height-1) != ColorRed {
		t.Errorf("bottom row uncovered after one tic")
	}

	steps := 1
	for !m.Do(dst, 1) {
		steps++
		if steps > 100 {
			t.Fatal("melt did not finish")
		}
	}
	for i, c := range dst.Pix {
		if c != ColorBlue {
			t.Fatalf("pixel %d = %d, want end screen", i, c)
		}
	}
	if dst.Caption != "level" {
		t.Errorf("Caption = %q, want %q", dst.Caption, "level")
	}
	if m.Active() {
		t.Error("Active() = true after finish")
	}
}

func TestMelt_MoreTicsFinishSooner(t *testing.T) {
	s := NewScreen(16, 64)
	count := func(tics int) int {
		var m Melt
		m.Start(s, random.New(9))
		m.End(s)
		n := 1
		for !m.Do(s.Clone(), tics) {
			n++
		}
		return n
	}
	if a, b := count(1), count(3); b >= a {
		t.Errorf("frames with 3 tics = %d, want fewer than %d", b, a)
	}
}
