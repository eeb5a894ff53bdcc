package game

import (
	"fmt"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/video"
)

const numPages = 2

// Draw renders the current game state.
func (g *Game) Draw(s *video.Screen) {
	switch g.state {
	case loop.StateDemoScreen:
		g.drawPage(s)
	case loop.StateLevel:
		g.drawMap(s)
	case loop.StateIntermission:
		g.drawIntermission(s)
	case loop.StateFinale:
		g.drawFinale(s)
	}
}

func (g *Game) drawPage(s *video.Screen) {
	if g.page == 0 {
		s.Fill(video.ColorBlack)
		for i := 0; i < min(s.Width, s.Height)/2; i += 3 {
			c := video.ColorRed
			if i%2 == 1 {
				c = video.ColorBrown
			}
			s.Line(i, i, s.Width-1-i, i, c)
			s.Line(i, s.Height-1-i, s.Width-1-i, s.Height-1-i, c)
		}
		s.Caption = "retrogo - press a key to start, esc for menu"
		return
	}

	for y := range s.Height {
		s.Rect(0, y, s.Width, y+1, uint8(1+y*int(video.NumColors-1)/max(s.Height, 1)))
	}
	s.Caption = fmt.Sprintf("retrogo - next map %s", g.opts.Map)
}

// mapView maps level coordinates to screen pixels keeping the aspect ratio.
type mapView struct {
	left, bottom fixed.Fixed
	scale        int64 // map units per pixel, in fixed point
	height       int
}

func newMapView(lv *mapdata.Level, s *video.Screen) mapView {
	var box mapdata.Box
	for i, sec := range lv.Sectors {
		if i == 0 {
			box = sec.Bounds
			continue
		}
		box.Left = min(box.Left, sec.Bounds.Left)
		box.Bottom = min(box.Bottom, sec.Bounds.Bottom)
		box.Right = max(box.Right, sec.Bounds.Right)
		box.Top = max(box.Top, sec.Bounds.Top)
	}
	sx := (int64(box.Right) - int64(box.Left)) / int64(max(s.Width-1, 1))
	sy := (int64(box.Top) - int64(box.Bottom)) / int64(max(s.Height-1, 1))
	return mapView{
		left:   box.Left,
		bottom: box.Bottom,
		scale:  max(sx, sy, 1),
		height: s.Height,
	}
}

func (v mapView) point(x, y fixed.Fixed) (int, int) {
	px := (int64(x) - int64(v.left)) / v.scale
	py := (int64(y) - int64(v.bottom)) / v.scale
	return int(px), v.height - 1 - int(py)
}

func (g *Game) drawMap(s *video.Screen) {
	s.Fill(video.ColorBlack)
	if g.geometry == nil || g.level == nil {
		return
	}
	v := newMapView(g.geometry, s)

	for _, sp := range g.level.Splats() {
		x, y := v.point(sp.X, sp.Y)
		s.Set(x, y, video.ColorDarkRed)
	}

	for _, ln := range g.geometry.Lines {
		c := video.ColorWhite
		if ln.Back != nil {
			c = video.ColorGray
			if ln.Back.FloorHeight != ln.Front.FloorHeight {
				c = video.ColorBrown
			}
		}
		x1, y1 := v.point(ln.X1, ln.Y1)
		x2, y2 := v.point(ln.X2, ln.Y2)
		s.Line(x1, y1, x2, y2, c)
	}

	g.level.Each(func(m *mobj.Mobj) bool {
		x, y := v.point(m.X, m.Y)
		s.Set(x, y, mobjColor(m))
		if m.Player != nil && !m.IsVoodooDoll() {
			tx, ty := v.point(m.X+fixed.Mul(m.Radius*2, m.Angle.Cos()), m.Y+fixed.Mul(m.Radius*2, m.Angle.Sin()))
			s.Line(x, y, tx, ty, mobjColor(m))
		}
		return true
	})

	s.Caption = g.statusLine()
}

func mobjColor(m *mobj.Mobj) uint8 {
	switch {
	case m.Player != nil:
		if m.Flags&info.MFFuzz != 0 {
			return video.ColorPurple
		}
		return video.ColorGreen
	case m.Flags&info.MFCorpse != 0:
		return video.ColorDarkRed
	case m.Flags&info.MFCountKill != 0:
		return video.ColorRed
	case m.Flags&info.MFSpecial != 0:
		return video.ColorYellow
	case m.Flags&info.MFMissile != 0:
		return video.ColorCyan
	case m.Flags&info.MFSolid != 0:
		return video.ColorBrown
	}
	return video.ColorDarkGreen
}

func (g *Game) statusLine() string {
	p := g.level.Player
	st := g.level.Stats
	line := fmt.Sprintf("%s  health %d  armor %d  ammo %d  kills %d/%d  items %d/%d",
		g.mapName, p.Health, p.Armor, g.ammo, st.Kills, st.TotalKills, st.Items, st.TotalItems)
	switch {
	case p.State == mobj.PlayerDead:
		line += "  dead, press use"
	case g.paused:
		line += "  paused"
	}
	if g.playback != nil {
		line += "  demo"
	}
	return line
}

func percent(n, total int) int {
	if total <= 0 {
		return 100
	}
	return n * 100 / total
}

func (g *Game) drawIntermission(s *video.Screen) {
	s.Fill(video.ColorBlack)
	st := g.level.Stats
	kills := percent(st.Kills, st.TotalKills)
	items := percent(st.Items, st.TotalItems)

	rows := []struct {
		pct int
		c   uint8
	}{
		{kills, video.ColorRed},
		{items, video.ColorYellow},
	}
	barH := s.Height / 6
	for i, r := range rows {
		y := s.Height/4 + i*barH*2
		s.Rect(0, y, s.Width, y+barH, video.ColorGray)
		s.Rect(0, y, s.Width*min(r.pct, 100)/100, y+barH, r.c)
	}

	secs := int(g.level.Time) / mobj.TicRate
	s.Caption = fmt.Sprintf("%s finished  kills %d%%  items %d%%  time %d:%02d",
		g.mapName, kills, items, secs/60, secs%60)
}

func (g *Game) drawFinale(s *video.Screen) {
	s.Fill(video.ColorDarkGreen)
	s.Rect(s.Width/4, s.Height/4, s.Width*3/4, s.Height*3/4, video.ColorBlack)
	s.Caption = "the end"
	if g.tic >= finaleDelay {
		s.Caption += " - press a key"
	}
}
