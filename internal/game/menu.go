package game

import (
	"strings"

	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/video"
)

type menuItem struct {
	label string
	do    func()
}

// Menu is the escape menu. It is the first responder and draws itself as
// an overlay; level play pauses while it is open.
type Menu struct {
	active bool
	cursor int
	items  []menuItem
}

// NewMenu attaches a menu to g. quit is called when the player picks quit.
func NewMenu(g *Game, quit func()) *Menu {
	m := &Menu{}
	m.items = []menuItem{
		{label: "new game", do: g.NewGame},
		{label: "resume", do: func() {}},
		{label: "quit", do: quit},
	}
	g.menu = m
	return m
}

// Active reports whether the menu is open.
func (m *Menu) Active() bool {
	return m.active
}

// Respond opens the menu on escape and eats every key while it is open.
func (m *Menu) Respond(ev loop.Event) bool {
	if !m.active {
		if ev.Type == loop.KeyDown && ev.Key == loop.KeyEscape {
			m.active = true
			m.cursor = 0
			return true
		}
		return false
	}
	if ev.Type != loop.KeyDown {
		return ev.Type == loop.KeyUp
	}

	switch ev.Key {
	case loop.KeyEscape:
		m.active = false
	case loop.KeyArrowUp, 'w':
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
	case loop.KeyArrowDown, 's':
		m.cursor = (m.cursor + 1) % len(m.items)
	case loop.KeyEnter:
		m.active = false
		m.items[m.cursor].do()
	}
	return true
}

// Draw renders the open menu over the frame.
func (m *Menu) Draw(s *video.Screen) {
	if !m.active {
		return
	}

	const rowHeight = 6
	w := s.Width / 2
	h := len(m.items)*rowHeight + 4
	x0 := (s.Width - w) / 2
	y0 := (s.Height - h) / 2
	s.Rect(x0, y0, x0+w, y0+h, video.ColorBlack)

	labels := make([]string, len(m.items))
	for i, it := range m.items {
		c := video.ColorGray
		labels[i] = it.label
		if i == m.cursor {
			c = video.ColorRed
			labels[i] = "[" + it.label + "]"
		}
		y := y0 + 2 + i*rowHeight
		s.Rect(x0+2, y, x0+w-2, y+rowHeight-2, c)
	}
	s.Caption = "menu: " + strings.Join(labels, " ")
}
