// Package term presents frames on a terminal with half-block cells and
// turns terminal input into loop events.
package term

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/video"
)

var palette = [video.NumColors]tcell.Color{
	video.ColorBlack:     tcell.ColorBlack,
	video.ColorGray:      tcell.NewRGBColor(96, 96, 96),
	video.ColorWhite:     tcell.ColorWhite,
	video.ColorRed:       tcell.NewRGBColor(200, 30, 30),
	video.ColorGreen:     tcell.NewRGBColor(40, 200, 40),
	video.ColorBlue:      tcell.NewRGBColor(40, 80, 220),
	video.ColorYellow:    tcell.ColorYellow,
	video.ColorBrown:     tcell.NewRGBColor(120, 80, 40),
	video.ColorPurple:    tcell.ColorPurple,
	video.ColorCyan:      tcell.NewRGBColor(40, 200, 200),
	video.ColorDarkGreen: tcell.NewRGBColor(20, 90, 20),
	video.ColorDarkRed:   tcell.NewRGBColor(100, 10, 10),
}

// Terminal is a video.Display and input device backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// New initialises the terminal.
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an initialised screen.
func NewWithScreen(s tcell.Screen) *Terminal {
	s.HideCursor()
	s.EnableMouse()
	s.Clear()
	return &Terminal{screen: s}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Present scales the frame to the terminal. Each cell shows two pixel rows
// with an upper half block; the caption takes the last row.
func (t *Terminal) Present(s *video.Screen) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 1 {
		return nil
	}
	imgRows := rows - 1

	for cy := range imgRows {
		top := (2 * cy) * s.Height / (2 * imgRows)
		bottom := (2*cy + 1) * s.Height / (2 * imgRows)
		for cx := range cols {
			px := cx * s.Width / cols
			style := tcell.StyleDefault.
				Foreground(color(s.At(px, top))).
				Background(color(s.At(px, bottom)))
			t.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	caption := []rune(s.Caption)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	for cx := range cols {
		r := ' '
		if cx < len(caption) {
			r = caption[cx]
		}
		t.screen.SetContent(cx, imgRows, r, nil, textStyle)
	}

	t.screen.Show()
	return nil
}

func color(c uint8) tcell.Color {
	if int(c) >= len(palette) {
		return tcell.ColorBlack
	}
	return palette[c]
}

// Listen polls terminal input and sends translated events to out until the
// context is cancelled or the screen is finalised.
func (t *Terminal) Listen(ctx context.Context, out chan<- loop.Event) error {
	go func() {
		<-ctx.Done()
		// unblock PollEvent
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	var lastX, lastY int
	mouseSeen := false
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}

		var next loop.Event
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
			continue
		case *tcell.EventResize:
			t.screen.Sync()
			continue
		case *tcell.EventKey:
			e, ok := translateKey(ev)
			if !ok {
				continue
			}
			next = e
		case *tcell.EventMouse:
			x, y := ev.Position()
			if !mouseSeen {
				lastX, lastY, mouseSeen = x, y, true
			}
			next = loop.Event{
				Type:    loop.Mouse,
				Buttons: int(ev.Buttons()),
				DX:      x - lastX,
				DY:      y - lastY,
			}
			lastX, lastY = x, y
		default:
			continue
		}

		select {
		case out <- next:
		case <-ctx.Done():
			return nil
		default:
			slog.Debug("input channel full, dropping event", "type", next.Type)
		}
	}
}

func translateKey(ev *tcell.EventKey) (loop.Event, bool) {
	e := loop.Event{Type: loop.KeyDown}
	switch ev.Key() {
	case tcell.KeyRune:
		e.Key = int(ev.Rune())
	case tcell.KeyEnter:
		e.Key = loop.KeyEnter
	case tcell.KeyEscape:
		e.Key = loop.KeyEscape
	case tcell.KeyUp:
		e.Key = loop.KeyArrowUp
	case tcell.KeyDown:
		e.Key = loop.KeyArrowDown
	case tcell.KeyLeft:
		e.Key = loop.KeyArrowLeft
	case tcell.KeyRight:
		e.Key = loop.KeyArrowRight
	case tcell.KeyPause:
		e.Key = loop.KeyPause
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return loop.Event{Type: loop.Quit}, true
	default:
		return loop.Event{}, false
	}
	return e, true
}
