// Package loop drives the frame loop: it feeds input events through the
// responder chain, runs game tics to catch up with the clock and presents
// frames, melting between screens when the game state changes.
package loop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/retrogo/internal/random"
	"github.com/udisondev/retrogo/internal/video"
)

// GameState is the top level mode of the game.
type GameState int

const (
	StateDemoScreen GameState = iota
	StateLevel
	StateIntermission
	StateFinale
)

func (s GameState) String() string {
	switch s {
	case StateDemoScreen:
		return "demoscreen"
	case StateLevel:
		return "level"
	case StateIntermission:
		return "intermission"
	case StateFinale:
		return "finale"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Game is what the loop drives.
type Game interface {
	// Ticker runs one game tic.
	Ticker() error
	// State returns the mode drawn by the next Draw.
	State() GameState
	// Draw renders the current mode into s.
	Draw(s *video.Screen)
}

// Overlay is drawn over every presented frame, wipe frames included.
type Overlay interface {
	Draw(s *video.Screen)
}

// Clock reports elapsed game time in tics.
type Clock interface {
	Tics() int
	Sleep(d time.Duration)
}

// RealClock is a wall clock ticking rate times per second.
type RealClock struct {
	start time.Time
	rate  int
}

// NewRealClock starts a clock at tic zero.
func NewRealClock(rate int) *RealClock {
	return &RealClock{start: time.Now(), rate: rate}
}

func (c *RealClock) Tics() int {
	return int(time.Since(c.start) * time.Duration(c.rate) / time.Second)
}

func (c *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Config holds the presentation options of the loop.
type Config struct {
	Width, Height int
	Wipe          bool
	// Rand seeds the melt columns. It must not be a gameplay stream.
	Rand *random.Stream
}

// Loop is the frame loop. All methods except Stop run on the loop goroutine.
type Loop struct {
	game       Game
	display    video.Display
	clock      Clock
	responders []Responder
	overlay    Overlay
	input      <-chan Event

	queue  Queue
	screen *video.Screen
	melt   video.Melt
	rng    *random.Stream

	wipeEnabled bool
	wipe        bool
	wipeState   GameState
	gametic     int
	frames      int
	quit        bool

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a loop. Responders see events in the order given, typically
// the menu first and the game second.
func New(g Game, display video.Display, clock Clock, cfg Config, responders ...Responder) *Loop {
	rng := cfg.Rand
	if rng == nil {
		rng = random.New(uint64(time.Now().UnixNano()))
	}
	return &Loop{
		game:        g,
		display:     display,
		clock:       clock,
		responders:  responders,
		screen:      video.NewScreen(cfg.Width, cfg.Height),
		rng:         rng,
		wipeEnabled: cfg.Wipe,
		wipeState:   StateDemoScreen,
		stopCh:      make(chan struct{}),
	}
}

// SetInput attaches the channel an input device posts events on.
func (l *Loop) SetInput(ch <-chan Event) {
	l.input = ch
}

// SetOverlay installs the overlay drawn on top of every frame.
func (l *Loop) SetOverlay(o Overlay) {
	l.overlay = o
}

// Screen returns the framebuffer.
func (l *Loop) Screen() *video.Screen {
	return l.screen
}

// GameTic returns the number of tics run so far.
func (l *Loop) GameTic() int {
	return l.gametic
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Wiping reports whether the last displayed frame started a wipe.
func (l *Loop) Wiping() bool {
	return l.wipe
}

// Quitting reports whether a quit event has been processed.
func (l *Loop) Quitting() bool {
	return l.quit
}

// Post queues an event for the next ProcessEvents.
func (l *Loop) Post(ev Event) {
	if !l.queue.Post(ev) {
		slog.Debug("event queue full, dropped oldest event", "type", ev.Type)
	}
}

// ProcessEvents moves pending device input into the queue and dispatches
// every queued event. Mouse events are dropped while a wipe is pending.
func (l *Loop) ProcessEvents() {
	l.drainInput()
	for {
		ev, ok := l.queue.Pop()
		if !ok {
			return
		}
		if ev.Type == Quit {
			l.quit = true
			continue
		}
		if l.wipe && ev.Type == Mouse {
			continue
		}
		for _, r := range l.responders {
			if r.Respond(ev) {
				break
			}
		}
	}
}

func (l *Loop) drainInput() {
	for {
		select {
		case ev, ok := <-l.input:
			if !ok {
				l.input = nil
				return
			}
			l.Post(ev)
		default:
			return
		}
	}
}

// TryRunTics runs every tic the clock has advanced past, at least one.
// It waits for the clock when no tic is due and never skips a tic.
func (l *Loop) TryRunTics(ctx context.Context) error {
	target := l.clock.Tics()
	for target <= l.gametic {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.clock.Sleep(time.Millisecond)
		target = l.clock.Tics()
	}

	for l.gametic < target && !l.quit {
		l.ProcessEvents()
		if l.quit {
			break
		}
		if err := l.runTic(); err != nil {
			return err
		}
		l.gametic++
	}
	return nil
}

// runTic converts a panic carrying an error, such as a state cycle raised
// by the simulation, into a returned error.
func (l *Loop) runTic() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = fmt.Errorf("tic %d: %w", l.gametic, e)
	}()
	return l.game.Ticker()
}

// Display draws and presents a frame. When the game state differs from
// the last drawn one and wipes are enabled, it melts the old screen into
// the new one, presenting every intermediate frame.
func (l *Loop) Display() error {
	state := l.game.State()
	l.wipe = l.wipeEnabled && state != l.wipeState
	if l.wipe {
		l.melt.Start(l.screen, l.rng)
	}

	l.game.Draw(l.screen)
	l.wipeState = state

	if !l.wipe {
		return l.present()
	}

	l.melt.End(l.screen)
	slog.Debug("screen wipe", "to", state, "gametic", l.gametic)

	wipestart := l.clock.Tics() - 1
	for done := false; !done; {
		var now, tics int
		for {
			now = l.clock.Tics()
			tics = now - wipestart
			l.clock.Sleep(time.Millisecond)
			if tics > 0 {
				break
			}
		}
		wipestart = now
		done = l.melt.Do(l.screen, tics)
		if err := l.present(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) present() error {
	if l.overlay != nil {
		l.overlay.Draw(l.screen)
	}
	l.frames++
	if err := l.display.Present(l.screen); err != nil {
		return fmt.Errorf("presenting frame %d: %w", l.frames, err)
	}
	return nil
}

// Run loops until the context is cancelled, Stop is called, a quit event
// arrives or a tic fails.
func (l *Loop) Run(ctx context.Context) error {
	slog.Info("frame loop started", "wipe", l.wipeEnabled,
		"width", l.screen.Width, "height", l.screen.Height)

	for {
		select {
		case <-ctx.Done():
			slog.Info("frame loop stopping", "gametic", l.gametic)
			return ctx.Err()
		case <-l.stopCh:
			slog.Info("frame loop stopped", "gametic", l.gametic)
			return nil
		default:
		}

		if err := l.TryRunTics(ctx); err != nil {
			return err
		}
		if l.quit {
			slog.Info("quit requested", "gametic", l.gametic, "frames", l.frames)
			return nil
		}
		if err := l.Display(); err != nil {
			return err
		}
	}
}

// Stop makes Run return after the current iteration. Safe from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}
