package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/random"
	"github.com/udisondev/retrogo/internal/video"
)

type fakeClock struct {
	ms     int
	sleeps int
}

func (c *fakeClock) Tics() int { return c.ms * 35 / 1000 }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps++
	c.ms += max(int(d/time.Millisecond), 1)
}

func (c *fakeClock) advance(tics int) {
	target := c.Tics() + tics
	for c.Tics() < target {
		c.ms++
	}
}

type fakeGame struct {
	state  GameState
	tics   int
	events []Event
	err    error
	panic  any
}

func (g *fakeGame) Ticker() error {
	if g.panic != nil {
		panic(g.panic)
	}
	g.tics++
	return g.err
}

func (g *fakeGame) State() GameState { return g.state }

func (g *fakeGame) Draw(s *video.Screen) {
	s.Fill(uint8(g.state) + 1)
}

func (g *fakeGame) Respond(ev Event) bool {
	g.events = append(g.events, ev)
	return true
}

func newTestLoop(wipe bool) (*Loop, *fakeGame, *fakeClock, *video.Discard) {
	g := &fakeGame{}
	clock := &fakeClock{}
	display := &video.Discard{}
	l := New(g, display, clock, Config{Width: 32, Height: 20, Wipe: wipe, Rand: random.New(1)}, g)
	return l, g, clock, display
}

func TestQueue_FIFO(t *testing.T) {
	var q Queue
	for i := range 3 {
		q.Post(Event{Key: i})
	}
	for i := range 3 {
		ev, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, ev.Key)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueue_OverflowDropsOldest(t *testing.T) {
	var q Queue
	for i := range QueueSize {
		assert.True(t, q.Post(Event{Key: i}))
	}
	assert.False(t, q.Post(Event{Key: QueueSize}))
	assert.Equal(t, QueueSize, q.Len())

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, ev.Key)
}

func TestProcessEvents_MenuEatsEvents(t *testing.T) {
	g := &fakeGame{}
	var menuSaw []Event
	menu := ResponderFunc(func(ev Event) bool {
		menuSaw = append(menuSaw, ev)
		return ev.Key == KeyEscape
	})
	l := New(g, &video.Discard{}, &fakeClock{}, Config{Width: 8, Height: 8}, menu, g)

	l.Post(Event{Type: KeyDown, Key: KeyEscape})
	l.Post(Event{Type: KeyDown, Key: 'w'})
	l.ProcessEvents()

	assert.Len(t, menuSaw, 2)
	require.Len(t, g.events, 1)
	assert.Equal(t, 'w', rune(g.events[0].Key))
}

func TestProcessEvents_DropsMouseDuringWipe(t *testing.T) {
	l, g, _, _ := newTestLoop(true)
	g.state = StateLevel
	require.NoError(t, l.Display())
	require.True(t, l.Wiping())

	l.Post(Event{Type: Mouse, DX: 4})
	l.Post(Event{Type: KeyDown, Key: 'a'})
	l.ProcessEvents()

	require.Len(t, g.events, 1)
	assert.Equal(t, KeyDown, g.events[0].Type)

	require.NoError(t, l.Display())
	assert.False(t, l.Wiping())
	l.Post(Event{Type: Mouse, DX: 4})
	l.ProcessEvents()
	assert.Len(t, g.events, 2)
}

func TestProcessEvents_DrainsInputChannel(t *testing.T) {
	l, g, _, _ := newTestLoop(false)
	ch := make(chan Event, 4)
	ch <- Event{Type: KeyDown, Key: 'x'}
	ch <- Event{Type: Quit}
	close(ch)
	l.SetInput(ch)

	l.ProcessEvents()
	assert.Len(t, g.events, 1)
	assert.True(t, l.Quitting())
}

func TestTryRunTics_RunsAtLeastOne(t *testing.T) {
	l, g, clock, _ := newTestLoop(false)

	require.NoError(t, l.TryRunTics(context.Background()))
	assert.Equal(t, 1, g.tics)
	assert.Equal(t, 1, l.GameTic())
	assert.Positive(t, clock.sleeps)
}

func TestTryRunTics_CatchesUpWithoutSkipping(t *testing.T) {
	l, g, clock, _ := newTestLoop(false)
	clock.advance(7)

	require.NoError(t, l.TryRunTics(context.Background()))
	assert.Equal(t, 7, g.tics)
	assert.Zero(t, clock.sleeps)
}

func TestTryRunTics_CancelledWhileWaiting(t *testing.T) {
	l, _, _, _ := newTestLoop(false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.TryRunTics(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTryRunTics_TickerError(t *testing.T) {
	l, g, clock, _ := newTestLoop(false)
	clock.advance(1)
	g.err = errors.New("boom")

	err := l.TryRunTics(context.Background())
	assert.ErrorIs(t, err, g.err)
}

func TestTryRunTics_RecoversStateCycle(t *testing.T) {
	l, g, clock, _ := newTestLoop(false)
	clock.advance(1)
	g.panic = mobj.ErrStateCycle

	err := l.TryRunTics(context.Background())
	assert.ErrorIs(t, err, mobj.ErrStateCycle)
}

func TestDisplay_NoWipeWithoutStateChange(t *testing.T) {
	l, _, _, display := newTestLoop(true)

	require.NoError(t, l.Display())
	assert.Equal(t, 1, display.Frames)
	assert.False(t, l.Wiping())
}

func TestDisplay_WipeMeltsToNewScreen(t *testing.T) {
	l, g, clock, display := newTestLoop(true)
	require.NoError(t, l.Display())

	g.state = StateLevel
	before := clock.sleeps
	require.NoError(t, l.Display())

	assert.Greater(t, display.Frames, 2)
	assert.GreaterOrEqual(t, clock.sleeps-before, display.Frames-1)
	want := uint8(StateLevel) + 1
	for i, c := range l.Screen().Pix {
		if c != want {
			t.Fatalf("pixel %d = %d after wipe, want %d", i, c, want)
		}
	}
}

func TestDisplay_WipeDisabled(t *testing.T) {
	l, g, _, display := newTestLoop(false)
	g.state = StateFinale

	require.NoError(t, l.Display())
	assert.Equal(t, 1, display.Frames)
	assert.False(t, l.Wiping())
}

func TestRun_StopsOnQuit(t *testing.T) {
	l, g, _, display := newTestLoop(false)
	ch := make(chan Event, 1)
	ch <- Event{Type: Quit}
	l.SetInput(ch)

	require.NoError(t, l.Run(context.Background()))
	assert.Zero(t, g.tics)
	assert.Zero(t, display.Frames)
}

func TestRun_StopsOnStop(t *testing.T) {
	l, _, _, _ := newTestLoop(false)
	l.Stop()
	l.Stop()

	assert.NoError(t, l.Run(context.Background()))
}
