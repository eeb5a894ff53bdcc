// Package sound plays the simulation's positional sound cues through a
// synthesizer on the system speaker.
package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mobj"
)

// Attenuation distances.
const (
	ClippingDist = 1200 * fixed.FracUnit // inaudible beyond
	CloseDist    = 200 * fixed.FracUnit  // full volume within
)

// Attenuate returns the volume in [0, 1] of a sound from origin heard by
// listener and whether it is audible at all. Sounds without an origin or
// from the listener itself play at full volume.
func Attenuate(listener, origin *mobj.Mobj) (float64, bool) {
	if origin == nil || listener == nil || origin == listener {
		return 1, true
	}
	dist := fixed.ApproxDistance(origin.X-listener.X, origin.Y-listener.Y)
	switch {
	case dist > ClippingDist:
		return 0, false
	case dist < CloseDist:
		return 1, true
	}
	return float64(ClippingDist-dist) / float64(ClippingDist-CloseDist), true
}

// Beep implements mobj.Sound on the beep speaker. Each origin plays one
// sound at a time: a new sound from the same origin cuts the previous one.
type Beep struct {
	rate     beep.SampleRate
	volume   float64
	mixer    *beep.Mixer
	playing  map[*mobj.Mobj]*beep.Ctrl
	listener func() *mobj.Mobj

	mu      sync.Mutex
	started bool
}

// NewBeep creates a sound player. Nothing is audible until Start.
func NewBeep(sampleRate int, volume float64, listener func() *mobj.Mobj) *Beep {
	return &Beep{
		rate:     beep.SampleRate(sampleRate),
		volume:   volume,
		mixer:    &beep.Mixer{},
		playing:  make(map[*mobj.Mobj]*beep.Ctrl),
		listener: listener,
	}
}

// Start opens the speaker and begins mixing.
func (b *Beep) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.started = true
	slog.Info("sound started", "sample_rate", int(b.rate))
	return nil
}

// Close silences every playing sound.
func (b *Beep) Close() {
	b.lock()
	b.mixer.Clear()
	clear(b.playing)
	b.unlock()
}

// StartSound queues sfx from origin. It never blocks on the audio device.
func (b *Beep) StartSound(origin *mobj.Mobj, sfx info.Sound) {
	var listener *mobj.Mobj
	if b.listener != nil {
		listener = b.listener()
	}
	vol, ok := Attenuate(listener, origin)
	if !ok {
		return
	}
	s := streamer(sfx, b.rate)
	if s == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: withVolume(s, vol*b.volume)}

	b.lock()
	defer b.unlock()
	if prev := b.playing[origin]; prev != nil {
		prev.Paused = true
	}
	b.playing[origin] = ctrl
	b.mixer.Add(ctrl)
}

// UnlinkSound detaches origin from its sound; the sound plays on.
func (b *Beep) UnlinkSound(origin *mobj.Mobj) {
	b.lock()
	delete(b.playing, origin)
	b.unlock()
}

// Active returns the number of streams in the mixer.
func (b *Beep) Active() int {
	b.lock()
	defer b.unlock()
	return b.mixer.Len()
}

// Once the speaker runs, the mixer is read from its goroutine.
func (b *Beep) lock() {
	b.mu.Lock()
	if b.started {
		speaker.Lock()
	}
}

func (b *Beep) unlock() {
	if b.started {
		speaker.Unlock()
	}
	b.mu.Unlock()
}

// Nop discards every sound.
type Nop struct{}

func (Nop) StartSound(*mobj.Mobj, info.Sound) {}
func (Nop) UnlinkSound(*mobj.Mobj)            {}

// Played is one recorded StartSound call.
type Played struct {
	Origin *mobj.Mobj
	Sfx    info.Sound
}

// Recorder remembers the sounds started, for tests and headless runs.
type Recorder struct {
	Played   []Played
	Unlinked int
}

func (r *Recorder) StartSound(origin *mobj.Mobj, sfx info.Sound) {
	r.Played = append(r.Played, Played{Origin: origin, Sfx: sfx})
}

func (r *Recorder) UnlinkSound(*mobj.Mobj) {
	r.Unlinked++
}

// Sfx returns the recorded sounds in order.
func (r *Recorder) Sfx() []info.Sound {
	out := make([]info.Sound, len(r.Played))
	for i, p := range r.Played {
		out[i] = p.Sfx
	}
	return out
}
