package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/udisondev/retrogo/internal/info"
)

// cue is the synthesized stand-in for a sound effect.
type cue struct {
	freq, endFreq float64
	length        time.Duration
	wave          Wave
}

var cues = [info.NumSounds]cue{
	info.SfxPistol:          {freq: 900, endFreq: 200, length: 80 * time.Millisecond, wave: WaveNoise},
	info.SfxRocketLaunch:    {freq: 120, endFreq: 400, length: 300 * time.Millisecond, wave: WaveSaw},
	info.SfxBarrelExplode:   {freq: 80, endFreq: 30, length: 500 * time.Millisecond, wave: WaveNoise},
	info.SfxFireballShoot:   {freq: 300, endFreq: 500, length: 200 * time.Millisecond, wave: WaveSaw},
	info.SfxFireballExplode: {freq: 200, endFreq: 60, length: 300 * time.Millisecond, wave: WaveNoise},
	info.SfxBFGShoot:        {freq: 200, endFreq: 1200, length: 800 * time.Millisecond, wave: WaveSine},
	info.SfxBFGExplode:      {freq: 100, endFreq: 20, length: 900 * time.Millisecond, wave: WaveNoise},
	info.SfxTeleport:        {freq: 400, endFreq: 1600, length: 400 * time.Millisecond, wave: WaveSine},
	info.SfxItemBack:        {freq: 600, endFreq: 1200, length: 250 * time.Millisecond, wave: WaveSine},
	info.SfxItemUp:          {freq: 880, endFreq: 1760, length: 100 * time.Millisecond, wave: WaveSquare},
	info.SfxOof:             {freq: 180, endFreq: 120, length: 150 * time.Millisecond, wave: WaveSquare},
	info.SfxPlayerPain:      {freq: 300, endFreq: 200, length: 200 * time.Millisecond, wave: WaveSaw},
	info.SfxPlayerDeath:     {freq: 300, endFreq: 60, length: 700 * time.Millisecond, wave: WaveSaw},
	info.SfxPlayerXDeath:    {freq: 400, endFreq: 40, length: 900 * time.Millisecond, wave: WaveNoise},
	info.SfxPossSight:       {freq: 220, endFreq: 330, length: 300 * time.Millisecond, wave: WaveSquare},
	info.SfxPossDeath:       {freq: 220, endFreq: 80, length: 400 * time.Millisecond, wave: WaveSquare},
	info.SfxPossActive:      {freq: 160, endFreq: 180, length: 250 * time.Millisecond, wave: WaveSquare},
	info.SfxImpSight:        {freq: 260, endFreq: 390, length: 350 * time.Millisecond, wave: WaveSaw},
	info.SfxImpDeath:        {freq: 260, endFreq: 90, length: 450 * time.Millisecond, wave: WaveSaw},
	info.SfxImpActive:       {freq: 140, endFreq: 170, length: 300 * time.Millisecond, wave: WaveSaw},
	info.SfxMonsterPain:     {freq: 250, endFreq: 180, length: 200 * time.Millisecond, wave: WaveSquare},
	info.SfxSkullAttack:     {freq: 500, endFreq: 900, length: 300 * time.Millisecond, wave: WaveSaw},
	info.SfxSlop:            {freq: 90, endFreq: 40, length: 400 * time.Millisecond, wave: WaveNoise},
}

// streamer renders the cue for sfx. It returns nil for SfxNone and
// unknown sounds.
func streamer(sfx info.Sound, rate beep.SampleRate) beep.Streamer {
	if sfx <= info.SfxNone || sfx >= info.NumSounds {
		return nil
	}
	c := cues[sfx]
	osc := newOscillator(c.freq, c.endFreq, c.length, c.wave, rate)
	return &decay{s: osc, length: osc.length}
}
