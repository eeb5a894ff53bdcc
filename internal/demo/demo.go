// Package demo records and plays back the per-tic player commands of a
// level, with a state digest per tic to detect desynchronisation.
package demo

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/udisondev/retrogo/internal/mobj"
)

// Magic opens every demo stream.
const Magic = "RGDEMO"

// Version is the demo format version written by this build.
const Version = 2

var (
	ErrBadHeader = errors.New("bad demo header")
	ErrDesync    = errors.New("demo desynchronised")
)

// Header describes the game a demo was recorded in. Playback must start
// a level with identical options. Trails, bobbing, foot clipping and corpse
// options spawn mobjs or move them, so they are recorded too.
type Header struct {
	Version         uint8  `msgpack:"version"`
	Map             string `msgpack:"map"`
	Skill           int8   `msgpack:"skill"`
	Seed            uint64 `msgpack:"seed"`
	RespawnMonsters bool   `msgpack:"respawn_monsters"`
	RespawnItems    bool   `msgpack:"respawn_items"`
	NoMonsters      bool   `msgpack:"no_monsters"`
	Freeze          bool   `msgpack:"freeze"`

	BloodSplatsMax    int32 `msgpack:"blood_splats_max"`
	CorpsesSlide      bool  `msgpack:"corpses_slide"`
	CorpsesSmearBlood bool  `msgpack:"corpses_smear_blood"`
	CorpsesMoreBlood  bool  `msgpack:"corpses_more_blood"`
	CorpsesMirrored   bool  `msgpack:"corpses_mirrored"`
	FloatBob          bool  `msgpack:"float_bob"`
	LiquidBob         bool  `msgpack:"liquid_bob"`
	LiquidClip        bool  `msgpack:"liquid_clip"`
	RocketTrails      bool  `msgpack:"rocket_trails"`
}

// NewHeader captures the simulation options of a level.
func NewHeader(mapName string, opts mobj.Options) Header {
	return Header{
		Version:           Version,
		Map:               mapName,
		Skill:             int8(opts.Skill),
		Seed:              opts.Seed,
		RespawnMonsters:   opts.RespawnMonsters,
		RespawnItems:      opts.RespawnItems,
		NoMonsters:        opts.NoMonsters,
		Freeze:            opts.Freeze,
		BloodSplatsMax:    int32(opts.BloodSplatsMax),
		CorpsesSlide:      opts.CorpsesSlide,
		CorpsesSmearBlood: opts.CorpsesSmearBlood,
		CorpsesMoreBlood:  opts.CorpsesMoreBlood,
		CorpsesMirrored:   opts.CorpsesMirrored,
		FloatBob:          opts.FloatBob,
		LiquidBob:         opts.LiquidBob,
		LiquidClip:        opts.LiquidClip,
		RocketTrails:      opts.RocketTrails,
	}
}

// Apply copies every recorded option onto opts.
func (h Header) Apply(opts mobj.Options) mobj.Options {
	opts.Skill = mobj.Skill(h.Skill)
	opts.Seed = h.Seed
	opts.RespawnMonsters = h.RespawnMonsters
	opts.RespawnItems = h.RespawnItems
	opts.NoMonsters = h.NoMonsters
	opts.Freeze = h.Freeze
	opts.BloodSplatsMax = int(h.BloodSplatsMax)
	opts.CorpsesSlide = h.CorpsesSlide
	opts.CorpsesSmearBlood = h.CorpsesSmearBlood
	opts.CorpsesMoreBlood = h.CorpsesMoreBlood
	opts.CorpsesMirrored = h.CorpsesMirrored
	opts.FloatBob = h.FloatBob
	opts.LiquidBob = h.LiquidBob
	opts.LiquidClip = h.LiquidClip
	opts.RocketTrails = h.RocketTrails
	return opts
}

// Tic is one recorded tic: the command fed to the player and a check value
// taken from the level digest after the tic ran.
type Tic struct {
	_msgpack struct{} `msgpack:",as_array"`

	ForwardMove int8
	SideMove    int8
	AngleTurn   int16
	Buttons     uint8
	Check       uint64
}

// NewTic builds a tic record.
func NewTic(cmd mobj.TicCmd, digest [32]byte) Tic {
	return Tic{
		ForwardMove: cmd.ForwardMove,
		SideMove:    cmd.SideMove,
		AngleTurn:   cmd.AngleTurn,
		Buttons:     cmd.Buttons,
		Check:       CheckValue(digest),
	}
}

// Cmd returns the recorded command.
func (t Tic) Cmd() mobj.TicCmd {
	return mobj.TicCmd{
		ForwardMove: t.ForwardMove,
		SideMove:    t.SideMove,
		AngleTurn:   t.AngleTurn,
		Buttons:     t.Buttons,
	}
}

// CheckValue folds a level digest to the value stored per tic.
func CheckValue(digest [32]byte) uint64 {
	return binary.LittleEndian.Uint64(digest[:8])
}

// Writer appends tics to a demo stream.
type Writer struct {
	bw   *bufio.Writer
	enc  *msgpack.Encoder
	tics int
}

// NewWriter writes the magic and header to w.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)
	if err := enc.EncodeString(Magic); err != nil {
		return nil, fmt.Errorf("writing demo magic: %w", err)
	}
	h.Version = Version
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("writing demo header: %w", err)
	}
	return &Writer{bw: bw, enc: enc}, nil
}

// WriteTic appends one tic.
func (w *Writer) WriteTic(t Tic) error {
	if err := w.enc.Encode(&t); err != nil {
		return fmt.Errorf("writing tic %d: %w", w.tics, err)
	}
	w.tics++
	return nil
}

// Tics returns the number of tics written.
func (w *Writer) Tics() int {
	return w.tics
}

// Flush writes buffered tics to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flushing demo: %w", err)
	}
	return nil
}

// Reader reads tics from a demo stream.
type Reader struct {
	dec    *msgpack.Decoder
	header Header
	tics   int
}

// NewReader reads and validates the magic and header.
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))

	magic, err := dec.DecodeString()
	if err != nil || magic != Magic {
		return nil, fmt.Errorf("%w: missing magic", ErrBadHeader)
	}
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: version %d", ErrBadHeader, h.Version)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Header returns the recorded header.
func (r *Reader) Header() Header {
	return r.header
}

// ReadTic returns the next tic, or io.EOF after the last one.
func (r *Reader) ReadTic() (Tic, error) {
	var t Tic
	if err := r.dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Tic{}, io.EOF
		}
		return Tic{}, fmt.Errorf("reading tic %d: %w", r.tics, err)
	}
	r.tics++
	return t, nil
}

// Tics returns the number of tics read so far.
func (r *Reader) Tics() int {
	return r.tics
}

// Verify compares the digest of the level after a played tic with the
// recorded check value.
func (r *Reader) Verify(t Tic, digest [32]byte) error {
	if t.Check != CheckValue(digest) {
		return fmt.Errorf("%w at tic %d", ErrDesync, r.tics-1)
	}
	return nil
}
