package demo

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/udisondev/retrogo/internal/mobj"
)

func TestRecordAndPlayBack(t *testing.T) {
	opts := mobj.DefaultOptions()
	opts.Skill = mobj.SkillHard
	opts.Seed = 1234
	opts.RespawnItems = true

	cmds := []mobj.TicCmd{
		{ForwardMove: 50},
		{ForwardMove: 50, AngleTurn: -640},
		{SideMove: -40, Buttons: 1},
		{},
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, NewHeader("E1M1", opts))
	require.NoError(t, err)
	for i, cmd := range cmds {
		require.NoError(t, w.WriteTic(NewTic(cmd, digestOf(i))))
	}
	require.NoError(t, w.Flush())
	assert.Equal(t, len(cmds), w.Tics())

	r, err := NewReader(&buf)
	require.NoError(t, err)

	h := r.Header()
	assert.Equal(t, "E1M1", h.Map)
	played := h.Apply(mobj.DefaultOptions())
	assert.Equal(t, mobj.SkillHard, played.Skill)
	assert.Equal(t, uint64(1234), played.Seed)
	assert.True(t, played.RespawnItems)

	for i, want := range cmds {
		tic, err := r.ReadTic()
		require.NoError(t, err)
		assert.Equal(t, want, tic.Cmd(), "tic %d", i)
		assert.NoError(t, r.Verify(tic, digestOf(i)))
	}

	_, err = r.ReadTic()
	assert.Equal(t, io.EOF, err)
}

func TestHeaderRecordsEveryOption(t *testing.T) {
	recorded := mobj.DefaultOptions()
	recorded.Seed = 7
	recorded.Freeze = true
	recorded.BloodSplatsMax = 16
	recorded.CorpsesSlide = false
	recorded.FloatBob = false
	recorded.LiquidClip = false
	recorded.RocketTrails = false

	var buf bytes.Buffer
	w, err := NewWriter(&buf, NewHeader("E1M1", recorded))
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	r, err := NewReader(&buf)
	require.NoError(t, err)

	local := mobj.DefaultOptions()
	local.LiquidBob = false
	local.CorpsesMirrored = false
	assert.Equal(t, recorded, r.Header().Apply(local))
}

func TestVerifyDetectsDesync(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, NewHeader("E1M1", mobj.DefaultOptions()))
	require.NoError(t, err)
	require.NoError(t, w.WriteTic(NewTic(mobj.TicCmd{}, digestOf(0))))
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	tic, err := r.ReadTic()
	require.NoError(t, err)

	err = r.Verify(tic, digestOf(1))
	assert.True(t, errors.Is(err, ErrDesync), "Verify() error = %v", err)
}

func TestNewReaderRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not msgpack", data: []byte("DOOM demo lump")},
		{name: "wrong magic", data: encode(t, "LMPDEMO")},
		{name: "missing header", data: encode(t, Magic)},
		{name: "future version", data: encode(t, Magic, Header{Version: Version + 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(bytes.NewReader(tt.data))
			assert.True(t, errors.Is(err, ErrBadHeader), "NewReader() error = %v", err)
		})
	}
}

func digestOf(i int) [32]byte {
	return sha256.Sum256([]byte{byte(i)})
}

func encode(t *testing.T, values ...any) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, v := range values {
		require.NoError(t, enc.Encode(v))
	}
	return buf.Bytes()
}
