package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateChainsStayInTable(t *testing.T) {
	for i, st := range States {
		assert.True(t, st.Next >= 0 && st.Next < NumStates, "state %d next out of range", i)
		assert.True(t, st.Sprite >= 0 && st.Sprite < NumSprites, "state %d sprite out of range", i)
		assert.True(t, st.Action >= 0 && st.Action < NumActions, "state %d action out of range", i)
	}
}

func TestEveryTypeHasSpawnState(t *testing.T) {
	for i := range MobjInfos {
		mi := &MobjInfos[i]
		assert.NotEqual(t, SNull, mi.SpawnState, "type %s", mi.Name)
		assert.Positive(t, mi.Radius, "type %s", mi.Name)
		assert.Positive(t, mi.Height, "type %s", mi.Name)
	}
}

func TestDoomedNumsAreUnique(t *testing.T) {
	seen := make(map[int32]MobjType)
	for i := range MobjInfos {
		num := MobjInfos[i].DoomedNum
		if num == -1 {
			continue
		}
		prev, dup := seen[num]
		assert.False(t, dup, "doomednum %d used by %s and %s", num, prev, MobjType(i))
		seen[num] = MobjType(i)
	}
}

func TestSpriteTable(t *testing.T) {
	var st SpriteTable
	assert.Positive(t, st.Width(SprPlay))
	assert.Zero(t, st.Width(NumSprites))
	assert.Equal(t, "TROO", SprTroo.String())
}
