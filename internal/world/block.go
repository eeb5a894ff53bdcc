package world

import "github.com/udisondev/retrogo/internal/mobj"

// Block is one cell of the blockmap: the lines crossing it and the mobjs
// whose centre lies inside it. Mobjs are kept in link order so collision
// callbacks fire in the same order on every run.
type Block struct {
	lines []int32 // indices into the level's lines
	mobjs []*mobj.Mobj
}

// Mobjs returns the linked mobjs. The slice is owned by the block.
func (b *Block) Mobjs() []*mobj.Mobj {
	return b.mobjs
}

// LineCount returns the number of lines crossing the block.
func (b *Block) LineCount() int {
	return len(b.lines)
}

func (b *Block) add(m *mobj.Mobj) {
	b.mobjs = append(b.mobjs, m)
}

func (b *Block) remove(m *mobj.Mobj) {
	for i, o := range b.mobjs {
		if o == m {
			copy(b.mobjs[i:], b.mobjs[i+1:])
			b.mobjs[len(b.mobjs)-1] = nil
			b.mobjs = b.mobjs[:len(b.mobjs)-1]
			return
		}
	}
}
