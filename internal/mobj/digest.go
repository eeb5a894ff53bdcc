package mobj

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Digest hashes the gameplay-relevant state of the level: the tic, the
// gameplay random stream and every mobj in thinker order. Two runs fed the
// same input produce the same digest every tic. Cosmetic state is excluded.
func (l *Level) Digest() [32]byte {
	buf := make([]byte, 0, 64+l.thinkers.Count()*64)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(l.Time))
	buf = l.Rand.AppendState(buf)

	l.Each(func(m *Mobj) bool {
		for _, v := range [...]int32{
			int32(m.Type), int32(m.X), int32(m.Y), int32(m.Z),
			int32(m.MomX), int32(m.MomY), int32(m.MomZ),
			int32(m.Angle), int32(m.State), m.Tics, m.Health, int32(m.Flags),
		} {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		}
		return true
	})
	return blake2b.Sum256(buf)
}
