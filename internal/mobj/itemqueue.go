package mobj

import "github.com/udisondev/retrogo/internal/mapdata"

// ItemEntry is a picked up item waiting to come back.
type ItemEntry struct {
	Thing mapdata.Thing
	Tic   int32
}

// ItemQueue is a fixed size FIFO of removed items. When full, pushing
// drops the oldest entry.
type ItemQueue struct {
	buf  [ItemQueueSize]ItemEntry
	head int // oldest entry
	n    int
}

// Push appends an entry, evicting the oldest one if the queue is full.
func (q *ItemQueue) Push(th mapdata.Thing, tic int32) {
	q.buf[(q.head+q.n)%ItemQueueSize] = ItemEntry{Thing: th, Tic: tic}
	if q.n == ItemQueueSize {
		q.head = (q.head + 1) % ItemQueueSize
		return
	}
	q.n++
}

// Peek returns the oldest entry.
func (q *ItemQueue) Peek() (ItemEntry, bool) {
	if q.n == 0 {
		return ItemEntry{}, false
	}
	return q.buf[q.head], true
}

// Pop drops the oldest entry.
func (q *ItemQueue) Pop() {
	if q.n == 0 {
		return
	}
	q.head = (q.head + 1) % ItemQueueSize
	q.n--
}

// Len returns the number of queued entries.
func (q *ItemQueue) Len() int {
	return q.n
}

// Entries returns a copy of the queue, oldest first.
func (q *ItemQueue) Entries() []ItemEntry {
	out := make([]ItemEntry, q.n)
	for i := range out {
		out[i] = q.buf[(q.head+i)%ItemQueueSize]
	}
	return out
}

// Reset empties the queue.
func (q *ItemQueue) Reset() {
	q.head, q.n = 0, 0
}
