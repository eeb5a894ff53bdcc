package loop

// EventType classifies input events.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	Mouse
	Quit
)

func (t EventType) String() string {
	switch t {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Mouse:
		return "mouse"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Key codes for keys without a printable rune.
const (
	KeyEnter  = 13
	KeyEscape = 27
)

const (
	KeyArrowUp = 0x100 + iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPause
)

// Event is one input event. Key holds a rune or one of the Key constants;
// mouse events carry relative motion and the button mask.
type Event struct {
	Type    EventType
	Key     int
	Buttons int
	DX, DY  int
}

// QueueSize is the capacity of the event ring.
const QueueSize = 64

// Queue is a fixed ring of pending events. When full, posting drops the
// oldest event.
type Queue struct {
	events [QueueSize]Event
	head   int
	tail   int
	count  int
}

// Post appends ev. It reports false when an older event had to be dropped.
func (q *Queue) Post(ev Event) bool {
	dropped := false
	if q.count == QueueSize {
		q.tail = (q.tail + 1) % QueueSize
		q.count--
		dropped = true
	}
	q.events[q.head] = ev
	q.head = (q.head + 1) % QueueSize
	q.count++
	return !dropped
}

// Pop removes the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if q.count == 0 {
		return Event{}, false
	}
	ev := q.events[q.tail]
	q.tail = (q.tail + 1) % QueueSize
	q.count--
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return q.count
}

// Responder consumes events. Respond returns true when the event was
// eaten and must not reach later responders.
type Responder interface {
	Respond(ev Event) bool
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ev Event) bool

func (f ResponderFunc) Respond(ev Event) bool {
	return f(ev)
}
