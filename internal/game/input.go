package game

import (
	"math"

	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/mobj"
)

const (
	forwardMove = 25
	sideMove    = 24
	turnSpeed   = 640
	mouseTurn   = 64

	// holdTics keeps a key down after its last press; terminals report
	// repeats but no releases.
	holdTics = 8
)

type binding int

const (
	bindForward binding = iota
	bindBack
	bindStrafeLeft
	bindStrafeRight
	bindTurnLeft
	bindTurnRight
	bindAttack
	bindUse
	numBindings
)

var keyBindings = map[int]binding{
	'w':                bindForward,
	loop.KeyArrowUp:    bindForward,
	's':                bindBack,
	loop.KeyArrowDown:  bindBack,
	'a':                bindStrafeLeft,
	'd':                bindStrafeRight,
	'q':                bindTurnLeft,
	loop.KeyArrowLeft:  bindTurnLeft,
	'e':                bindTurnRight,
	loop.KeyArrowRight: bindTurnRight,
	' ':                bindAttack,
	'f':                bindAttack,
	'u':                bindUse,
	loop.KeyEnter:      bindUse,
}

// input turns key and mouse events into per-tic commands.
type input struct {
	heldUntil [numBindings]int
	mouseDX   int
	buttons   int
}

func newInput() input {
	var in input
	in.reset()
	return in
}

func (in *input) reset() {
	for i := range in.heldUntil {
		in.heldUntil[i] = -1
	}
	in.mouseDX = 0
	in.buttons = 0
}

func (in *input) respond(ev loop.Event, tic int) bool {
	switch ev.Type {
	case loop.KeyDown:
		b, ok := keyBindings[ev.Key]
		if !ok {
			return false
		}
		in.heldUntil[b] = tic + holdTics
		return true
	case loop.KeyUp:
		b, ok := keyBindings[ev.Key]
		if !ok {
			return false
		}
		in.heldUntil[b] = -1
		return true
	case loop.Mouse:
		in.mouseDX += ev.DX
		in.buttons = ev.Buttons
		return true
	}
	return false
}

func (in *input) down(b binding, tic int) bool {
	return tic <= in.heldUntil[b]
}

// build returns the command for tic and consumes accumulated mouse motion.
func (in *input) build(tic int) mobj.TicCmd {
	var forward, side, turn int

	if in.down(bindForward, tic) {
		forward += forwardMove
	}
	if in.down(bindBack, tic) {
		forward -= forwardMove
	}
	if in.down(bindStrafeRight, tic) {
		side += sideMove
	}
	if in.down(bindStrafeLeft, tic) {
		side -= sideMove
	}
	if in.down(bindTurnLeft, tic) {
		turn += turnSpeed
	}
	if in.down(bindTurnRight, tic) {
		turn -= turnSpeed
	}
	turn -= in.mouseDX * mouseTurn
	in.mouseDX = 0

	cmd := mobj.TicCmd{
		ForwardMove: int8(forward),
		SideMove:    int8(side),
		AngleTurn:   int16(max(min(turn, math.MaxInt16), math.MinInt16)),
	}
	if in.down(bindAttack, tic) || in.buttons&1 != 0 {
		cmd.Buttons |= BtAttack
	}
	if in.down(bindUse, tic) {
		cmd.Buttons |= BtUse
	}
	return cmd
}
