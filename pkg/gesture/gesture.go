// Package gesture interprets modifier-held pointer drags over the grid
// viewport as either 2-D panning or, past a vertical threshold, a discrete
// month switch.
package gesture

// DefaultThreshold is the vertical drag distance that converts a pan into
// a month change.
const DefaultThreshold = 200

// State is the controller's position in its input state machine.
type State int

const (
	// Idle: modifier not held. Ordinary clicks are honored.
	Idle State = iota
	// PanReady: modifier held, no active drag.
	PanReady
	// Panning: modifier held, pointer down, tracking movement.
	Panning
)

func (s State) String() string {
	switch s {
	case PanReady:
		return "pan-ready"
	case Panning:
		return "panning"
	default:
		return "idle"
	}
}

// Action tags the outcome of a pointer move.
type Action int

const (
	// ActionNone: the move had no effect (not panning).
	ActionNone Action = iota
	// ActionScroll carries new viewport scroll offsets.
	ActionScroll
	// ActionMonthChange carries a month navigation delta.
	ActionMonthChange
)

// Event is the controller's output for a single pointer move.
type Event struct {
	Action     Action
	ScrollLeft int
	ScrollTop  int
	Delta      int
}

// Controller is the pan/month-switch state machine. It is purely
// event-driven: no timers, no auto-cancel. State persists until an
// explicit modifier release or pointer up.
type Controller struct {
	threshold int
	state     State

	originX    int
	originY    int
	originLeft int
	originTop  int
}

// New returns a Controller with the given month-switch threshold;
// values <= 0 fall back to DefaultThreshold.
func New(threshold int) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Controller{threshold: threshold}
}

// State reports the current machine state.
func (c *Controller) State() State {
	return c.state
}

// ClicksEnabled reports whether ordinary click interactions should be
// honored. A held modifier gives the drag gesture priority over clicks.
func (c *Controller) ClicksEnabled() bool {
	return c.state == Idle
}

// ModifierDown arms panning.
func (c *Controller) ModifierDown() {
	if c.state == Idle {
		c.state = PanReady
	}
}

// ModifierUp forces Idle from any state, cancelling an in-progress drag.
func (c *Controller) ModifierUp() {
	c.state = Idle
}

// PointerDown begins a drag when armed, capturing the pointer position and
// the viewport's scroll offsets as the drag origin. Returns true when a
// drag actually started.
func (c *Controller) PointerDown(x, y, scrollLeft, scrollTop int) bool {
	if c.state != PanReady {
		return false
	}
	c.state = Panning
	c.originX, c.originY = x, y
	c.originLeft, c.originTop = scrollLeft, scrollTop
	return true
}

// PointerMove processes pointer motion during a drag.
//
// Past the vertical threshold it emits exactly one month change (downward
// drag navigates to the previous month) and cancels the drag without also
// scrolling on the same event. Below the threshold it emits scroll offsets
// that make the content follow the drag direction.
func (c *Controller) PointerMove(x, y int) Event {
	if c.state != Panning {
		return Event{Action: ActionNone}
	}

	dx := x - c.originX
	dy := y - c.originY

	if abs(dy) > c.threshold {
		c.state = PanReady
		delta := 1
		if dy > 0 {
			delta = -1
		}
		return Event{Action: ActionMonthChange, Delta: delta}
	}

	return Event{
		Action:     ActionScroll,
		ScrollLeft: c.originLeft - dx,
		ScrollTop:  c.originTop - dy,
	}
}

// PointerUp ends the drag; the modifier is still considered held.
func (c *Controller) PointerUp() {
	if c.state == Panning {
		c.state = PanReady
	}
}

// PointerLeave is treated like a pointer release.
func (c *Controller) PointerLeave() {
	c.PointerUp()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
