// Package input turns terminal events into viewport scrolling and outbound
// server commands.
package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"fortress-client/messages"
	"fortress-client/models"
	"fortress-client/state"
	"fortress-client/view"
)

// Sender posts an outbound command to the server. Commands are
// fire-and-forget: nothing local changes until the server answers.
type Sender interface {
	Send(cmd any) error
}

// Controller is the command emitter. It owns the designation gesture state
// and the cursor; it reads the mirror only to validate bounds.
type Controller struct {
	vp     *view.Viewport
	mirror *state.Mirror
	sender Sender

	scrollStep  int
	designation string

	cursorCol int
	cursorRow int

	gestureActive bool
	gestureStart  models.Position
	gestureEnd    models.Position
}

// NewController wires the emitter to its collaborators. scrollStep is in
// tiles per keypress; designation tags the area commands (e.g. "dig").
func NewController(vp *view.Viewport, mirror *state.Mirror, sender Sender, scrollStep int, designation string) *Controller {
	if scrollStep < 1 {
		scrollStep = 1
	}
	return &Controller{
		vp:          vp,
		mirror:      mirror,
		sender:      sender,
		scrollStep:  scrollStep,
		designation: designation,
	}
}

// HandleEvent processes one terminal event. It returns true when the user
// asked to quit.
func (c *Controller) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
	return false
}

func (c *Controller) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		// Esc cancels a pending gesture; with none pending it quits.
		if c.gestureActive {
			c.CancelGesture()
			return false
		}
		return true
	case tcell.KeyUp:
		c.vp.Scroll(0, -c.scrollStep)
	case tcell.KeyDown:
		c.vp.Scroll(0, c.scrollStep)
	case tcell.KeyLeft:
		c.vp.Scroll(-c.scrollStep, 0)
	case tcell.KeyRight:
		c.vp.Scroll(c.scrollStep, 0)
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return false
}

func (c *Controller) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 'h':
		c.vp.Scroll(-c.scrollStep, 0)
	case 'l':
		c.vp.Scroll(c.scrollStep, 0)
	case 'k':
		c.vp.Scroll(0, -c.scrollStep)
	case 'j':
		c.vp.Scroll(0, c.scrollStep)
	case '<':
		c.requestZChange(1)
	case '>':
		c.requestZChange(-1)
	case ' ':
		c.send(messages.NewPauseCommand())
	}
	return false
}

// requestZChange asks for the level above (+1) or below (-1) the current
// one. Out-of-range requests are dropped locally, never sent.
func (c *Controller) requestZChange(dz int) {
	meta := c.mirror.Meta()
	z := meta.CurrentZ + dz
	if z < 0 || z >= meta.Depth {
		return
	}
	c.send(messages.NewRequestZLevelCommand(z))
}

func (c *Controller) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	c.cursorCol, c.cursorRow = col, row

	x, y, onMap := c.vp.ScreenToWorld(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !c.gestureActive:
		if !onMap || !c.mirror.HasGrid() {
			return
		}
		z := c.mirror.Meta().CurrentZ
		c.gestureActive = true
		c.gestureStart = models.Position{X: x, Y: y, Z: z}
		c.gestureEnd = c.gestureStart
	case pressed && c.gestureActive:
		if onMap {
			c.gestureEnd = models.Position{X: x, Y: y, Z: c.gestureStart.Z}
		}
	case !pressed && c.gestureActive:
		c.finishGesture()
	}
}

// finishGesture emits a single designate command for the completed drag.
func (c *Controller) finishGesture() {
	start, end := c.gestureStart, c.gestureEnd
	c.gestureActive = false
	c.send(messages.NewDesignateCommand(c.designation, start, end))
}

// CancelGesture discards the pending start point without sending anything.
func (c *Controller) CancelGesture() {
	c.gestureActive = false
}

// Gesture returns the in-progress selection corners for render feedback.
func (c *Controller) Gesture() (start, end models.Position, active bool) {
	return c.gestureStart, c.gestureEnd, c.gestureActive
}

// Cursor returns the last known mouse cell.
func (c *Controller) Cursor() (col, row int) {
	return c.cursorCol, c.cursorRow
}

func (c *Controller) send(cmd any) {
	if err := c.sender.Send(cmd); err != nil {
		log.Printf("send command: %v", err)
	}
}
