package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trajectory/vmath"
)

// Mapper converts terminal cells to canvas pixels
type Mapper interface {
	CellToCanvas(x, y int) vmath.Vec2
	Resize(cols, rows int)
	Extent() vmath.Vec2
}

// Machine is the input state machine
// Parses tcell events into classified Events, tracking button state to derive down/move/up
type Machine struct {
	mapper    Mapper
	leftDown  bool
	lastCellX int
	lastCellY int
	havePoint bool
}

// NewMachine creates a machine that maps pointer cells through mapper
func NewMachine(mapper Mapper) *Machine {
	return &Machine{mapper: mapper}
}

// Reset clears tracked button state
func (m *Machine) Reset() {
	m.leftDown = false
	m.havePoint = false
}

// Process parses a tcell event
// Returns nil if the event carries nothing the session consumes
func (m *Machine) Process(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		m.mapper.Resize(cols, rows)
		out := []Event{Resize(m.mapper.Extent())}
		// Cell positions shift under a resize, so a held button ends its drag here
		if m.leftDown {
			out = append(out, PointerUp())
		}
		m.Reset()
		return out
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) []Event {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return []Event{Close()}
	case tcell.KeyEscape:
		return []Event{KeyPress(KeyEscape)}
	case tcell.KeyEnter:
		return []Event{KeyPress(KeyEnter)}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []Event{KeyPress(KeyBackspace)}
	case tcell.KeyCtrlS:
		return []Event{KeyPress(KeyToggleMute)}
	case tcell.KeyRune:
		return []Event{Text(ev.Rune())}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	p := m.mapper.CellToCanvas(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	moved := !m.havePoint || x != m.lastCellX || y != m.lastCellY
	m.lastCellX, m.lastCellY, m.havePoint = x, y, true

	switch {
	case pressed && !m.leftDown:
		m.leftDown = true
		return []Event{PointerDown(p)}
	case !pressed && m.leftDown:
		m.leftDown = false
		// Release may land on a new cell; report the move first so drags end where the pointer did
		if moved {
			return []Event{PointerMove(p), PointerUp()}
		}
		return []Event{PointerUp()}
	case moved:
		return []Event{PointerMove(p)}
	}
	return nil
}
