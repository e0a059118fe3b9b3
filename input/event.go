package input

import "github.com/lixenwraith/trajectory/vmath"

// Kind discriminates classified input events
type Kind uint8

const (
	KindNone Kind = iota

	// Pointer events carry Point in canvas pixels
	KindPointerDown
	KindPointerMove
	KindPointerUp

	KindKey    // Key set
	KindText   // Rune set, printable character
	KindResize // Extent set, visible canvas size in pixels
	KindClose  // Window/terminal close request
)

func (k Kind) String() string {
	switch k {
	case KindPointerDown:
		return "PointerDown"
	case KindPointerMove:
		return "PointerMove"
	case KindPointerUp:
		return "PointerUp"
	case KindKey:
		return "Key"
	case KindText:
		return "Text"
	case KindResize:
		return "Resize"
	case KindClose:
		return "Close"
	}
	return "None"
}

// Key identifies non-text keys the session reacts to
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyToggleMute // Ctrl+S, handled by the host
)

// Event is one classified input event, delivered to the session in arrival order
type Event struct {
	Kind   Kind
	Point  vmath.Vec2
	Key    Key
	Rune   rune
	Extent vmath.Vec2
}

// PointerDown builds a pointer-down event at p
func PointerDown(p vmath.Vec2) Event { return Event{Kind: KindPointerDown, Point: p} }

// PointerMove builds a pointer-move event at p
func PointerMove(p vmath.Vec2) Event { return Event{Kind: KindPointerMove, Point: p} }

// PointerUp builds a pointer-up event
func PointerUp() Event { return Event{Kind: KindPointerUp} }

// KeyPress builds a key event
func KeyPress(k Key) Event { return Event{Kind: KindKey, Key: k} }

// Text builds a text-character event
func Text(r rune) Event { return Event{Kind: KindText, Rune: r} }

// Resize builds a resize event with the visible extent in pixels
func Resize(extent vmath.Vec2) Event { return Event{Kind: KindResize, Extent: extent} }

// Close builds a close request
func Close() Event { return Event{Kind: KindClose} }
