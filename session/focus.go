package session

// Focus is the single owner of pointer and keyboard attention
// Dragging and text editing are variants of one value so they cannot overlap
type Focus uint8

const (
	FocusNone Focus = iota
	FocusDragLauncher
	FocusDragTarget
	FocusDragAngle
	FocusEditSpeed
	FocusEditGravity
)

func (f Focus) String() string {
	switch f {
	case FocusNone:
		return "None"
	case FocusDragLauncher:
		return "DragLauncher"
	case FocusDragTarget:
		return "DragTarget"
	case FocusDragAngle:
		return "DragAngle"
	case FocusEditSpeed:
		return "EditSpeed"
	case FocusEditGravity:
		return "EditGravity"
	}
	return "Unknown"
}

// Dragging reports whether the pointer is manipulating a scene object
func (f Focus) Dragging() bool {
	return f == FocusDragLauncher || f == FocusDragTarget || f == FocusDragAngle
}

// Editing reports whether a text field has keyboard focus
func (f Focus) Editing() bool {
	return f == FocusEditSpeed || f == FocusEditGravity
}

// Field names which text field is active
type Field uint8

const (
	FieldNone Field = iota
	FieldSpeed
	FieldGravity
)

// Field returns the active text field, FieldNone when not editing
func (f Focus) Field() Field {
	switch f {
	case FocusEditSpeed:
		return FieldSpeed
	case FocusEditGravity:
		return FieldGravity
	}
	return FieldNone
}
