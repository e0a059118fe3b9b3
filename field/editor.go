// Package field implements the numeric text buffers edited in the configuration panel
package field

import (
	"strconv"
	"strings"
)

// Control runes delivered through OnCharacter
const (
	Commit     = '\r'
	DeleteLast = '\b'
)

// Editor is a decimal text buffer with a fallback value
// Focus is owned by the session; the editor only holds text
type Editor struct {
	buf         []rune
	defaultText string
	defaultVal  float64
}

// NewEditor creates an editor holding defaultText; defaultVal is returned when the buffer does not parse
func NewEditor(defaultText string, defaultVal float64) *Editor {
	e := &Editor{
		defaultText: defaultText,
		defaultVal:  defaultVal,
	}
	e.Reset()
	return e
}

// OnCharacter applies one typed rune and returns true when ch commits the field
// Digits append, '.' appends only once, DeleteLast pops, anything else is ignored
func (e *Editor) OnCharacter(ch rune) bool {
	switch {
	case ch == Commit:
		return true
	case ch == DeleteLast:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case ch >= '0' && ch <= '9':
		e.buf = append(e.buf, ch)
	case ch == '.':
		if !e.hasDecimalPoint() {
			e.buf = append(e.buf, ch)
		}
	}
	return false
}

func (e *Editor) hasDecimalPoint() bool {
	for _, r := range e.buf {
		if r == '.' {
			return true
		}
	}
	return false
}

// Value parses the buffer; on failure it returns the default with ok=false
func (e *Editor) Value() (v float64, ok bool) {
	s := strings.TrimSpace(string(e.buf))
	if s == "" {
		return e.defaultVal, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ErrRange on overflow also falls back
		return e.defaultVal, false
	}
	return v, true
}

// ParseOrDefault returns the parsed buffer or the default, never failing the caller
func (e *Editor) ParseOrDefault() float64 {
	v, _ := e.Value()
	return v
}

// Text returns the current buffer
func (e *Editor) Text() string {
	return string(e.buf)
}

// Default returns the text the editor resets to
func (e *Editor) Default() string {
	return e.defaultText
}

// Reset restores the default text
func (e *Editor) Reset() {
	e.buf = append(e.buf[:0], []rune(e.defaultText)...)
}
