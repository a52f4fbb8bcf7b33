package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// FilteredEntry is an Entry that drops typed runes its filter rejects.
// Pasted text bypasses the filter; callers validate the final value.
type FilteredEntry struct {
	widget.Entry
	accept func(rune) bool
}

func newFilteredEntry(accept func(rune) bool) *FilteredEntry {
	entry := &FilteredEntry{accept: accept}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewNumericalEntry accepts digits only. Used for the share port.
func NewNumericalEntry() *FilteredEntry {
	return newFilteredEntry(isDigit)
}

// NewDateEntry accepts the characters of a YYYY-MM-DD date.
func NewDateEntry() *FilteredEntry {
	return newFilteredEntry(func(r rune) bool {
		return isDigit(r) || r == '-'
	})
}

// TypedRune intercepts text input events.
func (e *FilteredEntry) TypedRune(r rune) {
	if e.accept(r) {
		e.Entry.TypedRune(r)
	}
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *FilteredEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
