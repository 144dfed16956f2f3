package ui

import (
	"strconv"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits from the keyboard.
// Pasted text is not filtered; attach a Validator for that.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops everything but 0-9.
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// SetInt replaces the text with the decimal form of v.
func (e *NumericalEntry) SetInt(v int) {
	e.SetText(strconv.Itoa(v))
}

// Int parses the current text.
func (e *NumericalEntry) Int() (int, error) {
	return strconv.Atoi(e.Text)
}
