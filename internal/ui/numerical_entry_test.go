package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-donor/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	// Initialize the custom widget using Fyne's test infrastructure.
	entry := ui.NewNumericalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Digit_Five", '5', true},
		{"Letter_a", 'a', false},
		{"Letter_Z", 'Z', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Space", ' ', false},
		{"Bengali_Digit", '৫', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")

			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericalEntry()
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())
}

// Direct setting bypasses TypedRune; the settings window relies on a Validator instead.
func TestNumericalEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry()

	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)

	_, err := entry.Int()
	assert.Error(t, err)
}

func TestNumericalEntry_IntRoundTrip(t *testing.T) {
	entry := ui.NewNumericalEntry()

	entry.SetInt(120)
	assert.Equal(t, "120", entry.Text)

	v, err := entry.Int()
	require.NoError(t, err)
	assert.Equal(t, 120, v)
}
