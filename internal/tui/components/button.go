package components

import (
	"ecoaliados/internal/tui/styles"
)

// Button is a simple selectable button
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button
func (b Button) View() string {
	if b.Active {
		return styles.ButtonActiveStyle.Render(b.Label)
	}
	return styles.ButtonStyle.Render(b.Label)
}
