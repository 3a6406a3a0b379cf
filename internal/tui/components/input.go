package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ecoaliados/internal/tui/styles"
)

// Input wraps a text input with a label
type Input struct {
	Label string
	Model textinput.Model
}

// NewInput creates a labeled text input
func NewInput(label, placeholder string, charLimit int) Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = 32
	ti.PromptStyle = styles.InputPromptStyle
	return Input{
		Label: label,
		Model: ti,
	}
}

// Focus gives keyboard focus to the input
func (i *Input) Focus() tea.Cmd {
	return i.Model.Focus()
}

// Blur removes keyboard focus from the input
func (i *Input) Blur() {
	i.Model.Blur()
}

// Focused reports whether the input has focus
func (i Input) Focused() bool {
	return i.Model.Focused()
}

// Update handles messages for the input
func (i Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	var cmd tea.Cmd
	i.Model, cmd = i.Model.Update(msg)
	return i, cmd
}

// Value returns the current input value
func (i Input) Value() string {
	return i.Model.Value()
}

// SetValue sets the input value
func (i *Input) SetValue(v string) {
	i.Model.SetValue(v)
}

// Reset clears the input value
func (i *Input) Reset() {
	i.Model.Reset()
}

// View renders the labeled input
func (i Input) View() string {
	label := styles.InputStyle.Render(i.Label)
	if i.Model.Focused() {
		label = styles.InputFocusedStyle.Render(i.Label)
	}
	return label + "\n" + i.Model.View()
}
