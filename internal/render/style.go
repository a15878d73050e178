package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler decorates the payload of the cell holding today's date.
type Styler interface {
	Highlight(payload string) string
}

// Styled highlights black on bright white using ANSI SGR sequences.
type Styled struct {
	style lipgloss.Style
}

// NewStyled pins the renderer to the 16-colour ANSI profile so the
// escape sequence does not depend on the terminal that runs the program.
func NewStyled() Styled {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return Styled{
		style: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")),
	}
}

func (s Styled) Highlight(payload string) string { return s.style.Render(payload) }

// Plain leaves the payload untouched.
type Plain struct{}

func (Plain) Highlight(payload string) string { return payload }
