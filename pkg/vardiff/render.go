package vardiff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer turns token streams into terminal strings. The zero value is not
// usable; construct with NewRenderer.
type Renderer struct {
	plain   bool
	same    lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	note    lipgloss.Style
}

// NewRenderer returns a styled renderer: removed words struck through in
// red, added words underlined in green. When plain is true, styling is
// replaced with "-word" / "+word" markers suitable for pipes and logs.
func NewRenderer(plain bool) *Renderer {
	return &Renderer{
		plain:   plain,
		same:    lipgloss.NewStyle(),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Underline(true),
		removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true),
		note:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render joins the tokens with single spaces, applying the per-kind style.
func (r *Renderer) Render(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, r.word(tok))
	}
	return strings.Join(parts, " ")
}

// MoveNote formats a "(was #N)" annotation for a moved bullet.
func (r *Renderer) MoveNote(rank int) string {
	note := fmt.Sprintf("(was #%d)", rank)
	if r.plain {
		return note
	}
	return r.note.Render(note)
}

func (r *Renderer) word(tok Token) string {
	if r.plain {
		switch tok.Kind {
		case Added:
			return "+" + tok.Text
		case Removed:
			return "-" + tok.Text
		default:
			return tok.Text
		}
	}
	switch tok.Kind {
	case Added:
		return r.added.Render(tok.Text)
	case Removed:
		return r.removed.Render(tok.Text)
	default:
		return r.same.Render(tok.Text)
	}
}
