package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pipctl/internal/icons"
	"github.com/llehouerou/pipctl/internal/pip"
	"github.com/llehouerou/pipctl/internal/ui/render"
	"github.com/llehouerou/pipctl/internal/ui/styles"
)

const stripTitleWidth = 24

var (
	stripStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Primary).
			Padding(0, 1)
	controlStyle = lipgloss.NewStyle().Foreground(styles.Text)
	keyHintStyle = lipgloss.NewStyle().Foreground(styles.Muted)
)

// Strip draws the floating window in the terminal. It implements
// overlay.Presenter.
type Strip struct {
	params pip.Params
	shown  bool
}

// Present implements overlay.Presenter.
func (s *Strip) Present(params pip.Params) error {
	s.params = params
	s.shown = true
	return nil
}

// Dismiss implements overlay.Presenter.
func (s *Strip) Dismiss() {
	s.params = pip.Params{}
	s.shown = false
}

// Shown reports whether the window is drawn.
func (s *Strip) Shown() bool { return s.shown }

// Controls returns the glyphs of the presented controls in order.
func (s *Strip) Controls() []string {
	out := make([]string, 0, len(s.params.Actions))
	for _, a := range s.params.Actions {
		out = append(out, icons.Control(a.Icon))
	}
	return out
}

// View renders the window. keys maps opcodes to the key that taps them.
func (s *Strip) View(title string, keys map[pip.Opcode]string) string {
	if !s.shown {
		return ""
	}
	header := styles.Gradient(fmt.Sprintf("%s %s  %d:%d",
		icons.Pip(), render.Truncate(title, stripTitleWidth),
		s.params.AspectWidth, s.params.AspectHeight), styles.Primary, styles.Secondary)

	parts := make([]string, 0, len(s.params.Actions))
	for _, a := range s.params.Actions {
		part := controlStyle.Render(icons.Control(a.Icon))
		if k, ok := keys[a.Op]; ok {
			part += keyHintStyle.Render(" [" + k + "]")
		}
		parts = append(parts, part)
	}
	body := strings.Join(parts, "   ")
	if body == "" {
		body = keyHintStyle.Render("no controls")
	}
	return stripStyle.Render(header + "\n" + body)
}
