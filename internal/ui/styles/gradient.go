package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text bold with a horizontal color gradient from one hex
// color to another. Colors that are not "#rrggbb" render as plain bold text.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	c1, ok1 := hexColor(from)
	c2, ok2 := hexColor(to)
	if len(clusters) < 2 || !ok1 || !ok2 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the blend perceptually even
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

func hexColor(c lipgloss.Color) (colorful.Color, bool) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}

// Blend returns n colors evenly spaced between from and to.
func Blend(n int, from, to lipgloss.Color) []color.Color {
	c1, ok1 := hexColor(from)
	c2, ok2 := hexColor(to)
	if n <= 0 || !ok1 || !ok2 {
		return nil
	}
	if n == 1 {
		return []color.Color{c1}
	}
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		out[i] = c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped()
	}
	return out
}
