// Package compose places one rendered block on top of another.
package compose

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Corner draws box over the bottom-right corner of base, which is treated
// as width columns wide. Both may contain ANSI styling. When base is shorter
// than box, blank lines are added below it.
func Corner(base, box string, width int) string {
	if box == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	if boxWidth >= width {
		return base + "\n" + box
	}

	for len(baseLines) < len(boxLines) {
		baseLines = append(baseLines, "")
	}

	startRow := len(baseLines) - len(boxLines)
	startCol := width - boxWidth
	for i, boxLine := range boxLines {
		line := baseLines[startRow+i]
		if w := ansi.StringWidth(line); w < startCol {
			line += strings.Repeat(" ", startCol-w)
		}
		pad := strings.Repeat(" ", boxWidth-ansi.StringWidth(boxLine))
		baseLines[startRow+i] = ansi.Truncate(line, startCol, "") + boxLine + pad
	}
	return strings.Join(baseLines, "\n")
}
