package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pipctl/internal/icons"
	"github.com/llehouerou/pipctl/internal/keymap"
	"github.com/llehouerou/pipctl/internal/pip"
	"github.com/llehouerou/pipctl/internal/player"
	"github.com/llehouerou/pipctl/internal/ui/compose"
	"github.com/llehouerou/pipctl/internal/ui/render"
	"github.com/llehouerou/pipctl/internal/ui/styles"
)

const defaultBarWidth = 60

var (
	playerBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Muted)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.Text)
	dimStyle   = lipgloss.NewStyle().Foreground(styles.Muted)
	errorStyle = lipgloss.NewStyle().Foreground(styles.Error)
)

var windowKeys = map[pip.Opcode]keymap.Action{
	pip.OpBack:          keymap.ActionWindowBack,
	pip.OpResumeOrPause: keymap.ActionWindowToggle,
	pip.OpForward:       keymap.ActionWindowForward,
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.playerBar())
	b.WriteString("\n")

	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	if m.showHistory {
		b.WriteString(m.historyView())
	}
	if m.showHelp {
		b.WriteString(m.helpView())
	}

	view := strings.TrimSuffix(b.String(), "\n")
	if m.deps.Strip == nil || !m.deps.Strip.Shown() {
		return view
	}
	// The floating window sits in the bottom-right corner once the
	// terminal size is known.
	window := m.deps.Strip.View(m.deps.Player.Title(), m.tapKeys())
	if m.width == 0 {
		return view + "\n" + window
	}
	return compose.Corner(view, window, m.width)
}

func (m Model) playerBar() string {
	p := m.deps.Player
	glyph := icons.System(pip.IconPause)
	if p.IsPlaying() {
		glyph = icons.System(pip.IconPlay)
	}

	// Border takes two columns
	inner := defaultBarWidth
	if m.width > 2 {
		inner = m.width - 2
	}
	content := titleStyle.Render(render.Truncate(p.Title(), inner)) + "\n" +
		progressBar(glyph, p.Position(), p.Duration(), inner)
	return playerBarStyle.Width(inner).Render(content)
}

func (m Model) statusLine() string {
	s := m.deps.Status
	var parts []string
	if m.deps.Manager.IsInPip() && !s.EnteredAt.IsZero() {
		parts = append(parts, fmt.Sprintf("%s %s, entered %s",
			icons.Pip(), m.deps.Manager.State(), humanize.Time(s.EnteredAt)))
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	return dimStyle.Render(strings.Join(parts, " | "))
}

func (m Model) tapKeys() map[pip.Opcode]string {
	keys := make(map[pip.Opcode]string, len(windowKeys))
	for op, action := range windowKeys {
		if k := m.keys.KeysFor(action); len(k) > 0 {
			keys[op] = k[0]
		}
	}
	return keys
}

func (m Model) historyView() string {
	if len(m.history) == 0 {
		return dimStyle.Render("No finished sessions") + "\n"
	}
	var b strings.Builder
	for _, s := range m.history {
		fmt.Fprintf(&b, "player %d  stopped at %s  lasted %s  %s\n",
			s.PlayerID,
			formatDuration(player.Seconds(s.PlayTime)),
			formatDuration(s.Duration()),
			humanize.Time(s.EndedAt))
	}
	return b.String()
}

func (m Model) helpView() string {
	var b strings.Builder
	for _, context := range m.contexts() {
		for _, kb := range keymap.ByContext(context) {
			fmt.Fprintf(&b, "%-12s %s\n", strings.Join(kb.Keys, "/"), kb.Description)
		}
	}
	return dimStyle.Render(b.String())
}
