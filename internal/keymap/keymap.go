// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "player", "window"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Player
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "player"},
	{ActionStop, []string{"s"}, "Stop", "player"},
	{ActionSeekBack, []string{"left", "h"}, "Seek -10s", "player"},
	{ActionSeekForward, []string{"right", "l"}, "Seek +10s", "player"},
	{ActionEnterPip, []string{"p"}, "Enter picture-in-picture", "player"},
	{ActionHistory, []string{"H"}, "Toggle session history", "player"},

	// Floating window
	{ActionWindowBack, []string{"1"}, "Window: skip back", "window"},
	{ActionWindowToggle, []string{"2"}, "Window: play/pause", "window"},
	{ActionWindowForward, []string{"3"}, "Window: skip forward", "window"},
	{ActionWindowRestore, []string{"enter"}, "Window: expand", "window"},
	{ActionWindowClose, []string{"x"}, "Window: close", "window"},
	{ActionExitPip, []string{"esc"}, "Leave picture-in-picture", "window"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
