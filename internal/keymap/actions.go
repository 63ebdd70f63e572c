// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Player actions
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionEnterPip    Action = "enter_pip"
	ActionHistory     Action = "history"

	// Floating window actions, as if the user touched the window itself
	ActionWindowBack    Action = "window_back"
	ActionWindowToggle  Action = "window_toggle"
	ActionWindowForward Action = "window_forward"
	ActionWindowRestore Action = "window_restore" // expand back into the app
	ActionWindowClose   Action = "window_close"   // dismiss the window
	ActionExitPip       Action = "exit_pip"       // ask the window to close
)
