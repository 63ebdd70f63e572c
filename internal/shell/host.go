// Package shell is the terminal front end: it shows the player, draws the
// floating window controls and reports lifecycle changes to the user.
package shell

import "github.com/llehouerou/pipctl/internal/pip"

// Terminal is the application window. It is destroyed when the program quits.
type Terminal struct {
	destroyed bool
}

// Destroyed implements pip.Activity.
func (t *Terminal) Destroyed() bool { return t.destroyed }

// Destroy marks the window gone.
func (t *Terminal) Destroy() { t.destroyed = true }

// Desktop describes what the desktop allows. The values come from the
// configuration since a terminal has no platform to ask.
type Desktop struct {
	terminal  *Terminal
	level     int
	feature   bool
	permitted bool
}

// NewDesktop creates a host around terminal.
func NewDesktop(terminal *Terminal, level int, feature, permitted bool) *Desktop {
	return &Desktop{terminal: terminal, level: level, feature: feature, permitted: permitted}
}

// CurrentActivity implements pip.Host.
func (d *Desktop) CurrentActivity() pip.Activity {
	if d.terminal == nil {
		return nil
	}
	return d.terminal
}

func (d *Desktop) PlatformLevel() int               { return d.level }
func (d *Desktop) HasPipFeature() bool              { return d.feature }
func (d *Desktop) PipPermitted(_ pip.Activity) bool { return d.permitted }
func (d *Desktop) SetPermitted(permitted bool)      { d.permitted = permitted }
