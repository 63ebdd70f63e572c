package pip

import (
	"errors"
	"strings"
)

// ErrInvalidAspectRatio is returned for non-positive aspect dimensions.
var ErrInvalidAspectRatio = errors.New("aspect ratio dimensions must be positive")

const (
	defaultAspectWidth  = 16
	defaultAspectHeight = 9
)

// AssetPaths holds the icon asset paths for the floating window controls.
// An empty path selects the built-in icon.
type AssetPaths struct {
	Back    string
	Resume  string
	Pause   string
	Forward string
}

// Configuration describes one player's picture-in-picture session. It is
// created before entering PIP and mutated in place while the session runs.
type Configuration struct {
	assets   AssetPaths
	playerID int

	needsBack        bool
	needsForward     bool
	needsPlayControl bool

	playing  bool
	playTime float32

	aspectWidth  int
	aspectHeight int
}

// NewConfiguration derives which controls are shown from the asset paths:
// back and forward need their own path, play control needs both resume and
// pause paths.
func NewConfiguration(assets AssetPaths, playerID int) *Configuration {
	return NewConfigurationWithFlags(assets, playerID,
		!isBlank(assets.Back),
		!isBlank(assets.Forward),
		!isBlank(assets.Resume) && !isBlank(assets.Pause),
	)
}

// NewConfigurationWithFlags sets the control flags explicitly.
func NewConfigurationWithFlags(
	assets AssetPaths,
	playerID int,
	needsBack, needsForward, needsPlayControl bool,
) *Configuration {
	return &Configuration{
		assets:           assets,
		playerID:         playerID,
		needsBack:        needsBack,
		needsForward:     needsForward,
		needsPlayControl: needsPlayControl,
		aspectWidth:      defaultAspectWidth,
		aspectHeight:     defaultAspectHeight,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (c *Configuration) Assets() AssetPaths     { return c.assets }
func (c *Configuration) PlayerID() int          { return c.playerID }
func (c *Configuration) NeedsBack() bool        { return c.needsBack }
func (c *Configuration) NeedsForward() bool     { return c.needsForward }
func (c *Configuration) NeedsPlayControl() bool { return c.needsPlayControl }
func (c *Configuration) Playing() bool          { return c.playing }
func (c *Configuration) PlayTime() float32      { return c.playTime }

// SetPlaying records the live playback state. Actions built afterwards show
// a pause icon while playing and a play icon otherwise.
func (c *Configuration) SetPlaying(playing bool) { c.playing = playing }

// SetPlayTime records the current position in seconds.
func (c *Configuration) SetPlayTime(seconds float32) { c.playTime = seconds }

// AspectRatio returns the floating window width:height ratio.
func (c *Configuration) AspectRatio() (width, height int) {
	return c.aspectWidth, c.aspectHeight
}

// SetAspectRatio sets the floating window ratio.
func (c *Configuration) SetAspectRatio(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidAspectRatio
	}
	c.aspectWidth = width
	c.aspectHeight = height
	return nil
}

// Clone returns an independent copy.
func (c *Configuration) Clone() *Configuration {
	cp := *c
	return &cp
}
