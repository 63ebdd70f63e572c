// Package icons holds the glyphs used to draw the floating window controls
// in the terminal.
package icons

import "github.com/llehouerou/pipctl/internal/pip"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Previous string
	Play     string
	Pause    string
	Next     string
	Pip      string
	Custom   string // marks a control drawn from a configured asset
}

var (
	nerdIcons = Icons{
		Previous: "󰒮", // nf-md-skip_previous
		Play:     "󰐊", // nf-md-play
		Pause:    "󰏤", // nf-md-pause
		Next:     "󰒭", // nf-md-skip_next
		Pip:      "󰊓", // nf-md-picture_in_picture_bottom_right
		Custom:   "󰋩", // nf-md-image
	}

	unicodeIcons = Icons{
		Previous: "⏮",
		Play:     "▶",
		Pause:    "⏸",
		Next:     "⏭",
		Pip:      "⧉",
		Custom:   "*",
	}

	noneIcons = Icons{
		Previous: "|<",
		Play:     ">",
		Pause:    "||",
		Next:     ">|",
		Pip:      "[PiP]",
		Custom:   "*",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon style from the config value. Unknown values fall
// back to "none".
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// System returns the glyph for a built-in control icon.
func System(icon pip.SystemIcon) string {
	switch icon {
	case pip.IconPrevious:
		return current.Previous
	case pip.IconPlay:
		return current.Play
	case pip.IconPause:
		return current.Pause
	case pip.IconNext:
		return current.Next
	case pip.IconNone:
		return ""
	}
	return ""
}

// Control returns the glyph for a control icon. Icons decoded from an asset
// are drawn with their system glyph followed by the custom marker.
func Control(icon pip.Icon) string {
	g := System(icon.System)
	if !icon.IsSystem() {
		g += current.Custom
	}
	return g
}

// Pip returns the picture-in-picture indicator.
func Pip() string {
	return current.Pip
}
