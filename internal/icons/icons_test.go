package icons

import (
	"image"
	"testing"

	"github.com/llehouerou/pipctl/internal/pip"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			var want Icons
			switch tt.expectedStyle {
			case StyleNerd:
				want = nerdIcons
			case StyleUnicode:
				want = unicodeIcons
			case StyleNone:
				want = noneIcons
			}
			if current != want {
				t.Errorf("Init(%q) selected %+v, want %s icons", tt.style, current, tt.expectedStyle)
			}
		})
	}

	Init("none")
}

func TestSystem(t *testing.T) {
	Init("none")
	defer Init("none")

	tests := []struct {
		icon pip.SystemIcon
		want string
	}{
		{pip.IconPrevious, "|<"},
		{pip.IconPlay, ">"},
		{pip.IconPause, "||"},
		{pip.IconNext, ">|"},
		{pip.IconNone, ""},
	}
	for _, tt := range tests {
		if got := System(tt.icon); got != tt.want {
			t.Errorf("System(%d) = %q, want %q", tt.icon, got, tt.want)
		}
	}
}

func TestControl_MarksCustomAssets(t *testing.T) {
	Init("unicode")
	defer Init("none")

	sys := pip.Icon{System: pip.IconPlay}
	if got := Control(sys); got != "▶" {
		t.Errorf("Control(system) = %q, want %q", got, "▶")
	}

	custom := pip.Icon{System: pip.IconPlay, Image: image.NewGray(image.Rect(0, 0, 1, 1))}
	if got := Control(custom); got != "▶*" {
		t.Errorf("Control(custom) = %q, want %q", got, "▶*")
	}
}
