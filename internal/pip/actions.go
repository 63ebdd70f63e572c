package pip

import (
	"fmt"
	"image"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/eventbus"
)

// SystemIcon is a built-in control icon used when no asset is available.
type SystemIcon int

const (
	IconNone SystemIcon = iota
	IconPrevious
	IconPlay
	IconPause
	IconNext
)

// Icon is a decoded image, or a system icon when Image is nil. System is
// always set so presenters that cannot draw images still know the glyph.
type Icon struct {
	Image  image.Image
	System SystemIcon
}

// IsSystem reports whether the icon falls back to a built-in icon.
func (i Icon) IsSystem() bool { return i.Image == nil }

// IconResolver loads a control icon from an asset path.
type IconResolver interface {
	Resolve(path string) (image.Image, error)
}

// Action is one tappable control of the floating window.
type Action struct {
	Op          Opcode
	Icon        Icon
	Title       string
	Description string

	trigger func()
}

// Trigger runs the action, as the platform does when the control is tapped.
func (a Action) Trigger() {
	if a.trigger != nil {
		a.trigger()
	}
}

// Params is the snapshot handed to the platform session. Session numbers the
// session it was built for; the platform stamps its lifecycle events with it.
type Params struct {
	Session      uint64
	PlayerID     int
	Actions      []Action
	AspectWidth  int
	AspectHeight int
}

// Action returns the action for op, if present.
func (p Params) Action(op Opcode) (Action, bool) {
	for _, a := range p.Actions {
		if a.Op == op {
			return a, true
		}
	}
	return Action{}, false
}

// Builder turns a configuration into the ordered action set.
type Builder struct {
	icons IconResolver
	bus   eventbus.Poster
}

// NewBuilder creates a builder. Triggers post ControlEvent on TopicControl.
func NewBuilder(icons IconResolver, bus eventbus.Poster) *Builder {
	return &Builder{icons: icons, bus: bus}
}

// Build returns actions in the order Back, ResumeOrPause, Forward, keeping
// only those the configuration needs. The resume/pause icon reflects the
// play state at build time, so rebuild after every toggle.
func (b *Builder) Build(cfg *Configuration) Params {
	w, h := cfg.AspectRatio()
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("pip: invalid aspect ratio %d:%d", w, h))
	}

	assets := cfg.Assets()
	var actions []Action

	if cfg.NeedsBack() {
		actions = append(actions, b.action(cfg, OpBack,
			b.icon(assets.Back, IconPrevious), "skipPre", "skip pre"))
	}

	if cfg.NeedsPlayControl() {
		icon := b.icon(assets.Resume, IconPlay)
		if cfg.Playing() {
			icon = b.icon(assets.Pause, IconPause)
		}
		actions = append(actions, b.action(cfg, OpResumeOrPause,
			icon, "playOrPause", "play Or Pause"))
	}

	if cfg.NeedsForward() {
		actions = append(actions, b.action(cfg, OpForward,
			b.icon(assets.Forward, IconNext), "skipNext", "skip next"))
	}

	return Params{
		PlayerID:     cfg.PlayerID(),
		Actions:      actions,
		AspectWidth:  w,
		AspectHeight: h,
	}
}

func (b *Builder) action(cfg *Configuration, op Opcode, icon Icon, title, desc string) Action {
	ev := ControlEvent{Op: op, PlayerID: cfg.PlayerID()}
	return Action{
		Op:          op,
		Icon:        icon,
		Title:       title,
		Description: desc,
		trigger: func() {
			b.bus.Post(TopicControl, ev)
		},
	}
}

func (b *Builder) icon(path string, fallback SystemIcon) Icon {
	if isBlank(path) || b.icons == nil {
		return Icon{System: fallback}
	}
	img, err := b.icons.Resolve(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("pip: icon decode failed, using system icon")
		return Icon{System: fallback}
	}
	if img == nil {
		return Icon{System: fallback}
	}
	return Icon{Image: img, System: fallback}
}
