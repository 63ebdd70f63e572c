package player

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/pip"
)

// SkipStep is how far Back and Forward move the position.
const SkipStep = 10 * time.Second

// StateReporter receives play state changes so the floating window controls
// follow the player.
type StateReporter interface {
	NotifyPlayState(playerID int, playing bool)
}

// Observer applies floating window events to a player.
type Observer struct {
	player   *Player
	reporter StateReporter
}

// NewObserver creates the observer of p.
func NewObserver(p *Player, reporter StateReporter) *Observer {
	return &Observer{player: p, reporter: reporter}
}

// OnPipResult implements pip.Observer. The player continues from where the
// floating window stopped.
func (o *Observer) OnPipResult(r pip.PipResult) {
	o.player.SeekTo(Seconds(r.PlayTime))
	if r.Playing {
		o.player.Play()
	} else {
		o.player.Pause()
	}
}

// OnPipPlayerEvent implements pip.Observer.
func (o *Observer) OnPipPlayerEvent(eventID int, _ any) {
	switch pip.Opcode(eventID) {
	case pip.OpBack:
		o.player.Seek(-SkipStep)
	case pip.OpForward:
		o.player.Seek(SkipStep)
	case pip.OpResumeOrPause:
		if o.player.State() == Stopped {
			o.player.Play()
		} else {
			o.player.Toggle()
		}
		if o.reporter != nil {
			o.reporter.NotifyPlayState(o.player.ID(), o.player.IsPlaying())
		}
	default:
		log.Debug().Int("player", o.player.ID()).Int("event", eventID).Msg("player: unhandled event")
	}
}

// Seconds converts a play time in seconds to a duration.
func Seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

// PlayTime converts a duration to a play time in seconds.
func PlayTime(d time.Duration) float32 {
	return float32(d.Seconds())
}
