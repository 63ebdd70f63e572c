//go:build linux

// Package mpris presents the floating window controls as desktop media
// controls over MPRIS, so the session can be driven from the desktop's
// media keys and applets.
package mpris

import (
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/pip"
)

// ErrNoSessionBus is returned by Present when D-Bus is unavailable.
var ErrNoSessionBus = errors.New("d-bus session bus unavailable")

// Probe reports whether a D-Bus session bus is reachable.
func Probe() bool {
	_, err := dbus.SessionBus()
	return err == nil
}

// Presenter exports the current action set as an MPRIS player. D-Bus calls
// arrive on D-Bus goroutines and are handed to dispatch, which must run
// them on the UI goroutine.
type Presenter struct {
	name     string
	dispatch func(fn func())
	onRaise  func()

	mu     sync.RWMutex
	params pip.Params
	server *server.Server
}

// NewPresenter creates a presenter registering as
// org.mpris.MediaPlayer2.<name>. onRaise runs when the desktop asks to bring
// the application back.
func NewPresenter(name string, dispatch func(fn func()), onRaise func()) *Presenter {
	return &Presenter{name: name, dispatch: dispatch, onRaise: onRaise}
}

// Present implements overlay.Presenter.
func (p *Presenter) Present(params pip.Params) error {
	if _, err := dbus.SessionBus(); err != nil {
		return fmt.Errorf("%w: %w", ErrNoSessionBus, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.params = params
	if p.server != nil {
		return nil
	}

	p.server = server.NewServer(p.name, &rootAdapter{p: p}, &playerAdapter{p: p})
	srv := p.server
	go func() {
		if err := srv.Listen(); err != nil {
			log.Error().Err(err).Msg("mpris: listen")
		}
	}()
	return nil
}

// Dismiss implements overlay.Presenter.
func (p *Presenter) Dismiss() {
	p.mu.Lock()
	srv := p.server
	p.server = nil
	p.params = pip.Params{}
	p.mu.Unlock()

	if srv == nil {
		return
	}
	if err := srv.Stop(); err != nil {
		log.Error().Err(err).Msg("mpris: stop")
	}
}

func (p *Presenter) snapshot() pip.Params {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.params
}

// trigger runs the action for op on the UI goroutine.
func (p *Presenter) trigger(op pip.Opcode) error {
	a, ok := p.snapshot().Action(op)
	if !ok {
		return nil
	}
	p.dispatch(a.Trigger)
	return nil
}

func (p *Presenter) has(op pip.Opcode) bool {
	_, ok := p.snapshot().Action(op)
	return ok
}

// playing reads the state baked into the resume/pause icon.
func (p *Presenter) playing() bool {
	a, ok := p.snapshot().Action(pip.OpResumeOrPause)
	return ok && a.Icon.System == pip.IconPause
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	p *Presenter
}

func (r *rootAdapter) Raise() error {
	if r.p.onRaise != nil {
		r.p.dispatch(r.p.onRaise)
	}
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil // The host owns its lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return r.p.onRaise != nil, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "pipctl", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter on top of the
// presented actions.
type playerAdapter struct {
	p *Presenter
}

func (a *playerAdapter) Next() error {
	return a.p.trigger(pip.OpForward)
}

func (a *playerAdapter) Previous() error {
	return a.p.trigger(pip.OpBack)
}

func (a *playerAdapter) Pause() error {
	if !a.p.playing() {
		return nil
	}
	return a.p.trigger(pip.OpResumeOrPause)
}

func (a *playerAdapter) PlayPause() error {
	return a.p.trigger(pip.OpResumeOrPause)
}

func (a *playerAdapter) Stop() error {
	return a.Pause()
}

func (a *playerAdapter) Play() error {
	if a.p.playing() {
		return nil
	}
	return a.p.trigger(pip.OpResumeOrPause)
}

func (a *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (a *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (a *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (a *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if a.p.playing() {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (a *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (a *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (a *playerAdapter) Metadata() (types.Metadata, error) {
	params := a.p.snapshot()
	return types.Metadata{
		TrackId: dbus.ObjectPath(fmt.Sprintf("/org/mpris/MediaPlayer2/Player/%d", max(params.PlayerID, 0))),
		Title:   fmt.Sprintf("Player %d", params.PlayerID),
	}, nil
}

func (a *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (a *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (a *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (a *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (a *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (a *playerAdapter) CanGoNext() (bool, error) {
	return a.p.has(pip.OpForward), nil
}

func (a *playerAdapter) CanGoPrevious() (bool, error) {
	return a.p.has(pip.OpBack), nil
}

func (a *playerAdapter) CanPlay() (bool, error) {
	return a.p.has(pip.OpResumeOrPause), nil
}

func (a *playerAdapter) CanPause() (bool, error) {
	return a.p.has(pip.OpResumeOrPause), nil
}

func (a *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (a *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
