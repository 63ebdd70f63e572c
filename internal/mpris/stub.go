//go:build !linux

package mpris

import (
	"errors"

	"github.com/llehouerou/pipctl/internal/pip"
)

// ErrNoSessionBus is returned by Present on platforms without D-Bus.
var ErrNoSessionBus = errors.New("d-bus session bus unavailable")

// Probe reports false on non-Linux platforms.
func Probe() bool { return false }

// Presenter is a no-op on non-Linux platforms.
type Presenter struct{}

// NewPresenter returns a presenter that always fails to present.
func NewPresenter(_ string, _ func(fn func()), _ func()) *Presenter {
	return &Presenter{}
}

// Present reports that media controls are unavailable.
func (p *Presenter) Present(_ pip.Params) error { return ErrNoSessionBus }

// Dismiss is a no-op on non-Linux platforms.
func (p *Presenter) Dismiss() {}
