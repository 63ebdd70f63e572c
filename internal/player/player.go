// Package player holds the player instances driven from the floating window.
// A Player only keeps the playback clock; decoding and rendering happen
// elsewhere.
package player

import "time"

// Player is one video player instance.
type Player struct {
	id       int
	title    string
	duration time.Duration

	state     State
	base      time.Duration // position when the clock last started
	startedAt time.Time
	now       func() time.Time
}

// New creates a stopped player.
func New(id int, title string, duration time.Duration) *Player {
	return NewWithClock(id, title, duration, time.Now)
}

// NewWithClock creates a stopped player reading time from now.
func NewWithClock(id int, title string, duration time.Duration, now func() time.Time) *Player {
	return &Player{id: id, title: title, duration: duration, now: now}
}

func (p *Player) ID() int                 { return p.id }
func (p *Player) Title() string           { return p.title }
func (p *Player) Duration() time.Duration { return p.duration }
func (p *Player) State() State            { return p.state }
func (p *Player) IsPlaying() bool         { return p.state == Playing }

// Play starts playback from the current position.
func (p *Player) Play() {
	if p.state == Playing {
		return
	}
	p.startedAt = p.now()
	p.state = Playing
}

// Pause freezes the position.
func (p *Player) Pause() {
	if p.state != Playing {
		return
	}
	p.base = p.Position()
	p.state = Paused
}

// Resume continues paused playback.
func (p *Player) Resume() {
	if p.state != Paused {
		return
	}
	p.Play()
}

// Toggle switches between playing and paused.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

// Stop stops playback and rewinds.
func (p *Player) Stop() {
	p.state = Stopped
	p.base = 0
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	pos := p.base
	if p.state == Playing {
		pos += p.now().Sub(p.startedAt)
	}
	return p.clamp(pos)
}

// Seek moves the position by delta.
func (p *Player) Seek(delta time.Duration) {
	p.SeekTo(p.Position() + delta)
}

// SeekTo moves the position to pos, clamped to the media.
func (p *Player) SeekTo(pos time.Duration) {
	p.base = p.clamp(pos)
	if p.state == Playing {
		p.startedAt = p.now()
	}
}

// Finished reports whether playback reached the end.
func (p *Player) Finished() bool {
	return p.duration > 0 && p.Position() >= p.duration
}

func (p *Player) clamp(pos time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	if p.duration > 0 && pos > p.duration {
		return p.duration
	}
	return pos
}
