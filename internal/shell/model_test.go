package shell

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/pipctl/internal/eventbus"
	"github.com/llehouerou/pipctl/internal/icons"
	"github.com/llehouerou/pipctl/internal/overlay"
	"github.com/llehouerou/pipctl/internal/pip"
	"github.com/llehouerou/pipctl/internal/player"
	"github.com/llehouerou/pipctl/internal/state"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeHistory struct {
	sessions []state.Session
	err      error
}

func (f *fakeHistory) History(int) ([]state.Session, error) { return f.sessions, f.err }

type harness struct {
	clock    *fakeClock
	desktop  *Desktop
	terminal *Terminal
	queue    *Queue
	strip    *Strip
	status   *Status
	window   *overlay.Window
	mgr      *pip.Manager
	player   *player.Player
	history  *fakeHistory
	model    Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	icons.Init("none")

	h := &harness{
		clock:    &fakeClock{t: time.Unix(1_700_000_000, 0)},
		terminal: &Terminal{},
		queue:    &Queue{},
		strip:    &Strip{},
		history:  &fakeHistory{},
	}
	bus := eventbus.New()
	h.desktop = NewDesktop(h.terminal, 26, true, true)
	h.status = NewStatus()
	h.status.now = h.clock.now
	h.window = overlay.New(bus, h.queue.Later, h.strip)
	h.mgr = pip.NewManager(pip.Options{
		Bus:     bus,
		Host:    h.desktop,
		Starter: h.window,
		Shell:   h.status,
	})
	t.Cleanup(h.mgr.Release)

	h.player = player.NewWithClock(1, "clip", 2*time.Minute, h.clock.now)
	h.mgr.AddObserver(1, player.NewObserver(h.player, h.mgr))

	cfg := pip.NewConfiguration(pip.AssetPaths{
		Back:    "back.png",
		Resume:  "play.png",
		Pause:   "pause.png",
		Forward: "forward.png",
	}, 1)

	h.model = New(Deps{
		Manager:  h.mgr,
		Window:   h.window,
		Strip:    h.strip,
		Player:   h.player,
		Config:   cfg,
		Terminal: h.terminal,
		Status:   h.status,
		Queue:    h.queue,
		History:  h.history,
	})
	return h
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	m, cmd := h.model.Update(msg)
	h.model = m.(Model)
	return cmd
}

// settle delivers deferred work the way the program would.
func (h *harness) settle(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case flushMsg:
		h.settle(h.send(msg))
	case tea.BatchMsg:
		for _, c := range msg {
			h.settle(c)
		}
	}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.settle(h.send(keyMsg(k)))
	}
}

func TestModel_EnterShowsWindowAndConfirms(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(keyMsg("p"))

	assert.True(t, h.mgr.IsInPip())
	assert.True(t, h.strip.Shown())
	assert.Equal(t, pip.RequestedStart, h.status.Last)
	assert.Equal(t, 1, h.queue.Len()+boolToInt(h.queue.inFlight))

	h.settle(cmd)

	assert.Equal(t, pip.AlreadyEntered, h.status.Last)
	assert.Equal(t, []string{"|<", ">", ">|"}, h.strip.Controls())
	assert.Contains(t, h.model.View(), "[PiP]")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestModel_EnterRefusedShowsError(t *testing.T) {
	h := newHarness(t)
	h.desktop.SetPermitted(false)

	h.press("p")

	assert.False(t, h.mgr.IsInPip())
	assert.False(t, h.strip.Shown())
	assert.Contains(t, h.model.View(), pip.ErrPermissionDenied.Error())

	h.desktop.SetPermitted(true)
	h.press("p")
	assert.True(t, h.mgr.IsInPip())
	assert.NotContains(t, h.model.View(), pip.ErrPermissionDenied.Error())
}

func TestModel_WindowToggleDrivesPlayer(t *testing.T) {
	h := newHarness(t)
	h.press(" ", "p")
	require.True(t, h.player.IsPlaying())
	require.Equal(t, "||", h.strip.Controls()[1])

	h.press("2")

	assert.Equal(t, player.Paused, h.player.State())
	assert.Equal(t, ">", h.strip.Controls()[1])
	assert.False(t, h.mgr.Active().Playing())
	assert.Equal(t, pip.ControlUpdateRequested, h.status.Last)
}

func TestModel_WindowSkipControls(t *testing.T) {
	h := newHarness(t)
	h.player.SeekTo(30 * time.Second)
	h.press("p")

	h.press("3")
	assert.Equal(t, 40*time.Second, h.player.Position())

	h.press("1", "1")
	assert.Equal(t, 20*time.Second, h.player.Position())
}

func TestModel_RestoreResumesFromWindowPosition(t *testing.T) {
	h := newHarness(t)
	h.press(" ", "p")

	h.clock.advance(5 * time.Second)
	h.model.tick()
	assert.InDelta(t, 5, h.mgr.Active().PlayTime(), 1e-6)

	h.press("enter")

	assert.False(t, h.mgr.IsInPip())
	assert.False(t, h.strip.Shown())
	assert.Equal(t, pip.UiRestoreRequested, h.status.Last)
	assert.Equal(t, "Back from the floating window at 0:05", h.status.Message)
	assert.True(t, h.player.IsPlaying())
	assert.Equal(t, 5*time.Second, h.player.Position())
}

func TestModel_ExitWaitsForConfirmation(t *testing.T) {
	h := newHarness(t)
	h.press("p")

	cmd := h.send(keyMsg("esc"))

	assert.Equal(t, pip.ExitRequested, h.mgr.State())
	assert.False(t, h.strip.Shown())

	h.settle(cmd)

	assert.Equal(t, pip.Idle, h.mgr.State())
	assert.Equal(t, pip.AlreadyExited, h.status.Last)
}

func TestModel_CloseFromWindow(t *testing.T) {
	h := newHarness(t)
	h.press("p", "x")

	assert.Equal(t, pip.Idle, h.mgr.State())
	assert.Equal(t, "Floating window closed at 0:00", h.status.Message)
}

func TestModel_KeysFollowWindowState(t *testing.T) {
	h := newHarness(t)

	// Window keys do nothing without a window
	h.press("1", "x")
	assert.False(t, h.mgr.IsInPip())

	h.press("p")
	h.player.SeekTo(30 * time.Second)

	// Player seek keys are inactive while windowed
	h.press("l")
	assert.Equal(t, 30*time.Second, h.player.Position())
}

func TestModel_PlayPauseUpdatesWindow(t *testing.T) {
	h := newHarness(t)
	h.press("p")
	require.Equal(t, ">", h.strip.Controls()[1])

	h.player.Play()
	h.mgr.NotifyPlayState(1, true)
	h.settle(h.send(RunMsg(func() {})))

	assert.Equal(t, "||", h.strip.Controls()[1])
}

func TestModel_TickPausesFinishedPlayback(t *testing.T) {
	h := newHarness(t)
	h.press(" ")

	h.clock.advance(3 * time.Minute)
	h.model.tick()

	assert.Equal(t, player.Paused, h.player.State())
	assert.Equal(t, 2*time.Minute, h.player.Position())
}

func TestModel_QuitDestroysTerminal(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.True(t, h.terminal.Destroyed())
	assert.Equal(t, pip.ActivityDestroyed, h.mgr.CheckSupport())
}

func TestModel_History(t *testing.T) {
	h := newHarness(t)
	h.history.sessions = []state.Session{{
		PlayerID:  3,
		StartedAt: time.Now().Add(-2 * time.Minute),
		EndedAt:   time.Now().Add(-time.Minute),
		PlayTime:  65,
	}}

	h.press("H")

	view := h.model.View()
	assert.Contains(t, view, "player 3")
	assert.Contains(t, view, "stopped at 1:05")
	assert.Contains(t, view, "lasted 1:00")
}

func TestModel_HistoryError(t *testing.T) {
	h := newHarness(t)
	h.history.err = errors.New("database is locked")

	h.press("H")

	assert.Contains(t, h.model.View(), "Failed to load session history: database is locked")
}

func TestModel_Help(t *testing.T) {
	h := newHarness(t)

	h.press("?")
	assert.Contains(t, h.model.View(), "Enter picture-in-picture")

	h.press("p")
	assert.Contains(t, h.model.View(), "Window: expand")
}

func TestModel_RunMsg(t *testing.T) {
	h := newHarness(t)
	ran := false

	h.send(RunMsg(func() { ran = true }))

	assert.True(t, ran)
}

func TestModel_WindowFloatsInCorner(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})

	h.press("p")

	view := ansi.Strip(h.model.View())
	assert.Contains(t, view, "[PiP] clip  16:9")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 80, line)
	}
}
