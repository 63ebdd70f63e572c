package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/errmsg"
	"github.com/llehouerou/pipctl/internal/keymap"
	"github.com/llehouerou/pipctl/internal/overlay"
	"github.com/llehouerou/pipctl/internal/pip"
	"github.com/llehouerou/pipctl/internal/player"
	"github.com/llehouerou/pipctl/internal/state"
)

const (
	tickInterval = 500 * time.Millisecond
	historySize  = 10
)

// TickMsg is sent periodically to refresh the position.
type TickMsg time.Time

// HistorySource lists finished sessions.
type HistorySource interface {
	History(limit int) ([]state.Session, error)
}

// Deps are the pieces the model drives. All of them are used from the
// update loop only.
type Deps struct {
	Manager  *pip.Manager
	Window   *overlay.Window
	Strip    *Strip
	Player   *player.Player
	Config   *pip.Configuration
	Terminal *Terminal
	Status   *Status
	Queue    *Queue
	History  HistorySource // optional
}

type Model struct {
	deps Deps
	keys *keymap.Resolver

	width       int
	showHelp    bool
	showHistory bool
	history     []state.Session
	err         string
}

// New creates the model.
func New(deps Deps) Model {
	if deps.Status == nil {
		deps.Status = NewStatus()
	}
	if deps.Queue == nil {
		deps.Queue = &Queue{}
	}
	return Model{deps: deps, keys: keymap.NewResolver(keymap.Bindings)}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		m.tick()
		cmd = tickCmd()
	case flushMsg:
		m.deps.Queue.run(msg)
	case RunMsg:
		if msg != nil {
			msg()
		}
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}
	return m, tea.Batch(cmd, m.deps.Queue.flush())
}

func (m *Model) tick() {
	p := m.deps.Player
	if p.IsPlaying() && p.Finished() {
		p.Pause()
		m.deps.Manager.NotifyPlayState(p.ID(), false)
	}
	if m.deps.Manager.IsInPip() {
		m.deps.Manager.UpdatePlayTime(p.ID(), player.PlayTime(p.Position()))
	}
}

func (m Model) contexts() []string {
	if m.deps.Window.Active() {
		return []string{"global", "window"}
	}
	return []string{"global", "player"}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.deps.Player
	switch m.keys.ResolveIn(msg.String(), m.contexts()...) {
	case keymap.ActionQuit:
		m.deps.Terminal.Destroy()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
	case keymap.ActionHistory:
		m.toggleHistory()
	case keymap.ActionPlayPause:
		if p.State() == player.Stopped {
			p.Play()
		} else {
			p.Toggle()
		}
		m.deps.Manager.NotifyPlayState(p.ID(), p.IsPlaying())
	case keymap.ActionStop:
		p.Stop()
		m.deps.Manager.NotifyPlayState(p.ID(), false)
	case keymap.ActionSeekBack:
		p.Seek(-player.SkipStep)
	case keymap.ActionSeekForward:
		p.Seek(player.SkipStep)
	case keymap.ActionEnterPip:
		m.enterPip()
	case keymap.ActionWindowBack:
		m.deps.Window.Tap(pip.OpBack)
	case keymap.ActionWindowToggle:
		m.deps.Window.Tap(pip.OpResumeOrPause)
	case keymap.ActionWindowForward:
		m.deps.Window.Tap(pip.OpForward)
	case keymap.ActionWindowRestore:
		m.deps.Window.Restore()
	case keymap.ActionWindowClose:
		m.deps.Window.Close()
	case keymap.ActionExitPip:
		m.deps.Manager.ExitCurrent()
	}
	return m, nil
}

func (m *Model) enterPip() {
	p := m.deps.Player
	cfg := m.deps.Config
	cfg.SetPlaying(p.IsPlaying())
	cfg.SetPlayTime(player.PlayTime(p.Position()))

	res := m.deps.Manager.Enter(cfg, p)
	if !res.OK() {
		log.Warn().Stringer("result", res).Int("player", p.ID()).Msg("shell: enter refused")
		m.err = errmsg.FormatResult(errmsg.OpPipEnter, res)
		return
	}
	m.err = ""
}

func (m *Model) toggleHistory() {
	m.showHistory = !m.showHistory
	if !m.showHistory || m.deps.History == nil {
		return
	}
	sessions, err := m.deps.History.History(historySize)
	if err != nil {
		log.Error().Err(err).Msg("shell: load history")
		m.err = errmsg.Format(errmsg.OpSessionHistory, err)
		return
	}
	m.history = sessions
}
