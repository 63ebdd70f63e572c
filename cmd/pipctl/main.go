package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/assets"
	"github.com/llehouerou/pipctl/internal/config"
	"github.com/llehouerou/pipctl/internal/errmsg"
	"github.com/llehouerou/pipctl/internal/eventbus"
	"github.com/llehouerou/pipctl/internal/icons"
	"github.com/llehouerou/pipctl/internal/mpris"
	"github.com/llehouerou/pipctl/internal/notify"
	"github.com/llehouerou/pipctl/internal/overlay"
	"github.com/llehouerou/pipctl/internal/pip"
	"github.com/llehouerou/pipctl/internal/player"
	"github.com/llehouerou/pipctl/internal/shell"
	"github.com/llehouerou/pipctl/internal/state"
)

const mprisName = "pipctl"

func main() {
	title := flag.String("title", "Untitled", "title of the clip")
	duration := flag.Duration("duration", 10*time.Minute, "length of the clip")
	playerID := flag.Int("player", 1, "player id")
	flag.Parse()

	if err := run(*playerID, *title, *duration); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(playerID int, title string, duration time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	closeLog, err := setupLogging(cfg.GetLogLevel())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer closeLog()

	icons.Init(cfg.Icons)
	pipCfg := cfg.GetPipConfig()

	store, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer store.Close()

	p := player.New(playerID, title, duration)
	status := shell.NewStatus()

	if stale, err := store.Recover(); err != nil {
		log.Error().Err(err).Msg("pipctl: recover session")
	} else if stale != nil {
		log.Warn().Int("player", stale.PlayerID()).Msg("pipctl: previous session never confirmed its exit")
		if stale.PlayerID() == p.ID() {
			p.SeekTo(player.Seconds(stale.PlayTime()))
		}
		status.Message = fmt.Sprintf("Recovered an interrupted session of player %d", stale.PlayerID())
	}

	bus := eventbus.New()
	queue := &shell.Queue{}
	strip := &shell.Strip{}

	// D-Bus callbacks arrive on their own goroutines and are sent to the
	// update loop.
	var program *tea.Program
	dispatch := func(fn func()) {
		if program != nil {
			program.Send(shell.RunMsg(fn))
		}
	}

	var window *overlay.Window
	presenters := []overlay.Presenter{strip}
	if mpris.Probe() {
		presenters = append(presenters, mpris.NewPresenter(mprisName, dispatch, func() {
			window.Restore()
		}))
	} else {
		log.Info().Msg("pipctl: no session bus, media controls disabled")
	}
	window = overlay.New(bus, queue.Later, presenters...)

	terminal := &shell.Terminal{}
	desktop := shell.NewDesktop(terminal, pipCfg.PlatformLevel, *pipCfg.Enabled, *pipCfg.Permitted)

	var mgr *pip.Manager
	shells := shell.Fanout{
		status,
		state.NewRecorder(store, func() *pip.Configuration { return mgr.Active() }),
	}
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			log.Error().Err(err).Msg("pipctl: " + errmsg.Format(errmsg.OpNotify, err))
		} else {
			shells = append(shells, notify.NewShell(n))
		}
	}

	mgr = pip.NewManager(pip.Options{
		Bus:                     bus,
		Host:                    desktop,
		Starter:                 window,
		Shell:                   shells,
		Icons:                   assets.NewDecoder(pipCfg.IconSize),
		MinPlatformLevel:        pipCfg.MinLevel,
		PermissionPlatformLevel: pipCfg.PermissionLevel,
	})
	defer mgr.Release()
	mgr.AddObserver(p.ID(), player.NewObserver(p, mgr))

	pc, err := newPipConfig(cfg, pipCfg, p.ID())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	model := shell.New(shell.Deps{
		Manager:  mgr,
		Window:   window,
		Strip:    strip,
		Player:   p,
		Config:   pc,
		Terminal: terminal,
		Status:   status,
		Queue:    queue,
		History:  store,
	})
	program = tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	// The exit confirmation will not arrive once the loop is gone.
	if mgr.IsInPip() {
		if err := store.FinishActive(player.PlayTime(p.Position())); err != nil {
			log.Error().Err(err).Msg("pipctl: " + errmsg.Format(errmsg.OpSessionFinish, err))
		}
	}
	return nil
}

func newPipConfig(cfg *config.Config, pipCfg config.PipConfig, playerID int) (*pip.Configuration, error) {
	resolver := assets.NewResolver(cfg.AssetsDir)
	pc := pip.NewConfiguration(pip.AssetPaths{
		Back:    resolver.Path(cfg.Controls.Back),
		Resume:  resolver.Path(cfg.Controls.Resume),
		Pause:   resolver.Path(cfg.Controls.Pause),
		Forward: resolver.Path(cfg.Controls.Forward),
	}, playerID)

	w, h, err := config.ParseAspect(pipCfg.Aspect)
	if err != nil {
		return nil, err
	}
	if err := pc.SetAspectRatio(w, h); err != nil {
		return nil, err
	}
	return pc, nil
}
