package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/app"
	"github.com/llehouerou/clipnotes/internal/config"
	"github.com/llehouerou/clipnotes/internal/errmsg"
	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/logging"
	"github.com/llehouerou/clipnotes/internal/mpris"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/state"
	"github.com/llehouerou/clipnotes/internal/stderr"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		stderr.WriteOriginal(fmt.Sprintln(err))
		os.Exit(1)
	}
}

// run wires the application. Post source directories given as arguments
// replace the configured ones.
func run(args []string) error {
	// Native audio backends write to fd 2; keep that off the TUI.
	capture, captureErr := stderr.Start()
	defer capture.Stop()

	cfg, err := config.Load()
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, err)
	}

	logger, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return errmsg.Wrap(errmsg.OpLogOpen, err)
	}
	defer logFile.Close()

	if captureErr != nil {
		logger.Warnf("capture stderr: %v", captureErr)
	}
	icons.Init(cfg.Icons)
	styles.Init(cfg.Theme)

	band, err := cfg.GetBand()
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	bindings, err := cfg.GetBindings()
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	pb := cfg.GetPlaybackConfig()

	sources := cfg.GetPostSources()
	if len(args) > 0 {
		sources = args
	}

	opts := app.Options{
		Sources:  sources,
		Bindings: bindings,
		Query:    posts.Query{Category: cfg.Category, Limit: cfg.Limit},
		Band:     band,
		Playback: pb,
		Logger:   logger,
	}

	// A missing state database only costs the restored position.
	stateMgr, err := state.Open()
	if err != nil {
		logger.Warnf("%s", errmsg.Format(errmsg.OpStateOpen, err))
	} else {
		defer stateMgr.Close()
		opts.State = stateMgr
	}

	full := player.NewSurface(player.WithTickInterval(pb.TickInterval()))
	defer full.Close()
	snippet := player.NewSurface(player.WithTickInterval(pb.TickInterval()))
	defer snippet.Close()
	opts.Full, opts.Snippet = full, snippet

	if pb.MPRISEnabled() {
		adapter, err := mpris.New(full)
		if err != nil {
			logger.Warnf("%s", errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
			opts.MPRIS = adapter.Commands()
		}
	}

	if capture != nil {
		opts.Stderr = capture.Lines()
	}

	logger.Infof("starting with %d post sources", len(sources))

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}
	if stateMgr != nil {
		if err := stateMgr.Err(); err != nil {
			logger.Warnf("%s", errmsg.Format(errmsg.OpStateSave, err))
		}
	}
	return nil
}
