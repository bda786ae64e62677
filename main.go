package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tgrange/reel/internal/api"
	"github.com/tgrange/reel/internal/app"
	"github.com/tgrange/reel/internal/config"
	"github.com/tgrange/reel/internal/engine"
	"github.com/tgrange/reel/internal/logging"
	"github.com/tgrange/reel/internal/mpris"
	"github.com/tgrange/reel/internal/notify"
	"github.com/tgrange/reel/internal/playback"
	"github.com/tgrange/reel/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	videoID, debug, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.Setup(debug)

	states, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer states.Close()

	client := api.NewClient(cfg.BaseURL(), cfg.API.Token)
	if cfg.API.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second)
	}

	eng, err := engine.NewMpv(engine.Options{
		Binary:     cfg.MpvBinary(),
		SocketPath: filepath.Join(cfg.SocketDir(), fmt.Sprintf("reel-mpv-%d.sock", os.Getpid())),
		ExtraArgs:  cfg.Mpv.ExtraArgs,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("start playback engine: %w", err)
	}
	defer eng.Close()

	mon := playback.NewMonitor(eng, nil)
	defer mon.Close()

	desktop, err := mpris.New(eng, mon)
	if err != nil {
		// Desktop integration is optional; log and carry on.
		log.WithError(err).Warn("mpris unavailable")
		desktop = nil
	} else {
		defer desktop.Close()
	}

	notifier, err := notify.New()
	if err != nil {
		log.WithError(err).Warn("desktop notifications unavailable")
	}

	model := app.New(app.Options{
		Log:      log,
		Client:   client,
		Engine:   eng,
		Monitor:  mon,
		State:    states,
		Desktop:  desktop,
		Notifier: notifier,
		VideoID:  videoID,
		Resume:   cfg.ResumeEnabled(),
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	// Installed after the program exists; the monitor pump is already
	// running by now.
	mon.SetErrorHandler(func(err error) {
		program.Send(app.PlaybackErrorMsg{Err: err})
	})
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func parseArgs(args []string) (videoID int, debug bool, err error) {
	var positional []string
	for _, arg := range args {
		switch arg {
		case "-d", "--debug":
			debug = true
		case "-h", "--help":
			usage()
			os.Exit(0)
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) != 1 {
		usage()
		return 0, false, fmt.Errorf("expected a video id")
	}
	videoID, err = strconv.Atoi(positional[0])
	if err != nil {
		return 0, false, fmt.Errorf("invalid video id %q", positional[0])
	}
	return videoID, debug, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-d] <video-id>\n", filepath.Base(os.Args[0]))
}
