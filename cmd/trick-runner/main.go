package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/audio"
	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/game"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/stats"
	"github.com/lixenwraith/trick-runner/trick"
)

var (
	envFile       = flag.String("env", ".env", "Optional .env file with path overrides")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to -logdir and show the HUD status line")
	logDirFlag    = flag.String("logdir", "logs", "Log directory")
	levelFlag     = flag.String("level", "", "Skip the menus and play this level id")
	playFlag      = flag.Bool("play", false, "Skip the menus and play map_name from the constants file")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
	statsviewFlag = flag.Bool("statsview", false, "Serve runtime charts on localhost:18066")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trick-runner: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	paths, err := config.LoadEnv(*envFile)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(*logDirFlag, *debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if paths.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: paths.SentryDSN, AttachStacktrace: true}); err != nil {
			logger.WithError(err).Warn("sentry disabled")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if *statsviewFlag {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:18066"))
		mgr := statsview.New()
		core.Go(mgr.Start)
		defer mgr.Stop()
	}

	// Configuration errors are fatal before the terminal is taken over
	constants, err := config.Load(paths.ConstantsFile())
	if err != nil {
		return err
	}
	tricks, err := trick.LoadFile(paths.TrickListFile())
	if err != nil {
		return err
	}

	statsManager := stats.NewManager(paths.StatsFile(constants), logger)

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.ToggleMute()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	core.SetResetHook(screen.Fini)

	g, err := game.New(game.Options{
		Constants: constants,
		Tricks:    tricks,
		Paths:     paths,
		Audio:     sound,
		Stats:     statsManager,
		Records:   statsManager.Load,
		Debug:     *debugFlag,
		Log:       logger,
	})
	if err != nil {
		return err
	}
	switch {
	case *levelFlag != "":
		g.Play(*levelFlag)
	case *playFlag:
		g.Play(constants.MapName)
	}

	width, height := screen.Size()
	orchestrator := g.NewRenderer(screen, width, height)

	resized := make(chan struct{}, 1)
	reader := input.NewTerminalReader(screen, g.Input, logger)
	reader.OnResize(func() {
		select {
		case resized <- struct{}{}:
		default:
		}
	})
	reader.Start()

	g.Scheduler.Start()
	defer g.Scheduler.Stop()

	logger.WithFields(logrus.Fields{
		"assets": paths.Assets,
		"stats":  statsManager.Path(),
		"audio":  sound.IsRunning(),
	}).Info("trick-runner started")

	for {
		select {
		case <-reader.Quit():
			logger.Info("trick-runner stopped")
			return nil
		case <-resized:
			screen.Sync()
			orchestrator.Resize(screen.Size())
		case <-g.Scheduler.Frames():
			orchestrator.RenderFrame(g.World)
		}
	}
}
