package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/dreadmaze/audio"
	"github.com/lixenwraith/dreadmaze/config"
	"github.com/lixenwraith/dreadmaze/core"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/render"
	"github.com/lixenwraith/dreadmaze/render/renderers"
	"github.com/lixenwraith/dreadmaze/system"
)

var (
	scenarioFlag = flag.String("scenario", "", "Scenario YAML file (overrides -preset)")
	presetFlag   = flag.String("preset", "whispers", "Built-in scenario: "+strings.Join(config.PresetNames(), ", "))
	seedFlag     = flag.String("seed", "", "Seed string, overrides the scenario's")
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	fpsFlag      = flag.Int("fps", int(time.Second/parameter.FrameUpdateInterval), "Target frame rate")
	sentryFlag   = flag.String("sentry-dsn", os.Getenv("SENTRY_DSN"), "Sentry DSN for crash reports")
	statsFlag    = flag.String("statsview", "", "Serve runtime charts on this address, e.g. localhost:18066")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logFile, logger := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	sessionID := ulid.Make().String()
	logger = logger.With("session", sessionID)
	slog.SetDefault(logger)

	flush, err := core.InitReporting(*sentryFlag, sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crash reporting disabled: %v\n", err)
	}
	defer flush()

	sc, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	if *seedFlag != "" {
		sc.Seed = *seedFlag
	}

	if *statsFlag != "" {
		viewer.SetConfiguration(viewer.WithAddr(*statsFlag))
		mgr := statsview.New()
		core.Go(func() {
			if err := mgr.Start(); err != nil {
				logger.Warn("statsview stopped", "error", err)
			}
		})
		defer mgr.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	// Audio is optional; a missing device leaves the player silent
	hud := render.NewHUD()
	cues := audio.NewPlayer(audio.DefaultBank(), sc.Audio.Volume, logger)
	if err := cues.Start(); err != nil {
		logger.Warn("continuing without audio", "error", err)
	}
	defer cues.Close()
	if *muteFlag {
		cues.ToggleMute()
	}
	hud.SetMuted(cues.IsMuted())

	s, err := newSession(sc, sc.Seed64(), sessionDeps{
		Overlay: hud,
		Motion:  hud,
		Cues:    cues,
		Logger:  logger,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	orch := render.NewRenderOrchestrator(screen, s.layout)
	orch.Register(renderers.NewMazeRenderer(), render.PriorityWall)
	orch.Register(renderers.NewEntityRenderer(hud), render.PriorityEntities)
	orch.Register(renderers.NewPostProcessRenderer(), render.PriorityPostProcess)
	orch.Register(renderers.NewStatusBarRenderer(hud), render.PriorityUI)
	orch.Register(renderers.NewMessageRenderer(hud), render.PriorityOverlay)
	orch.Register(renderers.NewSplashRenderer(sc.Name), render.PrioritySplash)

	fps := max(*fpsFlag, 1)
	loop := engine.NewLoop(s.world, s.world.Clock, time.Second/time.Duration(fps), parameter.MaxFrameDelta, parameter.PostQueueSize)
	loop.OnFrame(orch.RenderFrame)

	ctl := &controls{
		post:   loop.Post,
		stop:   loop.Stop,
		keys:   s.keys,
		mute:   cues.ToggleMute,
		muted:  hud.SetMuted,
		resize: orch.Resize,
		now:    s.world.Clock.Now,
	}
	core.Go(func() { ctl.pump(screen) })

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("loop stopped", "error", err)
	}

	logger.Info("session closed", "frames", loop.Frames(), "dropped_posts", loop.Dropped())
	system.LogSummary(s.world)
	return 0
}

// loadScenario resolves -scenario over -preset
func loadScenario() (*config.Scenario, error) {
	if *scenarioFlag != "" {
		return config.Load(*scenarioFlag)
	}
	sc, err := config.Preset(*presetFlag)
	if err != nil {
		return nil, err
	}
	return sc, sc.Validate()
}
