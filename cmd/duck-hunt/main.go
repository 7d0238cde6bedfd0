package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-hunt/audio"
	"github.com/lixenwraith/duck-hunt/config"
	"github.com/lixenwraith/duck-hunt/engine"
	"github.com/lixenwraith/duck-hunt/input"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "duck-hunt: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		return err
	}
	opts.apply(&cfg)

	keys := input.DefaultKeyTable()
	override, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return err
	}
	keys.Merge(override)

	logger, logFile, err := setupLogging(opts.logPath, opts.logLevel())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate))
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(opts.mute)

	session := engine.NewSession(cfg, engine.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := newGame(screen, session, input.NewHandler(keys), sound, logger)
	return g.run(ctx)
}
