package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trajectory/app"
	"github.com/lixenwraith/trajectory/audio"
	"github.com/lixenwraith/trajectory/config"
	"github.com/lixenwraith/trajectory/core"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run owns every deferred teardown so main exits only after they complete
func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
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
	core.SetCrashCleanup(screen.Fini)

	// Panic Recovery: Ensure terminal is reset even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sounds := audio.NewSoundManager(cfg.AudioSettings())
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	game := app.NewGame(screen, cfg.SessionSettings(), sounds)
	if *muteFlag {
		sounds.SetMuted(true)
		game.SetMuted(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.Run(ctx); err != nil {
		log.Printf("main: run ended with error: %v", err)
		fmt.Fprintf(os.Stderr, "trajectory: %v\n", err)
		return 1
	}
	return 0
}
