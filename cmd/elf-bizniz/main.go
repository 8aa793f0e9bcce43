package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/elf-bizniz/audio"
	"github.com/lixenwraith/elf-bizniz/config"
	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/input"
	"github.com/lixenwraith/elf-bizniz/physics"
	"github.com/lixenwraith/elf-bizniz/record"
	"github.com/lixenwraith/elf-bizniz/session"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	levelFlag  = flag.String("level", "", "Path to a TOML level file, overrides config")
	seedFlag   = flag.Int64("seed", 0, "Procedural level seed, overrides config when non-zero")
	keymapFlag = flag.String("keymap", "", "Path to a TOML key map, overrides config")
	recordFlag = flag.String("record", "", "Write a msgpack recording of every frame to this path")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/elf-bizniz.log")
)

func main() {
	os.Exit(start())
}

// start runs the game and returns the process exit code, deferred cleanup runs before exit
func start() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	src, err := cfg.Source()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open level: %v\n", err)
		return 1
	}
	sess, err := session.New(src, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		return 1
	}

	keys := input.DefaultKeyTable()
	if cfg.Input.Keymap != "" {
		if keys, err = input.LoadKeyFile(cfg.Input.Keymap); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load key map: %v\n", err)
			return 1
		}
	}

	var rec *record.Writer
	if *recordFlag != "" {
		if rec, err = record.Create(*recordFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create recording: %v\n", err)
			return 1
		}
		defer closeRecording(rec, *recordFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	screen.HideCursor()

	// Audio is optional, the game continues silent on failure
	sink := audio.NewSink(audioConfig(cfg))
	if err := sink.Init(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sink.Close()

	g, err := newGame(cfg, screen, sess, keys, sink, rec)
	if err != nil {
		core.SetCrashScreen(nil)
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	runErr := run(screen, g)

	log.Printf("Session stats: %s", g.stats.Summary())
	core.SetCrashScreen(nil)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", runErr)
		return 1
	}
	return 0
}

// closeRecording flushes the recording, safe after the frame loop already closed it
func closeRecording(rec *record.Writer, path string) {
	if err := rec.Close(); err != nil {
		log.Printf("Recording close failed: %v", err)
	}
	log.Printf("Recorded %d frames to %s", rec.Frames(), path)
}

// loadConfig reads the config file, then lets command line flags override it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *levelFlag != "" {
		cfg.Level.Path = *levelFlag
	}
	if *seedFlag != 0 {
		cfg.Level.Seed = *seedFlag
	}
	if *keymapFlag != "" {
		cfg.Input.Keymap = *keymapFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// run drives the frame loop until quit or a physics invariant failure
func run(screen tcell.Screen, g *game) error {
	frameTicker := time.NewTicker(g.cfg.FrameInterval())
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)
	// Input polling with panic recovery to ensure terminal cleanup
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev, time.Now()) {
				return nil
			}

		case now := <-frameTicker.C:
			if err := g.tick(now); err != nil {
				if errors.Is(err, physics.ErrInvariant) {
					log.Printf("Fatal: %v", err)
				}
				return err
			}
		}
	}
}
