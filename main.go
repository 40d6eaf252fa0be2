package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-links/internal/config"
	"github.com/iburimskiy/particle-links/internal/game"
	"github.com/iburimskiy/particle-links/internal/props"
	"github.com/iburimskiy/particle-links/internal/surface"
)

var (
	configPath = flag.String("config", "", "Path to a gcfg startup config file.")
	readProps  = flag.Bool("props", false, "Read live property updates from stdin.")
	verbose    = flag.Bool("v", false, "Log ignored property updates.")
	example    = flag.Bool("example-config", false, "Print an example config file and exit.")
)

func main() {
	flag.Parse()

	if *example {
		os.Stdout.WriteString(config.ExampleFile + "\n")
		return
	}

	fc := config.DefaultFileConfig()
	if *configPath != "" {
		var err error
		if fc, err = config.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("config: loaded %s", *configPath)
	}

	opts := config.Default()
	fc.Apply(&opts)
	store := config.NewStore(opts)

	listener := props.NewListener(store)
	listener.Verbose = *verbose

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *readProps {
		go func() {
			if err := listener.Feed(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("props: %v", err)
			}
		}()
	}

	seed := fc.Display.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(store, listener, surface.New(true), rand.New(rand.NewSource(seed)))
	g.Overlay = fc.Display.Overlay

	if fc.Display.Fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		ebiten.SetWindowSize(fc.Display.Width, fc.Display.Height)
	}
	ebiten.SetWindowTitle("Particle Links - Space: pause, O: overlay, Up/Down: count, Esc/Q: quit")
	// One Update per display frame; the game throttles to its own FPS cap.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
