package game

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-links/internal/config"
	"github.com/iburimskiy/particle-links/internal/particle"
	"github.com/iburimskiy/particle-links/internal/props"
)

const (
	countStep = 10
	speedStep = 0.25
)

// Surface is the render target the game draws particles into and shows on screen.
type Surface interface {
	particle.Canvas
	Initialize(width, height int) bool
	Ready() bool
	Clear(bg config.Color)
	Image() *ebiten.Image
}

// Game runs the particle animation as an ebiten.Game.
type Game struct {
	store     *config.Store
	listener  *props.Listener
	surface   Surface
	manager   *particle.Manager
	scheduler *Scheduler
	now       func() time.Time

	started   time.Time
	regenSeen uint64
	generated bool

	paused  bool
	Overlay bool
}

func New(store *config.Store, listener *props.Listener, s Surface, rng *rand.Rand) *Game {
	return newGame(store, listener, s, rng, time.Now)
}

func newGame(store *config.Store, listener *props.Listener, s Surface, rng *rand.Rand, now func() time.Time) *Game {
	start := now()
	return &Game{
		store:     store,
		listener:  listener,
		surface:   s,
		manager:   particle.NewManager(s, rng),
		scheduler: NewScheduler(start),
		now:       now,
		started:   start,
	}
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.step()
	return nil
}

// step takes one configuration snapshot and renders a frame into the surface
// if the scheduler says one is due. It reports whether a frame was rendered.
func (g *Game) step() bool {
	if !g.surface.Ready() {
		return false
	}

	opts, regen := g.store.Snapshot()
	if !g.generated || regen != g.regenSeen {
		g.manager.Regenerate(opts.ParticleCount, opts)
		g.regenSeen = regen
		g.generated = true
		log.Printf("game: generated %d particles", opts.ParticleCount)
	}

	if !g.scheduler.Tick(g.now(), opts.FPS) || g.paused {
		return false
	}

	g.surface.Clear(opts.Background)
	g.manager.RenderFrame(opts)
	return true
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.Overlay = !g.Overlay
	}

	opts, _ := g.store.Snapshot()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.setCount(opts.ParticleCount + countStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.setCount(max(opts.ParticleCount-countStep, 0))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.setCount(opts.ParticleCount)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.setSpeed(opts.Speed + speedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.setSpeed(opts.Speed - speedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		next := config.LinkAll
		if opts.LinkPolicy == config.LinkAll {
			next = config.LinkSweep
		}
		g.listener.ApplyUserProperties(map[string]string{props.LinkPolicy: string(next)})
	}
	return nil
}

func (g *Game) setCount(n int) {
	g.listener.ApplyUserProperties(map[string]string{props.ParticleCount: strconv.Itoa(n)})
}

func (g *Game) setSpeed(v float64) {
	g.listener.ApplyUserProperties(map[string]string{props.ParticleSpeed: strconv.FormatFloat(v, 'f', -1, 64)})
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.surface.Ready() {
		return
	}
	screen.DrawImage(g.surface.Image(), nil)

	if g.Overlay {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) status() string {
	opts, _ := g.store.Snapshot()
	fps := "uncapped"
	if opts.FPS > 0 {
		fps = strconv.FormatFloat(opts.FPS, 'f', -1, 64)
	}
	s := fmt.Sprintf("particles %d  speed %.2f  links %s  fps %s (%.0f actual)  frames %d  %s",
		g.manager.Len(), opts.Speed, opts.LinkPolicy, fps, ebiten.ActualFPS(),
		g.scheduler.Frames(), formatDuration(g.now().Sub(g.started)))
	if g.paused {
		s += "  paused"
	}
	return s
}

// Layout sizes the surface to the first viewport it sees and keeps that
// logical size for the rest of the run.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.Initialize(outsideWidth, outsideHeight) {
		log.Printf("game: surface %dx%d", outsideWidth, outsideHeight)
	}
	if !g.surface.Ready() {
		return outsideWidth, outsideHeight
	}
	w, h := g.surface.Size()
	return int(w), int(h)
}
