// Package app wires the terminal, input machine, session and renderer into a running program
package app

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/input"
	"github.com/lixenwraith/trajectory/parameter"
	"github.com/lixenwraith/trajectory/render"
	"github.com/lixenwraith/trajectory/session"
)

//go:generate go tool mockgen -destination=./mocks/cues_mock.go -package=mocks . Cues

// Cues is the audio feedback played on session transitions
type Cues interface {
	PlayLaunch()
	PlayScore()
	PlayMiss()
	ToggleMute() bool
}

type silentCues struct{ muted bool }

func (silentCues) PlayLaunch() {}
func (silentCues) PlayScore()  {}
func (silentCues) PlayMiss()   {}
func (s *silentCues) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Game owns the screen for the lifetime of Run and finalizes it on exit
type Game struct {
	screen   tcell.Screen
	canvas   *render.Canvas
	machine  *input.Machine
	session  *session.Controller
	renderer *render.TerminalRenderer
	cues     Cues

	frameInterval time.Duration
	lastPhase     core.Phase
}

// NewGame builds a game on an initialized screen; nil cues plays nothing
func NewGame(screen tcell.Screen, settings session.Settings, cues Cues) *Game {
	if cues == nil {
		cues = &silentCues{}
	}

	cols, rows := screen.Size()
	canvas := render.NewCanvas(parameter.CanvasWidth, parameter.CanvasHeight, cols, rows)
	settings.Extent = canvas.Extent()

	screen.EnableMouse()
	screen.HideCursor()

	return &Game{
		screen:        screen,
		canvas:        canvas,
		machine:       input.NewMachine(canvas),
		session:       session.NewController(settings, render.Layout{}),
		renderer:      render.NewTerminalRenderer(screen, canvas, settings.Timestep()),
		cues:          cues,
		frameInterval: settings.FrameInterval(),
		lastPhase:     core.PhaseConfiguring,
	}
}

// Session exposes the controller for inspection
func (g *Game) Session() *session.Controller {
	return g.session
}

// SetMuted reflects an externally applied mute state in the status bar
func (g *Game) SetMuted(muted bool) {
	g.renderer.SetMuted(muted)
}

// HandleEvent feeds one terminal event through the input machine into the session
// Returns false once the session has closed
func (g *Game) HandleEvent(ev tcell.Event) bool {
	for _, e := range g.machine.Process(ev) {
		if e.Kind == input.KindKey && e.Key == input.KeyToggleMute {
			g.renderer.SetMuted(g.cues.ToggleMute())
			continue
		}
		if !g.session.HandleEvent(e) {
			return false
		}
	}
	g.syncCues()
	return true
}

// Tick advances the simulation one fixed step and redraws
func (g *Game) Tick() {
	g.session.Update()
	g.syncCues()
	g.renderer.RenderFrame(g.session.View())
}

// syncCues plays the cue for any phase change since the last call
func (g *Game) syncCues() {
	phase := g.session.Phase()
	if phase == g.lastPhase {
		return
	}
	g.lastPhase = phase

	switch phase {
	case core.PhaseRunning:
		g.cues.PlayLaunch()
	case core.PhaseFinished:
		switch g.session.Outcome() {
		case core.OutcomeScored:
			g.cues.PlayScore()
		case core.OutcomeOutOfBounds:
			g.cues.PlayMiss()
		}
	}
}

// Run drives the game until the session closes or ctx is cancelled
// The event poller and the frame loop run in one errgroup; the screen is finalized on return
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer recoverCrash()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer g.screen.Fini()
		defer close(done)
		defer recoverCrash()
		return g.loop(ctx, events)
	})

	return eg.Wait()
}

func recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r)
	}
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.frameInterval)
	defer ticker.Stop()

	g.renderer.RenderFrame(g.session.View())
	for {
		select {
		case <-ctx.Done():
			log.Printf("app: context done: %v", ctx.Err())
			return nil
		case ev := <-events:
			if !g.HandleEvent(ev) {
				log.Printf("app: session closed")
				return nil
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}
