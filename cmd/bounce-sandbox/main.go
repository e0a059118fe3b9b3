// bounce-sandbox drops a particle onto the ground line and lets it bounce to rest
// Space or click re-drops, s toggles slow motion, q or Esc quits
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/parameter"
	"github.com/lixenwraith/trajectory/physics"
	"github.com/lixenwraith/trajectory/render"
	"github.com/lixenwraith/trajectory/vmath"
)

const dropHeight = 150.0

type sandbox struct {
	screen  tcell.Screen
	canvas  *render.Canvas
	ball    *physics.Particle
	bounces int
	resting bool
	slow    bool
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	sb := &sandbox{
		screen: screen,
		canvas: render.NewCanvas(parameter.CanvasWidth, parameter.CanvasHeight, cols, rows),
	}
	sb.drop(parameter.CanvasWidth / 2)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	dt := 1.0 / float64(parameter.FrameRate)
	for {
		select {
		case ev := <-events:
			if !sb.handle(ev) {
				return
			}
		case <-ticker.C:
			step := dt
			if sb.slow {
				step /= 4
			}
			sb.update(step)
			sb.draw()
		}
	}
}

func (sb *sandbox) drop(x float64) {
	sb.ball = physics.NewParticle(vmath.Vec2{x, dropHeight}, parameter.BounceMass)
	sb.bounces = 0
	sb.resting = false
}

func (sb *sandbox) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			sb.drop(sb.ball.Pos[0])
		case ev.Rune() == 's':
			sb.slow = !sb.slow
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			sb.drop(sb.canvas.CellToCanvas(x, y)[0])
		}
	case *tcell.EventResize:
		sb.canvas.Resize(ev.Size())
		sb.screen.Sync()
	}
	return true
}

func (sb *sandbox) update(dt float64) {
	if sb.resting {
		return
	}
	sb.ball.ApplyGravity(vmath.Vec2{0, parameter.BounceGravity})
	sb.ball.Update(dt)
	if sb.ball.BounceFloor(parameter.GroundLineY, parameter.BounceRadius, parameter.BounceRestitution) {
		sb.bounces++
		if -sb.ball.Vel[1] < parameter.BounceRestSpeed {
			sb.ball.Vel = vmath.Vec2{}
			sb.resting = true
		}
	}
}

func (sb *sandbox) draw() {
	bg := tcell.StyleDefault.Background(render.RgbBackground)
	sb.screen.Fill(' ', bg)

	cols, _ := sb.canvas.Size()
	_, groundRow := sb.canvas.CanvasToCell(vmath.Vec2{0, parameter.GroundLineY})
	ground := bg.Foreground(render.RgbGround)
	for x := 0; x < cols; x++ {
		sb.screen.SetContent(x, groundRow, '▀', nil, ground)
	}

	bx, by := sb.canvas.CanvasToCell(sb.ball.Pos)
	if sb.canvas.InGrid(bx, by) {
		sb.screen.SetContent(bx, by, '●', nil, bg.Foreground(render.RgbBall))
	}

	status := fmt.Sprintf(" y %6.1f px  vy %7.1f px/s  bounces %d  slow %v | space drop, s slow, q quit",
		sb.ball.Pos[1], sb.ball.Vel[1], sb.bounces, sb.slow)
	text := bg.Foreground(render.RgbText)
	for i, r := range status {
		sb.screen.SetContent(i, 0, r, nil, text)
	}
	sb.screen.Show()
}
