// Package session owns the interactive simulation state machine
// It consumes classified input events and exposes a per-frame View; it never draws or polls
package session

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/field"
	"github.com/lixenwraith/trajectory/input"
	"github.com/lixenwraith/trajectory/physics"
	"github.com/lixenwraith/trajectory/vmath"
)

// Controller is the top-level session state machine
// All mutation happens synchronously on the caller's goroutine
type Controller struct {
	settings Settings
	layout   Layout

	phase   core.Phase
	outcome core.Outcome
	focus   Focus
	closed  bool

	params  Params
	drag    Drag
	speed   *field.Editor
	gravity *field.Editor

	body   *physics.Projectile
	runID  uuid.UUID
	ticks  int
	extent vmath.Vec2
}

// NewController creates a session in the Configuring phase with default parameters
func NewController(settings Settings, layout Layout) *Controller {
	c := &Controller{
		settings: settings,
		layout:   layout,
		speed:    field.NewEditor(FormatDefault(settings.DefaultSpeed), settings.DefaultSpeed),
		gravity:  field.NewEditor(FormatDefault(settings.DefaultGravity), settings.DefaultGravity),
		extent:   settings.Extent,
	}
	c.restoreDefaults()
	return c
}

func (c *Controller) restoreDefaults() {
	c.params = defaultParams(c.settings)
	c.speed.Reset()
	c.gravity.Reset()
	c.body = nil
	c.outcome = core.OutcomeNone
	c.focus = FocusNone
	c.ticks = 0
}

// Phase returns the current phase
func (c *Controller) Phase() core.Phase { return c.phase }

// Outcome returns the result of the last run, OutcomeNone until one finishes
func (c *Controller) Outcome() core.Outcome { return c.outcome }

// Focus returns the current pointer/keyboard focus
func (c *Controller) Focus() Focus { return c.focus }

// Params returns a copy of the scene configuration
func (c *Controller) Params() Params { return c.params }

// Closed reports whether a close request was accepted
func (c *Controller) Closed() bool { return c.closed }

// Ticks returns the number of steps taken in the current run
func (c *Controller) Ticks() int { return c.ticks }

func (c *Controller) setPhase(to core.Phase) bool {
	if !core.CanTransition(c.phase, to) {
		return false
	}
	log.Printf("session: %s -> %s", c.phase, to)
	c.phase = to
	return true
}

// HandleEvent applies one input event and returns false once the session is closed
func (c *Controller) HandleEvent(ev input.Event) bool {
	if c.closed {
		return false
	}

	switch ev.Kind {
	case input.KindClose:
		c.close()
		return false
	case input.KindKey:
		if ev.Key == input.KeyEscape {
			c.close()
			return false
		}
	case input.KindResize:
		if ev.Extent[0] > 0 && ev.Extent[1] > 0 {
			c.extent = ev.Extent
		}
		return true
	}

	switch c.phase {
	case core.PhaseConfiguring:
		c.handleConfiguring(ev)
	case core.PhaseRunning:
		// Input is inert while the ball is in flight
	case core.PhaseFinished:
		c.handleFinished(ev)
	}
	return true
}

func (c *Controller) close() {
	c.closed = true
	c.body = nil
	c.focus = FocusNone
	log.Printf("session: close requested in %s", c.phase)
}

func (c *Controller) handleConfiguring(ev input.Event) {
	switch ev.Kind {
	case input.KindPointerDown:
		c.pointerDown(ev.Point)

	case input.KindPointerMove:
		if c.focus.Dragging() {
			c.drag.Move(c.focus, &c.params, c.settings, ev.Point)
		}

	case input.KindPointerUp:
		if c.focus.Dragging() {
			c.focus = FocusNone
		}

	case input.KindKey:
		switch ev.Key {
		case input.KeyEnter:
			if c.focus.Editing() {
				c.feed(field.Commit)
				return
			}
			c.Start()
		case input.KeyBackspace:
			c.feed(field.DeleteLast)
		}

	case input.KindText:
		c.feed(ev.Rune)
	}
}

func (c *Controller) handleFinished(ev input.Event) {
	switch ev.Kind {
	case input.KindPointerDown:
		if c.layout.Regions(c.View()).HitFinished(ev.Point) == HitReset {
			c.Reset()
		}
	case input.KindKey:
		if ev.Key == input.KeyEnter {
			c.Reset()
		}
	}
}

func (c *Controller) pointerDown(p vmath.Vec2) {
	switch c.layout.Regions(c.View()).HitConfiguring(p) {
	case HitStart:
		c.Start()
	case HitLauncher:
		c.focus = FocusDragLauncher
		c.drag.Begin(c.params.Launcher, p)
	case HitTarget:
		c.focus = FocusDragTarget
		c.drag.Begin(c.params.Target, p)
	case HitSpeed:
		c.focus = FocusEditSpeed
	case HitGravity:
		c.focus = FocusEditGravity
	case HitAngle:
		c.focus = FocusDragAngle
	default:
		c.focus = FocusNone
	}
}

// feed routes a character to the focused field; commit releases focus
func (c *Controller) feed(ch rune) {
	var ed *field.Editor
	switch c.focus.Field() {
	case FieldSpeed:
		ed = c.speed
	case FieldGravity:
		ed = c.gravity
	default:
		return
	}
	if ed.OnCharacter(ch) {
		c.focus = FocusNone
	}
}

// Start launches a projectile from the current parameters
// No-op unless Configuring with no body in flight
func (c *Controller) Start() bool {
	if c.closed || c.body != nil || !c.setPhase(core.PhaseRunning) {
		return false
	}

	speed, speedOK := c.speed.Value()
	gravity, gravityOK := c.gravity.Value()
	if !speedOK {
		log.Printf("session: speed %q invalid, using %v", c.speed.Text(), speed)
	}
	if !gravityOK {
		log.Printf("session: gravity %q invalid, using %v", c.gravity.Text(), gravity)
	}

	angle := LaunchAngle(c.params.AngleDeg)
	originPx := c.params.Launcher.Sub(vmath.V2(0, c.settings.LaunchOffsetY))
	origin := vmath.ToMeters(originPx, c.settings.PixelsPerMeter)

	c.body = physics.NewProjectile(origin, speed, angle, gravity, c.settings.PixelsPerMeter)
	c.runID = uuid.New()
	c.outcome = core.OutcomeNone
	c.focus = FocusNone
	c.ticks = 0

	log.Printf("session: run %s speed=%v angle=%.1f gravity=%v origin=%v", c.runID, speed, angle, gravity, origin)
	return true
}

// Update advances the run by one fixed timestep
func (c *Controller) Update() {
	c.Step(c.settings.Timestep())
}

// Step advances the run by dt seconds and evaluates the outcome
// Scored is checked before out-of-bounds so a ball reaching the target at the edge still scores
func (c *Controller) Step(dt float64) {
	if c.phase != core.PhaseRunning || c.body == nil {
		return
	}

	c.body.Step(dt)
	c.ticks++

	target := vmath.ToMeters(c.params.Target, c.settings.PixelsPerMeter)
	bounds := vmath.ToMeters(c.extent, c.settings.PixelsPerMeter)

	switch {
	case c.body.IsScored(target, c.settings.ScoreThresholdM):
		c.finish(core.OutcomeScored)
	case c.body.IsOutOfBounds(bounds[0], bounds[1]):
		c.finish(core.OutcomeOutOfBounds)
	}
}

func (c *Controller) finish(o core.Outcome) {
	if !c.setPhase(core.PhaseFinished) {
		return
	}
	c.outcome = o
	log.Printf("session: run %s %s after %d steps (%.2fs, apex %.2fm)",
		c.runID, o, c.ticks, c.body.FlightTime(), c.body.ApexHeight())
}

// Reset returns a finished session to Configuring with default parameters
func (c *Controller) Reset() bool {
	if c.closed || !c.setPhase(core.PhaseConfiguring) {
		return false
	}
	c.restoreDefaults()
	return true
}
