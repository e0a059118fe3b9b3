package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/parameter"
	"github.com/lixenwraith/trajectory/session"
	"github.com/lixenwraith/trajectory/vmath"
)

const (
	trailMax       = 48
	arrowSamples   = 24
	bannerStiff    = 7.0
	bannerDamping  = 0.35
	bannerRowShare = 0.3
)

// Glyphs
const (
	glyphSolid    = '█'
	glyphShade    = '▒'
	glyphGround   = '▔'
	glyphArrow    = '•'
	glyphArrowTip = '◆'
	glyphBall     = '●'
	glyphTrail    = '·'
	glyphCursor   = '▏'
)

// bannerAnim drops the outcome banner in from the top on a damped spring
type bannerAnim struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	active bool
}

func (b *bannerAnim) update(finished bool) {
	if !finished {
		b.active = false
		b.pos, b.vel = 0, 0
		return
	}
	b.active = true
	b.pos, b.vel = b.spring.Update(b.pos, b.vel, 1.0)
}

// TerminalRenderer draws session views onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	layout Layout

	trail    []vmath.Vec2
	trailRun uuid.UUID
	banner   bannerAnim
	muted    bool
}

// NewTerminalRenderer creates a renderer for screen advancing animations by dt seconds per frame
func NewTerminalRenderer(screen tcell.Screen, canvas *Canvas, dt float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		canvas: canvas,
		trail:  make([]vmath.Vec2, 0, trailMax),
		banner: bannerAnim{spring: harmonica.NewSpring(dt, bannerStiff, bannerDamping)},
	}
}

// SetMuted toggles the status bar mute marker
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// BannerRow returns the current banner row, -1 when hidden
func (r *TerminalRenderer) BannerRow() int {
	if !r.banner.active {
		return -1
	}
	_, rows := r.canvas.Size()
	return int(math.Round(r.banner.pos * float64(rows) * bannerRowShare))
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(v session.View) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.Fill(' ', base)

	r.updateTrail(v)
	r.banner.update(v.Phase == core.PhaseFinished)

	r.drawGround(base)
	r.drawLauncher(v, base)
	r.drawTarget(v, base)
	if v.Phase == core.PhaseConfiguring {
		r.drawArrow(v, base)
	}
	r.drawFields(v, base)
	r.drawButtons(v, base)
	r.drawReadouts(v, base)
	r.drawTrail(base)
	if v.HasBall {
		r.setCanvas(v.Ball, glyphBall, base.Foreground(RgbBall))
	}
	r.drawBanner(v, base)
	r.drawStatusBar(v, base)

	r.screen.Show()
}

func (r *TerminalRenderer) updateTrail(v session.View) {
	if !v.HasBall {
		r.trail = r.trail[:0]
		return
	}
	if v.RunID != r.trailRun {
		r.trail = r.trail[:0]
		r.trailRun = v.RunID
	}

	// One trail point per cell
	if n := len(r.trail); n > 0 {
		lx, ly := r.canvas.CanvasToCell(r.trail[n-1])
		bx, by := r.canvas.CanvasToCell(v.Ball)
		if lx == bx && ly == by {
			return
		}
	}
	if len(r.trail) == trailMax {
		copy(r.trail, r.trail[1:])
		r.trail = r.trail[:trailMax-1]
	}
	r.trail = append(r.trail, v.Ball)
}

// setCanvas draws ch at the cell covering canvas point p
func (r *TerminalRenderer) setCanvas(p vmath.Vec2, ch rune, style tcell.Style) {
	x, y := r.canvas.CanvasToCell(p)
	if r.canvas.InGrid(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// cellRect returns the cell span [x0,x1) x [y0,y1) covering a, at least one cell
func (r *TerminalRenderer) cellRect(a core.Area) (x0, y0, x1, y1 int) {
	cw, ch := r.canvas.cellSize()
	x0 = int(math.Floor(a.X / cw))
	y0 = int(math.Floor(a.Y / ch))
	x1 = int(math.Ceil((a.X + a.Width) / cw))
	y1 = int(math.Ceil((a.Y + a.Height) / ch))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (r *TerminalRenderer) fillArea(a core.Area, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := r.cellRect(a)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.canvas.InGrid(x, y) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

// drawText writes s from cell (x, y) honoring rune widths and returns the next free column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	cols, _ := r.canvas.Size()
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= cols {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x
}

// drawCentered writes s centered on column cx
func (r *TerminalRenderer) drawCentered(cx, y int, s string, style tcell.Style) {
	r.drawText(cx-runewidth.StringWidth(s)/2, y, s, style)
}

func (r *TerminalRenderer) drawGround(base tcell.Style) {
	_, y := r.canvas.CanvasToCell(vmath.V2(0, parameter.GroundLineY))
	cols, _ := r.canvas.Size()
	style := base.Foreground(RgbGround)
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, y, glyphGround, nil, style)
	}
}

func (r *TerminalRenderer) drawLauncher(v session.View, base tcell.Style) {
	box := r.layout.LauncherBox(v.Launcher)

	// Scaffold between a raised launcher and the ground
	bottom := box.Y + box.Height
	if raise := parameter.GroundLineY + parameter.LauncherHeight/2 - bottom; raise > 0 {
		platform := core.Area{X: box.X, Y: bottom, Width: box.Width, Height: raise}
		r.fillArea(platform, glyphShade, base.Foreground(RgbPlatform))
	}
	r.fillArea(box, glyphSolid, base.Foreground(RgbLauncher))
}

func (r *TerminalRenderer) drawTarget(v session.View, base tcell.Style) {
	r.fillArea(r.layout.TargetBox(v.Target), glyphSolid, base.Foreground(RgbTarget))
}

func (r *TerminalRenderer) drawArrow(v session.View, base tcell.Style) {
	style := base.Foreground(RgbArrow)
	tip := r.layout.ArrowTip(v.AnglePivot, v.AngleDeg)
	for i := 0; i < arrowSamples; i++ {
		t := float64(i) / arrowSamples
		r.setCanvas(v.AnglePivot.Add(tip.Sub(v.AnglePivot).Mul(t)), glyphArrow, style)
	}
	r.setCanvas(tip, glyphArrowTip, style)
}

func (r *TerminalRenderer) drawField(a core.Area, label, text string, active bool, base tcell.Style) {
	bg := RgbFieldBg
	if active {
		bg = RgbFieldActiveBg
	}
	style := base.Background(bg)
	r.fillArea(a, ' ', style)

	x0, y0, _, _ := r.cellRect(a)
	r.drawText(x0-runewidth.StringWidth(label)-1, y0, label, base.Foreground(RgbDimText))
	end := r.drawText(x0, y0, text, style)
	if active {
		r.drawText(end, y0, string(glyphCursor), style.Foreground(RgbCursor))
	}
}

func (r *TerminalRenderer) drawFields(v session.View, base tcell.Style) {
	r.drawField(r.layout.SpeedField(v.Extent), "Speed (m/s)", v.SpeedText, v.SpeedActive, base)
	r.drawField(r.layout.AngleField(v.Extent), "Angle (°)", v.AngleText, false, base)
	r.drawField(r.layout.GravityField(v.Extent), "Gravity (m/s²)", v.GravityText, v.GravityActive, base)
}

func (r *TerminalRenderer) drawButton(a core.Area, label string, bg tcell.Color, base tcell.Style) {
	style := base.Background(bg).Foreground(RgbButtonText)
	r.fillArea(a, ' ', style)
	cx, cy := r.canvas.CanvasToCell(vmath.AreaCenter(a))
	r.drawCentered(cx, cy, label, style)
}

func (r *TerminalRenderer) drawButtons(v session.View, base tcell.Style) {
	switch v.Phase {
	case core.PhaseConfiguring:
		r.drawButton(r.layout.StartButton(), "Simulate", RgbButtonStart, base)
	case core.PhaseFinished:
		r.drawButton(r.layout.ResetButton(), "Reset", RgbButtonReset, base)
	}
}

func (r *TerminalRenderer) drawReadouts(v session.View, base tcell.Style) {
	style := base.Foreground(RgbDimText)
	r.drawText(1, 1, fmt.Sprintf("Distance: %.2f m", v.DistanceM), style)
	r.drawText(1, 2, fmt.Sprintf("Height:   %.2f m", v.HeightM), style)
	if v.HasBall {
		r.drawText(1, 3, fmt.Sprintf("Time:     %.2f s", v.FlightTime), style)
		r.drawText(1, 4, fmt.Sprintf("Apex:     %.2f m", v.ApexM), style)
	}
}

func (r *TerminalRenderer) drawTrail(base tcell.Style) {
	n := len(r.trail)
	// Newest point sits under the ball
	for i := 0; i < n-1; i++ {
		progress := float64(i+1) / float64(n)
		r.setCanvas(r.trail[i], glyphTrail, base.Foreground(TrailColor(progress)))
	}
}

func (r *TerminalRenderer) drawBanner(v session.View, base tcell.Style) {
	row := r.BannerRow()
	if row < 0 {
		return
	}

	text, color := "No Goal!", RgbOutOfBounds
	if v.Outcome == core.OutcomeScored {
		text, color = "Goal!", RgbScored
	}
	cols, _ := r.canvas.Size()
	r.drawCentered(cols/2, row, " "+text+" ", base.Background(color).Foreground(RgbButtonText).Bold(true))
}

func (r *TerminalRenderer) drawStatusBar(v session.View, base tcell.Style) {
	cols, rows := r.canvas.Size()
	style := base.Background(RgbSky).Foreground(RgbText)
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, rows-1, ' ', nil, style)
	}

	var hint string
	switch v.Phase {
	case core.PhaseConfiguring:
		hint = "drag launcher/target/arrow · click a field to type · Enter simulates"
	case core.PhaseRunning:
		hint = "running"
	case core.PhaseFinished:
		hint = "Enter or Reset to try again"
	}
	status := fmt.Sprintf(" %s | %s | Esc quits", v.Phase, hint)
	if r.muted {
		status += " | muted"
	}
	r.drawText(0, rows-1, status, style)
}
