package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the scene
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSky        = tcell.NewRGBColor(36, 40, 59)    // Slightly lifted sky
	RgbGround     = tcell.NewRGBColor(86, 95, 137)   // Muted slate ground line
	RgbPlatform   = tcell.NewRGBColor(120, 100, 80)  // Brown scaffold under a raised launcher
	RgbLauncher   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbTarget     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbArrow      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBall       = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbDimText    = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbFieldBg       = tcell.NewRGBColor(50, 50, 50)    // Very dark gray
	RgbFieldActiveBg = tcell.NewRGBColor(15, 25, 50)    // Very dark blue
	RgbCursor        = tcell.NewRGBColor(255, 255, 255) // Bright white

	RgbButtonStart = tcell.NewRGBColor(0, 130, 0)   // Dark green
	RgbButtonReset = tcell.NewRGBColor(60, 100, 200) // Dark blue
	RgbButtonText  = tcell.NewRGBColor(0, 0, 0)      // Dark text

	RgbScored      = tcell.NewRGBColor(50, 255, 50)  // Bright green
	RgbOutOfBounds = tcell.NewRGBColor(255, 80, 80)  // Normal red
)

// Trail gradient endpoints, oldest to newest
var (
	trailOld = colorful.Color{R: 0.24, G: 0.39, B: 0.78}
	trailNew = colorful.Color{R: 1.0, G: 1.0, B: 0.0}
)

// TrailColor returns the trail color at progress 0.0 (oldest) to 1.0 (newest)
// Blending happens in Lab space so the midpoint does not go muddy
func TrailColor(progress float64) tcell.Color {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return toTcell(trailOld.BlendLab(trailNew, progress))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
