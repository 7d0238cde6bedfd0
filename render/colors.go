package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbSky        = tcell.NewRGBColor(26, 27, 38)    // Night sky background
	RgbGrass      = tcell.NewRGBColor(40, 90, 40)    // Ground strip
	RgbBirdBody   = tcell.NewRGBColor(139, 90, 43)   // Brown
	RgbBirdHead   = tcell.NewRGBColor(0, 160, 80)    // Mallard green
	RgbBirdDead   = tcell.NewRGBColor(150, 150, 150) // Gray
	RgbBullet     = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbTrail      = tcell.NewRGBColor(160, 120, 0)   // Dim amber
	RgbCrosshair  = tcell.NewRGBColor(255, 60, 60)   // Red
	RgbGun        = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbHudText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbHudBg      = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbAmmoFull   = tcell.NewRGBColor(255, 165, 0)   // Orange shell
	RgbAmmoEmpty  = tcell.NewRGBColor(80, 80, 80)    // Spent shell
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red banner
	RgbPausedBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMutedBg    = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbUnmutedBg  = tcell.NewRGBColor(0, 200, 0)     // Green
)
