package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSolid      = tcell.NewRGBColor(86, 95, 137)   // Level geometry
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbCheckpoint = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbMessage    = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbError      = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbDim        = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Styles built from the palette
var (
	StyleDefault    = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	StyleSolid      = StyleDefault.Foreground(RgbSolid)
	StylePlayer     = StyleDefault.Foreground(RgbPlayer).Bold(true)
	StyleEnemy      = StyleDefault.Foreground(RgbEnemy)
	StyleCheckpoint = StyleDefault.Foreground(RgbCheckpoint)
	StyleMessage    = StyleDefault.Foreground(RgbMessage).Bold(true)
	StyleError      = StyleDefault.Foreground(RgbError)
	StyleDim        = StyleDefault.Foreground(RgbDim)
)
