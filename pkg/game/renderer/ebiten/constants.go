package ebiten

import "image/color"

// Color palette for the game - brighter colors for visibility
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg          = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloor           = color.RGBA{100, 100, 120, 255} // Medium gray for unvisited
	colorFloorVisited    = color.RGBA{160, 160, 180, 255} // Lighter gray for visited
	colorEvent           = color.RGBA{255, 150, 255, 255} // Bright pink
	colorEventTalking    = color.RGBA{255, 220, 100, 255} // Yellow while it has a popup
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark

	// Popup colors
	colorPopupBackground = color.RGBA{15, 15, 25, 240}
	colorPopupBorder     = color.RGBA{80, 80, 100, 255}
	colorPopupText       = color.RGBA{200, 200, 255, 255} // Light blue
)

// Icon constants - Unicode characters for proper font rendering
const (
	PlayerIcon    = "@"
	IconWall      = "▒"
	IconUnvisited = "·"
	IconVisited   = "•"
	IconVoid      = " "
	IconEvent     = "☺" // Event without an icon of its own
)

// facingMarks point the way the player is looking
var facingMarks = map[string]string{
	"North": "▴",
	"South": "▾",
	"East":  "▸",
	"West":  "◂",
}

// Tile size constraints
const (
	minTileSize     = 16
	maxTileSize     = 96
	tileSizeStep    = 4
	defaultTileSize = 48
	baseFontSize    = 16.0 // Base font size at a 24px tile
)

// Popup text is measured and drawn at a fixed size so that popup geometry
// does not change with zoom.
const (
	popupFontSize     = 20.0
	popupCornerRadius = 8
	popupBorderWidth  = 1
	popupFadeFrames   = 20 // frames of fade in and fade out
)

const (
	keyRepeatInitialDelay = 300 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 120 // Interval between repeat events (milliseconds)
)
