package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"activemessage/pkg/game/activemessage"
	"activemessage/pkg/game/renderer"
	"activemessage/pkg/game/state"
)

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// camera is where the map is drawn this frame
type camera struct {
	view renderer.Viewport
	mapX int // screen position of the viewport's top-left tile
	mapY int
}

// EbitenRenderer is the Ebiten-based graphical renderer.
// It is also the scene active message popups are attached to.
type EbitenRenderer struct {
	*activemessage.Layer

	game  *state.Game
	title string

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Viewport dimensions (in tiles) - recalculated based on window and tile size
	viewportRows int
	viewportCols int

	cam camera

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for speaker names

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace
	popupFace          *text.GoTextFace // fixed size, used to measure and draw popups

	step renderer.Step
	err  error

	// Key repeat state tracking
	// Maps key/button codes to their repeat state
	keyRepeatState map[string]keyRepeatInfo

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// eventAnchor follows one map event on screen
type eventAnchor struct {
	r  *EbitenRenderer
	id int
}
