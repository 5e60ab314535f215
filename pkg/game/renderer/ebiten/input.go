package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "activemessage/pkg/engine/input"
)

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	// Handle tile size changes (= to increase, - to decrease, 0 to reset)
	e.handleZoom()

	// Gamepad first, then keyboard (raw layer)
	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}

	if e.step != nil {
		if err := e.step(intent); err != nil {
			e.err = err
			return ebiten.Termination
		}
	}

	// Popups follow their events after the player has moved
	e.updateCamera()
	e.Layer.Update()
	return nil
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

// setTileSize clamps and applies a new tile size
func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.recalculateViewport()
}

// recalculateViewport recalculates viewport dimensions based on current window and tile size
func (e *EbitenRenderer) recalculateViewport() {
	// Invalidate font cache since sizes may have changed
	e.invalidateFontCache()

	w, h := e.windowWidth, e.windowHeight
	frameBorder := 10

	e.viewportCols = (w - frameBorder*2) / e.tileSize
	e.viewportRows = (h - frameBorder*2) / e.tileSize

	// Ensure minimum viewport size
	if e.viewportCols < 9 {
		e.viewportCols = 9
	}
	if e.viewportRows < 7 {
		e.viewportRows = 7
	}
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	pressed := isPressed()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	// Key is held - repeat after the initial delay
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// heldKeys are movement keys that repeat while held, with the code they send
var heldKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "arrow_up"},
	{ebiten.KeyS, "arrow_down"},
	{ebiten.KeyA, "arrow_left"},
	{ebiten.KeyD, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressedKeys fire once per press
var pressedKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyE, "e"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyKPEnter, "enter"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF8, "f8"},
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range heldKeys {
		key := k.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, "key_"+key.String()) {
			return keyboardIntent(k.code)
		}
	}
	for _, k := range pressedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return keyboardIntent(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func keyboardIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// checkGamepadInput maps the standard gamepad layout: d-pad moves, the bottom
// face button interacts.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		dpad := []struct {
			button ebiten.StandardGamepadButton
			action engineinput.Action
		}{
			{ebiten.StandardGamepadButtonLeftTop, engineinput.ActionMoveNorth},
			{ebiten.StandardGamepadButtonLeftBottom, engineinput.ActionMoveSouth},
			{ebiten.StandardGamepadButtonLeftLeft, engineinput.ActionMoveWest},
			{ebiten.StandardGamepadButtonLeftRight, engineinput.ActionMoveEast},
		}
		for _, d := range dpad {
			button := d.button
			code := "pad_" + engineinput.ActionName(d.action)
			if e.shouldRepeatKey(func() bool { return ebiten.IsStandardGamepadButtonPressed(id, button) }, code) {
				return engineinput.Intent{Action: d.action}
			}
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			return engineinput.Intent{Action: engineinput.ActionInteract}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Recalculate viewport when window size changes
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.recalculateViewport()
		e.updateCamera()
	}
	return outsideWidth, outsideHeight
}
