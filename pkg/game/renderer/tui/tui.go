// Package tui renders the game in a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gookit/color"

	"activemessage/pkg/engine/input"
	"activemessage/pkg/engine/terminal"
	"activemessage/pkg/game/activemessage"
	"activemessage/pkg/game/i18n"
	"activemessage/pkg/game/renderer"
	"activemessage/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon    = "@"
	IconWall      = "▒"
	IconUnvisited = "·"
	IconVisited   = "•"
	IconVoid      = " "
	IconEvent     = "&"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside viewport:
	// - Map name + blank (2)
	// - Popups pane (header + up to 4 popups = 5)
	// - Message box (header + 4 lines + footer = 6)
	// - Log (5)
	ViewportTopMargin = 20
)

// cellWidth is how many pixels one terminal column stands for when popups are
// sized, so the default popup layout keeps its proportions.
const cellWidth = 10

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	*activemessage.Layer

	game      *state.Game
	frameRate int
	out       io.Writer

	colorCell    color.Style
	colorVisited color.Style
	colorWall    color.Style
	colorEvent   color.Style
	colorTalking color.Style
	colorAction  color.Style
	colorSubtle  color.Style
	colorPlayer  color.Style
	colorPopup   color.Style
}

// New creates a new TUI renderer for g running at frameRate frames per second
func New(g *state.Game, frameRate int) *TUIRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	t := &TUIRenderer{
		Layer:     activemessage.NewLayer(),
		game:      g,
		frameRate: frameRate,
		out:       os.Stdout,
	}
	t.initColors()
	return t
}

// initColors initializes the color styles
func (t *TUIRenderer) initColors() {
	t.colorCell = color.Style{color.FgGray}
	t.colorVisited = color.Style{color.FgWhite}
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorEvent = color.Style{color.FgMagenta, color.OpBold}
	t.colorTalking = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorPopup = color.Style{color.FgCyan}
}

// TextWidth measures a popup line in terminal columns, scaled to pixels
func (t *TUIRenderer) TextWidth(line string) float64 {
	return float64(utf8.RuneCountInString(line) * cellWidth)
}

// Anchor returns the position of a map event in terminal cells, scaled like TextWidth
func (t *TUIRenderer) Anchor(eventID int) activemessage.Anchor {
	return eventAnchor{t: t, id: eventID}
}

type eventAnchor struct {
	t  *TUIRenderer
	id int
}

func (a eventAnchor) ScreenPosition() (x, y float64, ok bool) {
	ev := a.t.game.EventByID(a.id)
	if ev == nil || !ev.Visible() {
		return 0, 0, false
	}
	view := a.t.viewport()
	vRow, vCol := view.ToScreen(ev.Row, ev.Col)
	return float64(vCol*cellWidth + cellWidth/2), float64((vRow + 1) * cellWidth * 2), true
}

// Run reads keys in the background and draws frameRate frames per second.
// Keys pressed between frames are applied one per frame.
func (t *TUIRenderer) Run(step renderer.Step) error {
	keys, err := input.OpenKeyReader()
	if err != nil {
		return err
	}
	defer keys.Close()

	codes := make(chan string, 16)
	go keys.Pump(codes)

	fmt.Fprint(t.out, "\x1b[?25l")       // hide cursor
	defer fmt.Fprint(t.out, "\x1b[?25h") // show cursor

	ticker := time.NewTicker(time.Second / time.Duration(t.frameRate))
	defer ticker.Stop()

	for range ticker.C {
		intent := input.Intent{Action: input.ActionNone}
		select {
		case code, ok := <-codes:
			if !ok {
				return io.EOF
			}
			intent = input.FromCode(input.DeviceTerminal, code)
		default:
		}

		if err := step(intent); err != nil {
			return err
		}
		t.Layer.Update()
		t.RenderFrame()
	}
	return nil
}

// viewport returns the visible part of the map, centered on the player
func (t *TUIRenderer) viewport() renderer.Viewport {
	width, height := terminal.GetSize()
	rows := height - ViewportTopMargin
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	cols := width
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	return renderer.CenterOn(t.game.PlayerRow, t.game.PlayerCol, rows, cols)
}

// RenderFrame draws a complete frame
func (t *TUIRenderer) RenderFrame() {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	b.WriteString(t.colorAction.Sprint(t.game.MapName))
	b.WriteString("\n\n")
	t.printMap(&b)
	t.printPopups(&b)
	t.printMessageBox(&b)
	t.printLog(&b)

	// Raw mode needs explicit carriage returns
	fmt.Fprint(t.out, strings.ReplaceAll(b.String(), "\n", "\r\n"))
}

// printMap renders the viewport
func (t *TUIRenderer) printMap(b *strings.Builder) {
	g := t.game
	view := t.viewport()
	for vRow := 0; vRow < view.Rows; vRow++ {
		for vCol := 0; vCol < view.Cols; vCol++ {
			row, col := view.StartRow+vRow, view.StartCol+vCol
			b.WriteString(t.renderCell(g, row, col))
		}
		b.WriteString("\n")
	}
}

// renderCell returns the styled icon for a map position
func (t *TUIRenderer) renderCell(g *state.Game, row, col int) string {
	if row == g.PlayerRow && col == g.PlayerCol {
		return t.colorPlayer.Sprint(PlayerIcon)
	}
	cell := g.Grid.GetCell(row, col)
	if cell == nil || !cell.Discovered {
		return IconVoid
	}
	if ev := g.EventAt(row, col); ev != nil {
		icon := ev.DisplayIcon()
		if icon == "" {
			icon = IconEvent
		}
		if t.eventHasPopup(ev.ID) {
			return t.colorTalking.Sprint(icon)
		}
		return t.colorEvent.Sprint(icon)
	}
	switch {
	case !cell.Floor:
		return t.colorWall.Sprint(IconWall)
	case cell.Visited:
		return t.colorVisited.Sprint(IconVisited)
	default:
		return t.colorCell.Sprint(IconUnvisited)
	}
}

func (t *TUIRenderer) eventHasPopup(id int) bool {
	for _, p := range t.Layer.Popups() {
		if a, ok := p.Anchor().(eventAnchor); ok && a.id == id {
			return true
		}
	}
	return false
}

// printPopups lists the active popups with the event that said them
func (t *TUIRenderer) printPopups(b *strings.Builder) {
	b.WriteString("\n")
	for _, p := range t.Layer.Popups() {
		name := "?"
		if a, ok := p.Anchor().(eventAnchor); ok {
			if ev := t.game.EventByID(a.id); ev != nil {
				name = ev.Name
			}
		}
		b.WriteString(t.colorTalking.Sprint(name + ": "))
		b.WriteString(t.colorPopup.Sprint(strings.Join(p.Lines(), " / ")))
		b.WriteString(t.colorSubtle.Sprintf(" (%d)", p.Remaining()) + "\n")
	}
}

// printMessageBox renders the open message page, if any
func (t *TUIRenderer) printMessageBox(b *strings.Builder) {
	lines := t.game.CurrentMessage()
	if lines == nil {
		return
	}
	width := terminal.GetWidth()
	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)) + "\n")
	for _, line := range i18n.Lines(lines) {
		fmt.Fprintf(b, "  %s\n", line)
	}
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width-2)+" ▾") + "\n")
}

// printLog renders the notice log
func (t *TUIRenderer) printLog(b *strings.Builder) {
	b.WriteString("\n")
	for _, msg := range t.game.Log {
		b.WriteString(t.colorSubtle.Sprint(i18n.T(msg)) + "\n")
	}
	b.WriteString(t.colorSubtle.Sprint(directionHelp()) + "\n")
}

// directionHelp lists the movement and action keys
func directionHelp() string {
	byAction := input.GetBindingsByAction()
	parts := []string{}
	for _, a := range []input.Action{input.ActionMoveNorth, input.ActionInteract, input.ActionQuit} {
		parts = append(parts, fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(byAction[a], "/")))
	}
	return strings.Join(parts, "  ")
}
