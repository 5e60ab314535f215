// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/activemessage"
	"activemessage/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a map position.
// If revealedOnly is true, cells the player has not seen return '?'.
func cellSymbol(g *state.Game, row, col int, revealedOnly bool) rune {
	if row == g.PlayerRow && col == g.PlayerCol {
		return '@'
	}
	cell := g.Grid.GetCell(row, col)
	if cell == nil {
		return ' '
	}
	if revealedOnly && !cell.Discovered {
		return '?'
	}
	if g.EventAt(row, col) != nil {
		return 'E'
	}
	if !cell.Floor {
		return '#'
	}
	return '.'
}

// writeMapGrid writes the grid to w
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", cellSymbol(g, row, col, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// Dump writes a debug report: metadata, legend, both maps, then every event
// with its active page and message state. c may be nil.
func Dump(w io.Writer, g *state.Game, c *activemessage.Controller) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, events, message state) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "map: %s\n", g.MapName)
	fmt.Fprintf(w, "frame: %d\n", g.Frame)
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "player_cell: %d,%d\n", g.PlayerRow, g.PlayerCol)
	fmt.Fprintf(w, "player_facing: %s\n", g.Facing)
	fmt.Fprintf(w, "message_box_open: %v\n", g.MessageBusy())
	fmt.Fprintf(w, "switches_on: %s\n", strings.Join(switchesOn(g), ","))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  ? = not yet seen  E = visible event  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	// --- Events ---
	fmt.Fprintln(w, "--- Events ---")
	events := append([]*world.Event(nil), g.Events...)
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	for _, e := range events {
		fmt.Fprintf(w, "event %d %q at %d,%d page=%d distance=%d\n",
			e.ID, e.Name, e.Row, e.Col, e.PageIndex(), e.Distance(g.PlayerRow, g.PlayerCol))
		if c == nil {
			continue
		}
		s, ok := c.State(e.ID)
		if !ok {
			continue
		}
		if text, ok := s.AutoText(); ok {
			fmt.Fprintf(w, "  auto: %q shown=%v\n", text, s.AutoShown())
		}
		if text, ok := s.LoopText(); ok {
			fmt.Fprintf(w, "  loop: %q interval=%d counter=%d\n", text, s.LoopInterval(), s.LoopCounter())
		}
	}
	return nil
}

// DumpToFile writes the debug report to map.txt and returns its absolute path
func DumpToFile(g *state.Game, c *activemessage.Controller) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Dump(f, g, c); err != nil {
		return "", err
	}
	return absPath, nil
}

func switchesOn(g *state.Game) []string {
	var on []string
	g.Switches.Each(func(name string) {
		on = append(on, name)
	})
	sort.Strings(on)
	return on
}
