// Package mapdata loads map files: a text layout, the player start and the
// events placed on the map with their pages.
package mapdata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"activemessage/pkg/engine/world"
)

// DefaultFloor lists the layout runes that are walkable when a map sets none
const DefaultFloor = "."

// Map is the on-disk description of a map
type Map struct {
	Name   string      `yaml:"name"`
	Layout []string    `yaml:"layout"` // one string per row, '#' walls
	Floor  string      `yaml:"floor"`  // walkable runes, default "."
	Player PlayerStart `yaml:"player"`
	Events []EventDef  `yaml:"events"`
}

// PlayerStart is where the player appears
type PlayerStart struct {
	Row    int    `yaml:"row"`
	Col    int    `yaml:"col"`
	Facing string `yaml:"facing"` // north/south/east/west, default south
}

// EventDef describes one event
type EventDef struct {
	ID    int          `yaml:"id"`
	Name  string       `yaml:"name"`
	Row   int          `yaml:"row"`
	Col   int          `yaml:"col"`
	Icon  string       `yaml:"icon"`
	Pages []world.Page `yaml:"pages"`
}

// Load reads and validates a map file
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a map from YAML
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map YAML: %w", err)
	}
	applyDefaults(&m)
	if err := validate(&m); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}
	return &m, nil
}

func applyDefaults(m *Map) {
	if m.Floor == "" {
		m.Floor = DefaultFloor
	}
	if m.Player.Facing == "" {
		m.Player.Facing = "south"
	}
	for i := range m.Events {
		if m.Events[i].Name == "" {
			m.Events[i].Name = fmt.Sprintf("EV%03d", m.Events[i].ID)
		}
	}
}

func validate(m *Map) error {
	if len(m.Layout) == 0 {
		return fmt.Errorf("layout is required")
	}
	width := len([]rune(m.Layout[0]))
	for i, line := range m.Layout {
		if n := len([]rune(line)); n != width {
			return fmt.Errorf("layout row %d has %d columns, want %d", i, n, width)
		}
	}
	if !facings[strings.ToLower(m.Player.Facing)] {
		return fmt.Errorf("player facing %q is not a direction", m.Player.Facing)
	}
	if !isFloor(m, m.Player.Row, m.Player.Col) {
		return fmt.Errorf("player start (%d,%d) is not on a floor tile", m.Player.Row, m.Player.Col)
	}

	seen := make(map[int]bool, len(m.Events))
	for i, ev := range m.Events {
		if ev.ID <= 0 {
			return fmt.Errorf("event %d: id must be positive, got %d", i, ev.ID)
		}
		if seen[ev.ID] {
			return fmt.Errorf("event %d: duplicate id %d", i, ev.ID)
		}
		seen[ev.ID] = true
		if ev.Row < 0 || ev.Row >= len(m.Layout) || ev.Col < 0 || ev.Col >= width {
			return fmt.Errorf("event %d: position (%d,%d) is outside the map", ev.ID, ev.Row, ev.Col)
		}
		if len(ev.Pages) == 0 {
			return fmt.Errorf("event %d: at least one page is required", ev.ID)
		}
	}
	return nil
}

var facings = map[string]bool{
	"north": true, "n": true, "up": true,
	"south": true, "s": true, "down": true,
	"east": true, "e": true, "right": true,
	"west": true, "w": true, "left": true,
}

func isFloor(m *Map, row, col int) bool {
	if row < 0 || row >= len(m.Layout) {
		return false
	}
	line := []rune(m.Layout[row])
	if col < 0 || col >= len(line) {
		return false
	}
	for _, f := range m.Floor {
		if line[col] == f {
			return true
		}
	}
	return false
}

// Build turns the map into a grid and its events
func (m *Map) Build() (*world.Grid, []*world.Event, error) {
	grid, err := world.FromLayout(m.Layout, m.Floor)
	if err != nil {
		return nil, nil, err
	}
	events := make([]*world.Event, 0, len(m.Events))
	for _, def := range m.Events {
		pages := make([]*world.Page, len(def.Pages))
		for i := range def.Pages {
			p := def.Pages[i]
			pages[i] = &p
		}
		e := world.NewEvent(def.ID, def.Name, def.Row, def.Col, pages)
		e.Icon = def.Icon
		events = append(events, e)
	}
	return grid, events, nil
}

// Facing returns the player's starting direction
func (m *Map) Facing() world.Direction {
	return world.ParseDirection(strings.ToLower(m.Player.Facing))
}
