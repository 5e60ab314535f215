// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single tile of the map
type Cell struct {
	Name string

	// Grid position
	Row int
	Col int

	// Navigation - links to adjacent cells
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell

	Floor      bool // walkable tile
	Visited    bool // the player has stood here
	Discovered bool // the player has seen it
}

// NewCell creates a new wall cell at the given position
func NewCell(row, col int, name string) *Cell {
	return &Cell{
		Name: name,
		Row:  row,
		Col:  col,
	}
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// GetNeighbors returns all non-nil adjacent cells
func (c *Cell) GetNeighbors() []*Cell {
	var neighbors []*Cell
	for _, dir := range AllDirections() {
		if n := c.GetNeighbor(dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Distance returns the grid (Manhattan) distance to another position
func (c *Cell) Distance(row, col int) int {
	return Manhattan(c.Row, c.Col, row, col)
}

// Manhattan returns |r1-r2| + |c1-c2|
func Manhattan(r1, c1, r2, c2 int) int {
	return abs(r1-r2) + abs(c1-c2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
