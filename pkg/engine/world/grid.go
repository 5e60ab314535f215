package world

import (
	"fmt"
	"strings"
)

// Grid represents the game map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid of wall cells with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// IsFloor returns true if the position is inside the grid and walkable
func (g *Grid) IsFloor(row, col int) bool {
	c := g.GetCell(row, col)
	return c != nil && c.Floor
}

// MarkAsFloor marks the cell at the given position as walkable. Returns false if out of bounds.
func (g *Grid) MarkAsFloor(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Floor = true
	return true
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make([]*Cell, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			name := fmt.Sprintf("%v:%v", currentRow, currentCol)
			g.cells[currentRow][currentCol] = NewCell(currentRow, currentCol, name)
		}
	}
}

// BuildAllCellConnections connects all cells to their neighbors
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(_, _ int, cell *Cell) {
		g.buildCellConnections(cell)
	})
}

func (g *Grid) buildCellConnections(current *Cell) {
	if current == nil {
		return
	}

	for _, dir := range AllDirections() {
		adj := g.GetCellRelative(current, dir)

		if adj == nil {
			continue
		}

		current.SetNeighbor(dir, adj)
		adj.SetNeighbor(dir.Opposite(), current)
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// FromLayout builds a connected grid from text rows where floor is any of floorRunes.
// Rows shorter than the widest row are padded with wall.
func FromLayout(lines []string, floorRunes string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}
	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("layout has no columns")
	}

	g := NewGrid(len(lines), cols)
	for row, line := range lines {
		for col, r := range []rune(line) {
			if strings.ContainsRune(floorRunes, r) {
				g.MarkAsFloor(row, col)
			}
		}
	}
	g.BuildAllCellConnections()
	return g, nil
}
