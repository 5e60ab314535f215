package world

// SightRadius is how far the player sees, in Chebyshev (chessboard) distance
const SightRadius = 5

// Visible returns the cells within radius of center that have a clear line of
// sight from it. Walls are visible but block what lies behind them.
func Visible(grid *Grid, center *Cell, radius int) []*Cell {
	if center == nil || grid == nil {
		return nil
	}

	out := []*Cell{center}
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			cell := grid.GetCell(center.Row+dr, center.Col+dc)
			if cell == nil {
				continue
			}
			if hasLineOfSight(grid, center.Row, center.Col, cell.Row, cell.Col) {
				out = append(out, cell)
			}
		}
	}
	return out
}

// hasLineOfSight walks a Bresenham line from (r0,c0) to (r1,c1). Every cell
// strictly between the two ends must be floor.
func hasLineOfSight(grid *Grid, r0, c0, r1, c1 int) bool {
	dr, dc := abs(r1-r0), -abs(c1-c0)
	sr, sc := sign(r1-r0), sign(c1-c0)
	err := dr + dc

	r, c := r0, c0
	for {
		if r == r1 && c == c1 {
			return true
		}
		if (r != r0 || c != c0) && !grid.IsFloor(r, c) {
			return false
		}
		e2 := 2 * err
		if e2 >= dc {
			err += dc
			r += sr
		}
		if e2 <= dr {
			err += dr
			c += sc
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Reveal marks every cell the center can see as discovered
func Reveal(grid *Grid, center *Cell, radius int) {
	for _, cell := range Visible(grid, center, radius) {
		cell.Discovered = true
	}
}
