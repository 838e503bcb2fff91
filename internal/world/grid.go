package world

import "fmt"

// Grid holds the generated macro world. Immutable once Generate returns.
type Grid struct {
	Width  int
	Height int
	Seed   int64

	SeaLevel  float64
	LandRatio float64

	cells map[[2]int]*Cell
}

// Cell returns the cell at (x, y), or nil if outside the grid.
func (g *Grid) Cell(x, y int) *Cell {
	return g.cells[[2]int{x, y}]
}

// Neighbors returns the existing cells within Chebyshev distance of (x, y),
// excluding (x, y) itself. The order is fixed (dx outer, dy inner) so that
// callers that resolve ties by first occurrence stay deterministic.
func (g *Grid) Neighbors(x, y, distance int) []*Cell {
	var neighbors []*Cell
	for dx := -distance; dx <= distance; dx++ {
		for dy := -distance; dy <= distance; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c := g.Cell(x+dx, y+dy); c != nil {
				neighbors = append(neighbors, c)
			}
		}
	}
	return neighbors
}

// LandCells returns all cells at or above sea level, in grid scan order.
func (g *Grid) LandCells() []*Cell {
	var cells []*Cell
	g.scan(func(c *Cell) {
		if c.Elevation >= g.SeaLevel {
			cells = append(cells, c)
		}
	})
	return cells
}

// WaterCells returns all cells below sea level, in grid scan order.
func (g *Grid) WaterCells() []*Cell {
	var cells []*Cell
	g.scan(func(c *Cell) {
		if c.Elevation < g.SeaLevel {
			cells = append(cells, c)
		}
	})
	return cells
}

// Settlements returns all inhabited cells, in grid scan order.
func (g *Grid) Settlements() []*Cell {
	var cells []*Cell
	g.scan(func(c *Cell) {
		if c.Population > 0 {
			cells = append(cells, c)
		}
	})
	return cells
}

// CellCount returns the number of generated cells.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, seed=%d)", g.Width, g.Height, g.Seed)
}

// scan visits every cell in row-major order (y outer, x inner). All pipeline
// phases and accessors iterate this way: Go map iteration order is random,
// and the world RNG is consumed per cell, so a fixed order is what makes a
// seed reproducible.
func (g *Grid) scan(fn func(*Cell)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(g.cells[[2]int{x, y}])
		}
	}
}
