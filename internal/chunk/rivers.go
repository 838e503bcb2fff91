package chunk

import (
	"math/rand"

	"github.com/talgya/pirate-cove/internal/tile"
	"github.com/talgya/pirate-cove/internal/world"
)

const (
	maxMicroRiverLength = 100
	riverHeightCap      = 0.05
	riverWidenChance    = 0.3
	riverSpreadChance   = 0.5
	riverEntryJitter    = 5
)

// generateRiver carves a river through the chunk, entering on the side the
// macro river trace recorded, or from the highest land tile when no entry
// side exists (the chunk owns a river source).
func (g *Generator) generateRiver(c *Chunk, owner world.Cell, rng *rand.Rand) {
	start, ok := g.riverEntryPoint(owner.RiverEntrySides, rng)
	if !ok {
		start, ok = g.highestLandTile(c)
	}
	if ok {
		g.traceRiver(c, start, rng)
	}
}

// riverEntryPoint picks a start tile on the recorded entry side, jittered a
// few tiles along the edge.
func (g *Generator) riverEntryPoint(sides world.Sides, rng *rand.Rand) ([2]int, bool) {
	jitter := func() int {
		return g.size/2 + rng.Intn(2*riverEntryJitter+1) - riverEntryJitter
	}
	switch {
	case sides.Has(world.SideNorth):
		return [2]int{jitter(), 0}, true
	case sides.Has(world.SideSouth):
		return [2]int{jitter(), g.size - 1}, true
	case sides.Has(world.SideWest):
		return [2]int{0, jitter()}, true
	case sides.Has(world.SideEast):
		return [2]int{g.size - 1, jitter()}, true
	default:
		return [2]int{}, false
	}
}

// highestLandTile returns the highest land tile above the source threshold,
// first occurrence in scan order winning ties.
func (g *Generator) highestLandTile(c *Chunk) ([2]int, bool) {
	var best [2]int
	found := false
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			info := c.At(x, y)
			if info.Tile.Height <= 0.3 || !info.IsLand() {
				continue
			}
			if !found || info.Tile.Height > c.At(best[0], best[1]).Tile.Height {
				best = [2]int{x, y}
				found = true
			}
		}
	}
	return best, found
}

// traceRiver walks downhill converting tiles to river, occasionally
// widening into neighbors. Stops on a revisit, on leaving the chunk, or
// after maxMicroRiverLength steps.
func (g *Generator) traceRiver(c *Chunk, start [2]int, rng *rand.Rand) {
	pos := start
	visited := make(map[[2]int]bool)

	for step := 0; step < maxMicroRiverLength; step++ {
		if visited[pos] {
			break
		}
		info := c.At(pos[0], pos[1])
		if info == nil {
			break
		}
		visited[pos] = true

		convertToRiver(info)

		if rng.Float64() < riverWidenChance {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := c.At(pos[0]+dx, pos[1]+dy)
					if n == nil || rng.Float64() >= riverSpreadChance {
						continue
					}
					if n.IsWater() {
						continue
					}
					convertToRiver(n)
				}
			}
		}

		// Advance to the lowest unvisited neighbor no higher than the
		// current (already capped) river tile.
		var next [2]int
		found := false
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				np := [2]int{pos[0] + dx, pos[1] + dy}
				n := c.At(np[0], np[1])
				if n == nil || visited[np] || n.Tile.Height > info.Tile.Height {
					continue
				}
				if !found || n.Tile.Height < c.At(next[0], next[1]).Tile.Height {
					next = np
					found = true
				}
			}
		}
		if !found {
			break
		}
		pos = next
	}
}

// convertToRiver replaces a tile with its river form: height capped just
// above sea level, saturated, impassable.
func convertToRiver(info *tile.Info) {
	height := info.Tile.Height
	if height > riverHeightCap {
		height = riverHeightCap
	}
	info.Tile = tile.Tile{
		Glyph:    '~',
		Biome:    tile.BiomeRiver,
		Height:   height,
		Moisture: 1.0,
	}
	info.Passable = false
}
