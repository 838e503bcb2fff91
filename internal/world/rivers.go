// River tracing: walks from high mountain/hill cells downhill toward the
// sea, flagging river cells and recording which side the river enters each
// receiving cell from. Chunk generation reads those entry sides later.
package world

import (
	"log/slog"

	"github.com/talgya/pirate-cove/internal/tile"
)

const (
	maxRiverSources = 10
	maxRiverLength  = 50
)

// generateRivers picks up to maxRiverSources source cells in grid scan
// order and traces each downhill.
func (g *Grid) generateRivers() {
	var sources []*Cell
	g.scan(func(c *Cell) {
		if c.Elevation > 0.6 &&
			(c.Biome == tile.BiomeMountains || c.Biome == tile.BiomeHills) &&
			c.Moisture > 0.4 {
			sources = append(sources, c)
		}
	})

	if len(sources) > maxRiverSources {
		sources = sources[:maxRiverSources]
	}
	for _, source := range sources {
		g.traceRiver(source)
	}
	slog.Debug("rivers traced", "sources", len(sources))
}

// traceRiver follows the steepest descent from a source cell. The walk ends
// at the sea, at a local minimum, on a revisit, or after maxRiverLength
// steps; none of these are errors.
func (g *Grid) traceRiver(source *Cell) {
	current := source
	visited := make(map[[2]int]bool)

	for step := 0; step < maxRiverLength; step++ {
		if visited[[2]int{current.X, current.Y}] {
			break
		}
		visited[[2]int{current.X, current.Y}] = true
		current.HasRiver = true

		var lowest *Cell
		for _, n := range g.Neighbors(current.X, current.Y, 1) {
			if lowest == nil || n.Elevation < lowest.Elevation {
				lowest = n
			}
		}

		if lowest == nil ||
			lowest.Elevation >= current.Elevation ||
			lowest.Elevation < g.SeaLevel {
			break
		}

		// The receiving cell records the side the river enters from,
		// which is opposite the direction of travel.
		var entry Side
		switch {
		case lowest.X > current.X:
			entry = SideWest
		case lowest.X < current.X:
			entry = SideEast
		case lowest.Y > current.Y:
			entry = SideNorth
		default:
			entry = SideSouth
		}
		lowest.RiverEntrySides.Add(entry)

		current = lowest
	}
}
