package chunk

import "github.com/talgya/pirate-cove/internal/tile"

// Erosion lowers land that borders water and dampens it. Must run after the
// full tile grid exists (it reads neighbor biomes) and before rivers.
const erosionStrength = 0.05

func (g *Generator) applyErosion(c *Chunk) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			info := c.At(x, y)
			if info.IsWater() {
				continue
			}

			waterNeighbors := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if n := c.At(x+dx, y+dy); n != nil && n.IsWater() {
						waterNeighbors++
					}
				}
			}
			if waterNeighbors == 0 {
				continue
			}

			factor := float64(waterNeighbors) / 8.0 * erosionStrength
			old := info.Tile

			height := old.Height - factor
			if height < -1.0 {
				height = -1.0
			}
			moisture := old.Moisture + factor*0.5
			if moisture > 1.0 {
				moisture = 1.0
			}

			// Replace the tile value wholesale; Tile is never mutated in
			// place. Biome deliberately keeps its pre-erosion value.
			info.Tile = tile.Tile{
				Glyph:    old.Glyph,
				Biome:    old.Biome,
				Height:   height,
				Moisture: moisture,
			}
		}
	}
}
