package chunk

import (
	"math/rand"

	"github.com/talgya/pirate-cove/internal/tile"
)

// Resource roll probabilities and quantity ranges.
const (
	miningBaseChance = 0.1
	goldVeinChance   = 0.05
	woodChance       = 0.2
	saltChance       = 0.05
)

var (
	mountainOres = []tile.Resource{tile.ResourceIronOre, tile.ResourceCopperOre, tile.ResourceSilverOre}
	hillMinerals = []tile.Resource{tile.ResourceStone, tile.ResourceClay, tile.ResourceIronOre}
)

// placeResources rolls each land tile independently for a resource deposit.
// Runs last: it reads the final post-erosion, post-river biome and height.
func (g *Generator) placeResources(c *Chunk, rng *rand.Rand) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			info := c.At(x, y)
			if !info.IsLand() {
				continue
			}

			switch {
			case info.CanMine():
				richness := info.MiningRichness()
				if rng.Float64() >= miningBaseChance*richness {
					continue
				}
				var choices []tile.Resource
				if info.Tile.Biome == tile.BiomeMountains {
					choices = mountainOres
					if rng.Float64() < goldVeinChance {
						choices = append(mountainOres[:len(mountainOres):len(mountainOres)], tile.ResourceGoldOre)
					}
				} else {
					choices = hillMinerals
				}
				resource := choices[rng.Intn(len(choices))]
				base := 50 + rng.Intn(151)
				info.SetResource(resource, int(float64(base)*richness))

			case info.Tile.Biome == tile.BiomeForest:
				if rng.Float64() < woodChance {
					info.SetResource(tile.ResourceWood, 20+rng.Intn(61))
				}

			case info.Tile.Biome == tile.BiomeBeach:
				if rng.Float64() < saltChance {
					info.SetResource(tile.ResourceSalt, 10+rng.Intn(31))
				}
			}
		}
	}
}
