// Settlement placement: scores habitable cells and seeds population and
// wealth on the best twenty.
package world

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/talgya/pirate-cove/internal/tile"
)

const maxSettlements = 20

// generateSettlements ranks candidate cells by moisture (with a sea-border
// bonus) and populates the top candidates. No candidates means no
// settlements, not an error.
func (g *Grid) generateSettlements(rng *rand.Rand) {
	var candidates []*Cell
	g.scan(func(c *Cell) {
		if c.Elevation < g.SeaLevel {
			return
		}
		switch c.Biome {
		case tile.BiomeGrassland, tile.BiomeForest, tile.BiomeBeach:
		default:
			return
		}
		if c.IsSeaBorder || c.HasRiver {
			candidates = append(candidates, c)
		}
	})

	// Stable sort keeps scan order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return settlementScore(candidates[i]) > settlementScore(candidates[j])
	})

	if len(candidates) > maxSettlements {
		candidates = candidates[:maxSettlements]
	}

	for _, c := range candidates {
		basePopulation := 100 + rng.Intn(901)

		bonus := 1.0 + c.Moisture*0.5
		if c.IsSeaBorder {
			bonus *= 1.5
		}
		if c.HasRiver {
			bonus *= 1.2
		}

		c.Population = int(float64(basePopulation) * bonus)
		c.Wealth = float64(c.Population) * (0.5 + rng.Float64()*1.5)
	}

	slog.Debug("settlements placed", "count", len(candidates))
}

func settlementScore(c *Cell) float64 {
	score := c.Moisture
	if c.IsSeaBorder {
		score += 0.5
	}
	return score
}
