package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/pirate-cove/internal/tile"
)

func mustGenerate(t *testing.T, cfg GenConfig) *Grid {
	t.Helper()
	g, err := Generate(cfg)
	require.NoError(t, err)
	return g
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Width = 0
	_, err := Generate(cfg)
	assert.Error(t, err)

	cfg = DefaultGenConfig()
	cfg.Height = -3
	_, err = Generate(cfg)
	assert.Error(t, err)
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 12345

	a := mustGenerate(t, cfg)
	b := mustGenerate(t, cfg)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			ca := a.Cell(x, y)
			cb := b.Cell(x, y)
			require.NotNil(t, ca)
			require.NotNil(t, cb)
			assert.InDelta(t, ca.Elevation, cb.Elevation, 1e-5)
			assert.Equal(t, ca.Biome, cb.Biome, "biome mismatch at (%d,%d)", x, y)
			assert.Equal(t, ca.HasRiver, cb.HasRiver)
			assert.Equal(t, ca.Population, cb.Population)
		}
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42
	a := mustGenerate(t, cfg)

	cfg.Seed = 1337
	b := mustGenerate(t, cfg)

	differing := 0
	total := 0
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			total++
			if math.Abs(a.Cell(x, y).Elevation-b.Cell(x, y).Elevation) > 0.1 {
				differing++
			}
		}
	}
	assert.Greater(t, differing, total/2, "different seeds should produce substantially different elevation")
}

func TestLandRatioBounds(t *testing.T) {
	cfg := GenConfig{Width: 30, Height: 30, Seed: 42, SeaLevel: 0.0, LandRatio: 0.3}
	g := mustGenerate(t, cfg)

	land := len(g.LandCells())
	water := len(g.WaterCells())
	require.Equal(t, 900, land+water)

	ratio := float64(land) / 900.0
	assert.Greater(t, ratio, 0.1)
	assert.Less(t, ratio, 0.8)
}

func TestNeighborCounts(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	g := mustGenerate(t, cfg)

	assert.Len(t, g.Neighbors(5, 5, 1), 8, "interior cell")
	assert.Len(t, g.Neighbors(0, 0, 1), 3, "corner cell")
	assert.Len(t, g.Neighbors(0, 5, 1), 5, "edge cell")
	assert.Len(t, g.Neighbors(5, 5, 2), 24, "interior at distance 2")
}

func TestCellOutOfBounds(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	g := mustGenerate(t, cfg)

	assert.Nil(t, g.Cell(-1, 0))
	assert.Nil(t, g.Cell(cfg.Width, 0))
	assert.Nil(t, g.Cell(0, cfg.Height))
}

func TestWaterBiomeConsistency(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 99
	g := mustGenerate(t, cfg)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := g.Cell(x, y)
			if c.Elevation < g.SeaLevel {
				assert.Equal(t, tile.BiomeOcean, c.Biome, "below sea level at (%d,%d)", x, y)
				assert.Equal(t, LandformOcean, c.Landform)
			} else {
				assert.False(t, c.Biome == tile.BiomeOcean, "land cell classified ocean at (%d,%d)", x, y)
				assert.NotEqual(t, LandformOcean, c.Landform)
			}
		}
	}
}

func TestSeaBordersTouchWater(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 4242
	g := mustGenerate(t, cfg)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := g.Cell(x, y)
			if !c.IsSeaBorder {
				continue
			}
			assert.GreaterOrEqual(t, c.Elevation, g.SeaLevel, "sea border must be land")
			touchesWater := false
			for _, n := range g.Neighbors(x, y, 1) {
				if n.Elevation < g.SeaLevel {
					touchesWater = true
				}
			}
			assert.True(t, touchesWater, "sea border at (%d,%d) has no water neighbor", x, y)
		}
	}
}

func TestRiverCellsAreConsistent(t *testing.T) {
	// Try several seeds; not every small world grows a river.
	for _, seed := range []int64{42, 7, 99, 1234, 31337} {
		cfg := GenConfig{Width: 48, Height: 24, Seed: seed, LandRatio: 0.4}
		g := mustGenerate(t, cfg)

		for y := 0; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				c := g.Cell(x, y)
				// Entry sides are only recorded on cells a river flowed into.
				if !c.RiverEntrySides.Empty() {
					assert.True(t, c.HasRiver, "entry side without river at (%d,%d) seed %d", x, y, seed)
				}
			}
		}
	}
}

func TestSettlements(t *testing.T) {
	cfg := GenConfig{Width: 48, Height: 24, Seed: 42, LandRatio: 0.4}
	g := mustGenerate(t, cfg)

	settlements := g.Settlements()
	assert.LessOrEqual(t, len(settlements), 20)

	for _, s := range settlements {
		assert.Greater(t, s.Population, 0)
		assert.Greater(t, s.Wealth, 0.0)
		// Population 100..1000 times a bonus of at most 1.5*1.5*1.2.
		assert.LessOrEqual(t, s.Population, int(1000*1.5*1.5*1.2)+1)
		assert.GreaterOrEqual(t, s.Elevation, g.SeaLevel)
		switch s.Biome {
		case tile.BiomeGrassland, tile.BiomeForest, tile.BiomeBeach:
		default:
			t.Errorf("settlement on unsuitable biome %v", s.Biome)
		}
		assert.True(t, s.IsSeaBorder || s.HasRiver, "settlement needs water access")
	}
}

func TestRandomSeedAssignedWhenUnset(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 0
	g := mustGenerate(t, cfg)
	assert.NotZero(t, g.Seed)
}

func TestDeepOceanCellDefaults(t *testing.T) {
	c := DeepOceanCell(-3, 99)
	assert.Equal(t, -3, c.X)
	assert.Equal(t, 99, c.Y)
	assert.Equal(t, -0.5, c.Elevation)
	assert.Equal(t, 0.5, c.Moisture)
	assert.Equal(t, 0.5, c.Temperature)
	assert.Equal(t, tile.BiomeOcean, c.Biome)
	assert.Equal(t, LandformOcean, c.Landform)
}

func TestSides(t *testing.T) {
	var s Sides
	assert.True(t, s.Empty())
	s.Add(SideNorth)
	s.Add(SideWest)
	assert.True(t, s.Has(SideNorth))
	assert.True(t, s.Has(SideWest))
	assert.False(t, s.Has(SideEast))
	assert.False(t, s.Empty())
}
