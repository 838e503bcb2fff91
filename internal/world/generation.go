// Macro world generation: nine ordered passes over the grid, all driven by a
// single seeded RNG plus pure noise functions of cell coordinates.
package world

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/talgya/pirate-cove/internal/entropy"
	"github.com/talgya/pirate-cove/internal/noise"
	"github.com/talgya/pirate-cove/internal/tile"
)

// Noise parameters for the elevation pass.
var (
	elevationScales     = []float64{0.01, 0.02, 0.04, 0.08}
	elevationAmplitudes = []float64{1.0, 0.5, 0.25, 0.125}
)

// How far the ocean-proximity search expands, in Manhattan rings.
const oceanSearchDistance = 5

// GenConfig holds macro world generation parameters.
type GenConfig struct {
	Width     int     // Grid width in macro cells
	Height    int     // Grid height in macro cells
	Seed      int64   // World seed (0 = draw a random 32-bit seed)
	SeaLevel  float64 // Elevation threshold for water
	LandRatio float64 // Target land fraction, shifts elevation down
}

// DefaultGenConfig returns the standard world shape.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:     32,
		Height:    16,
		Seed:      0,
		SeaLevel:  0.0,
		LandRatio: 0.3,
	}
}

// Generate builds a complete macro grid from the configuration. The returned
// grid is immutable. Invalid dimensions are a configuration error.
func Generate(cfg GenConfig) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("world dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed32()
	}

	g := &Grid{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Seed:      seed,
		SeaLevel:  cfg.SeaLevel,
		LandRatio: cfg.LandRatio,
		cells:     make(map[[2]int]*Cell, cfg.Width*cfg.Height),
	}
	rng := rand.New(rand.NewSource(seed))

	slog.Info("generating macro world", "width", cfg.Width, "height", cfg.Height, "seed", seed)

	g.generateElevation()
	g.generateTemperature(rng)
	g.generateMoisture(rng)
	g.determineClimates()
	g.determineBiomes()
	g.classifyLandforms()
	g.generateRivers()
	g.markSeaBorders()
	g.generateSettlements(rng)

	slog.Debug("macro world ready",
		"cells", g.CellCount(),
		"land", len(g.LandCells()),
		"settlements", len(g.Settlements()),
	)
	return g, nil
}

// generateElevation sums four octaves of wave noise, normalizes to [0, 1],
// applies a radial island falloff, and shifts for the target land ratio.
func (g *Grid) generateElevation() {
	centerX := g.Width / 2
	centerY := g.Height / 2
	maxDistance := math.Sqrt(float64(centerX*centerX + centerY*centerY))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			elevation := noise.Wave(float64(x), float64(y), float64(g.Seed), elevationScales, elevationAmplitudes)
			elevation = (elevation + 1.0) * 0.5

			dx := float64(x - centerX)
			dy := float64(y - centerY)
			distance := math.Sqrt(dx*dx + dy*dy)
			edgeFactor := 1.0 - math.Pow(distance/maxDistance, 2)
			elevation *= edgeFactor

			elevation -= 0.5 - g.LandRatio

			g.cells[[2]int{x, y}] = &Cell{X: x, Y: y, Elevation: elevation}
		}
	}
}

// generateTemperature derives temperature from latitude, elevation cooling,
// and a small random wobble.
func (g *Grid) generateTemperature(rng *rand.Rand) {
	equator := g.Height / 2
	g.scan(func(c *Cell) {
		latitudeFactor := 0.0
		if equator > 0 {
			latitudeFactor = math.Abs(float64(c.Y-equator)) / float64(equator)
		}
		baseTemp := 1.0 - latitudeFactor

		cooling := math.Max(0, c.Elevation) * 0.3
		wobble := (rng.Float64() - 0.5) * 0.2

		c.Temperature = noise.Clamp(baseTemp-cooling+wobble, 0.0, 1.0)
	})
}

// generateMoisture combines a random base with an ocean-proximity bonus that
// fades with elevation (rain shadow).
func (g *Grid) generateMoisture(rng *rand.Rand) {
	g.scan(func(c *Cell) {
		base := 0.5 + (rng.Float64()-0.5)*0.4
		proximity := g.oceanProximity(c.X, c.Y)
		elevationFactor := 1.0 - math.Max(0, c.Elevation)

		c.Moisture = noise.Clamp(base+proximity*0.3*elevationFactor, 0.0, 1.0)
	})
}

// oceanProximity searches expanding Manhattan rings for the nearest cell
// below sea level, returning 1 adjacent and fading to 0 beyond the search
// distance.
func (g *Grid) oceanProximity(x, y int) float64 {
	for distance := 1; distance <= oceanSearchDistance; distance++ {
		for dx := -distance; dx <= distance; dx++ {
			for dy := -distance; dy <= distance; dy++ {
				if abs(dx)+abs(dy) != distance {
					continue
				}
				if c := g.Cell(x+dx, y+dy); c != nil && c.Elevation < g.SeaLevel {
					return 1.0 - float64(distance)/float64(oceanSearchDistance)
				}
			}
		}
	}
	return 0.0
}

// determineClimates bands cells by temperature, splitting the middle band on
// moisture into arid and cold.
func (g *Grid) determineClimates() {
	g.scan(func(c *Cell) {
		switch {
		case c.Temperature > 0.7:
			c.Climate = tile.ClimateTropical
		case c.Temperature > 0.5:
			c.Climate = tile.ClimateTemperate
		case c.Temperature > 0.3:
			if c.Moisture < 0.3 {
				c.Climate = tile.ClimateArid
			} else {
				c.Climate = tile.ClimateCold
			}
		default:
			c.Climate = tile.ClimateArctic
		}
	})
}

func (g *Grid) determineBiomes() {
	g.scan(func(c *Cell) {
		c.Biome = tile.DetermineBiome(c.Elevation, c.Moisture, c.Temperature)
	})
}

// classifyLandforms names each land cell by its land/water neighbor counts.
func (g *Grid) classifyLandforms() {
	g.scan(func(c *Cell) {
		if c.Elevation < g.SeaLevel {
			c.Landform = LandformOcean
			return
		}

		neighbors := g.Neighbors(c.X, c.Y, 1)
		landNeighbors := 0
		for _, n := range neighbors {
			if n.Elevation >= g.SeaLevel {
				landNeighbors++
			}
		}
		waterNeighbors := len(neighbors) - landNeighbors

		switch {
		case landNeighbors == 0:
			c.Landform = LandformAtoll
		case waterNeighbors >= 6:
			c.Landform = LandformIsland
		case waterNeighbors >= 3:
			c.Landform = LandformArchipelago
		case waterNeighbors >= 1:
			c.Landform = LandformPeninsula
		default:
			c.Landform = LandformContinent
		}
	})
}

// markSeaBorders flags land cells with at least one neighbor below sea level.
func (g *Grid) markSeaBorders() {
	g.scan(func(c *Cell) {
		if c.Elevation < g.SeaLevel {
			return
		}
		for _, n := range g.Neighbors(c.X, c.Y, 1) {
			if n.Elevation < g.SeaLevel {
				c.IsSeaBorder = true
				return
			}
		}
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
