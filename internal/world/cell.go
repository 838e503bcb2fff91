// Package world provides the coarse macro grid: climate cells, landforms,
// river flags, and settlement data generated once per world from a seed.
package world

import "github.com/talgya/pirate-cove/internal/tile"

// Side is a cardinal direction on the macro grid.
type Side uint8

const (
	SideNorth Side = iota
	SideSouth
	SideEast
	SideWest
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	case SideEast:
		return "east"
	case SideWest:
		return "west"
	default:
		return "unknown"
	}
}

// Sides is a set of cardinal directions, used for river entry sides.
type Sides uint8

// Add inserts a side into the set.
func (s *Sides) Add(side Side) {
	*s |= 1 << side
}

// Has reports whether the set contains a side.
func (s Sides) Has(side Side) bool {
	return s&(1<<side) != 0
}

// Empty reports whether no sides are set.
func (s Sides) Empty() bool {
	return s == 0
}

// Landform classifies the macro-scale shape of a cell by its neighbors.
type Landform uint8

const (
	LandformOcean       Landform = iota // Below sea level
	LandformIsland                      // Mostly surrounded by water
	LandformArchipelago                 // Scattered land among water
	LandformContinent                   // Interior land
	LandformAtoll                       // Land with no land neighbors
	LandformPeninsula                   // Land touching some water
)

// String returns a human-readable landform name.
func (l Landform) String() string {
	switch l {
	case LandformOcean:
		return "ocean"
	case LandformIsland:
		return "island"
	case LandformArchipelago:
		return "archipelago"
	case LandformContinent:
		return "continent"
	case LandformAtoll:
		return "atoll"
	case LandformPeninsula:
		return "peninsula"
	default:
		return "unknown"
	}
}

// Cell is one cell of the macro grid. Cells are created and mutated only by
// the generation pipeline; afterwards the grid is read-only and safe to
// share across goroutines.
type Cell struct {
	X, Y int

	Elevation   float64 // roughly [-1, 1]; negative is below sea level
	Moisture    float64 // [0, 1]
	Temperature float64 // [0, 1]

	Climate  tile.Climate
	Biome    tile.Biome
	Landform Landform

	HasRiver        bool
	RiverEntrySides Sides
	IsSeaBorder     bool

	// Settlement data, zero for uninhabited cells.
	Population int
	Wealth     float64
}

// DeepOceanCell synthesizes the default cell used for coordinates outside
// the generated grid. Missing cells are never an error.
func DeepOceanCell(x, y int) Cell {
	return Cell{
		X:           x,
		Y:           y,
		Elevation:   -0.5,
		Moisture:    0.5,
		Temperature: 0.5,
		Climate:     tile.ClimateTemperate,
		Biome:       tile.BiomeOcean,
		Landform:    LandformOcean,
	}
}
