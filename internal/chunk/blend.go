package chunk

import "github.com/talgya/pirate-cove/internal/world"

// Neighbor directions around a macro cell, indexed by the blend table.
const (
	dirNorth = iota
	dirSouth
	dirEast
	dirWest
	dirNortheast
	dirNorthwest
	dirSoutheast
	dirSouthwest
	numDirections
)

// neighborOffsets maps a direction index to the macro grid offset.
var neighborOffsets = [numDirections][2]int{
	dirNorth:     {0, -1},
	dirSouth:     {0, 1},
	dirEast:      {1, 0},
	dirWest:      {-1, 0},
	dirNortheast: {1, -1},
	dirNorthwest: {-1, -1},
	dirSoutheast: {1, 1},
	dirSouthwest: {-1, 1},
}

// Tiles within this fraction of a chunk edge average with the neighbor on
// that side; corners average with the diagonal neighbor. Everything else is
// interior and keeps the owning cell's value. This is a deliberate soft
// step at the 10%/90% bands, not bilinear interpolation.
const blendThreshold = 0.1

const blendInterior = -1

// blendTable maps a zone index (xBand + 3*yBand, bands: 0 low edge, 1 mid,
// 2 high edge) to the neighbor direction to average with.
var blendTable = [9]int{
	dirNorthwest, dirNorth, dirNortheast,
	dirWest, blendInterior, dirEast,
	dirSouthwest, dirSouth, dirSoutheast,
}

// blendZone returns the blend table index for local blend factors in [0, 1).
func blendZone(bx, by float64) int {
	return band(bx) + 3*band(by)
}

func band(v float64) int {
	switch {
	case v < blendThreshold:
		return 0
	case v > 1-blendThreshold:
		return 2
	default:
		return 1
	}
}

// blendedCell holds the macro field values a tile samples from after zone
// resolution.
type blendedCell struct {
	elevation   float64
	moisture    float64
	temperature float64
}

// blend averages the owning cell with the zone's neighbor, or passes the
// owning cell through for interior tiles.
func blend(owner world.Cell, neighbors *[numDirections]world.Cell, bx, by float64) blendedCell {
	dir := blendTable[blendZone(bx, by)]
	if dir == blendInterior {
		return blendedCell{
			elevation:   owner.Elevation,
			moisture:    owner.Moisture,
			temperature: owner.Temperature,
		}
	}
	n := neighbors[dir]
	return blendedCell{
		elevation:   (owner.Elevation + n.Elevation) * 0.5,
		moisture:    (owner.Moisture + n.Moisture) * 0.5,
		temperature: (owner.Temperature + n.Temperature) * 0.5,
	}
}
