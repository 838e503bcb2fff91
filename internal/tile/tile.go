package tile

// Resource enumerates harvestable resource types.
type Resource uint8

const (
	ResourceNone Resource = iota
	ResourceIronOre
	ResourceCopperOre
	ResourceSilverOre
	ResourceGoldOre
	ResourceStone
	ResourceClay
	ResourceWood
	ResourceSalt
)

// String returns a human-readable resource name.
func (r Resource) String() string {
	switch r {
	case ResourceIronOre:
		return "iron ore"
	case ResourceCopperOre:
		return "copper ore"
	case ResourceSilverOre:
		return "silver ore"
	case ResourceGoldOre:
		return "gold ore"
	case ResourceStone:
		return "stone"
	case ResourceClay:
		return "clay"
	case ResourceWood:
		return "wood"
	case ResourceSalt:
		return "salt"
	default:
		return "none"
	}
}

// Tile is the immutable terrain value of one map position. Edits (erosion,
// river conversion) replace the whole value on the owning Info; never
// mutate a Tile in place.
type Tile struct {
	Glyph    rune
	Biome    Biome
	Height   float64
	Moisture float64
}

// Info wraps a Tile with world position and the cheaper-to-mutate state:
// temperature, passability, and resource stock. Owned exclusively by the
// chunk that generated it.
type Info struct {
	X, Y        int
	Tile        Tile
	Temperature float64
	Passable    bool
	Resource    Resource
	Quantity    int
}

// IsWater reports whether this tile is water, by biome alone.
func (i *Info) IsWater() bool {
	return i.Tile.Biome.IsWater()
}

// IsLand reports whether this tile is land. It keeps the historical
// height >= 0 cross-check on top of the biome test; when erosion leaves a
// stale height on a reclassified river tile, the biome still wins: such a
// tile is water, never land. See DESIGN.md.
func (i *Info) IsLand() bool {
	return !i.IsWater() && i.Tile.Height >= 0.0
}

// CanFarm reports whether this tile supports farming.
func (i *Info) CanFarm() bool {
	if !i.IsLand() {
		return false
	}
	b := i.Tile.Biome
	return (b == BiomeGrassland || b == BiomeForest || b == BiomeSwamp) &&
		i.Tile.Moisture > 0.3 &&
		i.Tile.Height < 0.8
}

// CanMine reports whether this tile supports mining.
func (i *Info) CanMine() bool {
	if !i.IsLand() {
		return false
	}
	b := i.Tile.Biome
	return (b == BiomeHills || b == BiomeMountains) && i.Tile.Height > 0.4
}

// CanBuild reports whether this tile supports construction.
func (i *Info) CanBuild() bool {
	return i.IsLand() &&
		i.Passable &&
		i.Tile.Biome != BiomeSwamp &&
		i.Tile.Height < 0.7
}

// Fertility scores farming productivity in [0, 1].
func (i *Info) Fertility() float64 {
	if !i.CanFarm() {
		return 0.0
	}

	var base float64
	switch i.Tile.Biome {
	case BiomeGrassland:
		base = 0.8
	case BiomeForest:
		base = 0.6
	case BiomeSwamp:
		base = 1.0
	}

	moistureBonus := i.Tile.Moisture * 1.5
	if moistureBonus > 1.0 {
		moistureBonus = 1.0
	}
	elevationPenalty := 1.0 - i.Tile.Height*2
	if elevationPenalty < 0.0 {
		elevationPenalty = 0.0
	}

	return base * moistureBonus * elevationPenalty
}

// MiningRichness scores mining productivity in [0, 2].
func (i *Info) MiningRichness() float64 {
	if !i.CanMine() {
		return 0.0
	}

	var base float64
	switch i.Tile.Biome {
	case BiomeHills:
		base = 0.6
	case BiomeMountains:
		base = 1.0
	}

	elevationBonus := i.Tile.Height * 2
	if elevationBonus > 2.0 {
		elevationBonus = 2.0
	}

	return base * elevationBonus
}

// SetResource places a resource stock on this tile.
func (i *Info) SetResource(r Resource, quantity int) {
	i.Resource = r
	i.Quantity = quantity
}

// Harvest removes up to amount from the tile's resource stock and returns
// the amount actually taken. Depleting the stock clears the resource type.
func (i *Info) Harvest(amount int) int {
	if i.Resource == ResourceNone || i.Quantity <= 0 {
		return 0
	}

	harvested := amount
	if harvested > i.Quantity {
		harvested = i.Quantity
	}
	i.Quantity -= harvested

	if i.Quantity <= 0 {
		i.Resource = ResourceNone
		i.Quantity = 0
	}

	return harvested
}
