// Package tile provides the tile value model: biome/climate classification,
// glyph and color tables, and the mutable tile container with resource logic.
package tile

// Biome classifies a tile or macro cell by terrain type.
type Biome uint8

const (
	BiomeOcean     Biome = iota // Below sea level
	BiomeBeach                  // Narrow band just above sea level
	BiomeGrassland              // Fertile open land
	BiomeForest                 // Timber and game
	BiomeHills                  // Rolling uplands, minable
	BiomeMountains              // High elevation, rich veins
	BiomeSwamp                  // Wet lowland
	BiomeDesert                 // Arid land
	BiomeJungle                 // Hot and very wet
	BiomeTundra                 // Cold barrens
	BiomeRiver                  // Carved by river tracing
	BiomeLake                   // Standing fresh water
)

// IsWater reports whether the biome is water-class. Biome is the single
// source of truth for the water/land split; elevation is never consulted.
func (b Biome) IsWater() bool {
	return b == BiomeOcean || b == BiomeRiver || b == BiomeLake
}

// String returns a human-readable biome name.
func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "ocean"
	case BiomeBeach:
		return "beach"
	case BiomeGrassland:
		return "grassland"
	case BiomeForest:
		return "forest"
	case BiomeHills:
		return "hills"
	case BiomeMountains:
		return "mountains"
	case BiomeSwamp:
		return "swamp"
	case BiomeDesert:
		return "desert"
	case BiomeJungle:
		return "jungle"
	case BiomeTundra:
		return "tundra"
	case BiomeRiver:
		return "river"
	case BiomeLake:
		return "lake"
	default:
		return "unknown"
	}
}

// Climate bands a macro cell by temperature and moisture.
type Climate uint8

const (
	ClimateTropical Climate = iota
	ClimateTemperate
	ClimateArid
	ClimateCold
	ClimateArctic
)

// String returns a human-readable climate name.
func (c Climate) String() string {
	switch c {
	case ClimateTropical:
		return "tropical"
	case ClimateTemperate:
		return "temperate"
	case ClimateArid:
		return "arid"
	case ClimateCold:
		return "cold"
	case ClimateArctic:
		return "arctic"
	default:
		return "unknown"
	}
}

// DetermineBiome maps elevation, moisture, and temperature to a biome.
// Pure function; first matching rule wins. Both macro cells and chunk tiles
// classify through this table, so the thresholds must stay in sync.
func DetermineBiome(height, moisture, temperature float64) Biome {
	if height < 0.0 {
		return BiomeOcean
	}
	if height < 0.1 {
		return BiomeBeach
	}

	switch {
	case temperature < 0.2: // Cold
		return BiomeTundra

	case temperature < 0.4: // Cool
		if moisture > 0.6 {
			return BiomeForest
		}
		if moisture > 0.3 {
			return BiomeGrassland
		}
		return BiomeHills

	case temperature < 0.7: // Temperate
		switch {
		case height > 0.7:
			return BiomeMountains
		case height > 0.5:
			return BiomeHills
		case moisture > 0.7:
			return BiomeForest
		case moisture > 0.6:
			return BiomeSwamp
		case moisture > 0.3:
			return BiomeGrassland
		default:
			return BiomeDesert
		}

	default: // Hot
		switch {
		case height > 0.6:
			return BiomeMountains
		case moisture > 0.8:
			return BiomeJungle
		case moisture > 0.6:
			return BiomeSwamp
		case moisture > 0.2:
			return BiomeGrassland
		default:
			return BiomeDesert
		}
	}
}

// Glyph returns the default map glyph for a biome.
func Glyph(b Biome) rune {
	switch b {
	case BiomeOcean, BiomeDesert, BiomeRiver, BiomeLake:
		return '~'
	case BiomeBeach, BiomeGrassland, BiomeTundra:
		return '.'
	case BiomeForest, BiomeJungle:
		return '♠'
	case BiomeHills:
		return '^'
	case BiomeMountains:
		return '▲'
	case BiomeSwamp:
		return '≈'
	default:
		return '.'
	}
}

// Color returns the default ANSI foreground color code for a biome.
func Color(b Biome) int {
	switch b {
	case BiomeOcean, BiomeLake:
		return 34 // blue
	case BiomeBeach, BiomeHills, BiomeDesert:
		return 33 // yellow
	case BiomeGrassland, BiomeForest:
		return 32 // green
	case BiomeMountains:
		return 37 // white
	case BiomeSwamp:
		return 36 // cyan
	case BiomeJungle:
		return 92 // bright green
	case BiomeTundra:
		return 97 // bright white
	case BiomeRiver:
		return 96 // bright cyan
	default:
		return 37
	}
}
