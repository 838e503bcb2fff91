package chunk

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/talgya/pirate-cove/internal/noise"
	"github.com/talgya/pirate-cove/internal/tile"
	"github.com/talgya/pirate-cove/internal/world"
)

// DefaultChunkSize is the tile grid edge length of one chunk.
const DefaultChunkSize = 32

// Micro-noise parameters.
var (
	detailScales     = []float64{0.1, 0.2, 0.4}
	detailAmplitudes = []float64{0.6, 0.3, 0.1}
)

const moistureNoiseScale = 0.15

// Chunk is one generated tile grid, keyed by local coordinates in
// [0, size). A chunk is generated at most once per generator; the cached
// pointer is returned on every subsequent request.
type Chunk struct {
	Coords Coords
	Size   int
	Tiles  map[[2]int]*tile.Info
}

// At returns the tile at local coordinates, or nil if outside the chunk.
func (c *Chunk) At(x, y int) *tile.Info {
	return c.Tiles[[2]int{x, y}]
}

// Generator synthesizes chunks lazily from a fully built macro grid. The
// grid must not change while the generator is in use; all mutable state is
// behind the cache mutex, so a generator is safe for concurrent callers.
type Generator struct {
	grid *world.Grid
	size int

	mu     sync.Mutex
	chunks map[Coords]*Chunk
}

// NewGenerator creates a chunk generator over a macro grid. A non-positive
// chunk size is a configuration error.
func NewGenerator(grid *world.Grid, size int) (*Generator, error) {
	if grid == nil {
		return nil, fmt.Errorf("chunk generator needs a macro grid")
	}
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	return &Generator{
		grid:   grid,
		size:   size,
		chunks: make(map[Coords]*Chunk),
	}, nil
}

// Size returns the chunk edge length in tiles.
func (g *Generator) Size() int {
	return g.size
}

// Generate returns the chunk at coords, generating it on first request.
// Holding the mutex across generation guarantees at most one generation per
// key; generation itself is a pure function of the macro grid and coords.
func (g *Generator) Generate(coords Coords) *Chunk {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.chunks[coords]; ok {
		return c
	}
	c := g.generate(coords, 0)
	g.chunks[coords] = c
	return c
}

// Cached returns the chunk at coords if it has been generated, else nil.
func (g *Generator) Cached(coords Coords) *Chunk {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.chunks[coords]
}

// TileAt resolves a world coordinate to its tile, generating the owning
// chunk on demand. World coordinates may be negative; floor division keeps
// the macro/local split consistent across zero.
func (g *Generator) TileAt(worldX, worldY int) *tile.Info {
	coords := Coords{
		MacroX: floorDiv(worldX, g.size),
		MacroY: floorDiv(worldY, g.size),
	}
	c := g.Generate(coords)
	return c.At(floorMod(worldX, g.size), floorMod(worldY, g.size))
}

// chunkSeed derives the per-chunk RNG seed. Every chunk gets its own RNG
// from this value and no other randomness, which is what makes chunk
// generation reproducible and parallelizable across keys.
func (g *Generator) chunkSeed(coords Coords, offset int64) int64 {
	return g.grid.Seed +
		int64(coords.MacroX)*1000 +
		int64(coords.MacroY)*1_000_000 +
		int64(coords.ChunkX)*17 +
		int64(coords.ChunkY)*23 +
		offset
}

func (g *Generator) generate(coords Coords, offset int64) *Chunk {
	slog.Debug("generating chunk",
		"macro_x", coords.MacroX, "macro_y", coords.MacroY,
		"chunk_x", coords.ChunkX, "chunk_y", coords.ChunkY,
	)

	owner := g.macroCell(coords.MacroX, coords.MacroY)

	var neighbors [numDirections]world.Cell
	for dir, off := range neighborOffsets {
		neighbors[dir] = g.macroCell(coords.MacroX+off[0], coords.MacroY+off[1])
	}

	rng := rand.New(rand.NewSource(g.chunkSeed(coords, offset)))

	c := &Chunk{
		Coords: coords,
		Size:   g.size,
		Tiles:  make(map[[2]int]*tile.Info, g.size*g.size),
	}
	for localY := 0; localY < g.size; localY++ {
		for localX := 0; localX < g.size; localX++ {
			c.Tiles[[2]int{localX, localY}] = g.generateTile(coords, localX, localY, owner, &neighbors)
		}
	}

	g.applyErosion(c)

	if owner.HasRiver {
		g.generateRiver(c, owner, rng)
	}

	g.placeResources(c, rng)

	return c
}

// macroCell resolves a macro coordinate, synthesizing a deep-ocean default
// for coordinates outside the grid.
func (g *Generator) macroCell(x, y int) world.Cell {
	if c := g.grid.Cell(x, y); c != nil {
		return *c
	}
	return world.DeepOceanCell(x, y)
}

func (g *Generator) generateTile(coords Coords, localX, localY int, owner world.Cell, neighbors *[numDirections]world.Cell) *tile.Info {
	worldX := coords.MacroX*g.size + localX
	worldY := coords.MacroY*g.size + localY

	bx := float64(localX) / float64(g.size)
	by := float64(localY) / float64(g.size)
	blended := blend(owner, neighbors, bx, by)

	height := blended.elevation + noise.Detail(float64(worldX), float64(worldY), detailScales, detailAmplitudes)
	moisture := blended.moisture + noise.Moisture(float64(worldX), float64(worldY), moistureNoiseScale)*0.2
	temperature := blended.temperature

	height = noise.Clamp(height, -1.0, 1.0)
	moisture = noise.Clamp(moisture, 0.0, 1.0)
	temperature = noise.Clamp(temperature, 0.0, 1.0)

	biome := tile.DetermineBiome(height, moisture, temperature)

	return &tile.Info{
		X: worldX,
		Y: worldY,
		Tile: tile.Tile{
			Glyph:    tile.Glyph(biome),
			Biome:    biome,
			Height:   height,
			Moisture: moisture,
		},
		Temperature: temperature,
		Passable:    !biome.IsWater(),
	}
}
