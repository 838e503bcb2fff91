package ecs

// Render layers, lowest drawn first.
const (
	LayerTerrain    = 0
	LayerObjects    = 1
	LayerCharacters = 2
	LayerEffects    = 3
)

// Position places an entity in world coordinates.
type Position struct {
	X, Y  float64
	Layer string
}

// Velocity is per-update movement applied by the movement system.
type Velocity struct {
	DX, DY float64
}

// Renderable describes how an entity is drawn.
type Renderable struct {
	Glyph   rune
	Color   int // ANSI foreground code
	Visible bool
	Layer   int
}

// Player marks the player-controlled entity.
type Player struct {
	Name string
}
