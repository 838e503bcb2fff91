// Package game runs the interactive micro/macro game loop.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/talgya/pirate-cove/internal/chunk"
	"github.com/talgya/pirate-cove/internal/ecs"
	"github.com/talgya/pirate-cove/internal/input"
	"github.com/talgya/pirate-cove/internal/render"
	"github.com/talgya/pirate-cove/internal/world"
)

// Mode selects between the local chunk view and the world map view.
type Mode uint8

const (
	ModeMicro Mode = iota
	ModeMacro
)

func (m Mode) String() string {
	if m == ModeMacro {
		return "macro"
	}
	return "micro"
}

// Recorder receives every command the player issues. persistence.Session
// satisfies it.
type Recorder interface {
	RecordCommand(command, mode string) error
}

// Stats summarizes a finished game run.
type Stats struct {
	Commands int
	Moves    int
	Duration time.Duration
}

// Game holds the running state of one session.
type Game struct {
	grid     *world.Grid
	gen      *chunk.Generator
	renderer *render.Renderer
	source   input.Source
	recorder Recorder

	registry *ecs.Registry
	movement *ecs.MovementSystem
	renders  *ecs.RenderSystem
	player   ecs.Entity

	mode    Mode
	coords  chunk.Coords
	current *chunk.Chunk

	playerX, playerY int
	cursorX, cursorY int

	stats Stats
	start time.Time
}

// New builds a game over an existing grid and chunk generator. The player
// starts at the center of the center chunk. recorder may be nil.
func New(grid *world.Grid, gen *chunk.Generator, renderer *render.Renderer, source input.Source, recorder Recorder) (*Game, error) {
	if grid == nil || gen == nil || renderer == nil || source == nil {
		return nil, fmt.Errorf("grid, generator, renderer and input source are required")
	}

	g := &Game{
		grid:     grid,
		gen:      gen,
		renderer: renderer,
		source:   source,
		recorder: recorder,
		registry: ecs.NewRegistry(),
		cursorX:  grid.Width / 2,
		cursorY:  grid.Height / 2,
	}
	g.movement = ecs.NewMovementSystem(g.registry)
	g.renders = ecs.NewRenderSystem(g.registry)

	g.loadChunk(chunk.Coords{MacroX: g.cursorX, MacroY: g.cursorY})
	g.playerX = g.current.Size / 2
	g.playerY = g.current.Size / 2

	g.player = g.registry.Create()
	if err := ecs.Add(g.registry, g.player, ecs.Position{X: float64(g.playerX), Y: float64(g.playerY)}); err != nil {
		return nil, err
	}
	if err := ecs.Add(g.registry, g.player, ecs.Renderable{Glyph: '@', Color: 37, Visible: true, Layer: ecs.LayerCharacters}); err != nil {
		return nil, err
	}
	if err := ecs.Add(g.registry, g.player, ecs.Player{Name: "Captain"}); err != nil {
		return nil, err
	}
	g.renderer.SetCamera(g.playerX, g.playerY)

	return g, nil
}

// Mode returns the current view mode.
func (g *Game) Mode() Mode { return g.mode }

// PlayerPosition returns the player's chunk-local position.
func (g *Game) PlayerPosition() (int, int) { return g.playerX, g.playerY }

// Cursor returns the macro map cursor position.
func (g *Game) Cursor() (int, int) { return g.cursorX, g.cursorY }

// ChunkCoords returns the coordinates of the loaded chunk.
func (g *Game) ChunkCoords() chunk.Coords { return g.coords }

// Run drives the loop until the player quits or input fails.
func (g *Game) Run() (Stats, error) {
	g.start = time.Now()
	for {
		if g.mode == ModeMicro {
			g.movement.Update(1.0)
			g.renders.Update(1.0)
		}
		if err := g.renderFrame(); err != nil {
			return g.finish(), fmt.Errorf("render: %w", err)
		}

		cmd, err := g.source.Next()
		if err != nil {
			// Input errors end the session cleanly.
			slog.Debug("input closed", "error", err)
			return g.finish(), nil
		}
		g.record(cmd)

		switch {
		case cmd == input.CommandQuit:
			return g.finish(), nil
		case cmd == input.CommandToggleMode:
			g.toggleMode()
		case cmd.IsMovement():
			g.handleMovement(cmd)
		}
	}
}

func (g *Game) finish() Stats {
	g.stats.Duration = time.Since(g.start)
	return g.stats
}

func (g *Game) record(cmd input.Command) {
	g.stats.Commands++
	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordCommand(cmd.String(), g.mode.String()); err != nil {
		slog.Warn("failed to record command", "command", cmd, "error", err)
	}
}

func (g *Game) renderFrame() error {
	if g.mode == ModeMacro {
		return g.renderer.MacroMap(g.grid, g.cursorX, g.cursorY)
	}
	return g.renderer.Frame(
		g.current,
		g.renders.Items(),
		g.playerX, g.playerY,
		render.HUD{
			PlayerX: g.playerX,
			PlayerY: g.playerY,
			Tile:    g.current.At(g.playerX, g.playerY),
			Mode:    g.mode.String(),
		},
	)
}

func (g *Game) loadChunk(coords chunk.Coords) {
	slog.Debug("loading chunk", "macro_x", coords.MacroX, "macro_y", coords.MacroY)
	g.current = g.gen.Generate(coords)
	g.coords = coords
}

func (g *Game) toggleMode() {
	if g.mode == ModeMicro {
		g.mode = ModeMacro
		// The cursor follows the loaded chunk.
		g.cursorX = g.coords.MacroX
		g.cursorY = g.coords.MacroY
		return
	}

	g.mode = ModeMicro
	if g.cursorX != g.coords.MacroX || g.cursorY != g.coords.MacroY {
		g.loadChunk(chunk.Coords{MacroX: g.cursorX, MacroY: g.cursorY})
		g.setPlayer(g.current.Size/2, g.current.Size/2)
	}
}

func (g *Game) handleMovement(cmd input.Command) {
	dx, dy := cmd.Delta()

	if g.mode == ModeMacro {
		g.cursorX = clamp(g.cursorX+dx, 0, g.grid.Width-1)
		g.cursorY = clamp(g.cursorY+dy, 0, g.grid.Height-1)
		return
	}

	newX, newY := g.playerX+dx, g.playerY+dy
	if newX < 0 || newX >= g.current.Size || newY < 0 || newY >= g.current.Size {
		g.transitionChunk(newX, newY)
		return
	}
	g.movePlayer(newX, newY)
}

// movePlayer commits a chunk-local move if the target tile is passable.
func (g *Game) movePlayer(x, y int) {
	info := g.current.At(x, y)
	if info == nil || !info.Passable {
		return
	}
	g.setPlayer(x, y)
	g.stats.Moves++
}

func (g *Game) setPlayer(x, y int) {
	g.playerX, g.playerY = x, y
	if pos, ok := ecs.Get[ecs.Position](g.registry, g.player); ok {
		pos.X, pos.Y = float64(x), float64(y)
		ecs.Add(g.registry, g.player, pos)
	}
	g.renderer.SetCamera(x, y)
}

// transitionChunk moves into an adjacent chunk, wrapping the player to the
// opposite edge. Moves off the macro grid are ignored.
func (g *Game) transitionChunk(newX, newY int) {
	size := g.current.Size
	macroDX, macroDY := 0, 0

	switch {
	case newX < 0:
		macroDX, newX = -1, size-1
	case newX >= size:
		macroDX, newX = 1, 0
	}
	switch {
	case newY < 0:
		macroDY, newY = -1, size-1
	case newY >= size:
		macroDY, newY = 1, 0
	}

	macroX := g.coords.MacroX + macroDX
	macroY := g.coords.MacroY + macroDY
	if macroX < 0 || macroX >= g.grid.Width || macroY < 0 || macroY >= g.grid.Height {
		return
	}

	g.loadChunk(chunk.Coords{MacroX: macroX, MacroY: macroY})
	g.movePlayer(newX, newY)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
