// Package render draws the game to an ANSI terminal.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/talgya/pirate-cove/internal/chunk"
	"github.com/talgya/pirate-cove/internal/ecs"
	"github.com/talgya/pirate-cove/internal/tile"
	"github.com/talgya/pirate-cove/internal/world"
)

const (
	// DefaultViewportWidth and DefaultViewportHeight size the micro view.
	DefaultViewportWidth  = 40
	DefaultViewportHeight = 20

	hudHeight = 5
)

// HUD carries the status line contents drawn below the viewport.
type HUD struct {
	PlayerX, PlayerY int
	Tile             *tile.Info
	Mode             string
}

// Renderer draws chunk viewports and macro map views as ANSI frames to an
// io.Writer. Each frame is assembled in a buffer and written once.
type Renderer struct {
	out    io.Writer
	Width  int
	Height int

	cameraX int
	cameraY int
}

// New creates a renderer with the given viewport size. Non-positive
// dimensions fall back to the defaults.
func New(out io.Writer, width, height int) *Renderer {
	if width <= 0 {
		width = DefaultViewportWidth
	}
	if height <= 0 {
		height = DefaultViewportHeight
	}
	return &Renderer{out: out, Width: width, Height: height}
}

// Setup clears the screen and hides the cursor.
func (r *Renderer) Setup() error {
	_, err := fmt.Fprint(r.out, "\x1b[2J\x1b[?25l")
	return err
}

// Cleanup restores the cursor and colors and moves past the HUD.
func (r *Renderer) Cleanup() error {
	_, err := fmt.Fprintf(r.out, "\x1b[0m\x1b[?25h\x1b[%d;1H\n", r.Height+hudHeight+1)
	return err
}

// SetCamera centers the viewport on a world position.
func (r *Renderer) SetCamera(worldX, worldY int) {
	r.cameraX = worldX
	r.cameraY = worldY
}

// WorldToScreen converts world coordinates to viewport coordinates.
func (r *Renderer) WorldToScreen(worldX, worldY int) (int, int) {
	return worldX - (r.cameraX - r.Width/2), worldY - (r.cameraY - r.Height/2)
}

// ScreenToWorld converts viewport coordinates to world coordinates.
func (r *Renderer) ScreenToWorld(screenX, screenY int) (int, int) {
	return screenX + (r.cameraX - r.Width/2), screenY + (r.cameraY - r.Height/2)
}

func (r *Renderer) onScreen(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Frame renders the chunk viewport, entity overlay, player marker and HUD.
// Tile coordinates are chunk-local; positions outside the chunk draw as
// ocean.
func (r *Renderer) Frame(c *chunk.Chunk, entities []ecs.RenderItem, playerX, playerY int, hud HUD) error {
	glyphs := make([]rune, r.Width*r.Height)
	colors := make([]int, r.Width*r.Height)

	for sy := 0; sy < r.Height; sy++ {
		for sx := 0; sx < r.Width; sx++ {
			wx, wy := r.ScreenToWorld(sx, sy)
			glyph, color := tile.Glyph(tile.BiomeOcean), tile.Color(tile.BiomeOcean)
			if c != nil {
				if info := c.At(wx, wy); info != nil {
					glyph = info.Tile.Glyph
					color = tile.Color(info.Tile.Biome)
				}
			}
			glyphs[sy*r.Width+sx] = glyph
			colors[sy*r.Width+sx] = color
		}
	}

	// Entities are already layer-sorted; later items draw on top.
	for _, item := range entities {
		sx, sy := r.WorldToScreen(item.X, item.Y)
		if r.onScreen(sx, sy) {
			glyphs[sy*r.Width+sx] = item.Glyph
			colors[sy*r.Width+sx] = item.Color
		}
	}

	if sx, sy := r.WorldToScreen(playerX, playerY); r.onScreen(sx, sy) {
		glyphs[sy*r.Width+sx] = '@'
		colors[sy*r.Width+sx] = 37
	}

	var buf bytes.Buffer
	buf.WriteString("\x1b[H")
	for sy := 0; sy < r.Height; sy++ {
		current := -1
		for sx := 0; sx < r.Width; sx++ {
			if color := colors[sy*r.Width+sx]; color != current {
				fmt.Fprintf(&buf, "\x1b[%dm", color)
				current = color
			}
			buf.WriteRune(glyphs[sy*r.Width+sx])
		}
		buf.WriteString("\x1b[0m\r\n")
	}
	r.writeHUD(&buf, hud)

	_, err := r.out.Write(buf.Bytes())
	return err
}

func (r *Renderer) writeHUD(buf *bytes.Buffer, hud HUD) {
	buf.WriteString(strings.Repeat("=", r.Width) + "\x1b[K\r\n")
	fmt.Fprintf(buf, "Position: (%d, %d)\x1b[K\r\n", hud.PlayerX, hud.PlayerY)
	if hud.Tile != nil {
		fmt.Fprintf(buf, "Tile: %s (H:%.2f M:%.2f)", hud.Tile.Tile.Biome, hud.Tile.Tile.Height, hud.Tile.Tile.Moisture)
		if hud.Tile.Resource != tile.ResourceNone {
			fmt.Fprintf(buf, " %s x%d", hud.Tile.Resource, hud.Tile.Quantity)
		}
		buf.WriteString("\x1b[K\r\n")
	} else {
		buf.WriteString("Tile: unknown\x1b[K\r\n")
	}
	fmt.Fprintf(buf, "Camera: (%d, %d)\x1b[K\r\n", r.cameraX, r.cameraY)
	fmt.Fprintf(buf, "Mode: %s | WASD: Move | M: Toggle Mode | Q: Quit\x1b[K\r\n", hud.Mode)
}

// MacroMap renders the world grid with the cursor cell in reverse video.
// Settlements draw as '#' and river cells as '+' on top of biome glyphs.
func (r *Renderer) MacroMap(g *world.Grid, cursorX, cursorY int) error {
	var buf bytes.Buffer
	buf.WriteString("\x1b[H\x1b[2J")
	fmt.Fprintf(&buf, "Macro Map View (%dx%d)\r\n", g.Width, g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.Cell(x, y)
			if cell == nil {
				buf.WriteByte(' ')
				continue
			}
			glyph := tile.Glyph(cell.Biome)
			switch {
			case cell.Population > 0:
				glyph = '#'
			case cell.HasRiver:
				glyph = '+'
			}
			if x == cursorX && y == cursorY {
				fmt.Fprintf(&buf, "\x1b[7m%c\x1b[0m", glyph)
			} else {
				fmt.Fprintf(&buf, "\x1b[%dm%c\x1b[0m", tile.Color(cell.Biome), glyph)
			}
		}
		buf.WriteString("\r\n")
	}

	buf.WriteString(strings.Repeat("=", g.Width) + "\r\n")
	fmt.Fprintf(&buf, "Cursor: (%d, %d)\r\n", cursorX, cursorY)
	if cell := g.Cell(cursorX, cursorY); cell != nil {
		fmt.Fprintf(&buf, "Cell: %s %s", cell.Biome, cell.Landform)
		if cell.Population > 0 {
			fmt.Fprintf(&buf, " | settlement pop %d wealth %.0f", cell.Population, cell.Wealth)
		}
		buf.WriteString("\r\n")
	} else {
		buf.WriteString("Cell: unknown\r\n")
	}
	buf.WriteString("Legend: # settlement, + river | Mode: macro | WASD: Move Cursor | M: Enter Micro | Q: Quit\r\n")

	_, err := r.out.Write(buf.Bytes())
	return err
}

// MapSummary writes a plain text dump of the macro map with terrain counts,
// used by demo mode.
func MapSummary(w io.Writer, g *world.Grid) error {
	fmt.Fprintf(w, "Macro Map (%dx%d):\n", g.Width, g.Height)
	fmt.Fprintln(w, strings.Repeat("=", g.Width+2))
	for y := 0; y < g.Height; y++ {
		var row strings.Builder
		row.WriteByte('|')
		for x := 0; x < g.Width; x++ {
			if cell := g.Cell(x, y); cell != nil {
				row.WriteRune(tile.Glyph(cell.Biome))
			} else {
				row.WriteByte(' ')
			}
		}
		row.WriteByte('|')
		fmt.Fprintln(w, row.String())
	}
	fmt.Fprintln(w, strings.Repeat("=", g.Width+2))

	counts := make(map[tile.Biome]int)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if cell := g.Cell(x, y); cell != nil {
				counts[cell.Biome]++
			}
		}
	}
	for b := tile.BiomeOcean; b <= tile.BiomeLake; b++ {
		if counts[b] > 0 {
			fmt.Fprintf(w, "%-10s %c  %d\n", b, tile.Glyph(b), counts[b])
		}
	}
	fmt.Fprintf(w, "Land cells: %d, Water cells: %d, Settlements: %d\n",
		len(g.LandCells()), len(g.WaterCells()), len(g.Settlements()))
	return nil
}
