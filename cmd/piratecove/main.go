// Command piratecove runs the Pirate Cove roguelike: a two-level procedurally
// generated island world explored from the terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/pirate-cove/internal/chunk"
	"github.com/talgya/pirate-cove/internal/config"
	"github.com/talgya/pirate-cove/internal/game"
	"github.com/talgya/pirate-cove/internal/input"
	"github.com/talgya/pirate-cove/internal/persistence"
	"github.com/talgya/pirate-cove/internal/render"
	"github.com/talgya/pirate-cove/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		seed       = flag.Int64("seed", 0, "world seed (0 = random)")
		dbPath     = flag.String("db", "", "override database path")
		demo       = flag.Bool("demo", false, "print the macro map and exit")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	grid, err := world.Generate(cfg.GenConfig())
	if err != nil {
		slog.Error("world generation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("world generated",
		"seed", grid.Seed,
		"size", fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"land_cells", len(grid.LandCells()),
		"settlements", len(grid.Settlements()),
	)

	if *demo {
		render.MapSummary(os.Stdout, grid)
		return
	}

	if err := run(cfg, grid); err != nil {
		slog.Error("game failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, grid *world.Grid) error {
	gen, err := chunk.NewGenerator(grid, cfg.ChunkSize)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	store, err := persistence.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := store.StartSession(grid.Seed)
	if err != nil {
		return err
	}
	slog.Info("session started", "id", session.ID, "db", cfg.DatabasePath)

	terminal, err := input.OpenTerminal(os.Stdin)
	if err != nil {
		return err
	}
	defer terminal.Close()

	renderer := render.New(os.Stdout, cfg.Viewport.Width, cfg.Viewport.Height)
	if err := renderer.Setup(); err != nil {
		return err
	}
	defer renderer.Cleanup()

	// In raw mode Ctrl+C arrives as a key and quits through the game loop;
	// this covers SIGTERM and cooked-mode interrupts.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		renderer.Cleanup()
		terminal.Close()
		slog.Info("interrupted", "signal", sig)
		os.Exit(130)
	}()

	g, err := game.New(grid, gen, renderer, terminal, session)
	if err != nil {
		return err
	}

	stats, err := g.Run()
	if err != nil {
		return err
	}

	px, py := g.PlayerPosition()
	coords := g.ChunkCoords()
	if err := session.SavePlayerState(persistence.PlayerState{
		MacroX: coords.MacroX,
		MacroY: coords.MacroY,
		LocalX: px,
		LocalY: py,
		Mode:   g.Mode().String(),
	}); err != nil {
		slog.Warn("failed to save player state", "error", err)
	}

	renderer.Cleanup()
	terminal.Close()

	fmt.Printf("Session %s: %d commands, %d moves, %.1fs\n",
		session.ID, stats.Commands, stats.Moves, stats.Duration.Seconds())
	fmt.Println("Thanks for playing Pirate Cove!")
	return nil
}
