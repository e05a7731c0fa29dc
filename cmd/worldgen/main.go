// Command worldgen generates a hex world and optionally saves it to
// SQLite and serves the read-only query API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/talgya/hexforge/internal/api"
	"github.com/talgya/hexforge/internal/persistence"
	"github.com/talgya/hexforge/internal/world"
	"github.com/talgya/hexforge/internal/worldgen"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		seed       = flag.Int64("seed", 0, "world seed (overrides config when nonzero)")
		width      = flag.Int("width", 0, "grid width (overrides config when nonzero)")
		height     = flag.Int("height", 0, "grid height (overrides config when nonzero)")
		dbPath     = flag.String("db", "", "save the world to this SQLite database")
		servePort  = flag.Int("serve", 0, "serve the query API on this port (0 = off)")
		preview    = flag.Bool("preview", true, "print an ASCII terrain preview")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := worldgen.DefaultConfig()
	if *configPath != "" {
		loaded, err := worldgen.LoadConfig(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *width != 0 {
		cfg.Width = *width
	}
	if *height != 0 {
		cfg.Height = *height
	}

	slog.Info("generating world", "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height)

	w, err := worldgen.GenerateWithConfig(cfg, func(stage worldgen.Stage) {
		slog.Info("stage complete", "stage", worldgen.StageName(stage))
	})
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	logSummary(w)
	if *preview {
		printPreview(w)
	}

	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		id, err := db.SaveWorld(w)
		if err != nil {
			slog.Error("failed to save world", "error", err)
			os.Exit(1)
		}
		fmt.Printf("World saved as %s\n", id)
	}

	if *servePort > 0 {
		srv := &api.Server{World: w, Port: *servePort}
		srv.Start()
		fmt.Printf("Query API: http://localhost:%d/api/v1/status\n", *servePort)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
	}
}

// logSummary reports terrain and climate distributions.
func logSummary(w *world.World) {
	terrainCounts := make(map[world.Terrain]int)
	zoneCounts := make(map[world.ZoneType]int)
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			data, err := w.HexData(world.Coord{X: x, Y: y})
			if err != nil {
				continue
			}
			terrainCounts[data.Terrain]++
			zoneCounts[data.Climate.Type]++
		}
	}
	for t := world.TerrainDeepWater; t <= world.TerrainPeaks; t++ {
		if n := terrainCounts[t]; n > 0 {
			slog.Info("terrain", "type", world.TerrainName(t), "count", n)
		}
	}
	for z := world.ZoneArctic; z <= world.ZoneTropical; z++ {
		if n := zoneCounts[z]; n > 0 {
			slog.Info("climate", "zone", world.ZoneName(z), "count", n)
		}
	}
	slog.Info("hydrology", "rivers", w.RiverCount(), "lakes", w.LakeCount())
}

// terrainGlyphs maps terrain bands to preview characters, low to high.
var terrainGlyphs = map[world.Terrain]rune{
	world.TerrainDeepWater:    '~',
	world.TerrainShallowWater: '-',
	world.TerrainCoast:        '.',
	world.TerrainPlains:       ',',
	world.TerrainHills:        'n',
	world.TerrainMountains:    'A',
	world.TerrainPeaks:        '^',
}

// printPreview renders the terrain grid as ASCII, rivers and lakes
// overriding the terrain glyph. Odd rows are indented half a cell to
// suggest the hex layout.
func printPreview(w *world.World) {
	for y := 0; y < w.Height(); y++ {
		if y&1 == 1 {
			fmt.Print(" ")
		}
		for x := 0; x < w.Width(); x++ {
			data, err := w.HexData(world.Coord{X: x, Y: y})
			if err != nil {
				continue
			}
			glyph := terrainGlyphs[data.Terrain]
			if data.IsLake {
				glyph = 'o'
			} else if data.IsRiver {
				glyph = '='
			}
			fmt.Printf("%c ", glyph)
		}
		fmt.Println()
	}
}
