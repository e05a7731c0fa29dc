package worldgen

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/talgya/hexforge/internal/climate"
	"github.com/talgya/hexforge/internal/hydrology"
	"github.com/talgya/hexforge/internal/world"
)

// Stage identifies a completed pipeline checkpoint for progress callbacks.
type Stage uint8

const (
	StageTerrain Stage = iota
	StageHydrology
	StageClimate
)

// StageName returns a human-readable name for a pipeline stage.
func StageName(s Stage) string {
	switch s {
	case StageTerrain:
		return "terrain"
	case StageHydrology:
		return "hydrology"
	case StageClimate:
		return "climate"
	default:
		return "unknown"
	}
}

// ProgressFunc is invoked after each completed stage. It must not assume
// anything about call timing and cannot alter generation results.
type ProgressFunc func(Stage)

// Generate builds a complete world from seed and size with default tuning.
// Identical (seed, width, height) always produce an identical world.
func Generate(seed int64, width, height int) (*world.World, error) {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Width = width
	cfg.Height = height
	return GenerateWithConfig(cfg, nil)
}

// GenerateWithConfig builds a world from full tuning parameters. When
// progress is non-nil it is called after the terrain, hydrology, and
// climate stages. Generation either completes fully or returns an error
// with no partial world.
func GenerateWithConfig(cfg Config, progress ProgressFunc) (*world.World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", world.ErrInvalidSize, cfg.Width, cfg.Height)
	}
	cfg.fillDefaults()

	slog.Debug("generating world", "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height, "plates", cfg.PlateCount)

	// Terrain: plates, heightmap, classification.
	plates := world.SimulatePlates(cfg.Seed, cfg.Width, cfg.Height, cfg.PlateCount)
	elev := world.GenerateHeightmap(cfg.Seed, cfg.Width, cfg.Height, plates)
	terrain := world.ClassifyTerrain(elev)
	if progress != nil {
		progress(StageTerrain)
	}

	// Hydrology: sequential by nature (topological accumulation pass).
	hydro := hydrology.Derive(elev, terrain, cfg.Width, cfg.Height, cfg.hydroConfig())
	if progress != nil {
		progress(StageHydrology)
	}

	// Climate: per-hex and order-independent, fanned out across rows.
	zones := classifyClimate(cfg, elev)
	if progress != nil {
		progress(StageClimate)
	}

	w, err := world.New(cfg.Seed, cfg.Width, cfg.Height,
		elev, terrain, hydro.Flow, hydro.Accumulation, hydro.Rivers, hydro.Lakes, zones)
	if err != nil {
		return nil, err
	}

	slog.Debug("world generated", "rivers", w.RiverCount(), "lakes", w.LakeCount())
	return w, nil
}

// classifyClimate computes the climate zone for every hex. Rows are
// independent, so they are distributed over workers; each row writes its
// own slice and rows are merged by coordinate afterwards, keeping the
// result identical to a serial pass regardless of scheduling.
func classifyClimate(cfg Config, elev map[world.Coord]float64) map[world.Coord]world.ClimateZone {
	sys := climate.NewSystem(cfg.Height)
	if cfg.EquatorRow >= 0 {
		sys.EquatorRow = cfg.EquatorRow
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Height {
		workers = cfg.Height
	}

	rowZones := make([][]world.ClimateZone, cfg.Height)
	rows := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				zones := make([]world.ClimateZone, cfg.Width)
				for x := 0; x < cfg.Width; x++ {
					c := world.Coord{X: x, Y: y}
					zones[x] = sys.ZoneAt(c, elev[c])
				}
				rowZones[y] = zones
			}
		}()
	}
	for y := 0; y < cfg.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	merged := make(map[world.Coord]world.ClimateZone, cfg.Width*cfg.Height)
	for y, zones := range rowZones {
		for x, z := range zones {
			merged[world.Coord{X: x, Y: y}] = z
		}
	}
	return merged
}
