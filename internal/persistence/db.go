// Package persistence provides SQLite-based storage for generated worlds.
// A saved world round-trips through world.Snapshot, so loading reconstructs
// an equivalent world without re-running generation.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexforge/internal/world"
)

// DB wraps a SQLite connection for world storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_hexes (
		world_id TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		elevation REAL NOT NULL,
		terrain INTEGER NOT NULL,
		flow_x INTEGER NOT NULL,
		flow_y INTEGER NOT NULL,
		flow_sink INTEGER NOT NULL,
		accumulation INTEGER NOT NULL,
		river INTEGER NOT NULL,
		lake_depth REAL NOT NULL,
		lake_area INTEGER NOT NULL,
		zone_type INTEGER NOT NULL,
		base_temp REAL NOT NULL,
		summer_min REAL NOT NULL,
		summer_max REAL NOT NULL,
		winter_min REAL NOT NULL,
		winter_max REAL NOT NULL,
		precipitation REAL NOT NULL,
		seasonal_variation REAL NOT NULL,
		volatility INTEGER NOT NULL,
		has_snow INTEGER NOT NULL,
		PRIMARY KEY (world_id, x, y)
	);

	CREATE INDEX IF NOT EXISTS idx_hexes_world ON world_hexes(world_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveWorld writes a full world snapshot and returns its assigned ID.
// The save is transactional: either every hex lands or none do.
func (db *DB) SaveWorld(w *world.World) (string, error) {
	snap := w.Snapshot()
	id := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO worlds (id, seed, width, height, created_at) VALUES (?, ?, ?, ?, ?)",
		id, snap.Seed, snap.Width, snap.Height, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert world: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO world_hexes
		(world_id, x, y, elevation, terrain, flow_x, flow_y, flow_sink,
		 accumulation, river, lake_depth, lake_area,
		 zone_type, base_temp, summer_min, summer_max, winter_min, winter_max,
		 precipitation, seasonal_variation, volatility, has_snow)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := world.Coord{X: x, Y: y}
			flow := snap.Flow[c]
			zone := snap.Climate[c]
			lake, isLake := snap.Lakes[c]

			river := 0
			if snap.Rivers[c] {
				river = 1
			}
			sink := 0
			if flow.Sink {
				sink = 1
			}
			snow := 0
			if zone.HasSnow {
				snow = 1
			}
			lakeDepth, lakeArea := 0.0, 0
			if isLake {
				lakeDepth, lakeArea = lake.Depth, lake.Area
			}

			_, err := stmt.Exec(
				id, x, y, snap.Elevation[c], snap.Terrain[c],
				flow.To.X, flow.To.Y, sink,
				snap.Accumulation[c], river, lakeDepth, lakeArea,
				zone.Type, zone.BaseTemperature,
				zone.SummerRange.Min, zone.SummerRange.Max,
				zone.WinterRange.Min, zone.WinterRange.Max,
				zone.AnnualPrecipitation, zone.SeasonalVariation,
				zone.Volatility, snow,
			)
			if err != nil {
				return "", fmt.Errorf("insert hex (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("world saved", "id", id, "seed", snap.Seed, "hexes", snap.Width*snap.Height)
	return id, nil
}

// hexRow mirrors one world_hexes record for sqlx scanning.
type hexRow struct {
	X                 int     `db:"x"`
	Y                 int     `db:"y"`
	Elevation         float64 `db:"elevation"`
	Terrain           uint8   `db:"terrain"`
	FlowX             int     `db:"flow_x"`
	FlowY             int     `db:"flow_y"`
	FlowSink          int     `db:"flow_sink"`
	Accumulation      int     `db:"accumulation"`
	River             int     `db:"river"`
	LakeDepth         float64 `db:"lake_depth"`
	LakeArea          int     `db:"lake_area"`
	ZoneType          uint8   `db:"zone_type"`
	BaseTemp          float64 `db:"base_temp"`
	SummerMin         float64 `db:"summer_min"`
	SummerMax         float64 `db:"summer_max"`
	WinterMin         float64 `db:"winter_min"`
	WinterMax         float64 `db:"winter_max"`
	Precipitation     float64 `db:"precipitation"`
	SeasonalVariation float64 `db:"seasonal_variation"`
	Volatility        int     `db:"volatility"`
	HasSnow           int     `db:"has_snow"`
}

// LoadWorld reconstructs a saved world by ID.
func (db *DB) LoadWorld(id string) (*world.World, error) {
	var meta struct {
		Seed   int64 `db:"seed"`
		Width  int   `db:"width"`
		Height int   `db:"height"`
	}
	err := db.conn.Get(&meta, "SELECT seed, width, height FROM worlds WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", id, err)
	}

	var rows []hexRow
	err = db.conn.Select(&rows,
		`SELECT x, y, elevation, terrain, flow_x, flow_y, flow_sink,
		        accumulation, river, lake_depth, lake_area,
		        zone_type, base_temp, summer_min, summer_max, winter_min, winter_max,
		        precipitation, seasonal_variation, volatility, has_snow
		 FROM world_hexes WHERE world_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("load hexes for %s: %w", id, err)
	}

	snap := world.Snapshot{
		Seed:         meta.Seed,
		Width:        meta.Width,
		Height:       meta.Height,
		Elevation:    make(map[world.Coord]float64, len(rows)),
		Terrain:      make(map[world.Coord]world.Terrain, len(rows)),
		Flow:         make(map[world.Coord]world.Flow, len(rows)),
		Accumulation: make(map[world.Coord]int, len(rows)),
		Rivers:       make(map[world.Coord]bool),
		Lakes:        make(map[world.Coord]world.Lake),
		Climate:      make(map[world.Coord]world.ClimateZone, len(rows)),
	}

	for _, r := range rows {
		c := world.Coord{X: r.X, Y: r.Y}
		snap.Elevation[c] = r.Elevation
		snap.Terrain[c] = world.Terrain(r.Terrain)
		snap.Flow[c] = world.Flow{To: world.Coord{X: r.FlowX, Y: r.FlowY}, Sink: r.FlowSink == 1}
		snap.Accumulation[c] = r.Accumulation
		if r.River == 1 {
			snap.Rivers[c] = true
		}
		if r.LakeArea > 0 {
			snap.Lakes[c] = world.Lake{Depth: r.LakeDepth, Area: r.LakeArea}
		}
		snap.Climate[c] = world.ClimateZone{
			Type:                world.ZoneType(r.ZoneType),
			BaseTemperature:     r.BaseTemp,
			SummerRange:         world.TempRange{Min: r.SummerMin, Max: r.SummerMax},
			WinterRange:         world.TempRange{Min: r.WinterMin, Max: r.WinterMax},
			AnnualPrecipitation: r.Precipitation,
			SeasonalVariation:   r.SeasonalVariation,
			Volatility:          r.Volatility,
			HasSnow:             r.HasSnow == 1,
		}
	}

	return world.FromSnapshot(snap)
}

// ListWorlds returns the IDs and seeds of all saved worlds, newest first.
func (db *DB) ListWorlds() ([]WorldInfo, error) {
	var infos []WorldInfo
	err := db.conn.Select(&infos,
		"SELECT id, seed, width, height, created_at FROM worlds ORDER BY created_at DESC")
	return infos, err
}

// WorldInfo summarizes one saved world.
type WorldInfo struct {
	ID        string `db:"id" json:"id"`
	Seed      int64  `db:"seed" json:"seed"`
	Width     int    `db:"width" json:"width"`
	Height    int    `db:"height" json:"height"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
