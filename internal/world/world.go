package world

import (
	"errors"
	"fmt"
)

// Query and construction errors.
var (
	ErrInvalidSize = errors.New("world size must be positive in both dimensions")
	ErrOutOfBounds = errors.New("coordinate out of world bounds")
)

// Flow is a hex's drainage: the downstream neighbor its water flows to,
// or a sink marker when no neighbor is lower.
type Flow struct {
	To   Coord `json:"to"`
	Sink bool  `json:"sink"`
}

// Lake marks a flooded depression hex. Depth is relative to the spill
// elevation of the depression; Area is the hex count of the whole lake.
type Lake struct {
	Depth float64 `json:"depth"`
	Area  int     `json:"area"`
}

// World is the immutable aggregate produced by generation. It is the
// single owner of all per-hex maps; once constructed it is read-only and
// safe for concurrent reads without locking.
type World struct {
	seed   int64
	width  int
	height int

	elevation    map[Coord]float64
	terrain      map[Coord]Terrain
	flow         map[Coord]Flow
	accumulation map[Coord]int
	rivers       map[Coord]bool
	lakes        map[Coord]Lake
	climate      map[Coord]ClimateZone
}

// HexData is the per-hex record exposed to downstream consumers. It
// carries no internal generation state (plates, noise parameters).
type HexData struct {
	Coord            Coord       `json:"coord"`
	Elevation        float64     `json:"elevation"`
	Terrain          Terrain     `json:"terrain"`
	Climate          ClimateZone `json:"climate"`
	FlowAccumulation int         `json:"flow_accumulation"`
	IsRiver          bool        `json:"is_river"`
	IsLake           bool        `json:"is_lake"`
}

// New assembles a World from fully-populated generation maps. The maps are
// owned by the World after this call; callers must not retain or mutate
// them.
func New(seed int64, width, height int,
	elevation map[Coord]float64,
	terrain map[Coord]Terrain,
	flow map[Coord]Flow,
	accumulation map[Coord]int,
	rivers map[Coord]bool,
	lakes map[Coord]Lake,
	climate map[Coord]ClimateZone,
) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &World{
		seed:         seed,
		width:        width,
		height:       height,
		elevation:    elevation,
		terrain:      terrain,
		flow:         flow,
		accumulation: accumulation,
		rivers:       rivers,
		lakes:        lakes,
		climate:      climate,
	}, nil
}

// Seed returns the seed the world was generated from.
func (w *World) Seed() int64 { return w.seed }

// Width returns the grid width.
func (w *World) Width() int { return w.width }

// Height returns the grid height.
func (w *World) Height() int { return w.height }

// HexCount returns the total number of hexes.
func (w *World) HexCount() int { return w.width * w.height }

// IsValidCoord reports whether c lies within [0,width) x [0,height).
func (w *World) IsValidCoord(c Coord) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// HexData returns the combined per-hex record, or ErrOutOfBounds for
// coordinates outside the grid.
func (w *World) HexData(c Coord) (HexData, error) {
	if !w.IsValidCoord(c) {
		return HexData{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	_, isLake := w.lakes[c]
	return HexData{
		Coord:            c,
		Elevation:        w.elevation[c],
		Terrain:          w.terrain[c],
		Climate:          w.climate[c],
		FlowAccumulation: w.accumulation[c],
		IsRiver:          w.rivers[c],
		IsLake:           isLake,
	}, nil
}

// Elevation returns the normalized elevation at c, or ErrOutOfBounds.
func (w *World) Elevation(c Coord) (float64, error) {
	if !w.IsValidCoord(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	return w.elevation[c], nil
}

// FlowAt returns the drainage record at c, or ErrOutOfBounds.
func (w *World) FlowAt(c Coord) (Flow, error) {
	if !w.IsValidCoord(c) {
		return Flow{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	return w.flow[c], nil
}

// RiverCount returns the number of river hexes.
func (w *World) RiverCount() int { return len(w.rivers) }

// LakeCount returns the number of lake hexes.
func (w *World) LakeCount() int { return len(w.lakes) }

// String returns a one-line summary of the world.
func (w *World) String() string {
	return fmt.Sprintf("World(seed=%d, %dx%d, rivers=%d, lakes=%d)",
		w.seed, w.width, w.height, len(w.rivers), len(w.lakes))
}
