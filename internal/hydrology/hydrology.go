// Package hydrology derives drainage, flow accumulation, rivers, and lakes
// from a finished heightmap.
package hydrology

import (
	"sort"

	"github.com/talgya/hexforge/internal/world"
)

// Config holds parameters for hydrology derivation.
type Config struct {
	// RiverMinFlow is the accumulation floor below which no hex is ever a
	// river, regardless of world size.
	RiverMinFlow int
	// RiverAreaDivisor scales the river threshold with world area:
	// threshold = max(RiverMinFlow, area/RiverAreaDivisor).
	RiverAreaDivisor int
	// LakeMaxArea caps flood-fill so a single depression cannot flood an
	// unbounded share of the grid.
	LakeMaxArea int
}

// DefaultConfig returns the standard hydrology parameters.
func DefaultConfig() Config {
	return Config{
		RiverMinFlow:     8,
		RiverAreaDivisor: 120,
		LakeMaxArea:      64,
	}
}

// Result is the full hydrology output for a grid.
type Result struct {
	Flow         map[world.Coord]world.Flow
	Accumulation map[world.Coord]int
	Rivers       map[world.Coord]bool
	Lakes        map[world.Coord]world.Lake
}

// Derive computes drainage for every hex, accumulates upstream flow, and
// extracts rivers and lakes. Pure function of its inputs; all tie-breaks
// are fixed so two calls produce identical maps.
func Derive(elev map[world.Coord]float64, terrain map[world.Coord]world.Terrain, width, height int, cfg Config) Result {
	flow := flowDirections(elev, width, height)
	accum := accumulate(elev, flow, width, height)
	rivers := extractRivers(accum, terrain, width, height, cfg)
	lakes := placeLakes(elev, terrain, flow, width, height, cfg)

	return Result{Flow: flow, Accumulation: accum, Rivers: rivers, Lakes: lakes}
}

// flowDirections selects, for each hex, the strictly lowest in-bounds
// neighbor, or marks a sink. Ties between equally-low neighbors go to the
// first in the fixed direction order; plateaus (no strictly lower
// neighbor) are sinks, which also guarantees drainage paths cannot cycle.
func flowDirections(elev map[world.Coord]float64, width, height int) map[world.Coord]world.Flow {
	flow := make(map[world.Coord]world.Flow, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := world.Coord{X: x, Y: y}
			bestElev := elev[c]
			best := world.Flow{Sink: true}
			for _, n := range c.Neighbors() {
				if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
					continue
				}
				if ne := elev[n]; ne < bestElev {
					bestElev = ne
					best = world.Flow{To: n}
				}
			}
			flow[c] = best
		}
	}
	return flow
}

// accumulate counts, for every hex, the hexes draining into it directly or
// transitively (including itself). Hexes are processed from highest
// elevation to lowest so each hex's upstream contributors are final before
// it pushes downstream. Equal elevations order by (y, x) for determinism.
func accumulate(elev map[world.Coord]float64, flow map[world.Coord]world.Flow, width, height int) map[world.Coord]int {
	order := make([]world.Coord, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			order = append(order, world.Coord{X: x, Y: y})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		ei, ej := elev[order[i]], elev[order[j]]
		if ei != ej {
			return ei > ej
		}
		if order[i].Y != order[j].Y {
			return order[i].Y < order[j].Y
		}
		return order[i].X < order[j].X
	})

	accum := make(map[world.Coord]int, width*height)
	for _, c := range order {
		accum[c]++
		if f := flow[c]; !f.Sink {
			accum[f.To] += accum[c]
		}
	}
	return accum
}

// extractRivers flags land hexes whose accumulation exceeds the
// area-proportional threshold.
func extractRivers(accum map[world.Coord]int, terrain map[world.Coord]world.Terrain, width, height int, cfg Config) map[world.Coord]bool {
	threshold := width * height / cfg.RiverAreaDivisor
	if threshold < cfg.RiverMinFlow {
		threshold = cfg.RiverMinFlow
	}

	rivers := make(map[world.Coord]bool)
	for c, a := range accum {
		if a > threshold && !terrain[c].IsWater() {
			rivers[c] = true
		}
	}
	return rivers
}

// placeLakes floods the depression around each land sink up to its spill
// point. Depth at each flooded hex is spill elevation minus hex elevation;
// the whole depression shares one area.
func placeLakes(elev map[world.Coord]float64, terrain map[world.Coord]world.Terrain, flow map[world.Coord]world.Flow, width, height int, cfg Config) map[world.Coord]world.Lake {
	lakes := make(map[world.Coord]world.Lake)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := world.Coord{X: x, Y: y}
			if !flow[c].Sink || terrain[c].IsWater() {
				continue
			}
			if _, already := lakes[c]; already {
				continue
			}

			filled, spill := floodDepression(c, elev, flow, width, height, cfg.LakeMaxArea)
			for _, f := range filled {
				depth := spill - elev[f]
				if depth < 0 {
					depth = 0
				}
				lakes[f] = world.Lake{Depth: depth, Area: len(filled)}
			}
		}
	}
	return lakes
}

// floodDepression grows a flooded set outward from a sink, always absorbing
// the lowest rim hex next ((elevation, y, x) order), until it reaches a rim
// hex whose drainage escapes the set — that hex's elevation is the spill
// level — or the area cap. Any hex revisited during the walk is already in
// the set and is skipped, so the fill cannot loop.
func floodDepression(sink world.Coord, elev map[world.Coord]float64, flow map[world.Coord]world.Flow, width, height, maxArea int) ([]world.Coord, float64) {
	inSet := map[world.Coord]bool{sink: true}
	filled := []world.Coord{sink}
	spill := elev[sink]

	for len(filled) < maxArea {
		rim, ok := lowestRim(filled, inSet, elev, width, height)
		if !ok {
			break
		}
		spill = elev[rim]

		f := flow[rim]
		if !f.Sink && !inSet[f.To] {
			// Water escapes here; the depression is full.
			break
		}
		inSet[rim] = true
		filled = append(filled, rim)
	}
	return filled, spill
}

// lowestRim finds the in-bounds neighbor of the flooded set with the lowest
// (elevation, y, x), deterministically.
func lowestRim(filled []world.Coord, inSet map[world.Coord]bool, elev map[world.Coord]float64, width, height int) (world.Coord, bool) {
	var best world.Coord
	found := false
	for _, c := range filled {
		for _, n := range c.Neighbors() {
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height || inSet[n] {
				continue
			}
			if !found || rimLess(n, best, elev) {
				best = n
				found = true
			}
		}
	}
	return best, found
}

func rimLess(a, b world.Coord, elev map[world.Coord]float64) bool {
	if elev[a] != elev[b] {
		return elev[a] < elev[b]
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
