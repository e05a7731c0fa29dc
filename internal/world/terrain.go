// Heightmap synthesis: plate bias, boundary uplift/subduction, layered
// noise, and continental shelf shaping, renormalized into [0,1].
package world

import (
	"math"
)

// Elevation synthesis tuning. Magnitudes are in raw (pre-normalization)
// elevation units.
const (
	boundaryRadius    = 4    // hex distance over which boundary effects decay
	convergentUplift  = 0.32 // ridge height at a convergent boundary
	divergentTrench   = 0.22 // trench depth at a divergent boundary
	regionalAmplitude = 0.28
	detailAmplitude   = 0.07
	shelfRadius       = 3 // water hexes this close to land get shelf smoothing
)

// boundaryInfluence records, for a hex near a plate boundary, how far away
// the boundary is and what kind it is.
type boundaryInfluence struct {
	Dist int
	Type BoundaryType
}

// GenerateHeightmap produces the normalized heightmap for the grid.
// Pure function of (seed, size, plates): identical inputs reproduce the
// map bit for bit.
func GenerateHeightmap(seed int64, width, height int, plates PlatePartition) map[Coord]float64 {
	regional := NewNoiseField(seed + 1)
	detail := NewNoiseField(seed + 2)

	elev := make(map[Coord]float64, width*height)
	influence := boundaryInfluenceField(width, height, plates.Boundaries)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			plate := plates.Plates[plates.Assignment[c]]
			e := plate.Bias

			// Boundary effects decay linearly with hex distance.
			if inf, ok := influence[c]; ok {
				decay := 1.0 - float64(inf.Dist)/float64(boundaryRadius+1)
				switch inf.Type {
				case BoundaryConvergent:
					e += convergentUplift * decay
				case BoundaryDivergent:
					e -= divergentTrench * decay
				}
			}

			nx, ny := c.Cartesian()
			e += regional.Sample(nx, ny, 4, 0.5, 0.035) * regionalAmplitude
			e += detail.Sample(nx, ny, 3, 0.5, 0.18) * detailAmplitude

			elev[c] = e
		}
	}

	normalize(width, height, elev)
	shapeContinentalShelf(width, height, elev)
	return elev
}

// boundaryInfluenceField computes, for every hex within boundaryRadius of a
// plate boundary, the distance to that boundary and its type, via
// multi-source BFS. Seeds are visited in fixed scan order so the result is
// reproducible; convergent seeds are expanded before divergent ones at
// equal distance, which also resolves mixed-boundary ties.
func boundaryInfluenceField(width, height int, boundaries map[Coord]BoundaryType) map[Coord]boundaryInfluence {
	field := make(map[Coord]boundaryInfluence, len(boundaries)*boundaryRadius)
	var frontier []Coord
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			if btype, ok := boundaries[c]; ok {
				field[c] = boundaryInfluence{Dist: 0, Type: btype}
				frontier = append(frontier, c)
			}
		}
	}

	for d := 1; d <= boundaryRadius && len(frontier) > 0; d++ {
		var next []Coord
		for pass := 0; pass < 2; pass++ {
			want := BoundaryConvergent
			if pass == 1 {
				want = BoundaryDivergent
			}
			for _, c := range frontier {
				if field[c].Type != want {
					continue
				}
				for _, n := range c.Neighbors() {
					if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
						continue
					}
					if _, seen := field[n]; seen {
						continue
					}
					field[n] = boundaryInfluence{Dist: d, Type: want}
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return field
}

// normalize rescales elevations into [0,1] with a fixed min/max rescale.
// Min and max are commutative so the result does not depend on scan order,
// but the scan is fixed anyway.
func normalize(width, height int, elev map[Coord]float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			e := elev[Coord{X: x, Y: y}]
			if e < lo {
				lo = e
			}
			if e > hi {
				hi = e
			}
		}
	}
	span := hi - lo
	if span <= 0 {
		// Perfectly flat world (single plate, zero noise span).
		for c := range elev {
			elev[c] = 0.5
		}
		return
	}
	for c, e := range elev {
		elev[c] = (e - lo) / span
	}
}

// shapeContinentalShelf smooths near-coast water into a depth gradient
// instead of a hard cliff. Water hexes within shelfRadius of land are
// pulled up toward a target depth that shallows toward the shore.
func shapeContinentalShelf(width, height int, elev map[Coord]float64) {
	land := make([]Coord, 0, width*height/2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			if elev[c] >= SeaLevel {
				land = append(land, c)
			}
		}
	}
	if len(land) == 0 {
		return
	}

	// Distance from each water hex to the nearest land hex, capped.
	dist := make(map[Coord]int, len(land))
	frontier := land
	for _, c := range frontier {
		dist[c] = 0
	}
	for d := 1; d <= shelfRadius && len(frontier) > 0; d++ {
		var next []Coord
		for _, c := range frontier {
			for _, n := range c.Neighbors() {
				if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
					continue
				}
				if _, seen := dist[n]; seen {
					continue
				}
				dist[n] = d
				next = append(next, n)
			}
		}
		frontier = next
	}

	for c, d := range dist {
		if d == 0 || elev[c] >= SeaLevel {
			continue
		}
		// Shelf target shallows from just under sea level at the shore.
		target := SeaLevel - 0.04*float64(d)
		if elev[c] < target {
			elev[c] = (elev[c] + target) / 2
		}
	}
}

// ClassifyTerrain maps every elevation to its terrain band.
func ClassifyTerrain(elev map[Coord]float64) map[Coord]Terrain {
	terrain := make(map[Coord]Terrain, len(elev))
	for c, e := range elev {
		terrain[c] = ClassifyElevation(e)
	}
	return terrain
}
