// Tectonic-style plate partitioning. Plates exist only during generation;
// they bias elevation and are not retained on the World.
package world

import (
	"math/rand"
)

// PlateType distinguishes low oceanic plates from high continental ones.
type PlateType uint8

const (
	PlateOceanic PlateType = iota
	PlateContinental
)

// BoundaryType tags hexes on a plate boundary.
type BoundaryType uint8

const (
	// BoundaryConvergent marks collision zones (uplift, mountain ridges).
	BoundaryConvergent BoundaryType = iota
	// BoundaryDivergent marks oceanic spreading zones (trenches).
	BoundaryDivergent
)

// Plate is a generated tectonic region.
type Plate struct {
	ID     int
	Center Coord
	Type   PlateType
	// Bias is the base elevation contribution for hexes on this plate.
	Bias float64
}

// PlatePartition is the full output of plate simulation.
type PlatePartition struct {
	Plates     []Plate
	Assignment map[Coord]int          // hex -> plate ID
	Boundaries map[Coord]BoundaryType // boundary hexes only
}

const (
	oceanicWeight      = 0.55
	centerPlaceRetries = 200
)

// SimulatePlates partitions the grid into plateCount Voronoi regions around
// seeded centers. If the grid is too small to place at least two centers
// with the required spacing, it collapses to a single continental plate
// rather than failing.
func SimulatePlates(seed int64, width, height, plateCount int) PlatePartition {
	rng := rand.New(rand.NewSource(seed + 17))

	if plateCount < 1 {
		plateCount = 1
	}

	minSpacing := minInt(width, height) / plateCount
	if minSpacing < 2 {
		minSpacing = 2
	}

	centers := placeCenters(rng, width, height, plateCount, minSpacing)
	if len(centers) < 2 {
		// Degenerate grid: one continental plate covering everything.
		return singlePlatePartition(width, height)
	}

	plates := make([]Plate, len(centers))
	continental := 0
	for i, center := range centers {
		ptype := PlateContinental
		if rng.Float64() < oceanicWeight {
			ptype = PlateOceanic
		} else {
			continental++
		}
		plates[i] = Plate{ID: i, Center: center, Type: ptype}
	}
	// A world with no landmass is useless downstream; promote plate 0.
	if continental == 0 {
		plates[0].Type = PlateContinental
	}
	for i := range plates {
		if plates[i].Type == PlateOceanic {
			plates[i].Bias = 0.12 + rng.Float64()*0.10
		} else {
			plates[i].Bias = 0.52 + rng.Float64()*0.16
		}
	}

	assignment := assignHexes(width, height, plates)
	boundaries := findBoundaries(width, height, plates, assignment)

	return PlatePartition{Plates: plates, Assignment: assignment, Boundaries: boundaries}
}

// placeCenters rejection-samples plate centers with a minimum spacing.
// A center that cannot be placed within the retry budget is skipped.
func placeCenters(rng *rand.Rand, width, height, count, minSpacing int) []Coord {
	var centers []Coord
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < centerPlaceRetries; attempt++ {
			cand := Coord{X: rng.Intn(width), Y: rng.Intn(height)}
			ok := true
			for _, existing := range centers {
				if Distance(cand, existing) < minSpacing {
					ok = false
					break
				}
			}
			if ok {
				centers = append(centers, cand)
				break
			}
		}
	}
	return centers
}

// assignHexes maps every hex to its nearest plate center by hex distance.
// Ties go to the lowest plate ID, so assignment is order-independent.
func assignHexes(width, height int, plates []Plate) map[Coord]int {
	assignment := make(map[Coord]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			best := 0
			bestDist := Distance(c, plates[0].Center)
			for _, p := range plates[1:] {
				d := Distance(c, p.Center)
				if d < bestDist {
					bestDist = d
					best = p.ID
				}
			}
			assignment[c] = best
		}
	}
	return assignment
}

// findBoundaries tags hexes whose neighbors belong to a different plate.
// Convergent if either side is continental, divergent if both are oceanic.
func findBoundaries(width, height int, plates []Plate, assignment map[Coord]int) map[Coord]BoundaryType {
	boundaries := make(map[Coord]BoundaryType)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			own := assignment[c]
			for _, n := range c.Neighbors() {
				if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
					continue
				}
				other := assignment[n]
				if other == own {
					continue
				}
				if plates[own].Type == PlateContinental || plates[other].Type == PlateContinental {
					boundaries[c] = BoundaryConvergent
				} else if _, seen := boundaries[c]; !seen {
					boundaries[c] = BoundaryDivergent
				}
			}
		}
	}
	return boundaries
}

func singlePlatePartition(width, height int) PlatePartition {
	plate := Plate{ID: 0, Center: Coord{X: width / 2, Y: height / 2}, Type: PlateContinental, Bias: 0.55}
	assignment := make(map[Coord]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			assignment[Coord{X: x, Y: y}] = 0
		}
	}
	return PlatePartition{
		Plates:     []Plate{plate},
		Assignment: assignment,
		Boundaries: map[Coord]BoundaryType{},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
