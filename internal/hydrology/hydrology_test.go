package hydrology

import (
	"testing"

	"github.com/talgya/hexforge/internal/world"
)

func generated(t *testing.T, seed int64, w, h int) (map[world.Coord]float64, map[world.Coord]world.Terrain, Result) {
	t.Helper()
	plates := world.SimulatePlates(seed, w, h, 5)
	elev := world.GenerateHeightmap(seed, w, h, plates)
	terrain := world.ClassifyTerrain(elev)
	return elev, terrain, Derive(elev, terrain, w, h, DefaultConfig())
}

func TestEveryHexHasFlow(t *testing.T) {
	_, _, res := generated(t, 12345, 25, 20)

	for y := 0; y < 20; y++ {
		for x := 0; x < 25; x++ {
			if _, ok := res.Flow[world.Coord{X: x, Y: y}]; !ok {
				t.Fatalf("hex (%d,%d) has no flow direction", x, y)
			}
		}
	}
}

func TestDrainageStrictlyDescends(t *testing.T) {
	elev, _, res := generated(t, 12345, 25, 20)

	maxSteps := 25 * 20
	for start := range res.Flow {
		current := start
		steps := 0
		for ; steps < maxSteps; steps++ {
			f := res.Flow[current]
			if f.Sink {
				break
			}
			if elev[f.To] >= elev[current] {
				t.Fatalf("flow from %+v (%.4f) to %+v (%.4f) does not descend",
					current, elev[current], f.To, elev[f.To])
			}
			current = f.To
		}
		// A walk that exhausts the step budget would mean a cycle.
		if steps == maxSteps {
			t.Fatalf("drainage walk from %+v did not terminate", start)
		}
	}
}

func TestAccumulationBounds(t *testing.T) {
	_, _, res := generated(t, 99, 20, 20)

	total := 20 * 20
	for c, a := range res.Accumulation {
		if a < 1 {
			t.Fatalf("accumulation at %+v is %d, must be >= 1", c, a)
		}
		if a > total {
			t.Fatalf("accumulation at %+v is %d, exceeds world area %d", c, a, total)
		}
	}
}

func TestSinkAccumulatesContributors(t *testing.T) {
	_, _, res := generated(t, 7, 20, 20)

	// A hex's accumulation must be at least that of any direct contributor.
	for c, f := range res.Flow {
		if f.Sink {
			continue
		}
		if res.Accumulation[f.To] < res.Accumulation[c] {
			t.Fatalf("downstream %+v accumulation %d < contributor %+v accumulation %d",
				f.To, res.Accumulation[f.To], c, res.Accumulation[c])
		}
	}
}

func TestRiversAboveThresholdOnLand(t *testing.T) {
	_, terrain, res := generated(t, 12345, 30, 30)

	cfg := DefaultConfig()
	threshold := 30 * 30 / cfg.RiverAreaDivisor
	if threshold < cfg.RiverMinFlow {
		threshold = cfg.RiverMinFlow
	}

	for c := range res.Rivers {
		if res.Accumulation[c] <= threshold {
			t.Fatalf("river hex %+v accumulation %d not above threshold %d", c, res.Accumulation[c], threshold)
		}
		if terrain[c].IsWater() {
			t.Fatalf("river flagged on water hex %+v", c)
		}
	}
}

func TestPlateauDoesNotLoop(t *testing.T) {
	// Flat 5x5 grid: every hex is a plateau. All must become sinks, and
	// derivation must terminate.
	elev := make(map[world.Coord]float64)
	terrain := make(map[world.Coord]world.Terrain)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := world.Coord{X: x, Y: y}
			elev[c] = 0.5
			terrain[c] = world.TerrainPlains
		}
	}

	res := Derive(elev, terrain, 5, 5, DefaultConfig())
	for c, f := range res.Flow {
		if !f.Sink {
			t.Fatalf("plateau hex %+v should be a sink, flows to %+v", c, f.To)
		}
	}
	for c, a := range res.Accumulation {
		if a != 1 {
			t.Fatalf("isolated plateau hex %+v accumulation %d, want 1", c, a)
		}
	}
}

func TestLakesAtLandSinks(t *testing.T) {
	_, terrain, res := generated(t, 12345, 30, 30)

	for c, lake := range res.Lakes {
		if terrain[c].IsWater() {
			t.Fatalf("lake flagged on ocean hex %+v", c)
		}
		if lake.Depth < 0 {
			t.Fatalf("lake at %+v has negative depth %f", c, lake.Depth)
		}
		if lake.Area < 1 {
			t.Fatalf("lake at %+v has area %d", c, lake.Area)
		}
	}

	// Every land sink must be part of some lake.
	for c, f := range res.Flow {
		if f.Sink && !terrain[c].IsWater() {
			if _, ok := res.Lakes[c]; !ok {
				t.Fatalf("land sink %+v has no lake", c)
			}
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	_, _, a := generated(t, 42, 20, 15)
	_, _, b := generated(t, 42, 20, 15)

	if len(a.Rivers) != len(b.Rivers) || len(a.Lakes) != len(b.Lakes) {
		t.Fatalf("river/lake counts differ across runs")
	}
	for c, f := range a.Flow {
		if b.Flow[c] != f {
			t.Fatalf("flow at %+v differs: %+v vs %+v", c, f, b.Flow[c])
		}
	}
	for c, acc := range a.Accumulation {
		if b.Accumulation[c] != acc {
			t.Fatalf("accumulation at %+v differs: %d vs %d", c, acc, b.Accumulation[c])
		}
	}
}
