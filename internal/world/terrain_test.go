package world

import "testing"

func genTestHeightmap(seed int64, w, h int) map[Coord]float64 {
	plates := SimulatePlates(seed, w, h, 5)
	return GenerateHeightmap(seed, w, h, plates)
}

func TestHeightmapRange(t *testing.T) {
	elev := genTestHeightmap(12345, 30, 25)

	if len(elev) != 30*25 {
		t.Fatalf("expected %d hexes, got %d", 30*25, len(elev))
	}
	for c, e := range elev {
		if e < 0.0 || e > 1.0 {
			t.Fatalf("elevation at %+v out of [0,1]: %f", c, e)
		}
	}
}

func TestHeightmapDeterministic(t *testing.T) {
	a := genTestHeightmap(777, 20, 20)
	b := genTestHeightmap(777, 20, 20)

	for c, e := range a {
		if b[c] != e {
			t.Fatalf("elevation at %+v differs: %v vs %v", c, e, b[c])
		}
	}
}

func TestHeightmapSeedsDiverge(t *testing.T) {
	a := genTestHeightmap(1, 20, 20)
	b := genTestHeightmap(2, 20, 20)

	same := 0
	for c, e := range a {
		if b[c] == e {
			same++
		}
	}
	if same == len(a) {
		t.Fatal("different seeds produced identical heightmaps")
	}
}

func TestClassifyElevationTotal(t *testing.T) {
	// Every value in [0,1] maps to exactly one band, including the exact
	// band edges (inclusive-lower, exclusive-upper).
	cases := []struct {
		elev float64
		want Terrain
	}{
		{0.0, TerrainDeepWater},
		{0.1499, TerrainDeepWater},
		{0.15, TerrainShallowWater},
		{0.30, TerrainCoast},
		{0.38, TerrainPlains},
		{0.60, TerrainHills},
		{0.75, TerrainMountains},
		{0.90, TerrainPeaks},
		{1.0, TerrainPeaks},
	}
	for _, tc := range cases {
		if got := ClassifyElevation(tc.elev); got != tc.want {
			t.Errorf("ClassifyElevation(%v) = %s, want %s", tc.elev, TerrainName(got), TerrainName(tc.want))
		}
	}
}

func TestClassifyTerrainComplete(t *testing.T) {
	elev := genTestHeightmap(5, 15, 15)
	terrain := ClassifyTerrain(elev)

	if len(terrain) != len(elev) {
		t.Fatalf("terrain map size %d != elevation map size %d", len(terrain), len(elev))
	}
	for c, tt := range terrain {
		if tt > TerrainPeaks {
			t.Fatalf("invalid terrain %d at %+v", tt, c)
		}
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	// If b is a neighbor of a, then a must be a neighbor of b.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := Coord{X: x, Y: y}
			for _, b := range a.Neighbors() {
				back := false
				for _, n := range b.Neighbors() {
					if n == a {
						back = true
						break
					}
				}
				if !back {
					t.Fatalf("%+v lists %+v as neighbor but not vice versa", a, b)
				}
			}
		}
	}
}

func TestDistanceNeighborsAreOne(t *testing.T) {
	for _, c := range []Coord{{X: 3, Y: 4}, {X: 0, Y: 0}, {X: 5, Y: 3}} {
		for _, n := range c.Neighbors() {
			if d := Distance(c, n); d != 1 {
				t.Fatalf("Distance(%+v, %+v) = %d, want 1", c, n, d)
			}
		}
		if Distance(c, c) != 0 {
			t.Fatalf("Distance(%+v, itself) != 0", c)
		}
	}
}
