package world

import "testing"

func TestPlatesCoverEveryHex(t *testing.T) {
	p := SimulatePlates(99, 40, 30, 6)

	if len(p.Plates) == 0 {
		t.Fatal("no plates generated")
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			id, ok := p.Assignment[Coord{X: x, Y: y}]
			if !ok {
				t.Fatalf("hex (%d,%d) has no plate assignment", x, y)
			}
			if id < 0 || id >= len(p.Plates) {
				t.Fatalf("hex (%d,%d) assigned to invalid plate %d", x, y, id)
			}
		}
	}
}

func TestPlatesDeterministic(t *testing.T) {
	a := SimulatePlates(7, 30, 30, 5)
	b := SimulatePlates(7, 30, 30, 5)

	if len(a.Plates) != len(b.Plates) {
		t.Fatalf("plate counts differ: %d vs %d", len(a.Plates), len(b.Plates))
	}
	for i := range a.Plates {
		if a.Plates[i] != b.Plates[i] {
			t.Fatalf("plate %d differs: %+v vs %+v", i, a.Plates[i], b.Plates[i])
		}
	}
	for c, id := range a.Assignment {
		if b.Assignment[c] != id {
			t.Fatalf("assignment at %+v differs: %d vs %d", c, id, b.Assignment[c])
		}
	}
	if len(a.Boundaries) != len(b.Boundaries) {
		t.Fatalf("boundary counts differ: %d vs %d", len(a.Boundaries), len(b.Boundaries))
	}
}

func TestPlatesTinyGridFallsBackToSinglePlate(t *testing.T) {
	// A 2x1 grid cannot hold two centers at the minimum spacing.
	p := SimulatePlates(3, 2, 1, 8)

	if len(p.Plates) != 1 {
		t.Fatalf("expected single-plate fallback on 2x1 grid, got %d plates", len(p.Plates))
	}
	if p.Plates[0].Type != PlateContinental {
		t.Fatal("fallback plate must be continental")
	}
	if len(p.Boundaries) != 0 {
		t.Fatalf("single plate has no boundaries, got %d", len(p.Boundaries))
	}
}

func TestPlatesAtLeastOneContinental(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		p := SimulatePlates(seed, 40, 40, 6)
		continental := false
		for _, plate := range p.Plates {
			if plate.Type == PlateContinental {
				continental = true
				break
			}
		}
		if !continental {
			t.Fatalf("seed %d produced an all-oceanic world", seed)
		}
	}
}

func TestBoundariesTouchOtherPlates(t *testing.T) {
	p := SimulatePlates(11, 40, 30, 6)

	for c := range p.Boundaries {
		own := p.Assignment[c]
		foreign := false
		for _, n := range c.Neighbors() {
			if n.X < 0 || n.X >= 40 || n.Y < 0 || n.Y >= 30 {
				continue
			}
			if p.Assignment[n] != own {
				foreign = true
				break
			}
		}
		if !foreign {
			t.Fatalf("boundary hex %+v has no foreign neighbor", c)
		}
	}
}
