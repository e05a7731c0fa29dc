// Package world provides the hex grid, terrain, and the immutable World
// aggregate produced by generation.
// Uses odd-r offset coordinates: (0,0) is the northwest corner, odd rows
// are shifted east by half a hex.
package world

// Coord represents a position on the hex grid using offset coordinates.
// Valid coordinates lie in [0,width) x [0,height).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// neighborOffsets holds the six neighbor deltas for even and odd rows.
// Order is fixed (E, NE, NW, W, SW, SE) and is the deterministic tie-break
// order everywhere a "first lowest neighbor" is selected.
var neighborOffsets = [2][6]Coord{
	{{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}}, // even rows
	{{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},   // odd rows
}

// Neighbors returns the six adjacent coordinates in fixed order.
// Callers must bounds-check; edge hexes get off-grid neighbors here.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	parity := c.Y & 1
	for i, d := range neighborOffsets[parity] {
		result[i] = Coord{X: c.X + d.X, Y: c.Y + d.Y}
	}
	return result
}

// cube converts offset coordinates to cube coordinates (q, r, s).
func (c Coord) cube() (q, r, s int) {
	q = c.X - (c.Y-(c.Y&1))/2
	r = c.Y
	return q, r, -q - r
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	aq, ar, as := a.cube()
	bq, br, bs := b.cube()
	dq := absInt(aq - bq)
	dr := absInt(ar - br)
	ds := absInt(as - bs)
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// Cartesian returns the hex center in continuous space, used for noise
// sampling so adjacent hexes sample adjacent noise positions.
func (c Coord) Cartesian() (x, y float64) {
	x = float64(c.X) + 0.5*float64(c.Y&1)
	y = float64(c.Y) * 0.8660254037844386 // sqrt(3)/2
	return x, y
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
