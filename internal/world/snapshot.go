package world

import "fmt"

// Snapshot is the plain, fully-exported form of a World, used by external
// serializers (save/load) to round-trip a world without re-running
// generation. All maps are deep copies; mutating a snapshot never touches
// the World it came from.
type Snapshot struct {
	Seed   int64 `json:"seed"`
	Width  int   `json:"width"`
	Height int   `json:"height"`

	Elevation    map[Coord]float64     `json:"elevation"`
	Terrain      map[Coord]Terrain     `json:"terrain"`
	Flow         map[Coord]Flow        `json:"flow"`
	Accumulation map[Coord]int         `json:"accumulation"`
	Rivers       map[Coord]bool        `json:"rivers"`
	Lakes        map[Coord]Lake        `json:"lakes"`
	Climate      map[Coord]ClimateZone `json:"climate"`
}

// Snapshot returns a deep copy of all world maps in plain form.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Seed:         w.seed,
		Width:        w.width,
		Height:       w.height,
		Elevation:    copyMap(w.elevation),
		Terrain:      copyMap(w.terrain),
		Flow:         copyMap(w.flow),
		Accumulation: copyMap(w.accumulation),
		Rivers:       copyMap(w.rivers),
		Lakes:        copyMap(w.lakes),
		Climate:      copyMap(w.climate),
	}
}

// FromSnapshot reconstructs an equivalent World from a snapshot. The
// snapshot's maps are deep-copied, so the caller may keep mutating it.
func FromSnapshot(s Snapshot) (*World, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	want := s.Width * s.Height
	if len(s.Elevation) != want || len(s.Terrain) != want || len(s.Climate) != want {
		return nil, fmt.Errorf("snapshot incomplete: want %d hexes, have elevation=%d terrain=%d climate=%d",
			want, len(s.Elevation), len(s.Terrain), len(s.Climate))
	}
	return New(s.Seed, s.Width, s.Height,
		copyMap(s.Elevation),
		copyMap(s.Terrain),
		copyMap(s.Flow),
		copyMap(s.Accumulation),
		copyMap(s.Rivers),
		copyMap(s.Lakes),
		copyMap(s.Climate),
	)
}

func copyMap[V any](src map[Coord]V) map[Coord]V {
	dst := make(map[Coord]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
