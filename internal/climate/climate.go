// Package climate computes per-hex climate zones from latitude and
// elevation. The model is fully deterministic: no randomness, no shared
// state, so every hex can be classified independently and concurrently.
package climate

import (
	"math"

	"github.com/talgya/hexforge/internal/world"
)

// Temperature model constants, degrees Fahrenheit.
const (
	// EquatorTemp is the sea-level annual mean at the equator row.
	EquatorTemp = 95.0
	// PoleTemp is the sea-level annual mean at the poles.
	PoleTemp = -20.0
	// LapseCooling is the temperature drop across the full normalized
	// elevation range [0,1]. Against a ~10,000 ft peak scale this is the
	// usual ~3.5 degrees per 1000 ft.
	LapseCooling = 35.0
)

// System classifies climate for one world size. Zero-cost to copy; all
// methods are pure functions.
type System struct {
	Height     int
	EquatorRow int
}

// NewSystem builds a climate system with the equator at the middle row.
func NewSystem(height int) System {
	return System{Height: height, EquatorRow: height / 2}
}

// latitudeFactor returns the normalized distance from the equator row,
// 0 at the equator and 1 at the farther pole.
func (s System) latitudeFactor(y int) float64 {
	if s.Height <= 1 {
		return 0
	}
	span := s.EquatorRow
	if far := s.Height - 1 - s.EquatorRow; far > span {
		span = far
	}
	if span == 0 {
		return 0
	}
	d := float64(absInt(y-s.EquatorRow)) / float64(span)
	if d > 1 {
		d = 1
	}
	return d
}

// BaseTemperature is the sea-level annual mean at row y. The cosine curve
// keeps temperature gentle near the equator and steep toward the poles.
func (s System) BaseTemperature(y int) float64 {
	d := s.latitudeFactor(y)
	return PoleTemp + (EquatorTemp-PoleTemp)*math.Cos(d*math.Pi/2)
}

// AdjustedTemperature applies lapse-rate cooling to the latitude base.
func (s System) AdjustedTemperature(y int, elevation float64) float64 {
	return s.BaseTemperature(y) - LapseCooling*elevation
}

// ZoneAt builds the full, independently-owned climate record for a hex.
func (s System) ZoneAt(c world.Coord, elevation float64) world.ClimateZone {
	temp := s.AdjustedTemperature(c.Y, elevation)
	zone := templateFor(ClassifyTemperature(temp)) // copy, never a shared reference
	zone.BaseTemperature = temp
	return zone
}

// ClassifyTemperature maps an adjusted temperature to a zone type. Total
// over the whole real line: anything below the coldest threshold is
// arctic, anything above the warmest is tropical.
func ClassifyTemperature(temp float64) world.ZoneType {
	for _, band := range zoneThresholds {
		if temp < band.Below {
			return band.Zone
		}
	}
	return world.ZoneTropical
}

// zoneThresholds is the ordered classification table (coldest first).
var zoneThresholds = [...]struct {
	Below float64
	Zone  world.ZoneType
}{
	{Below: 10, Zone: world.ZoneArctic},
	{Below: 35, Zone: world.ZoneSubarctic},
	{Below: 60, Zone: world.ZoneTemperate},
	{Below: 75, Zone: world.ZoneSubtropical},
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
