package world

// Terrain categories, ordered from lowest to highest elevation band.
type Terrain uint8

const (
	TerrainDeepWater    Terrain = iota // Abyssal ocean floor
	TerrainShallowWater                // Continental shelf
	TerrainCoast                       // Beaches and low shoreline
	TerrainPlains                      // Lowland flats
	TerrainHills                       // Rolling uplands
	TerrainMountains                   // High ranges
	TerrainPeaks                       // Snowcapped summits
)

// terrainBands maps elevation to terrain. Bands are inclusive-lower,
// exclusive-upper; the last band closes at 1.0 inclusive.
var terrainBands = [...]struct {
	Upper float64
	Type  Terrain
}{
	{Upper: 0.15, Type: TerrainDeepWater},
	{Upper: 0.30, Type: TerrainShallowWater},
	{Upper: 0.38, Type: TerrainCoast},
	{Upper: 0.60, Type: TerrainPlains},
	{Upper: 0.75, Type: TerrainHills},
	{Upper: 0.90, Type: TerrainMountains},
}

// SeaLevel is the elevation below which a hex is water.
const SeaLevel = 0.30

// ClassifyElevation maps a normalized elevation to its terrain band.
// Total over [0,1]; values outside the range clamp to the nearest band.
func ClassifyElevation(elev float64) Terrain {
	for _, band := range terrainBands {
		if elev < band.Upper {
			return band.Type
		}
	}
	return TerrainPeaks
}

// IsWater reports whether the terrain is below sea level.
func (t Terrain) IsWater() bool {
	return t == TerrainDeepWater || t == TerrainShallowWater
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainDeepWater:
		return "Deep Water"
	case TerrainShallowWater:
		return "Shallow Water"
	case TerrainCoast:
		return "Coast"
	case TerrainPlains:
		return "Plains"
	case TerrainHills:
		return "Hills"
	case TerrainMountains:
		return "Mountains"
	case TerrainPeaks:
		return "Peaks"
	default:
		return "Unknown"
	}
}
