package world

// ZoneType classifies a hex's climate band, coldest to warmest.
type ZoneType uint8

const (
	ZoneArctic ZoneType = iota
	ZoneSubarctic
	ZoneTemperate
	ZoneSubtropical
	ZoneTropical
)

// ZoneName returns a human-readable name for a climate zone type.
func ZoneName(z ZoneType) string {
	switch z {
	case ZoneArctic:
		return "Arctic"
	case ZoneSubarctic:
		return "Subarctic"
	case ZoneTemperate:
		return "Temperate"
	case ZoneSubtropical:
		return "Subtropical"
	case ZoneTropical:
		return "Tropical"
	default:
		return "Unknown"
	}
}

// TempRange is an expected seasonal temperature band in degrees Fahrenheit.
type TempRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ClimateZone is the full per-hex climate record. Each hex owns an
// independent copy; zones are never shared between hexes.
type ClimateZone struct {
	Type ZoneType `json:"type"`

	// BaseTemperature is the hex's latitude- and elevation-adjusted
	// annual mean, in degrees Fahrenheit.
	BaseTemperature float64 `json:"base_temperature"`

	SummerRange TempRange `json:"summer_range"`
	WinterRange TempRange `json:"winter_range"`

	AnnualPrecipitation float64 `json:"annual_precipitation"` // inches
	SeasonalVariation   float64 `json:"seasonal_variation"`   // 0.0 (stable) to 1.0 (extreme swings)
	Volatility          int     `json:"volatility"`           // weather unpredictability severity
	HasSnow             bool    `json:"has_snow"`
}
