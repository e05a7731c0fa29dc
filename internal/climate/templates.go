package climate

import "github.com/talgya/hexforge/internal/world"

// zoneTemplates holds the fixed per-zone climate characteristics, indexed
// by zone type. Compiled in rather than loaded from data files so the
// table cannot drift at run time. templateFor returns a copy; the table
// itself is never handed out.
var zoneTemplates = [...]world.ClimateZone{
	world.ZoneArctic: {
		Type:                world.ZoneArctic,
		BaseTemperature:     -5,
		SummerRange:         world.TempRange{Min: 20, Max: 45},
		WinterRange:         world.TempRange{Min: -40, Max: 5},
		AnnualPrecipitation: 8,
		SeasonalVariation:   0.9,
		Volatility:          4,
		HasSnow:             true,
	},
	world.ZoneSubarctic: {
		Type:                world.ZoneSubarctic,
		BaseTemperature:     25,
		SummerRange:         world.TempRange{Min: 45, Max: 70},
		WinterRange:         world.TempRange{Min: -20, Max: 25},
		AnnualPrecipitation: 16,
		SeasonalVariation:   0.8,
		Volatility:          3,
		HasSnow:             true,
	},
	world.ZoneTemperate: {
		Type:                world.ZoneTemperate,
		BaseTemperature:     50,
		SummerRange:         world.TempRange{Min: 60, Max: 85},
		WinterRange:         world.TempRange{Min: 20, Max: 45},
		AnnualPrecipitation: 35,
		SeasonalVariation:   0.6,
		Volatility:          2,
		HasSnow:             true,
	},
	world.ZoneSubtropical: {
		Type:                world.ZoneSubtropical,
		BaseTemperature:     68,
		SummerRange:         world.TempRange{Min: 75, Max: 95},
		WinterRange:         world.TempRange{Min: 45, Max: 65},
		AnnualPrecipitation: 48,
		SeasonalVariation:   0.4,
		Volatility:          3,
		HasSnow:             false,
	},
	world.ZoneTropical: {
		Type:                world.ZoneTropical,
		BaseTemperature:     82,
		SummerRange:         world.TempRange{Min: 80, Max: 98},
		WinterRange:         world.TempRange{Min: 70, Max: 88},
		AnnualPrecipitation: 80,
		SeasonalVariation:   0.15,
		Volatility:          2,
		HasSnow:             false,
	},
}

// templateFor returns an independent copy of the zone template.
func templateFor(z world.ZoneType) world.ClimateZone {
	if int(z) >= len(zoneTemplates) {
		z = world.ZoneTemperate
	}
	return zoneTemplates[z]
}
