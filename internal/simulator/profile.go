package simulator

import (
	"math"

	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// Daylight window for the synthetic generation curve: generation is non-zero
// for hours in [sunriseHour, sunsetHour).
const (
	sunriseHour = 6
	sunsetHour  = 19
)

// Morning and evening consumption peaks, both ends inclusive.
const (
	morningPeakStart = 7
	morningPeakEnd   = 10
	eveningPeakStart = 18
	eveningPeakEnd   = 22

	peakLoadFactor = 1.8
)

// GenerationShape returns the synthetic per-hour generation for one day.
// A half-sine over the daylight window approximates the solar bell curve; the
// 0.5 scale is a fixed damping heuristic, not an energy-conserving
// decomposition of the daily total.
func GenerationShape(dailyGenerationKWh float64) [model.HoursPerDay]float64 {
	var gen [model.HoursPerDay]float64
	for h := sunriseHour; h < sunsetHour; h++ {
		normalized := float64(h-sunriseHour) / 12
		gen[h] = dailyGenerationKWh * math.Sin(normalized*math.Pi) * 0.5
	}
	return gen
}

// ConsumptionShape returns the double-peak per-hour load for one day: a flat
// base load with morning and evening peaks scaled by peakLoadFactor.
func ConsumptionShape(dailyUsageKWh float64) [model.HoursPerDay]float64 {
	var load [model.HoursPerDay]float64
	baseLoad := dailyUsageKWh / model.HoursPerDay
	for h := 0; h < model.HoursPerDay; h++ {
		if (h >= morningPeakStart && h <= morningPeakEnd) || (h >= eveningPeakStart && h <= eveningPeakEnd) {
			load[h] = baseLoad * peakLoadFactor
		} else {
			load[h] = baseLoad
		}
	}
	return load
}
