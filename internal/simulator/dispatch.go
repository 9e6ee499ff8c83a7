// Package simulator builds the representative day's energy-flow profile:
// synthetic generation and load shapes plus a greedy hour-by-hour battery
// dispatch between generation, load, battery, and grid.
package simulator

import (
	"math"

	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// SimulateDay runs the single-pass dispatch over one synthetic day.
//
// The policy is myopic: each hour, surplus generation charges the battery
// first (losses applied on the way in) and the remainder is exported; a
// deficit discharges the battery first (losses applied on the way out) and
// the remainder is imported. SoC starts at zero and is carried hour to hour.
// Deterministic given its inputs.
func SimulateDay(sizing model.SizingResult, params model.SystemParameters) model.HourlyProfile {
	generation := GenerationShape(sizing.DailyGenerationKWh)
	consumption := ConsumptionShape(params.DailyUsageKWh())

	usable := sizing.UsableCapacityKWh
	eff := params.BatteryEfficiency

	var profile model.HourlyProfile
	currentSoC := 0.0

	for h := 0; h < model.HoursPerDay; h++ {
		rec := model.HourlyRecord{
			Hour:           h,
			GenerationKWh:  generation[h],
			ConsumptionKWh: consumption[h],
		}

		net := generation[h] - consumption[h]
		if net > 0 {
			// Surplus: charge first. The room left in the battery limits the
			// grid-side charge energy, inflated by the charge loss.
			charge := math.Min(net, (usable-currentSoC)/eff)
			rec.BatteryChargeKWh = charge
			currentSoC += charge * eff

			if remaining := net - charge; remaining > 0 {
				rec.GridExportKWh = remaining
			}
		} else {
			// Deficit: discharge first. Stored energy delivers less than its
			// nominal amount because of the conversion loss on the way out.
			deficit := -net
			discharge := math.Min(deficit, currentSoC*eff)
			rec.BatteryDischargeKWh = discharge
			currentSoC -= discharge / eff
			if currentSoC < 0 {
				// rounding guard when the battery is fully drained
				currentSoC = 0
			}

			if remaining := deficit - discharge; remaining > 0 {
				rec.GridImportKWh = remaining
			}
		}

		rec.BatterySoCKWh = currentSoC
		profile[h] = rec
	}

	return profile
}
