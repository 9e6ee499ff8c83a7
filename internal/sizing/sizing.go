// Package sizing derives aggregate system capacities from the module spec and
// user parameters, plus the backup-duration estimate built on top of them.
package sizing

import (
	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// SizeSystem computes the derived capacities for one configuration.
// Inputs are assumed range-validated by the caller.
func SizeSystem(spec catalog.ModuleSpec, params model.SystemParameters) model.SizingResult {
	totalPVPowerKW := params.ModulePowerW / 1000 * float64(params.ModuleCount)
	dailyGenerationKWh := totalPVPowerKW * params.SunshineHours * spec.Efficiency * (1 - params.SystemLossFraction)
	usableCapacityKWh := params.BatteryCapacityKWh * params.DepthOfDischarge

	return model.SizingResult{
		TotalPVPowerKW:     totalPVPowerKW,
		DailyGenerationKWh: dailyGenerationKWh,
		BatteryCapacityKWh: params.BatteryCapacityKWh,
		UsableCapacityKWh:  usableCapacityKWh,
		InverterPowerKW:    params.InverterPowerKW,
	}
}

// EstimateBackupHours returns how long the usable battery capacity sustains
// the household's peak-period load. The peak hourly load is the daily peak
// consumption spread over the targeted backup window.
func EstimateBackupHours(sizing model.SizingResult, params model.SystemParameters) float64 {
	peakUsageKWh := params.DailyUsageKWh() * params.PeakUsageFraction
	peakHourLoadKWh := peakUsageKWh / params.BackupHoursTarget
	return sizing.UsableCapacityKWh / peakHourLoadKWh
}
