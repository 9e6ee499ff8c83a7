package models

import (
	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// EvaluateRequest carries the form values as users enter them: percent-style
// quantities in percent, converted to fractions before hitting the engine.
type EvaluateRequest struct {
	Module              string  `json:"module" binding:"required"`
	CustomEfficiencyPct float64 `json:"custom_efficiency_pct,omitempty"`
	CustomPricePerWatt  float64 `json:"custom_price_per_watt,omitempty"`

	MonthlyUsageKWh float64 `json:"monthly_usage_kwh"`
	PeakUsagePct    float64 `json:"peak_usage_pct"`
	BackupHours     float64 `json:"backup_hours"`

	SunshineHours float64 `json:"sunshine_hours"`
	SystemLossPct float64 `json:"system_loss_pct"`
	ModulePowerW  float64 `json:"module_power_w"`
	ModuleCount   int     `json:"module_count"`

	BatteryCapacityKWh   float64 `json:"battery_capacity_kwh"`
	BatteryEfficiencyPct float64 `json:"battery_efficiency_pct"`
	DepthOfDischargePct  float64 `json:"depth_of_discharge_pct"`

	InverterPowerKW       float64 `json:"inverter_power_kw"`
	InverterEfficiencyPct float64 `json:"inverter_efficiency_pct"`
	InverterPrice         float64 `json:"inverter_price"`

	ElectricityPrice float64 `json:"electricity_price"`
	Subsidy          float64 `json:"subsidy"`
	FeedInTariff     float64 `json:"feed_in_tariff"`

	IncludeProfile bool `json:"include_profile,omitempty"`
}

// ToInput converts the request into engine input, mapping percents to fractions.
func (r EvaluateRequest) ToInput() calc.Input {
	return calc.Input{
		Module:             r.Module,
		CustomEfficiency:   r.CustomEfficiencyPct / 100,
		CustomPricePerWatt: r.CustomPricePerWatt,
		Params: model.SystemParameters{
			MonthlyUsageKWh:   r.MonthlyUsageKWh,
			PeakUsageFraction: r.PeakUsagePct / 100,
			BackupHoursTarget: r.BackupHours,

			SunshineHours:      r.SunshineHours,
			SystemLossFraction: r.SystemLossPct / 100,
			ModulePowerW:       r.ModulePowerW,
			ModuleCount:        r.ModuleCount,

			BatteryCapacityKWh: r.BatteryCapacityKWh,
			BatteryEfficiency:  r.BatteryEfficiencyPct / 100,
			DepthOfDischarge:   r.DepthOfDischargePct / 100,

			InverterPowerKW:    r.InverterPowerKW,
			InverterEfficiency: r.InverterEfficiencyPct / 100,
			InverterPrice:      r.InverterPrice,

			ElectricityPrice: r.ElectricityPrice,
			Subsidy:          r.Subsidy,
			FeedInTariff:     r.FeedInTariff,
		},
	}
}
