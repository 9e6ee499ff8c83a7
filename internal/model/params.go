package model

import (
	"errors"
	"fmt"
)

// SystemParameters holds every user-supplied scalar for one evaluation.
// Percent-style quantities (efficiencies, losses, DoD, peak usage share) are
// stored as fractions in [0,1].
type SystemParameters struct {
	// Household consumption
	MonthlyUsageKWh   float64 `json:"monthly_usage_kwh"`
	PeakUsageFraction float64 `json:"peak_usage_fraction"`
	BackupHoursTarget float64 `json:"backup_hours_target"`

	// PV system
	SunshineHours      float64 `json:"sunshine_hours"`
	SystemLossFraction float64 `json:"system_loss_fraction"`
	ModulePowerW       float64 `json:"module_power_w"`
	ModuleCount        int     `json:"module_count"`

	// Battery
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	BatteryEfficiency  float64 `json:"battery_efficiency"`
	DepthOfDischarge   float64 `json:"depth_of_discharge"`

	// Inverter
	InverterPowerKW    float64 `json:"inverter_power_kw"`
	InverterEfficiency float64 `json:"inverter_efficiency"`
	InverterPrice      float64 `json:"inverter_price"`

	// Economics
	ElectricityPrice float64 `json:"electricity_price"`
	Subsidy          float64 `json:"subsidy"`
	FeedInTariff     float64 `json:"feed_in_tariff"`
}

// Validate checks the caller-facing input ranges. The computation packages
// assume validated parameters and do not re-check them.
func (p SystemParameters) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{p.MonthlyUsageKWh >= 100 && p.MonthlyUsageKWh <= 2000, "monthly_usage_kwh must be in [100, 2000]"},
		{p.PeakUsageFraction >= 0.1 && p.PeakUsageFraction <= 0.9, "peak_usage_fraction must be in [0.1, 0.9]"},
		{p.BackupHoursTarget >= 1 && p.BackupHoursTarget <= 24, "backup_hours_target must be in [1, 24]"},
		{p.SunshineHours >= 1 && p.SunshineHours <= 8, "sunshine_hours must be in [1, 8]"},
		{p.SystemLossFraction >= 0.05 && p.SystemLossFraction <= 0.3, "system_loss_fraction must be in [0.05, 0.3]"},
		{p.ModulePowerW >= 100 && p.ModulePowerW <= 800, "module_power_w must be in [100, 800]"},
		{p.ModuleCount >= 1 && p.ModuleCount <= 100, "module_count must be in [1, 100]"},
		{p.BatteryCapacityKWh >= 1 && p.BatteryCapacityKWh <= 50, "battery_capacity_kwh must be in [1, 50]"},
		{p.BatteryEfficiency >= 0.8 && p.BatteryEfficiency <= 0.99, "battery_efficiency must be in [0.8, 0.99]"},
		{p.DepthOfDischarge >= 0.5 && p.DepthOfDischarge <= 1, "depth_of_discharge must be in [0.5, 1]"},
		{p.InverterPowerKW >= 1 && p.InverterPowerKW <= 20, "inverter_power_kw must be in [1, 20]"},
		{p.InverterEfficiency >= 0.9 && p.InverterEfficiency <= 0.99, "inverter_efficiency must be in [0.9, 0.99]"},
		{p.InverterPrice >= 5000 && p.InverterPrice <= 30000, "inverter_price must be in [5000, 30000]"},
		{p.ElectricityPrice >= 0.3 && p.ElectricityPrice <= 2, "electricity_price must be in [0.3, 2]"},
		{p.Subsidy >= 0 && p.Subsidy <= 1, "subsidy must be in [0, 1]"},
		{p.FeedInTariff >= 0 && p.FeedInTariff <= 1, "feed_in_tariff must be in [0, 1]"},
	}

	var errs []error
	for _, c := range checks {
		if !c.ok {
			errs = append(errs, errors.New(c.msg))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid parameters: %w", errors.Join(errs...))
	}
	return nil
}

// DailyUsageKWh returns the average daily consumption derived from the
// monthly figure (30-day month convention, matching the economic model).
func (p SystemParameters) DailyUsageKWh() float64 {
	return p.MonthlyUsageKWh / 30
}
