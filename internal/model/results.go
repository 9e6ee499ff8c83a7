package model

// HoursPerDay is the resolution of the simulated representative day.
const HoursPerDay = 24

// SizingResult aggregates the derived system capacities. Immutable once
// computed; depends only on SystemParameters and the chosen module spec.
type SizingResult struct {
	TotalPVPowerKW     float64 `json:"total_pv_power_kw"`
	DailyGenerationKWh float64 `json:"daily_generation_kwh"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	UsableCapacityKWh  float64 `json:"usable_capacity_kwh"`
	InverterPowerKW    float64 `json:"inverter_power_kw"`
}

// HourlyRecord is one hour of the simulated day. Battery SoC is the state at
// the END of the hour; charge/discharge are the energy moved during it.
type HourlyRecord struct {
	Hour                int     `json:"hour"`
	GenerationKWh       float64 `json:"generation_kwh"`
	ConsumptionKWh      float64 `json:"consumption_kwh"`
	BatterySoCKWh       float64 `json:"battery_soc_kwh"`
	GridImportKWh       float64 `json:"grid_import_kwh"`
	GridExportKWh       float64 `json:"grid_export_kwh"`
	BatteryChargeKWh    float64 `json:"battery_charge_kwh"`
	BatteryDischargeKWh float64 `json:"battery_discharge_kwh"`
}

// HourlyProfile is the ordered 24-hour energy flow of the representative day.
type HourlyProfile [HoursPerDay]HourlyRecord

// EconomicResult holds the annualized investment and return figures.
// When PaybackUnbounded is set the annual benefit was non-positive and
// PaybackYears carries no meaning; front ends render it as ">50 years".
type EconomicResult struct {
	PVInvestment       float64 `json:"pv_investment"`
	BatteryInvestment  float64 `json:"battery_investment"`
	InverterInvestment float64 `json:"inverter_investment"`
	TotalInvestment    float64 `json:"total_investment"`

	AnnualGenerationKWh      float64 `json:"annual_generation_kwh"`
	AnnualSelfConsumptionKWh float64 `json:"annual_self_consumption_kwh"`
	AnnualGridImportKWh      float64 `json:"annual_grid_import_kwh"`
	AnnualGridExportKWh      float64 `json:"annual_grid_export_kwh"`

	AnnualBenefit    float64 `json:"annual_benefit"`
	PaybackYears     float64 `json:"payback_years"`
	PaybackUnbounded bool    `json:"payback_unbounded"`
}
