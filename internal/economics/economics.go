// Package economics extrapolates one simulated day into annual investment
// and return figures and the simple payback period.
package economics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// DefaultBatteryCostPerKWh is the heuristic storage unit cost used when the
// deployment config does not override it.
const DefaultBatteryCostPerKWh = 1000

const daysPerYear = 365

// Analyzer computes EconomicResult records. The zero value uses the default
// battery unit cost.
type Analyzer struct {
	batteryCostPerKWh float64
}

// New returns an analyzer with the given battery unit cost; pass 0 to use
// DefaultBatteryCostPerKWh.
func New(batteryCostPerKWh float64) *Analyzer {
	if batteryCostPerKWh <= 0 {
		batteryCostPerKWh = DefaultBatteryCostPerKWh
	}
	return &Analyzer{batteryCostPerKWh: batteryCostPerKWh}
}

// Analyze aggregates the hourly profile and sizing into annual figures.
//
// The day is treated as representative of every day of the year. The grid
// totals use a `sum / 24 * 365` rescale, i.e. the mean hourly flow projected
// over a year of hours. Published payback figures depend on it, so it stays.
// A non-positive annual benefit yields the unbounded-payback sentinel rather
// than an error; it is a domain outcome, not a fault.
func (a *Analyzer) Analyze(spec catalog.ModuleSpec, sizing model.SizingResult, profile model.HourlyProfile, params model.SystemParameters) model.EconomicResult {
	var imports, exports [model.HoursPerDay]float64
	for h, rec := range profile {
		imports[h] = rec.GridImportKWh
		exports[h] = rec.GridExportKWh
	}

	pvInvestment := float64(params.ModuleCount) * params.ModulePowerW * spec.PricePerWatt
	batteryInvestment := params.BatteryCapacityKWh * a.batteryCostPerKWh
	inverterInvestment := params.InverterPrice
	totalInvestment := pvInvestment + batteryInvestment + inverterInvestment

	annualGeneration := sizing.DailyGenerationKWh * daysPerYear
	annualConsumption := params.MonthlyUsageKWh * 12
	annualGridImport := floats.Sum(imports[:]) * daysPerYear / model.HoursPerDay
	annualGridExport := floats.Sum(exports[:]) * daysPerYear / model.HoursPerDay

	selfConsumption := annualConsumption - annualGridImport
	savingFromSelfUse := selfConsumption * params.ElectricityPrice
	incomeFromExport := annualGridExport * params.FeedInTariff
	subsidyIncome := annualGeneration * params.Subsidy
	annualBenefit := savingFromSelfUse + incomeFromExport + subsidyIncome

	result := model.EconomicResult{
		PVInvestment:       pvInvestment,
		BatteryInvestment:  batteryInvestment,
		InverterInvestment: inverterInvestment,
		TotalInvestment:    totalInvestment,

		AnnualGenerationKWh:      annualGeneration,
		AnnualSelfConsumptionKWh: selfConsumption,
		AnnualGridImportKWh:      annualGridImport,
		AnnualGridExportKWh:      annualGridExport,

		AnnualBenefit: annualBenefit,
	}

	if annualBenefit > 0 {
		result.PaybackYears = totalInvestment / annualBenefit
	} else {
		result.PaybackUnbounded = true
	}
	return result
}
