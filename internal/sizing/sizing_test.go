package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

var defaultSpec = catalog.ModuleSpec{Name: "Longi Hi-MO 5", Efficiency: 0.213, PricePerWatt: 2.5}

var defaultParams = model.SystemParameters{
	MonthlyUsageKWh:   500,
	PeakUsageFraction: 0.6,
	BackupHoursTarget: 4,

	SunshineHours:      4.5,
	SystemLossFraction: 0.15,
	ModulePowerW:       450,
	ModuleCount:        20,

	BatteryCapacityKWh: 10,
	BatteryEfficiency:  0.95,
	DepthOfDischarge:   0.9,

	InverterPowerKW:    5,
	InverterEfficiency: 0.98,
	InverterPrice:      10000,

	ElectricityPrice: 0.6,
	Subsidy:          0.3,
	FeedInTariff:     0.2,
}

func TestSizeSystem_ReferenceScenario(t *testing.T) {
	s := SizeSystem(defaultSpec, defaultParams)

	// 450 W × 20 = 9.0 kW
	assert.InDelta(t, 9.0, s.TotalPVPowerKW, 0.001)
	// 9.0 × 4.5 × 0.213 × 0.85 ≈ 7.33 kWh
	assert.InDelta(t, 7.33, s.DailyGenerationKWh, 0.01)
	// 10 kWh × 90% DoD = 9.0 kWh usable
	assert.InDelta(t, 9.0, s.UsableCapacityKWh, 0.001)
	assert.InDelta(t, 10.0, s.BatteryCapacityKWh, 0.001)
	assert.InDelta(t, 5.0, s.InverterPowerKW, 0.001)
}

func TestSizeSystem_UsableNeverExceedsNominal(t *testing.T) {
	for _, dod := range []float64{0.5, 0.7, 0.9, 1.0} {
		p := defaultParams
		p.DepthOfDischarge = dod
		s := SizeSystem(defaultSpec, p)
		assert.InDelta(t, p.BatteryCapacityKWh*dod, s.UsableCapacityKWh, 1e-9)
		assert.LessOrEqual(t, s.UsableCapacityKWh, p.BatteryCapacityKWh)
	}
}

func TestSizeSystem_ScalesWithModuleCount(t *testing.T) {
	p := defaultParams
	p.ModuleCount = 40
	s := SizeSystem(defaultSpec, p)
	assert.InDelta(t, 18.0, s.TotalPVPowerKW, 0.001)

	base := SizeSystem(defaultSpec, defaultParams)
	assert.InDelta(t, 2*base.DailyGenerationKWh, s.DailyGenerationKWh, 1e-9)
}

func TestEstimateBackupHours(t *testing.T) {
	s := SizeSystem(defaultSpec, defaultParams)

	// Daily usage 500/30 ≈ 16.67 kWh, peak share 60% → 10 kWh over a 4 h
	// window = 2.5 kWh/h. 9.0 usable / 2.5 = 3.6 h.
	hours := EstimateBackupHours(s, defaultParams)
	assert.InDelta(t, 3.6, hours, 0.01)
}

func TestEstimateBackupHours_GrowsWithCapacity(t *testing.T) {
	p := defaultParams
	p.BatteryCapacityKWh = 20
	s := SizeSystem(defaultSpec, p)
	hours := EstimateBackupHours(s, p)
	assert.InDelta(t, 7.2, hours, 0.01)
}
