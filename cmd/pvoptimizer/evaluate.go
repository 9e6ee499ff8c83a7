package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
	"github.com/labsnomad/pv-storage-optimizer/internal/config"
	"github.com/labsnomad/pv-storage-optimizer/internal/logger"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

var evalFlags struct {
	module          string
	moduleEff       float64
	modulePrice     float64
	monthlyUsage    float64
	peakUsagePct    float64
	backupHours     float64
	sunshineHours   float64
	systemLossPct   float64
	modulePowerW    float64
	moduleCount     int
	batteryKWh      float64
	batteryEffPct   float64
	dodPct          float64
	inverterKW      float64
	inverterEffPct  float64
	inverterPrice   float64
	electricityPrice float64
	subsidy         float64
	feedInTariff    float64
	asJSON          bool
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one system configuration and print the results",
	RunE:  runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evalFlags.module, "module", "Longi Hi-MO 5", "PV module catalog name")
	f.Float64Var(&evalFlags.moduleEff, "module-efficiency", 0, "custom module efficiency percent (with --module=Custom)")
	f.Float64Var(&evalFlags.modulePrice, "module-price", 0, "custom module price per watt (with --module=Custom)")
	f.Float64Var(&evalFlags.monthlyUsage, "monthly-usage", 500, "monthly household usage, kWh")
	f.Float64Var(&evalFlags.peakUsagePct, "peak-usage", 60, "peak-period consumption share, percent")
	f.Float64Var(&evalFlags.backupHours, "backup-hours", 4, "targeted backup window, hours")
	f.Float64Var(&evalFlags.sunshineHours, "sunshine-hours", 4.5, "daily effective sunshine hours")
	f.Float64Var(&evalFlags.systemLossPct, "system-loss", 15, "system loss, percent")
	f.Float64Var(&evalFlags.modulePowerW, "module-power", 450, "single module power, W")
	f.IntVar(&evalFlags.moduleCount, "module-count", 20, "number of PV modules")
	f.Float64Var(&evalFlags.batteryKWh, "battery-capacity", 10, "battery capacity, kWh")
	f.Float64Var(&evalFlags.batteryEffPct, "battery-efficiency", 95, "battery efficiency, percent")
	f.Float64Var(&evalFlags.dodPct, "depth-of-discharge", 90, "depth of discharge, percent")
	f.Float64Var(&evalFlags.inverterKW, "inverter-power", 5, "inverter power, kW")
	f.Float64Var(&evalFlags.inverterEffPct, "inverter-efficiency", 98, "inverter efficiency, percent")
	f.Float64Var(&evalFlags.inverterPrice, "inverter-price", 10000, "inverter price")
	f.Float64Var(&evalFlags.electricityPrice, "electricity-price", 0.6, "retail electricity price per kWh")
	f.Float64Var(&evalFlags.subsidy, "subsidy", 0.3, "generation subsidy per kWh")
	f.Float64Var(&evalFlags.feedInTariff, "feed-in-tariff", 0.2, "feed-in tariff per kWh")
	f.BoolVar(&evalFlags.asJSON, "json", false, "print the full evaluation as JSON")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Pretty)

	calculator, err := newCalculator(cfg)
	if err != nil {
		return err
	}

	eval, err := calculator.Evaluate(calc.Input{
		Module:             evalFlags.module,
		CustomEfficiency:   evalFlags.moduleEff / 100,
		CustomPricePerWatt: evalFlags.modulePrice,
		Params: model.SystemParameters{
			MonthlyUsageKWh:   evalFlags.monthlyUsage,
			PeakUsageFraction: evalFlags.peakUsagePct / 100,
			BackupHoursTarget: evalFlags.backupHours,

			SunshineHours:      evalFlags.sunshineHours,
			SystemLossFraction: evalFlags.systemLossPct / 100,
			ModulePowerW:       evalFlags.modulePowerW,
			ModuleCount:        evalFlags.moduleCount,

			BatteryCapacityKWh: evalFlags.batteryKWh,
			BatteryEfficiency:  evalFlags.batteryEffPct / 100,
			DepthOfDischarge:   evalFlags.dodPct / 100,

			InverterPowerKW:    evalFlags.inverterKW,
			InverterEfficiency: evalFlags.inverterEffPct / 100,
			InverterPrice:      evalFlags.inverterPrice,

			ElectricityPrice: evalFlags.electricityPrice,
			Subsidy:          evalFlags.subsidy,
			FeedInTariff:     evalFlags.feedInTariff,
		},
	})
	if err != nil {
		return err
	}

	if evalFlags.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(eval)
	}

	printSummary(eval)
	return nil
}

func printSummary(eval *model.Evaluation) {
	s := eval.Sizing
	e := eval.Economics

	fmt.Printf("Module:             %s × %d\n", eval.Module.Name, eval.Params.ModuleCount)
	fmt.Printf("Total PV power:     %.2f kW\n", s.TotalPVPowerKW)
	fmt.Printf("Daily generation:   %.2f kWh\n", s.DailyGenerationKWh)
	fmt.Printf("Battery capacity:   %.2f kWh (usable %.2f kWh)\n", s.BatteryCapacityKWh, s.UsableCapacityKWh)
	fmt.Printf("Backup duration:    %.1f h\n", eval.BackupHours)
	fmt.Println()
	fmt.Printf("PV investment:      %.0f\n", e.PVInvestment)
	fmt.Printf("Battery investment: %.0f\n", e.BatteryInvestment)
	fmt.Printf("Inverter:           %.0f\n", e.InverterInvestment)
	fmt.Printf("Total investment:   %.0f\n", e.TotalInvestment)
	fmt.Printf("Annual generation:  %.0f kWh\n", e.AnnualGenerationKWh)
	fmt.Printf("Annual self-use:    %.0f kWh\n", e.AnnualSelfConsumptionKWh)
	fmt.Printf("Annual benefit:     %.0f\n", e.AnnualBenefit)
	if e.PaybackUnbounded {
		fmt.Println("Payback period:     >50 years")
	} else {
		fmt.Printf("Payback period:     %.1f years\n", e.PaybackYears)
	}
}
