package model

import (
	"time"

	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
)

// Evaluation is one complete run of the pipeline for a parameter set:
// sizing, the simulated day, economics, and the backup estimate.
type Evaluation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Module    catalog.ModuleSpec `json:"module"`
	Params    SystemParameters   `json:"params"`
	Sizing    SizingResult       `json:"sizing"`
	Profile   HourlyProfile      `json:"profile"`
	Economics EconomicResult     `json:"economics"`

	BackupHours float64 `json:"backup_hours"`
}
