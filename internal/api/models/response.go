package models

import (
	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// EvaluateResponse returns the derived results for one configuration. The
// hourly profile is included only when the request asked for it.
type EvaluateResponse struct {
	ID          string               `json:"id"`
	Module      catalog.ModuleSpec   `json:"module"`
	Sizing      model.SizingResult   `json:"sizing"`
	BackupHours float64              `json:"backup_hours"`
	Economics   model.EconomicResult `json:"economics"`
	Profile     *model.HourlyProfile `json:"profile,omitempty"`
}

// FromEvaluation builds the response from a stored evaluation.
func FromEvaluation(eval *model.Evaluation, includeProfile bool) EvaluateResponse {
	resp := EvaluateResponse{
		ID:          eval.ID,
		Module:      eval.Module,
		Sizing:      eval.Sizing,
		BackupHours: eval.BackupHours,
		Economics:   eval.Economics,
	}
	if includeProfile {
		profile := eval.Profile
		resp.Profile = &profile
	}
	return resp
}

// ModulesResponse lists the PV module catalog.
type ModulesResponse struct {
	Modules []catalog.ModuleSpec `json:"modules"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError builds an error envelope.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
