package ws

import (
	"encoding/json"

	"github.com/labsnomad/pv-storage-optimizer/internal/api/models"
	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants
const (
	// Client -> Server
	TypeParamsUpdate = "params:update"

	// Server -> Client
	TypeCatalogLoaded   = "catalog:loaded"
	TypeResultSizing    = "result:sizing"
	TypeResultBackup    = "result:backup"
	TypeResultEconomics = "result:economics"
	TypeResultProfile   = "result:profile"
	TypeError           = "error"
)

// ParamsUpdatePayload is the full form state; same shape as the REST request.
type ParamsUpdatePayload = models.EvaluateRequest

// Server -> Client payloads

type CatalogLoadedPayload struct {
	Modules []catalog.ModuleSpec `json:"modules"`
}

type SizingPayload struct {
	EvaluationID string             `json:"evaluation_id"`
	Sizing       model.SizingResult `json:"sizing"`
}

type BackupPayload struct {
	EvaluationID string  `json:"evaluation_id"`
	BackupHours  float64 `json:"backup_hours"`
}

type EconomicsPayload struct {
	EvaluationID string               `json:"evaluation_id"`
	Economics    model.EconomicResult `json:"economics"`
}

type ProfilePayload struct {
	EvaluationID string              `json:"evaluation_id"`
	Profile      model.HourlyProfile `json:"profile"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
