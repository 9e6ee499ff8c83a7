package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labsnomad/pv-storage-optimizer/internal/api/models"
	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
)

// EvaluateHandler serves evaluation requests and cached-result lookups.
type EvaluateHandler struct {
	calculator *calc.Calculator
}

func NewEvaluateHandler(calculator *calc.Calculator) *EvaluateHandler {
	return &EvaluateHandler{calculator: calculator}
}

// Evaluate handles POST /api/v1/evaluate.
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	eval, err := h.calculator.Evaluate(req.ToInput())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_PARAMETERS", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.FromEvaluation(eval, req.IncludeProfile))
}

// GetEvaluation handles GET /api/v1/evaluations/:id.
func (h *EvaluateHandler) GetEvaluation(c *gin.Context) {
	id := c.Param("id")
	eval, ok := h.calculator.Evaluation(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", "no evaluation with id "+id))
		return
	}
	c.JSON(http.StatusOK, models.FromEvaluation(eval, true))
}
