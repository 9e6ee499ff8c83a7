package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labsnomad/pv-storage-optimizer/internal/api/models"
	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
)

// ModulesHandler lists the PV module catalog.
type ModulesHandler struct {
	catalog *catalog.Catalog
}

func NewModulesHandler(cat *catalog.Catalog) *ModulesHandler {
	return &ModulesHandler{catalog: cat}
}

// List handles GET /api/v1/modules.
func (h *ModulesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.ModulesResponse{Modules: h.catalog.Modules()})
}
