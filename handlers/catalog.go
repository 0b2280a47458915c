package handlers

import (
	"errors"
	"net/http"

	catalogRepo "homeserve/database/repository/catalog"
	"homeserve/services/catalog"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only service catalog.
type CatalogHandler struct {
	Service catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListServices returns catalog offerings, optionally filtered by category.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	offerings, err := h.Service.ListOfferings(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": offerings})
}

// GetService returns one catalog offering by id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	offering, err := h.Service.GetOffering(c.Request.Context(), c.Param("serviceID"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, offering)
}
