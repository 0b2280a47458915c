package handlers

import (
	"net/http"
	"time"

	"homeserve/services/offers"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// OffersHandler exposes the promotional offer registry.
type OffersHandler struct {
	Registry *offers.Registry
}

func NewOffersHandler(registry *offers.Registry) *OffersHandler {
	return &OffersHandler{Registry: registry}
}

// ListOffers returns offers, optionally filtered by category. The response
// also carries the offers expiring within the next 7 days.
func (h *OffersHandler) ListOffers(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"offers":        h.Registry.List(c.Query("category")),
		"expiring_soon": h.Registry.ExpiringSoon(now, 7),
	})
}

// GetOffer returns one offer by its code. Expired offers stay retrievable
// for display; eligibility is decided at quote time.
func (h *OffersHandler) GetOffer(c *gin.Context) {
	offer, err := h.Registry.FindByCode(c.Param("code"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, offer)
}
