package handlers

import (
	"net/http"

	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot of external services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
