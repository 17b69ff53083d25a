package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/utils"
)

// HealthHandler returns the latest stored health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
