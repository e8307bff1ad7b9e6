package handlers

import (
	"net/http"

	"skillhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last stored health snapshot of the backing stores.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	healthy := status.Mongo
	for _, ok := range status.Redis {
		healthy = healthy && ok
	}
	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "healthy": healthy})
}
