package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness. There is nothing external to probe —
// all state lives in memory.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
