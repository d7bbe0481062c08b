package utils

import "github.com/gin-gonic/gin"

// RespondWithError emits the {"error": ...} body every endpoint uses for
// failures.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
