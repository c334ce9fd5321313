package httpctx

import "github.com/gin-gonic/gin"

// CurrentParticipantID retrieves the authenticated participant ID from
// Gin context if present.
func CurrentParticipantID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("participantID")
	if !exists {
		return 0, false
	}
	pid, ok := val.(uint)
	return pid, ok
}
