package middlewares

import (
	"net/http"
	"os"

	"Bracketpool/auth"
	"Bracketpool/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionAuthMiddleware gates the stage, summary, and reset routes on a
// live session. A missing or expired session answers 401 with a pointer
// back to registration: the wizard forces re-registration, not
// resumption.
func SessionAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		participantID, tokenID, err := auth.ExtractTokenSession(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":   http.StatusUnauthorized,
				"error":    "Unauthorized: Please register first",
				"redirect": "/",
			})
			c.Abort()
			return
		}

		var session models.Session
		live, err := session.FindLiveSession(db, tokenID)
		if err != nil || live.ParticipantID != participantID {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":   http.StatusUnauthorized,
				"error":    "Unauthorized: Please register first",
				"redirect": "/",
			})
			c.Abort()
			return
		}

		c.Set("participantID", participantID)
		c.Next()
	}
}

// This enables us interact with the bracket frontend
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowedOrigins := []string{
			"http://localhost:3000", // local dev
		}
		if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
			allowedOrigins = append(allowedOrigins, frontend)
		}

		for _, o := range allowedOrigins {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", o)
				break
			}
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Content-Length, X-CSRF-Token, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, OPTIONS, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
