package controllers

import (
	"net/http"
	"os"

	"Bracketpool/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/", func(c *gin.Context) {
		if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
			c.Redirect(302, frontend)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Playoff Bracket Pool API"})
	})

	sessionAuth := middlewares.SessionAuthMiddleware(s.DB)

	v1 := s.Router.Group("/api/v1")
	{
		// Registration routes
		v1.POST("/register", middlewares.RegisterRateLimitMiddleware(), s.RegisterParticipant)
		v1.GET("/me", sessionAuth, s.GetProfile)

		// Stage routes
		v1.GET("/stages/:stage", sessionAuth, s.GetStage)
		v1.POST("/stages/:stage", sessionAuth, s.SubmitStage)

		// Summary route
		v1.GET("/summary", sessionAuth, s.GetSummary)

		// Reset route
		v1.POST("/reset", sessionAuth, middlewares.RegisterRateLimitMiddleware(), s.ResetPicks)
	}
}
