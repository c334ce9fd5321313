package controllers

import (
	"log"
	"net/http"

	"Bracketpool/auth"
	"Bracketpool/bracket"
	"Bracketpool/mailer"
	"Bracketpool/models"
	"Bracketpool/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// ResetPicks clears every stage's picks for the participant, mails them
// a readback of what they had, and invalidates every outstanding
// session. Identity fields survive; the participant re-registers a
// session by going through the front door again.
func (server *Server) ResetPicks(c *gin.Context) {
	pid, ok := httpctx.CurrentParticipantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized: Please register first",
		})
		return
	}

	var participant models.Participant
	found, err := participant.FindParticipantByID(server.DB, pid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status": http.StatusNotFound,
			"error":  "Participant not found",
		})
		return
	}

	var store models.StagePicks
	picks, err := store.SnapshotPicks(server.DB, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Server error fetching picks",
		})
		return
	}

	// Capture the summary before anything is cleared.
	sections := bracket.Project(picks)

	if err := store.ClearStagePicks(server.DB, pid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Server error resetting picks",
		})
		return
	}

	var session models.Session
	if err := session.DeleteParticipantSessions(server.DB, pid); err != nil {
		log.Printf("warning: sessions not invalidated for participant %d: %v", pid, err)
	}
	invalidateSummaryCache(pid)

	if err := mailer.SendResetNotice(found.Name, found.Email, sections); err != nil {
		log.Printf("warning: reset notice not sent to %s: %v", found.Email, err)
	}

	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"message":  "Bracket picks reset successfully",
		"redirect": "/",
	})
}
