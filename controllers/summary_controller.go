package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"Bracketpool/bracket"
	"Bracketpool/cache"
	"Bracketpool/models"
	"Bracketpool/utils/httpctx"

	"github.com/gin-gonic/gin"
)

const summaryCacheTTL = 5 * time.Minute

// GetSummary flattens every stage's picks plus identity fields into the
// read-only confirmation view. Unreached stages show up with every slot
// "Not selected"; there is no gating here.
func (server *Server) GetSummary(c *gin.Context) {
	pid, ok := httpctx.CurrentParticipantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized: Please register first",
		})
		return
	}

	if cached, err := cache.Get(context.Background(), summaryCacheKey(pid)); err == nil && cached != "" {
		var response map[string]interface{}
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":   http.StatusOK,
				"response": response,
			})
			return
		}
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

	response := map[string]interface{}{
		"participant": map[string]interface{}{
			"name":           found.Name,
			"email":          found.Email,
			"phone":          found.Phone,
			"comments":       found.Comments,
			"payment_method": found.PaymentMethod,
		},
		"stages": bracket.Project(picks),
	}

	if raw, err := json.Marshal(response); err == nil {
		_ = cache.Set(context.Background(), summaryCacheKey(pid), raw, summaryCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": response,
	})
}
