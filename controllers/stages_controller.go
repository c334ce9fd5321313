package controllers

import (
	"errors"
	"net/http"

	"Bracketpool/bracket"
	"Bracketpool/models"
	"Bracketpool/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// stagePages maps stages to the wizard pages the frontend serves, so
// every response can tell the client where to go next.
var stagePages = map[bracket.Stage]string{
	bracket.PlayIn:           "/playin.html",
	bracket.FirstRoundEast:   "/firstround_east.html",
	bracket.FirstRoundWest:   "/firstround_west.html",
	bracket.Semifinals:       "/semifinals.html",
	bracket.ConferenceFinals: "/conferencefinals.html",
	bracket.Finals:           "/finals.html",
}

const summaryPage = "/summary.html"

func stageParam(c *gin.Context) (bracket.Stage, bool) {
	stage := bracket.Stage(c.Param("stage"))
	if !bracket.Valid(stage) {
		c.JSON(http.StatusNotFound, gin.H{
			"status": http.StatusNotFound,
			"error":  "Unknown stage",
		})
		return "", false
	}
	return stage, true
}

// upstreamView shapes resolved matchups for the page: the concrete team
// pair plus the selectable options with placeholders filtered out.
func upstreamView(stage bracket.Stage, picks bracket.Picks) []map[string]interface{} {
	matchups := bracket.Resolve(stage, picks)
	view := make([]map[string]interface{}, 0, len(matchups))
	for _, m := range matchups {
		view = append(view, map[string]interface{}{
			"slot":    m.SlotID,
			"team_a":  m.TeamA,
			"team_b":  m.TeamB,
			"options": m.Options(),
		})
	}
	return view
}

// GetStage returns a stage's stored picks plus the matchups derived from
// upstream winners. Reading is gated on every prior stage being
// complete.
func (server *Server) GetStage(c *gin.Context) {
	stage, ok := stageParam(c)
	if !ok {
		return
	}
	pid, ok := httpctx.CurrentParticipantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized: Please register first",
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

	var prereq *bracket.PrerequisiteError
	if err := bracket.CheckReadable(stage, picks); errors.As(err, &prereq) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":   http.StatusBadRequest,
			"error":    gin.H{"Incomplete_stage": "Please complete the " + bracket.Title(prereq.Stage) + " step first"},
			"stage":    string(prereq.Stage),
			"redirect": stagePages[prereq.Stage],
		})
		return
	}

	response := gin.H{
		"data":     picks[stage],
		"upstream": upstreamView(stage, picks),
	}
	if stage == bracket.PlayIn {
		east, west := bracket.PlayInPools()
		response["teams"] = gin.H{"east": east, "west": west}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": response,
	})
}

// SubmitStage validates and stores a full pick set for one stage. The
// stored set is replaced wholesale; last write wins.
func (server *Server) SubmitStage(c *gin.Context) {
	stage, ok := stageParam(c)
	if !ok {
		return
	}
	pid, ok := httpctx.CurrentParticipantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized: Please register first",
		})
		return
	}

	var raw map[string]string
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Cannot unmarshal body",
		})
		return
	}
	payload := bracket.Normalize(stage, raw)

	var store models.StagePicks
	picks, err := store.SnapshotPicks(server.DB, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Server error fetching picks",
		})
		return
	}

	var prereq *bracket.PrerequisiteError
	if err := bracket.CheckReadable(stage, picks); errors.As(err, &prereq) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":   http.StatusBadRequest,
			"error":    gin.H{"Incomplete_stage": "Please complete the " + bracket.Title(prereq.Stage) + " step first"},
			"stage":    string(prereq.Stage),
			"redirect": stagePages[prereq.Stage],
		})
		return
	}

	errorMessages := bracket.ValidateSubmission(stage, payload)
	if len(errorMessages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  errorMessages,
		})
		return
	}

	if err := store.SaveStagePicks(server.DB, pid, stage, payload); err != nil {
		if errors.Is(err, models.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Participant not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Server error saving picks",
		})
		return
	}

	invalidateSummaryCache(pid)

	next := summaryPage
	if nextStage, more := bracket.Next(stage); more {
		next = stagePages[nextStage]
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": bracket.Title(stage) + " picks saved successfully",
		"next":    next,
	})
}
