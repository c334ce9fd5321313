package controllers

import (
	"net/http"

	"Bracketpool/auth"
	"Bracketpool/models"
	"Bracketpool/utils/formaterror"
	"Bracketpool/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// RegisterParticipant creates the participant record and opens a
// session. Everything except comments is required; a duplicate email is
// rejected so one address holds one bracket.
func (server *Server) RegisterParticipant(c *gin.Context) {
	var participant models.Participant

	if err := c.ShouldBindJSON(&participant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	participant.Prepare()
	errorMessages := participant.Validate("register")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  errorMessages,
		})
		return
	}

	created, err := participant.SaveParticipant(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		status := http.StatusInternalServerError
		if _, taken := formattedError["Taken_email"]; taken {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"status": status,
			"error":  formattedError,
		})
		return
	}

	var session models.Session
	opened, err := session.CreateSession(server.DB, created.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Could not open a session",
		})
		return
	}

	token, err := auth.CreateToken(created.ID, opened.TokenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Could not open a session",
		})
		return
	}

	c.SetCookie(auth.SessionCookieName, token, int(models.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{
		"status": http.StatusCreated,
		"response": map[string]interface{}{
			"token": token,
			"id":    created.PublicID,
			"name":  created.Name,
			"email": created.Email,
		},
		"redirect": stagePages["playin"],
	})
}

// GetProfile returns the identity fields of the current participant.
func (server *Server) GetProfile(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": map[string]interface{}{
			"id":             found.PublicID,
			"name":           found.Name,
			"email":          found.Email,
			"phone":          found.Phone,
			"comments":       found.Comments,
			"payment_method": found.PaymentMethod,
		},
	})
}
