package controllers

import (
	"net/http"
	"testing"

	"Bracketpool/bracket"

	"github.com/stretchr/testify/assert"
)

func TestSummaryReadsBackEverything(t *testing.T) {
	server := newTestServer(t)
	token := registerTestParticipant(t, server, "entrant@example.com")

	w := submitStage(t, server, token, "playin", playinPayload)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, server, http.MethodGet, "/api/v1/summary", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)["response"].(map[string]interface{})

	participant := response["participant"].(map[string]interface{})
	assert.Equal(t, "Test Entrant", participant["name"])
	assert.Equal(t, "entrant@example.com", participant["email"])

	stages := response["stages"].([]interface{})
	assert.Len(t, stages, 6)

	playin := stages[0].(map[string]interface{})
	assert.Equal(t, "Play-In", playin["title"])
	entries := playin["entries"].([]interface{})
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "east7", first["field"])
	assert.Equal(t, "Hawks", first["value"])

	// Unreached stages read back as "Not selected", not as errors.
	finals := stages[5].(map[string]interface{})
	for _, raw := range finals["entries"].([]interface{}) {
		entry := raw.(map[string]interface{})
		assert.Equal(t, bracket.NotSelected, entry["value"])
	}
}

func TestSummaryRequiresSession(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfile(t *testing.T) {
	server := newTestServer(t)
	token := registerTestParticipant(t, server, "entrant@example.com")

	w := doJSON(t, server, http.MethodGet, "/api/v1/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)["response"].(map[string]interface{})
	assert.Equal(t, "Test Entrant", response["name"])
	assert.Equal(t, "555-0100", response["phone"])
	assert.Equal(t, "Venmo", response["payment_method"])
}
