package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var session Session
	opened, err := session.CreateSession(db, participant.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, opened.TokenID)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), opened.ExpiresAt, time.Minute)

	live, err := session.FindLiveSession(db, opened.TokenID)
	assert.NoError(t, err)
	assert.Equal(t, participant.ID, live.ParticipantID)
}

func TestExpiredSessionRejected(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var session Session
	opened, err := session.CreateSession(db, participant.ID)
	assert.NoError(t, err)

	db.Model(&Session{}).Where("id = ?", opened.ID).
		Update("expires_at", time.Now().Add(-time.Hour))

	_, err = session.FindLiveSession(db, opened.TokenID)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDeleteParticipantSessions(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var session Session
	first, _ := session.CreateSession(db, participant.ID)
	second, _ := session.CreateSession(db, participant.ID)

	assert.NoError(t, session.DeleteParticipantSessions(db, participant.ID))

	_, err := session.FindLiveSession(db, first.TokenID)
	assert.ErrorIs(t, err, ErrSessionExpired)
	_, err = session.FindLiveSession(db, second.TokenID)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestPurgeExpiredSessions(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var session Session
	stale, _ := session.CreateSession(db, participant.ID)
	db.Model(&Session{}).Where("id = ?", stale.ID).
		Update("expires_at", time.Now().Add(-time.Hour))
	fresh, _ := session.CreateSession(db, participant.ID)

	assert.NoError(t, session.PurgeExpiredSessions(db))

	var count int64
	db.Model(&Session{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err := session.FindLiveSession(db, fresh.TokenID)
	assert.NoError(t, err)
}
