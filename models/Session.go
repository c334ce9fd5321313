package models

import (
	"errors"
	"time"

	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

// SessionTTL is the inactivity window after which a session token stops
// working and the participant must register again.
const SessionTTL = 24 * time.Hour

// ErrSessionExpired covers both a missing and an expired session row;
// either way the caller is treated as unauthenticated.
var ErrSessionExpired = errors.New("session expired")

// Session maps a short-lived token to a participant. Created at
// registration, destroyed on reset.
type Session struct {
	ID            uint      `gorm:"primary_key;autoIncrement" json:"id"`
	TokenID       string    `gorm:"size:36;not null;uniqueIndex" json:"token_id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	ExpiresAt     time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (s *Session) CreateSession(db *gorm.DB, participantID uint) (*Session, error) {
	session := Session{
		TokenID:       uuid.NewV4().String(),
		ParticipantID: participantID,
		ExpiresAt:     time.Now().Add(SessionTTL),
		CreatedAt:     time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FindLiveSession resolves a token id to its session, rejecting expired
// rows as if they were absent.
func (s *Session) FindLiveSession(db *gorm.DB, tokenID string) (*Session, error) {
	var session Session
	err := db.Where("token_id = ?", tokenID).Take(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// DeleteParticipantSessions invalidates every outstanding token for a
// participant. Called on reset.
func (s *Session) DeleteParticipantSessions(db *gorm.DB, participantID uint) error {
	return db.Where("participant_id = ?", participantID).Delete(&Session{}).Error
}

// PurgeExpiredSessions removes rows past their expiry. Run at boot.
func (s *Session) PurgeExpiredSessions(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&Session{}).Error
}
