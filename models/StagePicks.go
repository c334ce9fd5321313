package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Bracketpool/bracket"

	"gorm.io/gorm"
)

// PicksColumn serializes a pick set as JSON text so the same model works
// on postgres and on the sqlite driver the tests use.
type PicksColumn bracket.PickSet

func (p PicksColumn) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (p *PicksColumn) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = PicksColumn{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported picks column type %T", src)
	}
}

// StagePicks holds one participant's recorded pick set for one stage.
// One row per (participant, stage); a submit replaces the whole row.
type StagePicks struct {
	ID            uint        `gorm:"primary_key;autoIncrement" json:"id"`
	ParticipantID uint        `gorm:"not null;uniqueIndex:idx_participant_stage" json:"participant_id"`
	Stage         string      `gorm:"size:30;not null;uniqueIndex:idx_participant_stage" json:"stage"`
	Picks         PicksColumn `gorm:"type:text;not null" json:"picks"`
	CreatedAt     time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// GetStagePicks returns the stored set for a stage, defaulted so that
// every expected field is present even when nothing was ever written.
func (sp *StagePicks) GetStagePicks(db *gorm.DB, participantID uint, stage bracket.Stage) (bracket.PickSet, error) {
	set := bracket.EmptySet(stage)

	var row StagePicks
	err := db.Where("participant_id = ? AND stage = ?", participantID, string(stage)).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return set, nil
		}
		return nil, err
	}
	for field := range set {
		if value, ok := row.Picks[field]; ok {
			set[field] = value
		}
	}
	return set, nil
}

// SaveStagePicks replaces the stored set for (participant, stage). Last
// write wins; there is no merge and no optimistic locking.
func (sp *StagePicks) SaveStagePicks(db *gorm.DB, participantID uint, stage bracket.Stage, set bracket.PickSet) error {
	var count int64
	if err := db.Model(&Participant{}).Where("id = ?", participantID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrParticipantNotFound
	}

	var row StagePicks
	err := db.Where("participant_id = ? AND stage = ?", participantID, string(stage)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = StagePicks{
			ParticipantID: participantID,
			Stage:         string(stage),
			Picks:         PicksColumn(set),
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		return db.Create(&row).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&row).Updates(map[string]interface{}{
		"picks":      PicksColumn(set),
		"updated_at": time.Now(),
	}).Error
}

// SnapshotPicks loads every stage's set for a participant in one pass,
// empty-defaulted, for the validator and resolver.
func (sp *StagePicks) SnapshotPicks(db *gorm.DB, participantID uint) (bracket.Picks, error) {
	picks := bracket.Picks{}
	for _, stage := range bracket.Order() {
		picks[stage] = bracket.EmptySet(stage)
	}

	var rows []StagePicks
	if err := db.Where("participant_id = ?", participantID).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stage := bracket.Stage(row.Stage)
		set, ok := picks[stage]
		if !ok {
			continue
		}
		for field := range set {
			if value, exists := row.Picks[field]; exists {
				set[field] = value
			}
		}
	}
	return picks, nil
}

// ClearStagePicks deletes every pick row for the participant. Identity
// fields are untouched.
func (sp *StagePicks) ClearStagePicks(db *gorm.DB, participantID uint) error {
	return db.Where("participant_id = ?", participantID).Delete(&StagePicks{}).Error
}
