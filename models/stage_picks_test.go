package models

import (
	"testing"

	"Bracketpool/bracket"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&Participant{}, &Session{}, &StagePicks{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func createTestParticipant(t *testing.T, db *gorm.DB) *Participant {
	t.Helper()
	participant := Participant{
		Name:          "Test Entrant",
		Email:         "entrant@example.com",
		Phone:         "555-0100",
		PaymentMethod: "Venmo",
	}
	participant.Prepare()
	saved, err := participant.SaveParticipant(db)
	if err != nil {
		t.Fatalf("Failed to create participant: %v", err)
	}
	return saved
}

var playinSet = bracket.PickSet{
	"east7": "Hawks",
	"east8": "Bulls",
	"west7": "Lakers",
	"west8": "Warriors",
}

func TestStagePicksRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var store StagePicks
	err := store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet)
	assert.NoError(t, err)

	got, err := store.GetStagePicks(db, participant.ID, bracket.PlayIn)
	assert.NoError(t, err)
	assert.Equal(t, playinSet, got)

	// Untouched stages come back fully shaped and empty.
	east, err := store.GetStagePicks(db, participant.ID, bracket.FirstRoundEast)
	assert.NoError(t, err)
	assert.Equal(t, bracket.EmptySet(bracket.FirstRoundEast), east)
}

func TestStagePicksPutIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var store StagePicks
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet))
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet))

	var count int64
	db.Model(&StagePicks{}).Where("participant_id = ?", participant.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := store.GetStagePicks(db, participant.ID, bracket.PlayIn)
	assert.NoError(t, err)
	assert.Equal(t, playinSet, got)
}

func TestStagePicksLastWriteWins(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var store StagePicks
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet))

	rewrite := bracket.PickSet{
		"east7": "Magic",
		"east8": "Wizards",
		"west7": "Spurs",
		"west8": "Jazz",
	}
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, rewrite))

	got, err := store.GetStagePicks(db, participant.ID, bracket.PlayIn)
	assert.NoError(t, err)
	assert.Equal(t, rewrite, got)
}

func TestStagePicksIsolationAcrossStages(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var store StagePicks
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet))

	eastSet := bracket.EmptySet(bracket.FirstRoundEast)
	eastSet["matchup1"] = "Cavaliers"
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.FirstRoundEast, eastSet))

	got, err := store.GetStagePicks(db, participant.ID, bracket.PlayIn)
	assert.NoError(t, err)
	assert.Equal(t, playinSet, got)
}

func TestSaveStagePicksMissingParticipant(t *testing.T) {
	db := setupTestDB(t)

	var store StagePicks
	err := store.SaveStagePicks(db, 9999, bracket.PlayIn, playinSet)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestSnapshotPicks(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var store StagePicks
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet))

	picks, err := store.SnapshotPicks(db, participant.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hawks", picks[bracket.PlayIn]["east7"])
	for _, stage := range bracket.Order() {
		assert.Contains(t, picks, stage)
	}
	assert.Equal(t, bracket.EmptySet(bracket.Finals), picks[bracket.Finals])
}

func TestClearStagePicksKeepsIdentity(t *testing.T) {
	db := setupTestDB(t)
	participant := createTestParticipant(t, db)

	var store StagePicks
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.PlayIn, playinSet))
	assert.NoError(t, store.SaveStagePicks(db, participant.ID, bracket.FirstRoundEast, bracket.EmptySet(bracket.FirstRoundEast)))

	assert.NoError(t, store.ClearStagePicks(db, participant.ID))

	var count int64
	db.Model(&StagePicks{}).Where("participant_id = ?", participant.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	got, err := store.GetStagePicks(db, participant.ID, bracket.PlayIn)
	assert.NoError(t, err)
	assert.Equal(t, bracket.EmptySet(bracket.PlayIn), got)

	var reloaded Participant
	kept, err := reloaded.FindParticipantByID(db, participant.ID)
	assert.NoError(t, err)
	assert.Equal(t, participant.Name, kept.Name)
	assert.Equal(t, participant.Email, kept.Email)
}
