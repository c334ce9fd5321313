package bracket

import (
	"fmt"
	"strconv"
	"strings"
)

// PrerequisiteError names the first stage a participant still has to
// complete before the requested one becomes readable.
type PrerequisiteError struct {
	Stage Stage
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("please complete the %s step first", Title(e.Stage))
}

// CheckReadable gates access to a stage: every stage strictly before it
// must have a complete pick set. Returns a *PrerequisiteError naming the
// first unmet stage, or nil.
func CheckReadable(target Stage, picks Picks) error {
	for _, stage := range stageOrder {
		if stage == target {
			return nil
		}
		if !IsComplete(stage, picks[stage]) {
			return &PrerequisiteError{Stage: stage}
		}
	}
	return nil
}

// ValidateSubmission checks a normalized payload for structural
// completeness. The returned map is empty when the payload is a valid,
// complete pick set for the stage.
func ValidateSubmission(s Stage, payload PickSet) map[string]string {
	errorMessages := make(map[string]string)

	for _, field := range RequiredFields(s) {
		if strings.TrimSpace(payload[field]) == "" {
			errorMessages["Required_"+field] = "Required " + field
		}
	}

	if s == PlayIn {
		if payload["east7"] != "" && payload["east7"] == payload["east8"] {
			errorMessages["Duplicate_east"] = "Eastern 7th and 8th seeds must be different teams"
		}
		if payload["west7"] != "" && payload["west7"] == payload["west8"] {
			errorMessages["Duplicate_west"] = "Western 7th and 8th seeds must be different teams"
		}
	}

	if s == Finals {
		winnerScore, errw := strconv.Atoi(payload["winnerScore"])
		loserScore, errl := strconv.Atoi(payload["loserScore"])
		if payload["winnerScore"] != "" && errw != nil {
			errorMessages["Invalid_winnerScore"] = "Winning team score must be a number"
		}
		if payload["loserScore"] != "" && errl != nil {
			errorMessages["Invalid_loserScore"] = "Losing team score must be a number"
		}
		if errw == nil && errl == nil && winnerScore <= loserScore {
			errorMessages["Invalid_finalScore"] = "Winning team score must be greater than losing team score"
		}
	}

	return errorMessages
}
