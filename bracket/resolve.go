package bracket

// Matchup is one resolved slot: the two concrete teams a participant
// picks between, once upstream winners have been substituted in.
type Matchup struct {
	SlotID string `json:"slot"`
	TeamA  string `json:"team_a"`
	TeamB  string `json:"team_b"`
}

func resolveSource(src Source, picks Picks) string {
	if src.Ref == nil {
		return src.Team
	}
	if winner := picks.value(src.Ref); winner != "" {
		return winner
	}
	return Placeholder
}

// Resolve computes the concrete team pair for each matchup slot of a
// stage. Missing upstream winners resolve to the placeholder rather than
// failing; CheckReadable is what blocks the page in the normal flow.
// Play-in slots are direct choices and carry no matchup, so they are
// skipped here.
func Resolve(s Stage, picks Picks) []Matchup {
	var matchups []Matchup
	for _, slot := range stageSlots[s] {
		if slot.Pool != nil {
			continue
		}
		matchups = append(matchups, Matchup{
			SlotID: slot.ID,
			TeamA:  resolveSource(slot.A, picks),
			TeamB:  resolveSource(slot.B, picks),
		})
	}
	return matchups
}

// Options returns the selectable teams of a resolved matchup, with
// unresolved placeholders filtered out.
func (m Matchup) Options() []string {
	var options []string
	for _, team := range []string{m.TeamA, m.TeamB} {
		if team != "" && team != Placeholder {
			options = append(options, team)
		}
	}
	return options
}
