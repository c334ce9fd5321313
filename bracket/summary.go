package bracket

import "strings"

// NotSelected is substituted for empty values on the confirmation page.
const NotSelected = "Not selected"

// SummaryEntry is one labeled answer in the read-only summary view.
type SummaryEntry struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummarySection groups a stage's entries for the confirmation page.
type SummarySection struct {
	Stage   Stage          `json:"stage"`
	Title   string         `json:"title"`
	Entries []SummaryEntry `json:"entries"`
}

var fieldLabels = map[Stage]map[string]string{
	PlayIn: {
		"east7": "Eastern 7th Seed",
		"east8": "Eastern 8th Seed",
		"west7": "Western 7th Seed",
		"west8": "Western 8th Seed",
	},
	FirstRoundEast: {
		"matchup1": "Matchup 1 Winner",
		"matchup2": "Matchup 2 Winner",
		"matchup3": "Matchup 3 Winner",
		"matchup4": "Matchup 4 Winner",
		"series1":  "Matchup 1 Series",
		"series2":  "Matchup 2 Series",
		"series3":  "Matchup 3 Series",
		"series4":  "Matchup 4 Series",
	},
	FirstRoundWest: {
		"matchup1": "Matchup 1 Winner",
		"matchup2": "Matchup 2 Winner",
		"matchup3": "Matchup 3 Winner",
		"matchup4": "Matchup 4 Winner",
		"series1":  "Matchup 1 Series",
		"series2":  "Matchup 2 Series",
		"series3":  "Matchup 3 Series",
		"series4":  "Matchup 4 Series",
	},
	Semifinals: {
		"east1":       "Eastern Semifinal 1 Winner",
		"east2":       "Eastern Semifinal 2 Winner",
		"west1":       "Western Semifinal 1 Winner",
		"west2":       "Western Semifinal 2 Winner",
		"eastSeries1": "Eastern Semifinal 1 Series",
		"eastSeries2": "Eastern Semifinal 2 Series",
		"westSeries1": "Western Semifinal 1 Series",
		"westSeries2": "Western Semifinal 2 Series",
	},
	ConferenceFinals: {
		"eastWinner": "Eastern Conference Winner",
		"westWinner": "Western Conference Winner",
		"eastSeries": "Eastern Finals Series",
		"westSeries": "Western Finals Series",
	},
	Finals: {
		"champion":     "Champion",
		"seriesLength": "Series Length",
		"mvp":          "Finals MVP",
		"winnerScore":  "Winning Team Score",
		"loserScore":   "Losing Team Score",
	},
}

// Project flattens a full picks snapshot into the ordered read-only view
// for the confirmation page. Empty values become "Not selected". No
// validation, no mutation.
func Project(picks Picks) []SummarySection {
	sections := make([]SummarySection, 0, len(stageOrder))
	for _, stage := range stageOrder {
		section := SummarySection{Stage: stage, Title: Title(stage)}
		set := picks[stage]
		for _, field := range RequiredFields(stage) {
			value := strings.TrimSpace(set[field])
			if value == "" {
				value = NotSelected
			}
			section.Entries = append(section.Entries, SummaryEntry{
				Field: field,
				Label: fieldLabels[stage][field],
				Value: value,
			})
		}
		sections = append(sections, section)
	}
	return sections
}
