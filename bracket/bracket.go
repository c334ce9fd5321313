package bracket

// Static definition of the tournament shape. Which teams (or upstream
// winners) feed each matchup is fixed configuration; user picks never
// change the topology.

// Stage identifies one step of the bracket wizard.
type Stage string

const (
	PlayIn           Stage = "playin"
	FirstRoundEast   Stage = "firstround-east"
	FirstRoundWest   Stage = "firstround-west"
	Semifinals       Stage = "semifinals"
	ConferenceFinals Stage = "conference-finals"
	Finals           Stage = "finals"
)

var stageOrder = []Stage{
	PlayIn,
	FirstRoundEast,
	FirstRoundWest,
	Semifinals,
	ConferenceFinals,
	Finals,
}

var stageTitles = map[Stage]string{
	PlayIn:           "Play-In",
	FirstRoundEast:   "First Round East",
	FirstRoundWest:   "First Round West",
	Semifinals:       "Semifinals",
	ConferenceFinals: "Conference Finals",
	Finals:           "Finals",
}

// Order returns every stage in tournament order.
func Order() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Valid reports whether s names a known stage.
func Valid(s Stage) bool {
	_, ok := stageTitles[s]
	return ok
}

// Title returns the display name of a stage.
func Title(s Stage) string {
	return stageTitles[s]
}

// Next returns the stage following s, or false when s is the last one.
func Next(s Stage) (Stage, bool) {
	for i, stage := range stageOrder {
		if stage == s && i < len(stageOrder)-1 {
			return stageOrder[i+1], true
		}
	}
	return "", false
}

// Ref points at the recorded winner of a slot in an earlier stage.
type Ref struct {
	Stage Stage
	Slot  string
}

// Source is one side of a matchup: a fixed seed, or the winner of an
// upstream slot.
type Source struct {
	Team string
	Ref  *Ref
}

func seed(name string) Source { return Source{Team: name} }

func winnerOf(stage Stage, slot string) Source {
	return Source{Ref: &Ref{Stage: stage, Slot: slot}}
}

// Slot is one matchup within a stage. Series names the companion
// series-length field, empty when the stage does not record one. Pool is
// set only for direct-choice slots (the play-in seeds), which have no
// matchup sources.
type Slot struct {
	ID     string
	A, B   Source
	Series string
	Pool   []string
}

// Placeholder stands in for a team whose upstream winner has not been
// picked yet. It must never surface as a selectable option.
const Placeholder = "TBD"

var (
	eastPlayInPool = []string{"Pistons", "Magic", "Wizards", "Hawks"}
	westPlayInPool = []string{"Rockets", "Spurs", "Trail Blazers", "Jazz"}
)

// PlayInPools returns the candidate teams for the play-in seeds, east
// then west.
func PlayInPools() (east, west []string) {
	east = append(east, eastPlayInPool...)
	west = append(west, westPlayInPool...)
	return east, west
}

var stageSlots = map[Stage][]Slot{
	PlayIn: {
		{ID: "east7", Pool: eastPlayInPool},
		{ID: "east8", Pool: eastPlayInPool},
		{ID: "west7", Pool: westPlayInPool},
		{ID: "west8", Pool: westPlayInPool},
	},
	FirstRoundEast: {
		{ID: "matchup1", A: seed("Cavaliers"), B: winnerOf(PlayIn, "east8"), Series: "series1"},
		{ID: "matchup2", A: seed("Celtics"), B: winnerOf(PlayIn, "east7"), Series: "series2"},
		{ID: "matchup3", A: seed("Knicks"), B: seed("Heat"), Series: "series3"},
		{ID: "matchup4", A: seed("Pacers"), B: seed("Bucks"), Series: "series4"},
	},
	FirstRoundWest: {
		{ID: "matchup1", A: seed("Thunder"), B: winnerOf(PlayIn, "west8"), Series: "series1"},
		{ID: "matchup2", A: seed("Nuggets"), B: winnerOf(PlayIn, "west7"), Series: "series2"},
		{ID: "matchup3", A: seed("Lakers"), B: seed("Warriors"), Series: "series3"},
		{ID: "matchup4", A: seed("Grizzlies"), B: seed("Clippers"), Series: "series4"},
	},
	Semifinals: {
		{ID: "east1", A: winnerOf(FirstRoundEast, "matchup1"), B: winnerOf(FirstRoundEast, "matchup4"), Series: "eastSeries1"},
		{ID: "east2", A: winnerOf(FirstRoundEast, "matchup2"), B: winnerOf(FirstRoundEast, "matchup3"), Series: "eastSeries2"},
		{ID: "west1", A: winnerOf(FirstRoundWest, "matchup1"), B: winnerOf(FirstRoundWest, "matchup4"), Series: "westSeries1"},
		{ID: "west2", A: winnerOf(FirstRoundWest, "matchup2"), B: winnerOf(FirstRoundWest, "matchup3"), Series: "westSeries2"},
	},
	ConferenceFinals: {
		{ID: "eastWinner", A: winnerOf(Semifinals, "east1"), B: winnerOf(Semifinals, "east2"), Series: "eastSeries"},
		{ID: "westWinner", A: winnerOf(Semifinals, "west1"), B: winnerOf(Semifinals, "west2"), Series: "westSeries"},
	},
	Finals: {
		{ID: "champion", A: winnerOf(ConferenceFinals, "eastWinner"), B: winnerOf(ConferenceFinals, "westWinner"), Series: "seriesLength"},
	},
}

var stageAux = map[Stage][]string{
	Finals: {"mvp", "winnerScore", "loserScore"},
}

// SlotsFor returns the matchup slots of a stage, in presentation order.
func SlotsFor(s Stage) []Slot {
	return stageSlots[s]
}

// AuxFieldsFor returns the extra non-matchup fields a stage records
// (currently only the finals: MVP and the final score for each side).
func AuxFieldsFor(s Stage) []string {
	return stageAux[s]
}

// RequiredFields lists every field a complete pick set for the stage must
// fill: one winner per slot, the series field where the slot has one, and
// the stage's aux fields.
func RequiredFields(s Stage) []string {
	var fields []string
	for _, slot := range stageSlots[s] {
		fields = append(fields, slot.ID)
		if slot.Series != "" {
			fields = append(fields, slot.Series)
		}
	}
	fields = append(fields, stageAux[s]...)
	return fields
}
