package bracket

import "strings"

// PickSet is the flat slot-id to value map recorded for one stage.
type PickSet map[string]string

// Picks is a snapshot of every stage's recorded pick set for one
// participant.
type Picks map[Stage]PickSet

// EmptySet returns a pick set with every expected field present and
// empty. Readers always see the full shape of a stage, never a missing
// key.
func EmptySet(s Stage) PickSet {
	set := PickSet{}
	for _, field := range RequiredFields(s) {
		set[field] = ""
	}
	return set
}

// Normalize trims a submitted payload down to the fields the stage
// actually defines, dropping anything else. Unknown keys in a request
// body never reach storage.
func Normalize(s Stage, payload map[string]string) PickSet {
	set := EmptySet(s)
	for field := range set {
		set[field] = strings.TrimSpace(payload[field])
	}
	return set
}

// IsComplete reports whether every required field of the stage has a
// non-empty value in set.
func IsComplete(s Stage, set PickSet) bool {
	for _, field := range RequiredFields(s) {
		if strings.TrimSpace(set[field]) == "" {
			return false
		}
	}
	return true
}

func (p Picks) value(ref *Ref) string {
	if set, ok := p[ref.Stage]; ok {
		return strings.TrimSpace(set[ref.Slot])
	}
	return ""
}
