package domain

import (
	"fmt"
	"strings"
)

// TriggerKind is the shape of a recognized trigger
type TriggerKind string

const (
	TriggerTriplet TriggerKind = "triplet"
	TriggerNamed   TriggerKind = "named"
	TriggerChord   TriggerKind = "chord"
)

// ChordPrefix is the identifier prefix of command+digit chords
const ChordPrefix = "cmd+"

// Trigger is a recognized pattern from the key stream. ID selects the action list.
type Trigger struct {
	ID   string
	Kind TriggerKind
}

// TripletTrigger builds the trigger for three identical character presses
func TripletTrigger(r rune) Trigger {
	return Trigger{ID: strings.Repeat(string(r), 3), Kind: TriggerTriplet}
}

// NamedTrigger builds the trigger for a function key
func NamedTrigger(name string) Trigger {
	return Trigger{ID: name, Kind: TriggerNamed}
}

// ChordTrigger builds the trigger for the command modifier held with a digit
func ChordTrigger(digit int) Trigger {
	return Trigger{ID: fmt.Sprintf("%s%d", ChordPrefix, digit), Kind: TriggerChord}
}

// IsFunctionKey reports whether the trigger came from an "fN" key
func (t Trigger) IsFunctionKey() bool {
	return t.Kind == TriggerNamed && IsFunctionKeyName(t.ID)
}

// ClassifyTriggerID infers the trigger kind from a configuration key.
// Returns false for identifiers the matcher can never emit.
func ClassifyTriggerID(id string) (TriggerKind, bool) {
	switch {
	case IsFunctionKeyName(id):
		return TriggerNamed, true
	case isChordID(id):
		return TriggerChord, true
	case isTripletID(id):
		return TriggerTriplet, true
	}
	return "", false
}

func isChordID(id string) bool {
	rest, ok := strings.CutPrefix(id, ChordPrefix)
	return ok && len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9'
}

func isTripletID(id string) bool {
	runes := []rune(id)
	return len(runes) == 3 && runes[0] == runes[1] && runes[1] == runes[2]
}
