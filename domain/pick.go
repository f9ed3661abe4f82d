package domain

import "time"

const (
	// DayLayout is the date portion compared to decide whether a new day started.
	DayLayout = "2006-01-02"
	// TimestampLayout matches the ISO-8601 form already stored in existing sheets.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type DecisionKind int

const (
	// DecisionLock keeps the person already picked today.
	DecisionLock DecisionKind = iota
	// DecisionPick requires a new random pick.
	DecisionPick
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionLock:
		return "lock"
	case DecisionPick:
		return "pick"
	default:
		return "unknown"
	}
}

type Decision struct {
	Kind         DecisionKind
	NewDay       bool
	CountChanged bool
}

// Decide applies the pick lock: a room keeps its person for the rest of the UTC day
// unless the roster size differs from the one observed at the last pick.
// Any difference unlocks, whether participants were added or removed.
func Decide(now time.Time, status Status, currentCount int) Decision {
	d := Decision{
		NewDay:       now.UTC().Format(DayLayout) != PickDay(status.Timestamp),
		CountChanged: currentCount != status.ParticipantCount,
	}
	if !d.NewDay && !d.CountChanged && status.HasPerson() {
		d.Kind = DecisionLock
		return d
	}
	d.Kind = DecisionPick
	return d
}

// PickDay returns the date portion of a stored timestamp.
func PickDay(timestamp string) string {
	if len(timestamp) < len(DayLayout) {
		return timestamp
	}
	return timestamp[:len(DayLayout)]
}

// FormatTimestamp renders the instant of a pick the way it is stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type Outcome int

const (
	OutcomeNoParticipants Outcome = iota
	OutcomeAlreadyPicked
	OutcomeNewPick
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoParticipants:
		return "no_participants"
	case OutcomeAlreadyPicked:
		return "already_picked"
	case OutcomeNewPick:
		return "new_pick"
	default:
		return "unknown"
	}
}

// PickResult is what a person request resolves to.
// Person is empty only for OutcomeNoParticipants.
type PickResult struct {
	Outcome Outcome
	Person  string
}
