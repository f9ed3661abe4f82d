package domain

// RoomID is the chat identifier, kept as the decimal string the store is keyed by.
type RoomID string

func (r RoomID) String() string {
	return string(r)
}

// Status is the last-pick bookkeeping of a room.
// ParticipantCount is the roster size observed at the last pick or join,
// not necessarily the current roster size.
type Status struct {
	Person           string
	Timestamp        string
	ParticipantCount int
}

// HasPerson reports whether a pick has been recorded since the last join.
func (s Status) HasPerson() bool {
	return s.Person != ""
}

// JoinStatus is written after every successful join: the pick is cleared
// and the count is reset to the new roster size.
func JoinStatus(count int) Status {
	return Status{Person: "", Timestamp: "", ParticipantCount: count}
}
