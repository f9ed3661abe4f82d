package domain

// Command is an inbound chat event addressed to a room.
type Command interface {
	RoomID() RoomID
}

// Requester is the chat user who sent a command.
type Requester struct {
	FirstName string
	LastName  string
}

func (r Requester) DisplayName() string {
	return DisplayName(r.FirstName, r.LastName)
}

type JoinCommand struct {
	Room      RoomID
	Requester Requester
}

func (c JoinCommand) RoomID() RoomID { return c.Room }

type PersonCommand struct {
	Room RoomID
}

func (c PersonCommand) RoomID() RoomID { return c.Room }

type ListCommand struct {
	Room RoomID
}

func (c ListCommand) RoomID() RoomID { return c.Room }

type WhoAmICommand struct {
	Room      RoomID
	Requester Requester
}

func (c WhoAmICommand) RoomID() RoomID { return c.Room }

// JokeButtonCommand is the press of the inline button attached to a person reply.
type JokeButtonCommand struct {
	Room RoomID
}

func (c JokeButtonCommand) RoomID() RoomID { return c.Room }

// CommandName is used for logging.
func CommandName(cmd Command) string {
	switch cmd.(type) {
	case JoinCommand:
		return "join"
	case PersonCommand:
		return "person"
	case ListCommand:
		return "all"
	case WhoAmICommand:
		return "whoami"
	case JokeButtonCommand:
		return "joke_button"
	default:
		return "unknown"
	}
}
