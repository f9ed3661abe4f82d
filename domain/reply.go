package domain

// JokeCallbackData is the callback token carried by the joke button.
const JokeCallbackData = "anegdot"

// Button is a single inline keyboard button.
type Button struct {
	Text string
	Data string
}

// Reply is an outbound chat message. A non-empty PhotoPath turns Text into the photo caption.
type Reply struct {
	Room      RoomID
	Text      string
	Markdown  bool
	PhotoPath string
	Button    *Button
}

func (r Reply) IsPhoto() bool {
	return r.PhotoPath != ""
}
