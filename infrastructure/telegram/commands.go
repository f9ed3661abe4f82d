package telegram

import (
	"daily-pick/domain"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Menu lists the commands registered with setMyCommands.
// Telegram only accepts latin command names, the /людина alias stays unlisted.
var Menu = []tgbotapi.BotCommand{
	{Command: "join", Description: "Додатися до списку учасників"},
	{Command: "person", Description: "Отримати людину дня"},
	{Command: "all", Description: "Показати усіх учасників"},
	{Command: "whoami", Description: "Дізнатись, хто я"},
}

// ParseCommand extracts the command name of a message text: the first word,
// without its leading slash and without an "@bot" suffix addressed to botName.
// A command addressed to another bot is ignored.
func ParseCommand(text, botName string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}
	name, mention, hasMention := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	if hasMention && botName != "" && !strings.EqualFold(mention, botName) {
		return "", false
	}
	name = strings.ToLower(name)
	return name, name != ""
}

// ToCommand converts an update into a domain command.
// It returns false for updates the bot does not react to.
func ToCommand(update tgbotapi.Update, botName string) (domain.Command, bool) {
	if q := update.CallbackQuery; q != nil {
		if q.Data != domain.JokeCallbackData || q.Message == nil || q.Message.Chat == nil {
			return nil, false
		}
		return domain.JokeButtonCommand{Room: roomID(q.Message.Chat.ID)}, true
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil, false
	}
	name, ok := ParseCommand(msg.Text, botName)
	if !ok {
		return nil, false
	}
	room := roomID(msg.Chat.ID)
	switch name {
	case "join":
		if msg.From == nil {
			return nil, false
		}
		return domain.JoinCommand{Room: room, Requester: requester(msg.From)}, true
	case "person", "людина":
		return domain.PersonCommand{Room: room}, true
	case "all":
		return domain.ListCommand{Room: room}, true
	case "whoami":
		return domain.WhoAmICommand{Room: room, Requester: requester(msg.From)}, true
	default:
		return nil, false
	}
}

func roomID(chatID int64) domain.RoomID {
	return domain.RoomID(strconv.FormatInt(chatID, 10))
}

func requester(user *tgbotapi.User) domain.Requester {
	if user == nil {
		return domain.Requester{}
	}
	return domain.Requester{FirstName: user.FirstName, LastName: user.LastName}
}
