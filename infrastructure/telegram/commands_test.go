package telegram

import (
	"daily-pick/domain"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

func message(chatID int64, text string, from *tgbotapi.User) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message:  &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}, From: from, Text: text},
	}
}

func TestParseCommand(t *testing.T) {
	t.Run("should read the first word without slash", func(t *testing.T) {
		req := require.New(t)
		name, ok := ParseCommand("/join please", "pickbot")
		req.True(ok)
		req.Equal("join", name)
	})

	t.Run("should strip a mention of this bot and ignore case", func(t *testing.T) {
		req := require.New(t)
		name, ok := ParseCommand("/Person@PickBot", "pickbot")
		req.True(ok)
		req.Equal("person", name)
	})

	t.Run("should ignore commands addressed to another bot", func(t *testing.T) {
		_, ok := ParseCommand("/all@otherbot", "pickbot")
		require.False(t, ok)
	})

	t.Run("should ignore plain text", func(t *testing.T) {
		req := require.New(t)
		_, ok := ParseCommand("hello /join", "pickbot")
		req.False(ok)
		_, ok = ParseCommand("   ", "pickbot")
		req.False(ok)
		_, ok = ParseCommand("/", "pickbot")
		req.False(ok)
	})
}

func TestToCommand(t *testing.T) {
	anna := &tgbotapi.User{FirstName: "Anna", LastName: "K"}

	t.Run("should map join with the sender name", func(t *testing.T) {
		req := require.New(t)
		cmd, ok := ToCommand(message(-100, "/join", anna), "pickbot")
		req.True(ok)
		req.Equal(domain.JoinCommand{Room: "-100", Requester: domain.Requester{FirstName: "Anna", LastName: "K"}}, cmd)
	})

	t.Run("should ignore join without a sender", func(t *testing.T) {
		_, ok := ToCommand(message(-100, "/join", nil), "pickbot")
		require.False(t, ok)
	})

	t.Run("should map both person aliases", func(t *testing.T) {
		req := require.New(t)
		for _, text := range []string{"/person", "/людина", "/ЛЮДИНА"} {
			cmd, ok := ToCommand(message(7, text, anna), "pickbot")
			req.True(ok, text)
			req.Equal(domain.PersonCommand{Room: "7"}, cmd)
		}
	})

	t.Run("should map all and whoami", func(t *testing.T) {
		req := require.New(t)
		cmd, ok := ToCommand(message(7, "/all", anna), "pickbot")
		req.True(ok)
		req.Equal(domain.ListCommand{Room: "7"}, cmd)

		cmd, ok = ToCommand(message(7, "/whoami", nil), "pickbot")
		req.True(ok)
		req.Equal(domain.WhoAmICommand{Room: "7"}, cmd)
	})

	t.Run("should map the joke button", func(t *testing.T) {
		req := require.New(t)
		update := tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb",
			Data:    domain.JokeCallbackData,
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 7}},
		}}
		cmd, ok := ToCommand(update, "pickbot")
		req.True(ok)
		req.Equal(domain.JokeButtonCommand{Room: "7"}, cmd)
	})

	t.Run("should ignore unknown commands and callbacks", func(t *testing.T) {
		req := require.New(t)
		_, ok := ToCommand(message(7, "/start", anna), "pickbot")
		req.False(ok)

		_, ok = ToCommand(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
			Data:    "other",
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 7}},
		}}, "pickbot")
		req.False(ok)

		_, ok = ToCommand(tgbotapi.Update{}, "pickbot")
		req.False(ok)
	})
}
