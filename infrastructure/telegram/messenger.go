package telegram

import (
	"context"
	"daily-pick/domain"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of *tgbotapi.BotAPI used by the bot.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Messenger struct {
	bot BotAPI
	log *slog.Logger
}

func NewMessenger(bot BotAPI, log *slog.Logger) *Messenger {
	return &Messenger{bot: bot, log: log}
}

func (m *Messenger) Send(_ context.Context, reply domain.Reply) error {
	chatID, err := strconv.ParseInt(reply.Room.String(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", reply.Room, err)
	}
	if _, err = m.bot.Send(BuildChattable(chatID, reply)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	m.log.Debug("Reply sent", "room", reply.Room, "photo", reply.IsPhoto())
	return nil
}

// BuildChattable renders a reply as a sendPhoto or sendMessage request.
func BuildChattable(chatID int64, reply domain.Reply) tgbotapi.Chattable {
	parseMode := ""
	if reply.Markdown {
		parseMode = tgbotapi.ModeMarkdown
	}

	if reply.IsPhoto() {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(reply.PhotoPath))
		photo.Caption = reply.Text
		photo.ParseMode = parseMode
		if reply.Button != nil {
			photo.ReplyMarkup = keyboard(*reply.Button)
		}
		return photo
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	msg.ParseMode = parseMode
	if reply.Button != nil {
		msg.ReplyMarkup = keyboard(*reply.Button)
	}
	return msg
}

func keyboard(button domain.Button) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(button.Text, button.Data)),
	)
}

// RegisterMenu publishes the command list shown by Telegram clients.
func RegisterMenu(bot BotAPI) error {
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(Menu...)); err != nil {
		return fmt.Errorf("set my commands: %w", err)
	}
	return nil
}
