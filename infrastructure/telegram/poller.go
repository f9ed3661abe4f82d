package telegram

import (
	"context"
	"daily-pick/domain"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Dispatcher interface {
	Dispatch(cmd domain.Command) error
}

// Poller long-polls getUpdates and dispatches the commands it understands.
// The updates channel is opened once, so a restarted poller keeps the same offset.
type Poller struct {
	bot        BotAPI
	dispatcher Dispatcher
	botName    string
	timeoutSec int
	log        *slog.Logger

	once    sync.Once
	updates tgbotapi.UpdatesChannel
}

func NewPoller(bot BotAPI, dispatcher Dispatcher, botName string, timeoutSec int, log *slog.Logger) *Poller {
	return &Poller{bot: bot, dispatcher: dispatcher, botName: botName, timeoutSec: timeoutSec, log: log}
}

func (p *Poller) Run(ctx context.Context) error {
	p.once.Do(func() {
		config := tgbotapi.NewUpdate(0)
		config.Timeout = p.timeoutSec
		config.AllowedUpdates = []string{"message", "callback_query"}
		p.updates = p.bot.GetUpdatesChan(config)
		p.log.Info("Telegram polling started", "bot", p.botName, "timeout", p.timeoutSec)
	})

	for {
		select {
		case <-ctx.Done():
			p.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-p.updates:
			if !ok {
				return fmt.Errorf("telegram updates channel closed")
			}
			p.handle(update)
		}
	}
}

func (p *Poller) handle(update tgbotapi.Update) {
	if q := update.CallbackQuery; q != nil {
		// Stops the loading indicator on the pressed button.
		if _, err := p.bot.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
			p.log.Warn("Callback answer failed", "callback_id", q.ID, "error", err)
		}
	}

	cmd, ok := ToCommand(update, p.botName)
	if !ok {
		return
	}
	if err := p.dispatcher.Dispatch(cmd); err != nil {
		p.log.Warn("Command not dispatched", "update_id", update.UpdateID, "room", cmd.RoomID(), "error", err)
	}
}
