package telegram

import (
	"context"
	"daily-pick/domain"
	"log/slog"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu       sync.Mutex
	commands []domain.Command
}

func (r *recordingDispatcher) Dispatch(cmd domain.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *recordingDispatcher) snapshot() []domain.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Command(nil), r.commands...)
}

func TestPoller(t *testing.T) {
	t.Run("should dispatch commands and answer callbacks", func(t *testing.T) {
		req := require.New(t)
		bot := newFakeBot()
		dispatcher := &recordingDispatcher{}
		poller := NewPoller(bot, dispatcher, "pickbot", 1, slog.Default())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- poller.Run(ctx) }()

		bot.updates <- message(5, "/join", &tgbotapi.User{FirstName: "Anna"})
		bot.updates <- message(5, "just chatting", nil)
		bot.updates <- tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb-1",
			Data:    domain.JokeCallbackData,
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 5}},
		}}

		req.Eventually(func() bool { return len(dispatcher.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
		req.Equal([]domain.Command{
			domain.JoinCommand{Room: "5", Requester: domain.Requester{FirstName: "Anna"}},
			domain.JokeButtonCommand{Room: "5"},
		}, dispatcher.snapshot())
		req.Eventually(func() bool { return bot.requestCount() == 1 }, time.Second, 5*time.Millisecond)

		cancel()
		req.ErrorIs(<-done, context.Canceled)
		req.True(bot.stopped)
	})

	t.Run("should reuse the updates channel after a restart", func(t *testing.T) {
		req := require.New(t)
		bot := newFakeBot()
		poller := NewPoller(bot, &recordingDispatcher{}, "pickbot", 1, slog.Default())

		for range 2 {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			req.ErrorIs(poller.Run(ctx), context.Canceled)
		}
		req.Equal(1, bot.opened)
	})

	t.Run("should fail when the updates channel closes", func(t *testing.T) {
		bot := newFakeBot()
		close(bot.updates)
		err := NewPoller(bot, &recordingDispatcher{}, "pickbot", 1, slog.Default()).Run(context.Background())
		require.ErrorContains(t, err, "closed")
	})
}
