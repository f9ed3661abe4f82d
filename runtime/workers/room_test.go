package workers

import (
	"context"
	"daily-pick/domain"
	"daily-pick/mocks"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomWorker_Run(t *testing.T) {
	room := domain.RoomID("42")

	t.Run("should send the reply of each command in order", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		handler := mocks.NewMockCommandHandler(ctrl)
		messenger := mocks.NewMockMessenger(ctrl)
		commands := make(chan domain.Command, 2)
		worker := NewRoomWorker(room, commands, handler, messenger, slog.Default())

		first := &domain.Reply{Room: room, Text: "first"}
		second := &domain.Reply{Room: room, Text: "second"}
		gomock.InOrder(
			handler.EXPECT().Handle(gomock.Any(), domain.ListCommand{Room: room}).Return(first, nil),
			messenger.EXPECT().Send(gomock.Any(), *first).Return(nil),
			handler.EXPECT().Handle(gomock.Any(), domain.PersonCommand{Room: room}).Return(second, nil),
			messenger.EXPECT().Send(gomock.Any(), *second).Return(nil),
		)

		commands <- domain.ListCommand{Room: room}
		commands <- domain.PersonCommand{Room: room}
		close(commands)

		req.NoError(worker.Run(context.Background()))
	})

	t.Run("should keep going after a failed command", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		handler := mocks.NewMockCommandHandler(ctrl)
		messenger := mocks.NewMockMessenger(ctrl)
		commands := make(chan domain.Command, 2)
		worker := NewRoomWorker(room, commands, handler, messenger, slog.Default())

		reply := &domain.Reply{Room: room, Text: "ok"}
		handler.EXPECT().Handle(gomock.Any(), domain.JoinCommand{Room: room}).Return(nil, fmt.Errorf("store down"))
		handler.EXPECT().Handle(gomock.Any(), domain.ListCommand{Room: room}).Return(reply, nil)
		messenger.EXPECT().Send(gomock.Any(), *reply).Return(nil).Times(1)

		commands <- domain.JoinCommand{Room: room}
		commands <- domain.ListCommand{Room: room}
		close(commands)

		req.NoError(worker.Run(context.Background()))
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		worker := NewRoomWorker(room, make(chan domain.Command), mocks.NewMockCommandHandler(ctrl),
			mocks.NewMockMessenger(ctrl), slog.Default())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		req.ErrorIs(worker.Run(ctx), context.DeadlineExceeded)
	})
}
