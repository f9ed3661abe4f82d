package workers

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"log/slog"

	"github.com/google/uuid"
)

// RoomWorker handles the commands of a single room one at a time,
// so the read-modify-write of the room status never interleaves.
type RoomWorker struct {
	room      domain.RoomID
	commands  chan domain.Command
	handler   contract.CommandHandler
	messenger contract.Messenger
	log       *slog.Logger
}

func NewRoomWorker(room domain.RoomID, commands chan domain.Command, handler contract.CommandHandler,
	messenger contract.Messenger, log *slog.Logger) RoomWorker {
	return RoomWorker{room: room, commands: commands, handler: handler, messenger: messenger, log: log}
}

func (w RoomWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping room worker", "room", w.room)
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				return nil
			}
			w.handle(ctx, cmd)
		}
	}
}

// handle never returns an error: a failed command is logged and gets no reply,
// the next command of the room is processed normally.
func (w RoomWorker) handle(ctx context.Context, cmd domain.Command) {
	log := w.log.With(
		"event_id", uuid.New().String(),
		"room", w.room,
		"command", domain.CommandName(cmd),
	)
	log.Debug("Handling command")

	reply, err := w.handler.Handle(ctx, cmd)
	if err != nil {
		log.Error("Command failed", "error", err)
		return
	}
	if reply == nil {
		return
	}
	if err = w.messenger.Send(ctx, *reply); err != nil {
		log.Error("Reply not delivered", "error", err)
	}
}
