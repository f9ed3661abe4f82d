//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"daily-pick/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// RosterStore is the tabular store holding one participant column
// and one status block per room.
type RosterStore interface {
	Participants(ctx context.Context, room domain.RoomID) ([]string, error)
	AppendParticipant(ctx context.Context, room domain.RoomID, name string) error
	Status(ctx context.Context, room domain.RoomID) (domain.Status, error)
	SetStatus(ctx context.Context, room domain.RoomID, status domain.Status) error
}

type JokeGenerator interface {
	GenerateJoke(ctx context.Context, name string) (string, error)
}

type PhotoPicker interface {
	RandomPhoto() (string, error)
}

// Messenger delivers replies to the chat platform.
type Messenger interface {
	Send(ctx context.Context, reply domain.Reply) error
}

// CommandHandler turns a command into at most one reply.
// A nil reply means nothing has to be sent.
type CommandHandler interface {
	Handle(ctx context.Context, cmd domain.Command) (*domain.Reply, error)
}

type IRegistry interface {
	Inbox(room domain.RoomID) (chan domain.Command, bool)
	Register(room domain.RoomID, inbox chan domain.Command) bool
	Rooms() []domain.RoomID
}
