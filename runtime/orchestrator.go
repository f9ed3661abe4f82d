// Package runtime routes inbound commands to per-room workers.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"daily-pick/errors"
	"daily-pick/runtime/workers"
	"fmt"
	"log/slog"
	"sync"
)

type Orchestrator struct {
	mu         sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	handler    contract.CommandHandler
	messenger  contract.Messenger
	bufferSize int
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry contract.IRegistry,
	handler contract.CommandHandler, messenger contract.Messenger, bufferSize int) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		handler:    handler,
		messenger:  messenger,
		bufferSize: bufferSize,
	}
}

// Start runs the supervisor and blocks until every worker stopped.
// Room workers are started lazily by Dispatch under the same context.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.ctx != nil {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	ctx, o.cancel = context.WithCancel(ctx)
	o.ctx = ctx
	o.mu.Unlock()

	o.supervisor.Run(ctx)
	return nil
}

// Dispatch queues cmd on the inbox of its room, creating the room worker on first use.
// Commands of one room are handled in arrival order. A full inbox drops the command.
func (o *Orchestrator) Dispatch(cmd domain.Command) error {
	room := cmd.RoomID()

	o.mu.Lock()
	if o.ctx == nil || o.ctx.Err() != nil {
		o.mu.Unlock()
		return errors.ErrOrchestratorEnded
	}
	inbox, ok := o.registry.Inbox(room)
	if !ok {
		inbox = make(chan domain.Command, o.bufferSize)
		o.registry.Register(room, inbox)
		o.supervisor.Start(o.ctx, workers.NewRoomWorker(room, inbox, o.handler, o.messenger, o.log))
		o.log.Debug("Room worker started", "room", room)
	}
	o.mu.Unlock()

	select {
	case inbox <- cmd:
		return nil
	default:
		o.log.Warn("Room command queue full, dropping command", "room", room, "command", domain.CommandName(cmd))
		return fmt.Errorf("%w: room %s", errors.ErrRoomQueueFull, room)
	}
}

// Stop cancels the room workers and the supervised workers.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()
	o.supervisor.Stop()
}
