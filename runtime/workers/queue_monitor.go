package workers

import (
	"context"
	"daily-pick/contract"
	"log/slog"
	"time"
)

// QueueMonitorWorker periodically samples the inbox of every room and warns
// when one is filled above threshold percent of its capacity.
// Reading len and cap of a channel is non-blocking, so this won't interfere with room workers.
type QueueMonitorWorker struct {
	log       *slog.Logger
	registry  contract.IRegistry
	interval  time.Duration
	threshold int
}

func NewQueueMonitorWorker(log *slog.Logger, registry contract.IRegistry,
	interval time.Duration, threshold int) *QueueMonitorWorker {
	return &QueueMonitorWorker{log: log, registry: registry, interval: interval, threshold: threshold}
}

func (w QueueMonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w QueueMonitorWorker) sample() {
	for _, room := range w.registry.Rooms() {
		inbox, ok := w.registry.Inbox(room)
		if !ok || cap(inbox) == 0 {
			continue
		}
		length, capacity := len(inbox), cap(inbox)
		if percent := length * 100 / capacity; percent >= w.threshold {
			w.log.Warn("Room queue nearly full", "room", room, "length", length, "capacity", capacity, "percent", percent)
		}
	}
}
