package workers

import (
	"bytes"
	"context"
	"daily-pick/domain"
	"daily-pick/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQueueMonitorWorker(t *testing.T) {
	t.Run("should warn about rooms filled above the threshold", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockIRegistry(ctrl)

		busy := make(chan domain.Command, 4)
		for range 3 {
			busy <- domain.ListCommand{Room: "busy"}
		}
		idle := make(chan domain.Command, 4)

		registry.EXPECT().Rooms().Return([]domain.RoomID{"busy", "idle"})
		registry.EXPECT().Inbox(domain.RoomID("busy")).Return(busy, true)
		registry.EXPECT().Inbox(domain.RoomID("idle")).Return(idle, true)

		var out bytes.Buffer
		log := slog.New(slog.NewTextHandler(&out, nil))
		NewQueueMonitorWorker(log, registry, time.Second, 75).sample()

		req.Contains(out.String(), "room=busy")
		req.NotContains(out.String(), "room=idle")
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		worker := NewQueueMonitorWorker(slog.Default(), mocks.NewMockIRegistry(gomock.NewController(t)), time.Hour, 80)
		require.NoError(t, worker.Run(ctx))
	})
}
