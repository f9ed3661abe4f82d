package storage

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRosterStore runs the behaviour every RosterStore backend must share.
func testRosterStore(t *testing.T, store contract.RosterStore) {
	ctx := context.Background()

	t.Run("should read an unknown room as empty", func(t *testing.T) {
		req := require.New(t)
		names, err := store.Participants(ctx, "unknown")
		req.NoError(err)
		req.Empty(names)

		status, err := store.Status(ctx, "unknown")
		req.NoError(err)
		req.Equal(domain.Status{}, status)
	})

	t.Run("should keep participants in append order", func(t *testing.T) {
		req := require.New(t)
		room := domain.RoomID("-100200")
		for _, name := range []string{"Anna", "Bob", "Clara"} {
			req.NoError(store.AppendParticipant(ctx, room, name))
		}

		names, err := store.Participants(ctx, room)
		req.NoError(err)
		req.Equal([]string{"Anna", "Bob", "Clara"}, names)
	})

	t.Run("should overwrite the whole status", func(t *testing.T) {
		req := require.New(t)
		room := domain.RoomID("-100300")
		picked := domain.Status{Person: "Bob", Timestamp: "2024-05-12T09:30:00.000Z", ParticipantCount: 2}
		req.NoError(store.SetStatus(ctx, room, picked))

		status, err := store.Status(ctx, room)
		req.NoError(err)
		req.Equal(picked, status)

		req.NoError(store.SetStatus(ctx, room, domain.JoinStatus(3)))
		status, err = store.Status(ctx, room)
		req.NoError(err)
		req.Equal(domain.Status{ParticipantCount: 3}, status)
	})

	t.Run("should isolate rooms", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.AppendParticipant(ctx, "room-a", "Anna"))
		req.NoError(store.AppendParticipant(ctx, "room-b", "Bob"))

		names, err := store.Participants(ctx, "room-a")
		req.NoError(err)
		req.Equal([]string{"Anna"}, names)
	})
}
