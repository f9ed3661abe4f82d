package services

import (
	"context"
	"daily-pick/domain"
	"daily-pick/mocks"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRosterService_AddParticipant(t *testing.T) {
	ctx := context.Background()
	room := domain.RoomID("-1001")

	t.Run("should append and reset status when name is new", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockRosterStore(ctrl)
		svc := NewRosterService(store, slog.Default())

		store.EXPECT().Participants(ctx, room).Return([]string{"Anna", "Bob"}, nil)
		store.EXPECT().AppendParticipant(ctx, room, "Clara").Return(nil)
		store.EXPECT().SetStatus(ctx, room, domain.Status{ParticipantCount: 3}).Return(nil)

		result, err := svc.AddParticipant(ctx, room, "Clara")

		req.NoError(err)
		req.True(result.Added)
		req.Equal(JoinReasonAdded, result.Reason)
	})

	t.Run("should reject case and whitespace variants of an existing name", func(t *testing.T) {
		for _, variant := range []string{"Bob", "bob", " BOB "} {
			t.Run(variant, func(t *testing.T) {
				req := require.New(t)
				ctrl := gomock.NewController(t)
				store := mocks.NewMockRosterStore(ctrl)
				svc := NewRosterService(store, slog.Default())

				store.EXPECT().Participants(ctx, room).Return([]string{"Anna", "Bob"}, nil)
				store.EXPECT().AppendParticipant(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

				result, err := svc.AddParticipant(ctx, room, variant)

				req.NoError(err)
				req.False(result.Added)
				req.Equal(JoinReasonDuplicate, result.Reason)
			})
		}
	})

	t.Run("should count from one on an unknown room", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockRosterStore(ctrl)
		svc := NewRosterService(store, slog.Default())

		store.EXPECT().Participants(ctx, room).Return(nil, nil)
		store.EXPECT().AppendParticipant(ctx, room, "Anna").Return(nil)
		store.EXPECT().SetStatus(ctx, room, domain.JoinStatus(1)).Return(nil)

		result, err := svc.AddParticipant(ctx, room, "Anna")

		req.NoError(err)
		req.True(result.Added)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockRosterStore(ctrl)
		svc := NewRosterService(store, slog.Default())
		boom := fmt.Errorf("quota exceeded")

		store.EXPECT().Participants(ctx, room).Return([]string{"Anna"}, nil)
		store.EXPECT().AppendParticipant(ctx, room, "Bob").Return(boom)
		store.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AddParticipant(ctx, room, "Bob")

		req.ErrorIs(err, boom)
	})
}
