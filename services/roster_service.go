package services

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

type JoinReason int

const (
	JoinReasonAdded JoinReason = iota
	JoinReasonDuplicate
)

type JoinResult struct {
	Added  bool
	Reason JoinReason
}

type RosterService struct {
	store contract.RosterStore
	log   *slog.Logger
}

func NewRosterService(store contract.RosterStore, log *slog.Logger) *RosterService {
	return &RosterService{store: store, log: log}
}

// AddParticipant appends name to the room roster unless a participant with the same
// trimmed, case-folded name already exists.
// A successful join clears the current pick and records the new roster size.
func (s *RosterService) AddParticipant(ctx context.Context, room domain.RoomID, name string) (JoinResult, error) {
	names, err := s.store.Participants(ctx, room)
	if err != nil {
		return JoinResult{}, fmt.Errorf("list participants: %w", err)
	}

	if lo.ContainsBy(names, func(existing string) bool {
		return domain.SameParticipant(existing, name)
	}) {
		s.log.Debug("Participant already in roster", "room", room, "name", name)
		return JoinResult{Added: false, Reason: JoinReasonDuplicate}, nil
	}

	if err = s.store.AppendParticipant(ctx, room, name); err != nil {
		return JoinResult{}, fmt.Errorf("append participant: %w", err)
	}

	count := len(names) + 1
	if err = s.store.SetStatus(ctx, room, domain.JoinStatus(count)); err != nil {
		return JoinResult{}, fmt.Errorf("reset status: %w", err)
	}
	s.log.Info("Participant joined", "room", room, "name", name, "count", count)
	return JoinResult{Added: true, Reason: JoinReasonAdded}, nil
}

func (s *RosterService) ListParticipants(ctx context.Context, room domain.RoomID) ([]string, error) {
	return s.store.Participants(ctx, room)
}

func (s *RosterService) Status(ctx context.Context, room domain.RoomID) (domain.Status, error) {
	return s.store.Status(ctx, room)
}
