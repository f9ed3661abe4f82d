package services

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"fmt"
	"log/slog"
	"time"
)

// Clock returns the current instant.
type Clock func() time.Time

// Random returns a pseudo-random index in [0, n).
type Random func(n int) int

type PickService struct {
	store  contract.RosterStore
	log    *slog.Logger
	now    Clock
	random Random
}

func NewPickService(store contract.RosterStore, log *slog.Logger, now Clock, random Random) *PickService {
	return &PickService{store: store, log: log, now: now, random: random}
}

// PersonOfTheMoment returns the person of the day for a room, picking a new one
// when Decide unlocks the room. Only a new pick writes to the store.
func (s *PickService) PersonOfTheMoment(ctx context.Context, room domain.RoomID) (domain.PickResult, error) {
	// 1. Roster
	names, err := s.store.Participants(ctx, room)
	if err != nil {
		return domain.PickResult{}, fmt.Errorf("list participants: %w", err)
	}
	if len(names) == 0 {
		return domain.PickResult{Outcome: domain.OutcomeNoParticipants}, nil
	}

	// 2. Lock
	status, err := s.store.Status(ctx, room)
	if err != nil {
		return domain.PickResult{}, fmt.Errorf("read status: %w", err)
	}
	now := s.now()
	decision := domain.Decide(now, status, len(names))
	if decision.Kind == domain.DecisionLock {
		return domain.PickResult{Outcome: domain.OutcomeAlreadyPicked, Person: status.Person}, nil
	}

	// 3. Pick and persist
	chosen := names[s.random(len(names))]
	next := domain.Status{
		Person:           chosen,
		Timestamp:        domain.FormatTimestamp(now),
		ParticipantCount: len(names),
	}
	if err = s.store.SetStatus(ctx, room, next); err != nil {
		return domain.PickResult{}, fmt.Errorf("write status: %w", err)
	}
	s.log.Info("New person of the day",
		"room", room,
		"person", chosen,
		"new_day", decision.NewDay,
		"count_changed", decision.CountChanged,
	)
	return domain.PickResult{Outcome: domain.OutcomeNewPick, Person: chosen}, nil
}
