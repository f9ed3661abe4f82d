package storage

import (
	"context"
	"daily-pick/domain"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	roomPrefix        = "room:"
	participantsField = "participants"
	statusField       = "status"

	personKey           = "person"
	timestampKey        = "timestamp"
	participantCountKey = "participant_count"
)

// BadgerRosterRepository keeps rosters in an embedded Badger database.
// Keys are "room:{id}:participants" and "room:{id}:status", values are
// protobuf well-known types so the inspect tool can decode them without a schema.
type BadgerRosterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerRosterRepository(db *badger.DB, log *slog.Logger) *BadgerRosterRepository {
	return &BadgerRosterRepository{db: db, log: log}
}

func roomKey(room domain.RoomID, field string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", roomPrefix, room, field))
}

func (b *BadgerRosterRepository) Participants(_ context.Context, room domain.RoomID) ([]string, error) {
	var names []string
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		names, err = readParticipants(txn, room)
		return err
	})
	return names, err
}

// AppendParticipant reads and rewrites the roster in one transaction.
func (b *BadgerRosterRepository) AppendParticipant(_ context.Context, room domain.RoomID, name string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		names, err := readParticipants(txn, room)
		if err != nil {
			return err
		}
		list, err := structpb.NewList(lo.Map(append(names, name), func(n string, _ int) any {
			return n
		}))
		if err != nil {
			return err
		}
		data, err := proto.Marshal(list)
		if err != nil {
			return fmt.Errorf("marshal participants: %w", err)
		}
		return txn.Set(roomKey(room, participantsField), data)
	})
}

func (b *BadgerRosterRepository) Status(_ context.Context, room domain.RoomID) (domain.Status, error) {
	var status domain.Status
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(room, statusField))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var st structpb.Struct
			if err := proto.Unmarshal(val, &st); err != nil {
				return fmt.Errorf("unmarshal status: %w", err)
			}
			status = toStatus(&st)
			return nil
		})
	})
	return status, err
}

func (b *BadgerRosterRepository) SetStatus(_ context.Context, room domain.RoomID, status domain.Status) error {
	st, err := structpb.NewStruct(map[string]any{
		personKey:           status.Person,
		timestampKey:        status.Timestamp,
		participantCountKey: status.ParticipantCount,
	})
	if err != nil {
		return err
	}
	data, err := proto.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(roomKey(room, statusField), data)
	})
}

// Rooms lists every room id that has a roster or a status, sorted.
func (b *BadgerRosterRepository) Rooms(_ context.Context) ([]domain.RoomID, error) {
	var rooms []domain.RoomID
	err := b.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(roomPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := strings.TrimPrefix(string(it.Item().Key()), roomPrefix)
			idx := strings.LastIndex(key, ":")
			if idx <= 0 {
				continue
			}
			rooms = append(rooms, domain.RoomID(key[:idx]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rooms = lo.Uniq(rooms)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
	return rooms, nil
}

func readParticipants(txn *badger.Txn, room domain.RoomID) ([]string, error) {
	item, err := txn.Get(roomKey(room, participantsField))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	err = item.Value(func(val []byte) error {
		var list structpb.ListValue
		if err := proto.Unmarshal(val, &list); err != nil {
			return fmt.Errorf("unmarshal participants: %w", err)
		}
		names = lo.Map(list.GetValues(), func(v *structpb.Value, _ int) string {
			return v.GetStringValue()
		})
		return nil
	})
	return names, err
}

func toStatus(st *structpb.Struct) domain.Status {
	fields := st.GetFields()
	return domain.Status{
		Person:           fields[personKey].GetStringValue(),
		Timestamp:        fields[timestampKey].GetStringValue(),
		ParticipantCount: int(fields[participantCountKey].GetNumberValue()),
	}
}

// DescribeValue renders a raw roster value for debugging: the field it belongs to
// ("participants" or "status") and a readable form of its content.
func DescribeValue(key string, val []byte) (string, string, error) {
	switch {
	case strings.HasSuffix(key, ":"+participantsField):
		var list structpb.ListValue
		if err := proto.Unmarshal(val, &list); err != nil {
			return participantsField, "", fmt.Errorf("unmarshal participants: %w", err)
		}
		names := lo.Map(list.GetValues(), func(v *structpb.Value, _ int) string {
			return v.GetStringValue()
		})
		return participantsField, strings.Join(names, ", "), nil
	case strings.HasSuffix(key, ":"+statusField):
		var st structpb.Struct
		if err := proto.Unmarshal(val, &st); err != nil {
			return statusField, "", fmt.Errorf("unmarshal status: %w", err)
		}
		status := toStatus(&st)
		return statusField, fmt.Sprintf("person=%q timestamp=%q count=%d",
			status.Person, status.Timestamp, status.ParticipantCount), nil
	default:
		return "", "", fmt.Errorf("unknown key %q", key)
	}
}
