package main

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"daily-pick/infrastructure/storage"
	"daily-pick/internal"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Config struct {
	StoreBackend    string `envconfig:"STORE_BACKEND" default:"badger"`
	BadgerFilepath  string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	SheetID         string `envconfig:"GOOGLE_SHEET_ID"`
	CredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`
}

// RoomStore is a roster store able to enumerate its rooms.
type RoomStore interface {
	contract.RosterStore
	Rooms(ctx context.Context) ([]domain.RoomID, error)
}

func main() {
	room := flag.String("room", "", "Only print this room id")
	flag.Parse()

	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, config)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	var rooms []domain.RoomID
	if *room != "" {
		rooms = []domain.RoomID{domain.RoomID(*room)}
	} else if rooms, err = store.Rooms(ctx); err != nil {
		log.Fatal(err)
	}

	rows, err := BuildRows(ctx, store, rooms)
	if err != nil {
		log.Fatal(err)
	}
	Render(os.Stdout, rows)
}

func openStore(ctx context.Context, config Config) (RoomStore, func(), error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	switch config.StoreBackend {
	case internal.BackendBadger:
		// BypassLockGuard allows reading while the bot holds the lock.
		opts := badger.DefaultOptions(config.BadgerFilepath).
			WithReadOnly(true).
			WithBypassLockGuard(true).
			WithLoggingLevel(badger.WARNING)
		db, err := badger.Open(opts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return storage.NewBadgerRosterRepository(db, logger), func() { _ = db.Close() }, nil
	case internal.BackendSheets:
		srv, err := sheets.NewService(ctx,
			option.WithCredentialsFile(config.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("sheets client: %w", err)
		}
		return storage.NewSheetsRosterRepository(srv, config.SheetID, logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", config.StoreBackend)
	}
}

// BuildRows reads the roster and status of every room, one table row per room.
func BuildRows(ctx context.Context, store contract.RosterStore, rooms []domain.RoomID) ([][]string, error) {
	rows := make([][]string, 0, len(rooms))
	for _, room := range rooms {
		names, err := store.Participants(ctx, room)
		if err != nil {
			return nil, fmt.Errorf("participants of %s: %w", room, err)
		}
		status, err := store.Status(ctx, room)
		if err != nil {
			return nil, fmt.Errorf("status of %s: %w", room, err)
		}
		person := "-"
		if status.HasPerson() {
			person = status.Person
		}
		rows = append(rows, []string{
			room.String(),
			strings.Join(names, ", "),
			person,
			status.Timestamp,
			strconv.Itoa(status.ParticipantCount),
		})
	}
	return rows, nil
}

func Render(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Room", "Participants", "Person", "Picked at", "Count"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, row := range rows {
		if row[2] != "-" {
			row[2] = color.New(color.FgGreen, color.OpBold).Render(row[2])
		}
		table.Append(row)
	}
	table.Render()
}
