package storage

import (
	"context"
	"daily-pick/domain"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

const (
	// RAW keeps every cell a string: names are never parsed as formulas
	// and timestamps are never converted to sheet dates.
	valueInputRaw     = "RAW"
	// OVERWRITE fills the first empty cell of column A; INSERT_ROWS would
	// insert whole rows and push the status block at D2:D4 down.
	overwrite         = "OVERWRITE"
	participantHeader = "Participants"
	statusHeader      = "Status"
)

// SheetsRosterRepository stores one tab per room in a Google spreadsheet.
// Column A holds participants from row 2, cells D2:D4 hold person, timestamp and count.
type SheetsRosterRepository struct {
	srv           *sheets.Service
	spreadsheetID string
	log           *slog.Logger
}

func NewSheetsRosterRepository(srv *sheets.Service, spreadsheetID string, log *slog.Logger) *SheetsRosterRepository {
	return &SheetsRosterRepository{srv: srv, spreadsheetID: spreadsheetID, log: log}
}

func sheetName(room domain.RoomID) string {
	return "'" + strings.ReplaceAll(room.String(), "'", "''") + "'"
}

func participantsRange(room domain.RoomID) string { return sheetName(room) + "!A2:A" }
func appendRange(room domain.RoomID) string       { return sheetName(room) + "!A:A" }
func statusRange(room domain.RoomID) string       { return sheetName(room) + "!D2:D4" }
func headerRange(room domain.RoomID) string       { return sheetName(room) + "!A1:D1" }

func (s *SheetsRosterRepository) Participants(ctx context.Context, room domain.RoomID) ([]string, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, participantsRange(room)).Context(ctx).Do()
	if isMissingSheet(err) {
		s.log.Debug("No sheet for room yet", "room", room)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", participantsRange(room), err)
	}

	var names []string
	for _, row := range resp.Values {
		name := cell(row)
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *SheetsRosterRepository) AppendParticipant(ctx context.Context, room domain.RoomID, name string) error {
	err := s.writeToSheet(ctx, room, func() error {
		_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, appendRange(room), &sheets.ValueRange{
			Values: [][]interface{}{{name}},
		}).ValueInputOption(valueInputRaw).InsertDataOption(overwrite).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("append %s: %w", appendRange(room), err)
	}
	return nil
}

// Status reads D2:D4. Missing cells default to empty strings and a zero count.
func (s *SheetsRosterRepository) Status(ctx context.Context, room domain.RoomID) (domain.Status, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, statusRange(room)).Context(ctx).Do()
	if isMissingSheet(err) {
		return domain.Status{}, nil
	}
	if err != nil {
		return domain.Status{}, fmt.Errorf("get %s: %w", statusRange(room), err)
	}

	rows := resp.Values
	row := func(i int) []interface{} {
		if i < len(rows) {
			return rows[i]
		}
		return nil
	}
	return domain.Status{
		Person:           cell(row(0)),
		Timestamp:        cell(row(1)),
		ParticipantCount: parseCount(cell(row(2))),
	}, nil
}

// SetStatus overwrites the three status cells with a single update call.
func (s *SheetsRosterRepository) SetStatus(ctx context.Context, room domain.RoomID, status domain.Status) error {
	err := s.writeToSheet(ctx, room, func() error {
		_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, statusRange(room), &sheets.ValueRange{
			Values: [][]interface{}{
				{status.Person},
				{status.Timestamp},
				{strconv.Itoa(status.ParticipantCount)},
			},
		}).ValueInputOption(valueInputRaw).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", statusRange(room), err)
	}
	return nil
}

// Rooms lists the tab titles of the spreadsheet, sorted.
func (s *SheetsRosterRepository) Rooms(ctx context.Context) ([]domain.RoomID, error) {
	spreadsheet, err := s.srv.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet: %w", err)
	}
	rooms := lo.FilterMap(spreadsheet.Sheets, func(sh *sheets.Sheet, _ int) (domain.RoomID, bool) {
		if sh.Properties == nil {
			return "", false
		}
		return domain.RoomID(sh.Properties.Title), true
	})
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
	return rooms, nil
}

// writeToSheet runs write and, when it fails because the room tab does not exist yet,
// creates the tab and runs write a second time.
func (s *SheetsRosterRepository) writeToSheet(ctx context.Context, room domain.RoomID, write func() error) error {
	err := write()
	if !isMissingSheet(err) {
		return err
	}
	created, ensureErr := s.ensureSheet(ctx, room)
	if ensureErr != nil {
		return ensureErr
	}
	if !created {
		return err
	}
	return write()
}

// ensureSheet creates the room tab with its header row when it does not exist,
// so that appends to column A start at row 2.
func (s *SheetsRosterRepository) ensureSheet(ctx context.Context, room domain.RoomID) (bool, error) {
	spreadsheet, err := s.srv.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("get spreadsheet: %w", err)
	}
	if lo.ContainsBy(spreadsheet.Sheets, func(sh *sheets.Sheet) bool {
		return sh.Properties != nil && sh.Properties.Title == room.String()
	}) {
		return false, nil
	}

	_, err = s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: room.String()},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("add sheet %s: %w", room, err)
	}

	_, err = s.srv.Spreadsheets.Values.Update(s.spreadsheetID, headerRange(room), &sheets.ValueRange{
		Values: [][]interface{}{{participantHeader, "", "", statusHeader}},
	}).ValueInputOption(valueInputRaw).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("write header %s: %w", headerRange(room), err)
	}
	s.log.Info("Created sheet for room", "room", room)
	return true, nil
}

// isMissingSheet detects the error returned when a range names an unknown tab.
func isMissingSheet(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range")
}

func cell(row []interface{}) string {
	if len(row) == 0 || row[0] == nil {
		return ""
	}
	return fmt.Sprint(row[0])
}

// parseCount accepts "3" as well as "3.0" the sheet may render; anything else counts as zero.
func parseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}
