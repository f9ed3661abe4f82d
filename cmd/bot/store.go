package main

import (
	"context"
	"daily-pick/contract"
	"daily-pick/errors"
	"daily-pick/infrastructure/storage"
	"daily-pick/internal"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const inspectEndpoint = "/inspect"

// openStore builds the configured roster backend and returns its cleanup function.
func openStore(ctx context.Context, config internal.Config, logger *slog.Logger) (contract.RosterStore, func(), error) {
	switch config.StoreBackend {
	case internal.BackendSheets:
		srv, err := sheets.NewService(ctx,
			option.WithCredentialsFile(config.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("sheets client: %w", err)
		}
		logger.Info("Using Google Sheets roster", "spreadsheet", config.SheetID)
		return storage.NewSheetsRosterRepository(srv, config.SheetID, logger), func() {}, nil

	case internal.BackendBadger:
		db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			internal.StartDebugServer(ctx, config.DebugPort, inspectEndpoint,
				internal.NewDebugHandler(db, RosterMapper, "room:"), logger)
			logger.Info("Debug Badger inspector available",
				"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, inspectEndpoint))
		}
		closeDB := func() {
			// Releases the directory lock and flushes buffers before exit.
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}
		return storage.NewBadgerRosterRepository(db, logger), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, config.StoreBackend)
	}
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}

// RosterMapper decodes roster values for the debug inspector.
func RosterMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	kind, detail, err := storage.DescribeValue(key, val)
	if err != nil {
		row.Detail = "Error: " + err.Error()
		return row
	}
	row.Type = kind
	row.Detail = detail
	return row
}
