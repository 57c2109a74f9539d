package waitlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/pkg/logger"
	"github.com/imsurajj/amsoft/pkg/sheets"
)

// SheetStore appends records to the first worksheet of the configured
// spreadsheet.
type SheetStore struct {
	client  *sheets.Client
	timeout time.Duration
	log     *slog.Logger
}

// NewSheetStore creates a store. A zero timeout leaves the request context as
// the only deadline.
func NewSheetStore(client *sheets.Client, timeout time.Duration, log *slog.Logger) *SheetStore {
	return &SheetStore{
		client:  client,
		timeout: timeout,
		log:     log.With(logger.Scope("waitlist.store")),
	}
}

// NewSheetStoreFromConfig wires the store from app config.
func NewSheetStoreFromConfig(client *sheets.Client, cfg *config.Config, log *slog.Logger) Store {
	return NewSheetStore(client, cfg.Sheets.RequestTimeout, log)
}

// Append loads the spreadsheet, picks its first worksheet and adds one row.
func (s *SheetStore) Append(ctx context.Context, rec Record) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	doc, err := s.client.LoadInfo(ctx)
	if err != nil {
		return err
	}

	ws, err := doc.FirstWorksheet()
	if err != nil {
		return err
	}

	if err := s.client.AddRow(ctx, ws, rec.Row()); err != nil {
		return err
	}

	s.log.Debug("row added",
		slog.String("spreadsheet", doc.Title),
		slog.String("worksheet", ws.Title),
	)
	return nil
}
