// Package sheets implements the records.Table contract on top of the
// Google Sheets API. One Store holds the spreadsheet; each worksheet is
// addressed by tab name.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/client-service-manager/internal/records"
)

const (
	maxRetries = 15
	maxBackoff = 60 * time.Second
)

// Store wraps the Sheets service for a single spreadsheet
type Store struct {
	service       *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

// New creates a Store using a service-account credentials file
func New(ctx context.Context, credentialsFile, spreadsheetID string, log zerolog.Logger) (*Store, error) {
	srv, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	store := &Store{
		service:       srv,
		spreadsheetID: spreadsheetID,
		log:           log.With().Str("component", "sheets").Logger(),
	}

	store.log.Info().Str("spreadsheet_id", spreadsheetID).Msg("Sheets store initialized")
	return store, nil
}

// Worksheet returns a Table view of one tab of the spreadsheet
func (s *Store) Worksheet(name string) *Worksheet {
	return &Worksheet{store: s, name: name}
}

// Worksheet is one tab of the spreadsheet, implementing records.Table.
// Rows and columns are 1-based, as the Sheets API addresses them.
type Worksheet struct {
	store *Store
	name  string

	// numeric sheet id, resolved lazily for row deletion
	sheetID      int64
	sheetIDKnown bool
}

var _ records.Table = (*Worksheet)(nil)

// Find scans the sheet row-major for an exact cell match and returns
// the 1-based row index, or records.ErrNotFound.
func (w *Worksheet) Find(ctx context.Context, value string) (int, error) {
	values, err := w.AllValues(ctx)
	if err != nil {
		return 0, err
	}
	for i, row := range values {
		for _, cell := range row {
			if cell == value {
				return i + 1, nil
			}
		}
	}
	return 0, records.ErrNotFound
}

// RowValues returns the cell values of one row
func (w *Worksheet) RowValues(ctx context.Context, row int) ([]string, error) {
	rng := fmt.Sprintf("%s!%d:%d", w.name, row, row)
	resp, err := w.get(ctx, rng)
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

// ColValues returns the cell values of one column, top to bottom
func (w *Worksheet) ColValues(ctx context.Context, col int) ([]string, error) {
	letter := columnLetter(col)
	rng := fmt.Sprintf("%s!%s:%s", w.name, letter, letter)
	resp, err := w.get(ctx, rng)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) > 0 {
			values = append(values, fmt.Sprint(row[0]))
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

// AllValues returns every populated row of the sheet
func (w *Worksheet) AllValues(ctx context.Context) ([][]string, error) {
	resp, err := w.get(ctx, w.name)
	if err != nil {
		return nil, err
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		values = append(values, toStrings(row))
	}
	return values, nil
}

// AppendRow appends one row after the last populated row
func (w *Worksheet) AppendRow(ctx context.Context, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	return w.store.withRetry(ctx, "append", func() error {
		_, err := w.store.service.Spreadsheets.Values.Append(
			w.store.spreadsheetID,
			w.name+"!A:Z",
			&sheets.ValueRange{Values: [][]interface{}{row}},
		).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
		return err
	})
}

// UpdateCell writes a single cell
func (w *Worksheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", w.name, columnLetter(col), row)

	return w.store.withRetry(ctx, "update", func() error {
		_, err := w.store.service.Spreadsheets.Values.Update(
			w.store.spreadsheetID,
			rng,
			&sheets.ValueRange{Values: [][]interface{}{{value}}},
		).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		return err
	})
}

// DeleteRow removes one row, shifting the rows below it up
func (w *Worksheet) DeleteRow(ctx context.Context, row int) error {
	sheetID, err := w.resolveSheetID(ctx)
	if err != nil {
		return err
	}

	req := &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "ROWS",
				StartIndex: int64(row - 1),
				EndIndex:   int64(row),
			},
		},
	}

	return w.store.withRetry(ctx, "delete", func() error {
		_, err := w.store.service.Spreadsheets.BatchUpdate(w.store.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{req},
		}).Context(ctx).Do()
		return err
	})
}

// get reads a range with rate-limit retry
func (w *Worksheet) get(ctx context.Context, rng string) (*sheets.ValueRange, error) {
	var resp *sheets.ValueRange
	err := w.store.withRetry(ctx, "get", func() error {
		var err error
		resp, err = w.store.service.Spreadsheets.Values.Get(w.store.spreadsheetID, rng).Context(ctx).Do()
		return err
	})
	return resp, err
}

// resolveSheetID maps the tab name to its numeric sheet id, caching the
// result for the lifetime of the Worksheet
func (w *Worksheet) resolveSheetID(ctx context.Context) (int64, error) {
	if w.sheetIDKnown {
		return w.sheetID, nil
	}

	ss, err := w.store.service.Spreadsheets.Get(w.store.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties.Title == w.name {
			w.sheetID = sh.Properties.SheetId
			w.sheetIDKnown = true
			return w.sheetID, nil
		}
	}
	return 0, fmt.Errorf("worksheet %q not present in spreadsheet", w.name)
}

// withRetry runs fn, backing off exponentially on Sheets API rate
// limits (429/403). Other errors return immediately.
func (s *Store) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		var gErr *googleapi.Error
		if errors.As(err, &gErr) && (gErr.Code == 429 || gErr.Code == 403) {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			s.log.Warn().Str("op", op).Dur("backoff", backoff).Msg("Rate limited by Sheets API, retrying")
			select {
			case <-time.After(backoff):
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return err
	}
	return fmt.Errorf("%s failed after %d retries: %w", op, maxRetries, err)
}

// columnLetter converts a 1-based column index to its A1 letter form
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}

// toStrings flattens a Sheets API row into plain strings
func toStrings(row []interface{}) []string {
	values := make([]string, len(row))
	for i, cell := range row {
		values[i] = fmt.Sprint(cell)
	}
	return values
}
