// Package sheets is a small Google Sheets v4 client that appends header-mapped
// rows to a spreadsheet, authenticating as a service account.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/imsurajj/amsoft/pkg/logger"
)

const (
	// documentFields limits the metadata fetched by LoadInfo.
	documentFields = "spreadsheetId,properties.title,sheets.properties(sheetId,title,index)"

	valueInputRaw  = "RAW"
	insertRows     = "INSERT_ROWS"
	majorDimension = "ROWS"
)

var (
	// ErrSheetNotFound is returned when the spreadsheet has no worksheets.
	ErrSheetNotFound = errors.New("Sheet not found")

	// ErrNoHeaderRow is returned when row 1 of the worksheet is empty.
	ErrNoHeaderRow = errors.New("No values in the header row - fill the first row with header values before adding rows")
)

// Config holds the configuration for the Sheets client
type Config struct {
	SpreadsheetID string
	Credentials   CredentialsConfig

	// Endpoint overrides https://sheets.googleapis.com/
	Endpoint string
}

// Client talks to one spreadsheet.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	log           *slog.Logger
	apiOpts       []option.ClientOption
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithAPIOptions appends options passed to the generated Sheets service.
func WithAPIOptions(opts ...option.ClientOption) ClientOption {
	return func(c *Client) {
		c.apiOpts = append(c.apiOpts, opts...)
	}
}

// NewClient resolves the service-account credentials and builds the Sheets
// service. No network call is made; the first token is fetched lazily and
// cached by the oauth2 transport.
func NewClient(ctx context.Context, cfg Config, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("spreadsheet ID is required")
	}

	c := &Client{
		spreadsheetID: cfg.SpreadsheetID,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Scope("sheets"))

	creds, err := ResolveCredentials(ctx, cfg.Credentials)
	if err != nil {
		return nil, err
	}

	apiOpts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, creds.TokenSource)),
	}
	if cfg.Endpoint != "" {
		apiOpts = append(apiOpts, option.WithEndpoint(withTrailingSlash(cfg.Endpoint)))
	}
	apiOpts = append(apiOpts, c.apiOpts...)

	svc, err := sheetsapi.NewService(ctx, apiOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating Sheets service: %w", err)
	}
	c.svc = svc

	c.log.Info("sheets client ready",
		slog.String("source", cfg.Credentials.Source),
		slog.String("spreadsheet_id", cfg.SpreadsheetID),
	)
	return c, nil
}

// Document is the spreadsheet metadata returned by LoadInfo.
type Document struct {
	ID         string
	Title      string
	Worksheets []Worksheet
}

// Worksheet is one tab of a spreadsheet.
type Worksheet struct {
	ID    int64
	Title string
	Index int64
}

// FirstWorksheet returns the worksheet with the lowest index.
func (d *Document) FirstWorksheet() (*Worksheet, error) {
	if len(d.Worksheets) == 0 {
		return nil, ErrSheetNotFound
	}
	return &d.Worksheets[0], nil
}

// LoadInfo fetches the spreadsheet title and its worksheets in index order.
func (c *Client) LoadInfo(ctx context.Context) (*Document, error) {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields(documentFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("Failed to load spreadsheet: %w", err)
	}

	doc := &Document{ID: ss.SpreadsheetId}
	if ss.Properties != nil {
		doc.Title = ss.Properties.Title
	}
	for _, s := range ss.Sheets {
		if s == nil || s.Properties == nil {
			continue
		}
		doc.Worksheets = append(doc.Worksheets, Worksheet{
			ID:    s.Properties.SheetId,
			Title: s.Properties.Title,
			Index: s.Properties.Index,
		})
	}
	sort.SliceStable(doc.Worksheets, func(i, j int) bool {
		return doc.Worksheets[i].Index < doc.Worksheets[j].Index
	})

	c.log.Debug("spreadsheet loaded",
		slog.String("title", doc.Title),
		slog.Int("worksheets", len(doc.Worksheets)),
	)
	return doc, nil
}

// HeaderValues returns row 1 of the worksheet.
func (c *Client) HeaderValues(ctx context.Context, ws *Worksheet) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1(ws.Title, "1:1")).
		MajorDimension(majorDimension).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("reading header row of %q: %w", ws.Title, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, v := range resp.Values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return headers, nil
}

// AddRow appends one row, placing each value under the header column with the
// same name. Header names match case-insensitively. Every key must have a
// column; header columns without a value are left empty.
func (c *Client) AddRow(ctx context.Context, ws *Worksheet, values map[string]string) error {
	headers, err := c.HeaderValues(ctx, ws)
	if err != nil {
		return err
	}

	row, err := layoutRow(headers, values)
	if err != nil {
		return fmt.Errorf("worksheet %q: %w", ws.Title, err)
	}

	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, a1(ws.Title, "A1"), &sheetsapi.ValueRange{
		MajorDimension: majorDimension,
		Values:         [][]any{row},
	}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return err
	}

	if resp.Updates != nil {
		c.log.Debug("row appended",
			slog.String("worksheet", ws.Title),
			slog.String("range", resp.Updates.UpdatedRange),
		)
	}
	return nil
}

func layoutRow(headers []string, values map[string]string) ([]any, error) {
	if len(headers) == 0 {
		return nil, ErrNoHeaderRow
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(h)
		if _, dup := columns[key]; !dup && key != "" {
			columns[key] = i
		}
	}

	row := make([]any, len(headers))
	for i := range row {
		row[i] = ""
	}

	var missing []string
	for name, v := range values {
		i, ok := columns[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			missing = append(missing, name)
			continue
		}
		row[i] = v
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("header row has no column for %s", strings.Join(missing, ", "))
	}
	return row, nil
}

// a1 builds an A1 range on a worksheet, quoting the title.
func a1(title, cells string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'!" + cells
}

func withTrailingSlash(endpoint string) string {
	if strings.HasSuffix(endpoint, "/") {
		return endpoint
	}
	return endpoint + "/"
}
