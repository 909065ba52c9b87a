package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finboard/internal/core"
	"finboard/internal/log"
	ports "finboard/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Config selects the spreadsheet and credentials.
type Config struct {
	SpreadsheetID string
	// SheetName is the base name without year (e.g. "Transactions"); the
	// exporter prefixes each transaction's year.
	SheetName string
	// CredentialsFile is a service account JSON file. When empty, Application
	// Default Credentials are used.
	CredentialsFile string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetBase     string
	logger        *log.Logger
}

// Ensure interface conformance
var _ ports.TransactionExporter = (*Client)(nil)

// New creates a Sheets client from cfg. Extra options are passed to the
// Sheets service after the credential options.
func New(ctx context.Context, cfg Config, logger *log.Logger, opts ...goption.ClientOption) (*Client, error) {
	id := strings.TrimSpace(cfg.SpreadsheetID)
	if id == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	logger = log.OrDiscard(logger).WithComponent(log.ComponentSheets)

	base := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		logger.InfoContext(ctx, "Using service account credentials file", "path", cfg.CredentialsFile)
		base = append(base, goption.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := gsheet.NewService(ctx, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return NewWithService(svc, id, cfg.SheetName, logger), nil
}

// NewWithService wraps an existing Sheets service.
func NewWithService(svc *gsheet.Service, spreadsheetID, sheetBase string, logger *log.Logger) *Client {
	if strings.TrimSpace(sheetBase) == "" {
		sheetBase = "Transactions"
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetBase:     sheetBase,
		logger:        log.OrDiscard(logger).WithComponent(log.ComponentSheets),
	}
}

// Export appends txs to the year-prefixed sheets, writing the header first
// when a sheet is still empty. Groups already written stay written if a later
// group fails.
func (c *Client) Export(ctx context.Context, txs []core.Transaction) (ports.Result, error) {
	var res ports.Result
	if len(txs) == 0 {
		return res, nil
	}
	if c.svc == nil {
		return res, errors.New("sheets service not initialized")
	}

	for _, g := range ports.GroupByYear(txs) {
		sheet := ports.YearPrefixedName(c.sheetBase, g.Year)

		empty, err := c.isEmpty(ctx, sheet)
		if err != nil {
			return res, err
		}
		values := make([][]any, 0, len(g.Transactions)+1)
		if empty {
			values = append(values, ports.Header)
		}
		for _, t := range g.Transactions {
			values = append(values, ports.Row(t))
		}

		rng := a1(sheet, "A:E")
		resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &gsheet.ValueRange{Values: values}).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		if err != nil {
			return res, fmt.Errorf("append to sheet %s: %w", sheet, err)
		}

		ref := rng
		if resp.Updates != nil && resp.Updates.UpdatedRange != "" {
			ref = resp.Updates.UpdatedRange
		}
		res.Rows += len(g.Transactions)
		res.Ranges = append(res.Ranges, ref)
		c.logger.InfoContext(ctx, "Exported transactions",
			log.FieldOperation, log.OpExport, log.FieldCount, len(g.Transactions), "sheet", sheet, "range", ref)
	}
	return res, nil
}

func (c *Client) isEmpty(ctx context.Context, sheet string) (bool, error) {
	rng := a1(sheet, "A1:E1")
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("read %s: %w", rng, err)
	}
	return len(resp.Values) == 0, nil
}

// a1 builds a quoted A1 range; sheet names contain spaces.
func a1(sheet, cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheet, "'", "''"), cells)
}
