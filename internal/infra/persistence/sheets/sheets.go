// Package sheets contains the concrete implementation of the persistence layer using the Google Sheets API.
package sheets

import (
	"context"
	"log/slog"
	"time"

	"ngopi/config"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/service"
	"ngopi/internal/errors"
	"ngopi/internal/infra/ratelimit"

	"go.uber.org/fx"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Limiter *ratelimit.Limiter
	Probe   service.ConnectivityProbe
}

// valuesAPI is the slice of the Sheets API surface the repositories touch.
// Tests substitute a fake; production wires googleValues over the real service.
type valuesAPI interface {
	Get(ctx context.Context, spreadsheetID, readRange string) (*sheetsv4.ValueRange, error)
	Append(ctx context.Context, spreadsheetID, writeRange string, values *sheetsv4.ValueRange) error
	Update(ctx context.Context, spreadsheetID, writeRange string, values *sheetsv4.ValueRange) error
}

// Client holds the shared pieces every repository call goes through: the
// values API, the admission limiter, the connectivity probe, and the
// configured ranges.
type Client struct {
	values        valuesAPI
	spreadsheetID string
	cafeRange     string
	ratingRange   string
	timeout       time.Duration
	limiter       *ratelimit.Limiter
	probe         service.ConnectivityProbe
	logger        *slog.Logger
}

// New creates the Sheets client. Configuration problems surface here, never
// on first use: a missing spreadsheet ID or credential fails construction.
func New(params Params) (*Client, error) {
	cfg := params.Config.Sheets
	if cfg == nil {
		return nil, errors.New("sheets config is required")
	}
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("sheets spreadsheet ID is required")
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		return nil, errors.New("sheets credentials file or API key is required")
	}

	svc, err := sheetsv4.NewService(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Sheets service")
	}

	return &Client{
		values:        &googleValues{svc: svc},
		spreadsheetID: cfg.SpreadsheetID,
		cafeRange:     cfg.CafeRange,
		ratingRange:   cfg.RatingRange,
		timeout:       cfg.RequestTimeout,
		limiter:       params.Limiter,
		probe:         params.Probe,
		logger:        params.Logger,
	}, nil
}

// acquireSlot runs the admission sequence shared by every remote call:
// rate-limit check first, connectivity second, slot recorded last. An
// offline result therefore never consumes budget.
func (c *Client) acquireSlot(ctx context.Context) error {
	if !c.limiter.CanMakeRequest() {
		info := c.limiter.Info()

		return domainerrors.NewRateLimitError(info.Limit, info.InWindow, info.ResetAt)
	}

	if !c.probe.Online(ctx) {
		return domainerrors.NewNetworkError("connectivity check", errors.New("device is offline"))
	}

	c.limiter.RecordRequest()

	return nil
}

// readRange fetches the raw cell grid of one configured range. An untouched
// range comes back as an empty grid, not an error.
func (c *Client) readRange(ctx context.Context, readRange string) ([][]any, error) {
	if err := c.acquireSlot(ctx); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.values.Get(callCtx, c.spreadsheetID, readRange)
	if err != nil {
		return nil, classifyAPIError("read "+readRange, err)
	}
	if resp == nil {
		return nil, nil
	}

	return resp.Values, nil
}

// appendRows appends rows below the last populated row of the range.
func (c *Client) appendRows(ctx context.Context, writeRange string, rows [][]any) error {
	if err := c.acquireSlot(ctx); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := &sheetsv4.ValueRange{Values: rows}
	if err := c.values.Append(callCtx, c.spreadsheetID, writeRange, body); err != nil {
		return classifyAPIError("append "+writeRange, err)
	}

	return nil
}

// updateRows overwrites exactly the addressed cells.
func (c *Client) updateRows(ctx context.Context, writeRange string, rows [][]any) error {
	if err := c.acquireSlot(ctx); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := &sheetsv4.ValueRange{Values: rows}
	if err := c.values.Update(callCtx, c.spreadsheetID, writeRange, body); err != nil {
		return classifyAPIError("update "+writeRange, err)
	}

	return nil
}

// logRowIssues reports a batch's skipped rows once: a single warning with the
// count, per-row reasons at debug. Bad rows never fail a read.
func (c *Client) logRowIssues(ctx context.Context, sheet string, issues []RowIssue) {
	if len(issues) == 0 {
		return
	}

	c.logger.LogAttrs(ctx, slog.LevelWarn, "skipped malformed sheet rows",
		slog.String("sheet", sheet),
		slog.Int("count", len(issues)),
	)
	for _, issue := range issues {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "sheet row skipped",
			slog.String("sheet", sheet),
			slog.Int("row", issue.Index),
			slog.String("reason", issue.Err.Error()),
		)
	}
}

// googleValues adapts the generated Sheets service to valuesAPI.
type googleValues struct {
	svc *sheetsv4.Service
}

func (g *googleValues) Get(ctx context.Context, spreadsheetID, readRange string) (*sheetsv4.ValueRange, error) {
	return g.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).
		Do()
}

func (g *googleValues) Append(ctx context.Context, spreadsheetID, writeRange string, values *sheetsv4.ValueRange) error {
	_, err := g.svc.Spreadsheets.Values.Append(spreadsheetID, writeRange, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return err
}

func (g *googleValues) Update(ctx context.Context, spreadsheetID, writeRange string, values *sheetsv4.ValueRange) error {
	_, err := g.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, values).
		ValueInputOption("RAW").
		Context(ctx).
		Do()

	return err
}
