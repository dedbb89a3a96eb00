package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client fetches rectangular cell ranges from the Google Sheets values API.
type Client struct {
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
	baseURL string
}

func New(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
		baseURL: defaultBaseURL,
	}
}

// Result is the outcome of one range fetch. Rows is empty on any failure;
// Err records why so callers and tests can tell a degraded fetch from a
// genuinely empty range. Nothing downstream branches on Err — sparse data
// is the normal case, not an error.
type Result struct {
	Rows []Row
	Err  error
}

type valuesResponse struct {
	Values [][]any `json:"values"`
}

// Fetch pulls one range of cell values. It never returns an error to the
// caller: non-2xx responses, transport failures and malformed bodies all
// degrade to an empty Result with the reason recorded. Fire-once, no retry.
func (c *Client) Fetch(ctx context.Context, spreadsheetID, rangeExpr string) Result {
	// Range expressions contain sheet names with spaces.
	u := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL, spreadsheetID, url.PathEscape(rangeExpr), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return c.degrade(spreadsheetID, rangeExpr, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.degrade(spreadsheetID, rangeExpr, fmt.Errorf("fetch: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.degrade(spreadsheetID, rangeExpr, fmt.Errorf("api status %d", resp.StatusCode))
	}

	var body valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.degrade(spreadsheetID, rangeExpr, fmt.Errorf("decode response: %w", err))
	}

	rows := make([]Row, 0, len(body.Values))
	for _, raw := range body.Values {
		row := make(Row, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return Result{Rows: rows}
}

func (c *Client) degrade(spreadsheetID, rangeExpr string, err error) Result {
	c.logger.Warn("sheet fetch degraded to empty",
		"spreadsheet", spreadsheetID,
		"range", rangeExpr,
		"error", err,
	)
	return Result{Err: err}
}

// cellString flattens a raw JSON cell to a string. The values API normally
// returns strings, but unformatted numeric and boolean cells can come back
// typed.
func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
