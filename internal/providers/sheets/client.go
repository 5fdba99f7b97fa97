package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/metrics"
	"amongus-stats-service/internal/providers"
)

// Config controls how the client reaches the published spreadsheet.
type Config struct {
	BaseURL    string
	SheetID    string
	GIDs       map[Table]string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the spreadsheet's CSV exports and normalizes them into a
// dataset snapshot.
type Client struct {
	baseURL    string
	sheetID    string
	gids       map[Table]string
	httpClient httpDoer
	metrics    *metrics.Recorder
}

// NewClient constructs a sheets client. Missing gids fall back to the known
// published tabs.
func NewClient(cfg Config, recorder *metrics.Recorder) *Client {
	gids := make(map[Table]string, len(defaultGIDs))
	for table, gid := range defaultGIDs {
		gids[table] = gid
	}
	for table, gid := range cfg.GIDs {
		if gid != "" {
			gids[table] = gid
		}
	}

	var doer httpDoer
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	} else {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		sheetID:    cfg.SheetID,
		gids:       gids,
		httpClient: doer,
		metrics:    recorder,
	}
}

// FetchDataset pulls all six tables and normalizes them. The first table
// that cannot be fetched or fails globals validation aborts the whole
// snapshot; a partial dataset is worse than a stale one.
func (c *Client) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	var dataset domain.Dataset

	for _, table := range Tables {
		records, err := c.fetchTable(ctx, table)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("fetch %s: %w", table, err)
		}

		switch table {
		case TableGames:
			dataset.Games = MapGames(records)
		case TablePlayers:
			dataset.Players = MapPlayers(records)
		case TableGlobals:
			globals, mapErr := MapGlobals(records)
			if mapErr != nil {
				return domain.Dataset{}, fmt.Errorf("normalize %s: %w", table, mapErr)
			}
			dataset.Globals = globals
		case TableEvents:
			dataset.Events = MapEvents(records)
		case TableKillEdges:
			dataset.KillEdges = MapKillEdges(records)
		case TableTeammateGroups:
			dataset.TeammateGroups = MapTeammateGroups(records)
		}
	}

	return dataset, nil
}

func (c *Client) fetchTable(ctx context.Context, table Table) ([]Record, error) {
	start := time.Now()
	records, err := c.doFetch(ctx, table)
	c.metrics.RecordTableFetch(string(table), time.Since(start), err)
	return records, err
}

func (c *Client) doFetch(ctx context.Context, table Table) ([]Record, error) {
	url := fmt.Sprintf("%s/%s/export?format=csv&gid=%s", c.baseURL, c.sheetID, c.gids[table])
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   "sheets",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "sheet export rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Records(ParseCSV(string(text))), nil
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
