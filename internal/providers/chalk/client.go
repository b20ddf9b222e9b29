package chalk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-events-etl/internal/providers"
)

// Config controls how the chalk247 client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Sport      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches scoreboard events and team rankings from the chalk247
// delivery API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	sport      string
	httpClient httpDoer
}

// NewClient constructs a chalk247 client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		sport:      resolveSport(cfg.Sport),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchEvents retrieves scoreboard events for the inclusive window
// [startDate, endDate]. The window dates are spliced into the request path.
func (c *Client) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	url := fmt.Sprintf("%s/scoreboard/%s/%s/%s.json", c.baseURL, c.sport, startDate, endDate)

	var payload scoreboardResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	return collectEvents(payload)
}

// FetchRankings retrieves the current team ranking table.
func (c *Client) FetchRankings(ctx context.Context) ([]rankings.Ranking, error) {
	url := fmt.Sprintf("%s/team_rankings/%s.json", c.baseURL, c.sport)

	var payload rankingsResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("fetch rankings: %w", err)
	}

	ranks := make([]rankings.Ranking, 0, len(payload.Results.Data))
	for _, r := range payload.Results.Data {
		mapped, err := mapRanking(r)
		if err != nil {
			return nil, fmt.Errorf("fetch rankings: %w", err)
		}
		ranks = append(ranks, mapped)
	}
	return ranks, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   req.URL.Path,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

// collectEvents flattens the per-date scoreboard payload into an ordered
// event list. JSON objects carry no wire order, so the canonical fetch order
// is ascending date, then ascending event id within a date.
func collectEvents(payload scoreboardResponse) ([]events.Event, error) {
	dates := make([]string, 0, len(payload.Results))
	for date := range payload.Results {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var all []events.Event
	for _, date := range dates {
		day, ok, err := decodeDay(payload.Results[date])
		if err != nil {
			return nil, fmt.Errorf("fetch events: day %s: %w", date, err)
		}
		if !ok {
			continue
		}

		ids := make([]string, 0, len(day.Data))
		for id := range day.Data {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			mapped, err := mapEvent(id, day.Data[id])
			if err != nil {
				return nil, fmt.Errorf("fetch events: day %s: %w", date, err)
			}
			all = append(all, mapped)
		}
	}
	return all, nil
}

// decodeDay decodes one per-date entry. Days without games arrive as empty
// placeholders ("" or {}) and are skipped rather than treated as malformed.
func decodeDay(raw json.RawMessage) (scoreboardDay, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", `""`, "null", "[]", "{}":
		return scoreboardDay{}, false, nil
	}

	var day scoreboardDay
	if err := json.Unmarshal(trimmed, &day); err != nil {
		return scoreboardDay{}, false, err
	}
	return day, len(day.Data) > 0, nil
}
