// Package rawg talks to the RAWG video-game catalog API. All
// operations are read-only; a failed request surfaces immediately to
// the caller with no retries.
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"ludo/internal/domain"
	"ludo/internal/filter"
)

const (
	defaultBaseURL   = "https://api.rawg.io/api"
	defaultTimeout   = 15 * time.Second
	userAgent        = "Ludo/1.0"
	taxonomyPageSize = 40
)

// Client is an HTTP client for the catalog API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a catalog client. An empty baseURL selects the
// public RAWG endpoint. A missing API key is a configuration problem
// but not a hard failure: requests go out without it and fail upstream.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if apiKey == "" {
		logger.Warn("no catalog API key configured, requests will be rejected upstream")
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		// RAWG enforces per-key quotas; stay comfortably under them
		limiter: rate.NewLimiter(rate.Limit(4), 8),
		logger:  logger,
	}
}

// doRequest performs an authenticated GET and returns the response
// body. Transport failures map to ErrCatalogUnreachable, a 404 to
// ErrNotFound and any other non-2xx status to UpstreamError.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if query == nil {
		query = url.Values{}
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "path", path, "query", redactKey(query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("catalog request error", "path", path, "status", resp.StatusCode)
		return nil, &domain.UpstreamError{Status: resp.StatusCode}
	}

	return body, nil
}

// List returns one page of title summaries for the given selection,
// along with the total result count. The count is authoritative for
// page-count derivation.
func (c *Client) List(ctx context.Context, st filter.State) ([]domain.Game, int, error) {
	body, err := c.doRequest(ctx, "/games", BuildQuery(st))
	if err != nil {
		return nil, 0, err
	}

	var envelope listEnvelope[gameDTO]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, 0, fmt.Errorf("failed to parse game list: %w", err)
	}
	return mapGames(envelope.Results), envelope.Count, nil
}

// Detail returns the full record for one title.
func (c *Client) Detail(ctx context.Context, id int) (*domain.Game, error) {
	body, err := c.doRequest(ctx, "/games/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var dto gameDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse game detail: %w", err)
	}
	game := mapGame(dto)
	return &game, nil
}

// Screenshots returns the image references for a title. An empty
// result is legitimate, not an error.
func (c *Client) Screenshots(ctx context.Context, id int) ([]domain.Screenshot, error) {
	body, err := c.doRequest(ctx, "/games/"+strconv.Itoa(id)+"/screenshots", nil)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope[screenshotDTO]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse screenshots: %w", err)
	}
	return mapScreenshots(envelope.Results), nil
}

// Genres returns the genre taxonomy.
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	query := url.Values{}
	query.Set("page_size", strconv.Itoa(taxonomyPageSize))
	body, err := c.doRequest(ctx, "/genres", query)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope[genreDTO]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse genres: %w", err)
	}
	return mapGenres(envelope.Results), nil
}

// ParentPlatforms returns the parent platform taxonomy with the nested
// platform objects unwrapped.
func (c *Client) ParentPlatforms(ctx context.Context) ([]domain.Platform, error) {
	body, err := c.doRequest(ctx, "/platforms/lists/parents", nil)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope[platformWrapperDTO]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse platforms: %w", err)
	}
	return mapPlatforms(envelope.Results), nil
}

// Tags returns the tag taxonomy, keeping English-language entries only.
func (c *Client) Tags(ctx context.Context) ([]domain.Tag, error) {
	query := url.Values{}
	query.Set("page_size", strconv.Itoa(taxonomyPageSize))
	body, err := c.doRequest(ctx, "/tags", query)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope[tagDTO]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}

	tags := mapTags(envelope.Results)
	eng := tags[:0]
	for _, t := range tags {
		if t.Language == "eng" {
			eng = append(eng, t)
		}
	}
	return eng, nil
}

// redactKey strips the API key from query values before logging.
func redactKey(query url.Values) string {
	if query.Get("key") == "" {
		return query.Encode()
	}
	redacted := url.Values{}
	for k, vs := range query {
		if k == "key" {
			redacted.Set(k, "***")
			continue
		}
		redacted[k] = vs
	}
	return redacted.Encode()
}
