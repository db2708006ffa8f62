package conferencehall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
)

// Client implements the EventSource interface for the Conference Hall API
type Client struct {
	baseURL    string
	eventID    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new Conference Hall Client, retrieving configuration from context
func New(ctx context.Context) *Client {
	cfg := config.GetConfig(ctx)
	return NewWithHTTPClient(
		cfg.ConferenceHall.URL,
		cfg.ConferenceHall.EventID,
		cfg.ConferenceHall.APIKey,
		&http.Client{Timeout: 30 * time.Second},
	)
}

// NewWithHTTPClient creates a new Conference Hall Client with a custom HTTP client.
// This constructor is primarily intended for testing purposes.
func NewWithHTTPClient(baseURL, eventID, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		eventID:    eventID,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     slog.Default().With("component", "conferencehall"),
	}
}

// SetLogger sets a custom logger for the client
func (c *Client) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// doRequest performs a GET request authenticated with the API key
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	query := url.Values{"key": []string{c.apiKey}}
	requestURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// never log the api key
	c.logger.DebugContext(ctx, "making HTTP request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "HTTP request failed",
			"status", resp.StatusCode,
			"path", path,
			"body", string(body),
		)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// GetEvent retrieves the configured event with its talks, speakers,
// categories and formats
func (c *Client) GetEvent(ctx context.Context) (*domain.Event, error) {
	c.logger.InfoContext(ctx, "fetching event from Conference Hall", "eventID", c.eventID)

	body, err := c.doRequest(ctx, "/api/v1/event/"+url.PathEscape(c.eventID))
	if err != nil {
		return nil, fmt.Errorf("%w: event %s: %w", domain.ErrEventFetch, c.eventID, err)
	}

	var event domain.Event
	if err := json.Unmarshal(body, &event); err != nil {
		c.logger.ErrorContext(ctx, "failed to unmarshal event response",
			"error", err,
			"eventID", c.eventID,
		)
		return nil, fmt.Errorf("%w: failed to unmarshal event %s: %w", domain.ErrEventFetch, c.eventID, err)
	}

	c.logger.InfoContext(ctx, "successfully fetched event",
		"eventID", c.eventID,
		"talks", len(event.Talks),
		"speakers", len(event.Speakers),
		"categories", len(event.Categories),
		"formats", len(event.Formats),
	)

	return &event, nil
}
